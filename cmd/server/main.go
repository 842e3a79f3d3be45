package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	httpapi "clubhub-backend/internal/api/http"
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/metrics"
	"clubhub-backend/internal/repository/memory"
	"clubhub-backend/internal/security"
	"clubhub-backend/internal/seed"
	"clubhub-backend/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// .env values feed the config env overrides; a missing file is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubHub backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Initialize the in-memory store and load the seed dataset. All state
	// lives here; a restart reverts everything to this data.
	store := memory.NewStore()
	if err := seed.Apply(context.Background(), store); err != nil {
		logger.Error("Failed to load seed data", "error", err)
		log.Fatalf("Failed to load seed data: %v", err)
	}
	logger.Info("Seed data loaded")

	// Initialize Security
	tokenManager := security.NewTokenManager()

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	clubSvc := service.NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	membershipSvc := service.NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	eventSvc := service.NewEventService(store.EventRepository, store.ClubRepository)
	annSvc := service.NewAnnouncementService(store.AnnouncementRepository, store.ClubRepository)
	dashboardSvc := service.NewDashboardService(
		store.ClubRepository,
		store.UserRepository,
		store.EventRepository,
		store.AnnouncementRepository,
		store.MembershipRepository,
		clubSvc,
		eventSvc,
	)
	adminSvc := service.NewAdminService(store.UserRepository)

	// Initialize HTTP handlers
	identity := httpapi.NewIdentity(tokenManager, store.UserRepository, seed.DefaultUserEmail)
	handlers := httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc, identity),
		Club:         httpapi.NewClubHandler(clubSvc, identity),
		Membership:   httpapi.NewMembershipHandler(membershipSvc, identity),
		Event:        httpapi.NewEventHandler(eventSvc, identity),
		Announcement: httpapi.NewAnnouncementHandler(annSvc, identity),
		Dashboard:    httpapi.NewDashboardHandler(dashboardSvc, identity),
		Admin:        httpapi.NewAdminHandler(adminSvc, identity),
	}

	m := metrics.New()
	router := httpapi.NewRouter(handlers, m, store.Locker())

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

type AuthHandler struct {
	authSvc  service.AuthService
	identity *Identity
}

func NewAuthHandler(authSvc service.AuthService, identity *Identity) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, identity: identity}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}

	user, token, err := h.authSvc.Register(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, user)
}

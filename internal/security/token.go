package security

import (
	"strings"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"

	"github.com/google/uuid"
)

var ErrInvalidToken = apperrors.Auth("invalid or missing token")

// TokenManager mints and resolves the opaque bearer tokens issued at
// register/login time. Tokens carry no structure and never expire; a token
// stays valid for as long as the process lives.
type TokenManager interface {
	Mint(user *domain.User) string
	Resolve(token string) (*domain.User, error)
}

type tokenManager struct {
	tokens map[string]*domain.User
}

func NewTokenManager() TokenManager {
	return &tokenManager{tokens: make(map[string]*domain.User)}
}

func (m *tokenManager) Mint(user *domain.User) string {
	token := uuid.NewString()
	m.tokens[token] = user
	return token
}

func (m *tokenManager) Resolve(token string) (*domain.User, error) {
	user, ok := m.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// BearerToken extracts the credential from an Authorization header value,
// returning "" when no bearer token is present.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

package service

import (
	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/ports"
)

// Credentials is the single configured username/password pair accepted by
// Login. There is no user store behind it.
type Credentials struct {
	Username string
	Password string
}

type AuthService struct {
	credentials Credentials
	tokenIssuer ports.TokenIssuer
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(credentials Credentials, tokenIssuer ports.TokenIssuer) *AuthService {
	return &AuthService{credentials: credentials, tokenIssuer: tokenIssuer}
}

func (s *AuthService) Login(_ context.Context, username, password string) (string, error) {
	if username != s.credentials.Username || password != s.credentials.Password {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokenIssuer.Issue(username)
}

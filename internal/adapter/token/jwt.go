package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskapp/internal/core/ports"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

type Config struct {
	SecretKey string
	TTL       time.Duration
	Issuer    string
}

// JWTManager issues and verifies HS256-signed session tokens. Tokens are
// stateless; nothing is stored server-side.
type JWTManager struct {
	config Config
}

var (
	_ ports.TokenIssuer   = (*JWTManager)(nil)
	_ ports.TokenVerifier = (*JWTManager)(nil)
)

func NewJWTManager(config Config) *JWTManager {
	return &JWTManager{config: config}
}

func (m *JWTManager) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.config.Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

func (m *JWTManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

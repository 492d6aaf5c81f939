package ports

import "context"

// TokenIssuer signs a stateless session token for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenVerifier checks a token's signature and expiry and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

package ports

import (
	"context"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier validates a raw bearer token and returns the session it
// encodes. Errors are domain.ErrInvalidToken or domain.ErrTokenExpired.
type TokenVerifier interface {
	Verify(rawToken string) (*domain.Session, error)
}

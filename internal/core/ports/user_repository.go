package ports

import (
	"context"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

// UserRepository defines the read-only user lookup the login flow needs.
// Implementations return domain.ErrUserNotFound when no row matches; any
// other error is a storage fault.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

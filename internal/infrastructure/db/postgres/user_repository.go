package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

// UserRepository reads users joined with their owning company. The login
// flow never writes: accounts are managed out of band.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const findUserByEmail = `
	SELECT u.id, u.name, u.email, u.password_hash, u.role, c.id, c.name
	FROM users u
	JOIN companies c ON c.id = u.company_id
	WHERE u.email = $1`

// FindByEmail matches the stored email exactly (no case folding).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, findUserByEmail, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Company.ID,
		&user.Company.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

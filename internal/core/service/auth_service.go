package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/flowboard/workflow-api/internal/core/domain"
	"github.com/flowboard/workflow-api/internal/core/ports"
)

// AuthService implements the login flow: lookup, password check, token issue.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenManager
}

func NewAuthService(repo ports.UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login verifies the email/password pair and returns a signed session token
// plus the user profile. An unknown email and a wrong password both return
// domain.ErrInvalidCredentials so the two cases are indistinguishable to the
// caller. Storage faults are wrapped and surfaced separately.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

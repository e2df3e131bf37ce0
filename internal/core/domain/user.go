package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

// Authentication errors. ErrInvalidCredentials deliberately covers both
// "unknown email" and "wrong password" so callers cannot probe which emails
// are registered.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenRevoked    = errors.New("token revoked")

	ErrForbidden = errors.New("access forbidden")
)

// Company is the tenant entity that scopes a user's data visibility.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User models an authenticated actor. PasswordHash never leaves the process:
// it is excluded from JSON marshalling and must not be logged.
type User struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	Company      Company `json:"company"`
}

// Identity is the authenticated principal derived from validated token
// claims. It is attached to the request context by the auth middleware and
// trusted downstream without a further store lookup.
type Identity struct {
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	CompanyID int64  `json:"company_id"`
}

// Session is the result of validating a session token: the identity plus the
// token metadata needed for revocation (the jti and when it stops mattering).
type Session struct {
	Identity  Identity
	TokenID   string
	ExpiresAt time.Time
}

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    42,
		Name:  "Sarah Chen",
		Email: "sarah@acme.io",
		Role:  domain.RoleAdmin,
		Company: domain.Company{
			ID:   7,
			Name: "Acme Operations",
		},
	}
}

func TestTokenManager_RequiresSecret(t *testing.T) {
	if _, err := NewTokenManager(""); !errors.Is(err, ErrNoSigningSecret) {
		t.Fatalf("expected ErrNoSigningSecret, got %v", err)
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm, err := NewTokenManager("secret")
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	token, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	session, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	want := domain.Identity{UserID: 42, Role: domain.RoleAdmin, CompanyID: 7}
	if session.Identity != want {
		t.Fatalf("identity mismatch: got %+v, want %+v", session.Identity, want)
	}
	if session.TokenID == "" {
		t.Fatalf("expected a token id (jti)")
	}
	if remaining := time.Until(session.ExpiresAt); remaining < 7*time.Hour || remaining > 9*time.Hour {
		t.Fatalf("unexpected expiry: %v from now", remaining)
	}
}

func TestTokenManager_ExpiryWindow(t *testing.T) {
	tm, err := NewTokenManager("secret")
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return issuedAt }

	token, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// one minute in: accepted
	tm.now = func() time.Time { return issuedAt.Add(time.Minute) }
	if _, err := tm.Verify(token); err != nil {
		t.Fatalf("token rejected one minute after issuance: %v", err)
	}

	// one minute past the 8h lifetime: rejected as expired
	tm.now = func() time.Time { return issuedAt.Add(TokenTTL + time.Minute) }
	if _, err := tm.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	tm, err := NewTokenManager("secret")
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	token, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// flip the last signature byte
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := tm.Verify(string(tampered)); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_RejectsWrongSigningMethod(t *testing.T) {
	tm, err := NewTokenManager("secret")
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	// same secret, but HS512 instead of the expected HS256
	other := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"user_id":    int64(1),
		"role":       domain.RoleMember,
		"company_id": int64(1),
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	tm, err := NewTokenManager("secret")
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	for _, raw := range []string{"not-a-token", "a.b.c", ""} {
		if _, err := tm.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flowboard/workflow-api/internal/api/metrics"
	"github.com/flowboard/workflow-api/internal/core/domain"
	"github.com/flowboard/workflow-api/internal/core/ports"
)

// Auth validates the bearer token on every protected request and injects the
// resulting identity and session into the echo context. Requests are rejected
// before reaching handler logic when the token is absent, malformed, expired,
// or revoked.
func Auth(verifier ports.TokenVerifier, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenChecksTotal.WithLabelValues("missing").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenChecksTotal.WithLabelValues("missing").Inc()
				return domain.ErrUnauthenticated
			}

			session, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenChecksTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenChecksTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), session.TokenID)
			if err != nil {
				return fmt.Errorf("denylist check: %w", err)
			}
			if revoked {
				metrics.TokenChecksTotal.WithLabelValues("revoked").Inc()
				return domain.ErrTokenRevoked
			}

			metrics.TokenChecksTotal.WithLabelValues("ok").Inc()
			c.Set("identity", session.Identity)
			c.Set("session", session)

			return next(c)
		}
	}
}

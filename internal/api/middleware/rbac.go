package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

// RBAC enforces role-based access control on top of Auth. It must run after
// Auth so the identity is already in the context.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := c.Get("identity").(domain.Identity)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[ident.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

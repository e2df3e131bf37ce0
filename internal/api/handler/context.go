package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty role proves the middleware
// actually ran on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := c.Get("identity").(domain.Identity)
	if !ok || ident.Role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}

// ctxSession extracts the full validated session, needed by logout for the
// token id and remaining lifetime.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, ok := c.Get("session").(*domain.Session)
	if !ok || session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return session, nil
}

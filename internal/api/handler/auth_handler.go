package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flowboard/workflow-api/internal/api/metrics"
	"github.com/flowboard/workflow-api/internal/core/domain"
	"github.com/flowboard/workflow-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	denylist    ports.TokenDenylist
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, denylist ports.TokenDenylist, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, denylist: denylist, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type meResponse struct {
	Message string          `json:"message"`
	User    domain.Identity `json:"user"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email and password are required"})
	}

	start := time.Now()
	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email and password are required"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid email or password"})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			h.log.Error().Err(err).Msg("login failed")
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Me echoes the identity embedded in a valid bearer token.
//
// @Summary      Current session identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Message: "Token valid", User: ident})
}

// Logout revokes the presented token for the rest of its lifetime.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if err := h.denylist.Revoke(c.Request().Context(), session.TokenID, ttl); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rmontufar/usuarios-service/internal/logger"
	"github.com/rmontufar/usuarios-service/internal/model"
)

// AuthService defines the login check operation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.Identity, error)
}

// Auth handles the login endpoint.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials and returns the user's identity fields,
// never the password.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	identity, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(err)
	}

	return c.JSON(http.StatusOK, identity)
}

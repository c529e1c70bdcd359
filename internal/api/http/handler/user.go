package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rmontufar/usuarios-service/internal/logger"
	"github.com/rmontufar/usuarios-service/internal/model"
)

// UserService defines user CRUD operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	Update(ctx context.Context, user model.User) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

// User handles user CRUD endpoints.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List returns every user.
func (h *User) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, users)
}

// GetByID returns the user with the given id.
func (h *User) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// Create registers a new user and returns the stored record.
func (h *User) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	user, err := h.userService.Create(c.Request().Context(), model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.logger.Debug("User handler: create failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// Update replaces all fields of the user with the given id.
func (h *User) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	user, err := h.userService.Update(c.Request().Context(), model.User{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.logger.Debug("User handler: update failed",
			"user_id", id,
			"error", err.Error())
		return handleError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// Delete removes the user with the given id and their addresses.
func (h *User) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		h.logger.Debug("User handler: delete failed",
			"user_id", id,
			"error", err.Error())
		return handleError(err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rmontufar/usuarios-service/internal/logger"
	"github.com/rmontufar/usuarios-service/internal/model"
)

// AddressService defines address CRUD operations.
type AddressService interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.Address, error)
	Create(ctx context.Context, address model.Address) (model.Address, error)
	Update(ctx context.Context, address model.Address) (model.Address, error)
	Delete(ctx context.Context, id int64) error
}

// Address handles address CRUD endpoints.
type Address struct {
	addressService AddressService
	logger         *logger.Logger
}

// NewAddress creates a new Address handler.
func NewAddress(addressService AddressService, logger *logger.Logger) *Address {
	return &Address{
		addressService: addressService,
		logger:         logger,
	}
}

type addressRequest struct {
	UserID     int64  `json:"user_id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// ListByUserID returns the addresses of the given user.
func (h *Address) ListByUserID(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	addresses, err := h.addressService.ListByUserID(c.Request().Context(), userID)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, addresses)
}

// Create stores an address for an existing user.
func (h *Address) Create(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	address, err := h.addressService.Create(c.Request().Context(), model.Address{
		UserID:     req.UserID,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		h.logger.Debug("Address handler: create failed",
			"user_id", req.UserID,
			"error", err.Error())
		return handleError(err)
	}

	return c.JSON(http.StatusOK, address)
}

// Update replaces street, city and postal code of the address with the
// given id.
func (h *Address) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	address, err := h.addressService.Update(c.Request().Context(), model.Address{
		ID:         id,
		UserID:     req.UserID,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		h.logger.Debug("Address handler: update failed",
			"address_id", id,
			"error", err.Error())
		return handleError(err)
	}

	return c.JSON(http.StatusOK, address)
}

// Delete removes the address with the given id.
func (h *Address) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressService.Delete(c.Request().Context(), id); err != nil {
		h.logger.Debug("Address handler: delete failed",
			"address_id", id,
			"error", err.Error())
		return handleError(err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "address deleted"})
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmontufar/usuarios-service/internal/config"
	"github.com/rmontufar/usuarios-service/internal/logger"
	"github.com/rmontufar/usuarios-service/internal/model"
)

// Address implements address CRUD. Every write validates the
// referenced user first.
type Address struct {
	addressStore model.AddressStore
	userStore    model.UserStore
	checks       config.Checks
	logger       *logger.Logger
}

// NewAddress creates a new Address service.
func NewAddress(addressStore model.AddressStore, userStore model.UserStore, checks config.Checks, logger *logger.Logger) *Address {
	return &Address{
		addressStore: addressStore,
		userStore:    userStore,
		checks:       checks,
		logger:       logger,
	}
}

// ListByUserID returns the user's addresses. With NotFoundOnEmptyList
// enabled an empty result is reported as model.ErrNotFound.
func (s *Address) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	addresses, err := s.addressStore.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Address service: failed to list addresses",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	if len(addresses) == 0 && s.checks.NotFoundOnEmptyList {
		return nil, model.ErrNotFound
	}

	return addresses, nil
}

// GetByID returns the matching address or model.ErrNotFound.
func (s *Address) GetByID(ctx context.Context, id int64) (model.Address, error) {
	address, err := s.addressStore.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Address service: failed to get address",
			"address_id", id,
			"error", err.Error())
		return model.Address{}, err
	}

	return address, nil
}

// Create inserts an address after checking the referenced user exists.
func (s *Address) Create(ctx context.Context, address model.Address) (model.Address, error) {
	if err := s.userExists(ctx, address.UserID); err != nil {
		return model.Address{}, err
	}

	created, err := s.addressStore.Create(ctx, address)
	if err != nil {
		s.logger.Error("Address service: failed to create address",
			"user_id", address.UserID,
			"error", err.Error())
		return model.Address{}, fmt.Errorf("failed to create address: %w", err)
	}

	s.logger.Info("Address service: address created",
		"address_id", created.ID,
		"user_id", created.UserID)

	return created, nil
}

// Update replaces street, city and postal code of an existing address.
// The submitted user_id must reference an existing user but the row
// keeps its original owner.
func (s *Address) Update(ctx context.Context, address model.Address) (model.Address, error) {
	if _, err := s.addressStore.GetByID(ctx, address.ID); err != nil {
		return model.Address{}, err
	}

	if err := s.userExists(ctx, address.UserID); err != nil {
		return model.Address{}, err
	}

	updated, err := s.addressStore.Update(ctx, address)
	if err != nil {
		s.logger.Error("Address service: failed to update address",
			"address_id", address.ID,
			"error", err.Error())
		return model.Address{}, fmt.Errorf("failed to update address: %w", err)
	}

	return updated, nil
}

// Delete removes the address.
func (s *Address) Delete(ctx context.Context, id int64) error {
	if s.checks.ExistenceBeforeDelete {
		if _, err := s.addressStore.GetByID(ctx, id); err != nil {
			return err
		}
	}

	if err := s.addressStore.Delete(ctx, id); err != nil {
		s.logger.Error("Address service: failed to delete address",
			"address_id", id,
			"error", err.Error())
		return err
	}

	s.logger.Info("Address service: address deleted",
		"address_id", id)

	return nil
}

func (s *Address) userExists(ctx context.Context, userID int64) error {
	_, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Address service: referenced user does not exist",
				"user_id", userID)
			return model.ErrNotFound
		}
		s.logger.Error("Address service: failed to get referenced user",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to get referenced user: %w", err)
	}
	return nil
}

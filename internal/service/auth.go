package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmontufar/usuarios-service/internal/logger"
	"github.com/rmontufar/usuarios-service/internal/model"
)

// Auth verifies login credentials against stored users.
type Auth struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		logger:    logger,
	}
}

// Login looks the user up by email and compares the password. An
// unknown email and a wrong password both return
// model.ErrInvalidCredentials so the response does not reveal which
// field was incorrect.
//
// Passwords are stored and compared in plaintext. This reproduces the
// deployed behavior and is a known security defect; fixing it means
// rehashing every stored credential and is out of scope here.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Identity, error) {
	a.logger.Debug("Auth service: processing login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: login for unknown email",
				"email", email)
			return model.Identity{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.Password != password {
		a.logger.Info("Auth service: password mismatch",
			"email", email)
		return model.Identity{}, model.ErrInvalidCredentials
	}

	a.logger.Info("Auth service: login succeeded",
		"email", email,
		"user_id", user.ID)

	return user.Identity(), nil
}

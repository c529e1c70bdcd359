package service

import (
	"context"
	"fmt"

	"github.com/rmontufar/usuarios-service/internal/config"
	"github.com/rmontufar/usuarios-service/internal/logger"
	"github.com/rmontufar/usuarios-service/internal/model"
)

// User implements user CRUD with the consistency checks the deployment
// has enabled.
type User struct {
	userStore model.UserStore
	checks    config.Checks
	logger    *logger.Logger
}

// NewUser creates a new User service.
func NewUser(userStore model.UserStore, checks config.Checks, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		checks:    checks,
		logger:    logger,
	}
}

// List returns every user. With NotFoundOnEmptyList enabled an empty
// table is reported as model.ErrNotFound instead of an empty sequence.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 && s.checks.NotFoundOnEmptyList {
		return nil, model.ErrNotFound
	}

	return users, nil
}

// GetByID returns the matching user or model.ErrNotFound.
func (s *User) GetByID(ctx context.Context, id int64) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("User service: failed to get user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, err
	}

	return user, nil
}

// Create inserts a new user. With EnforceUniqueEmail enabled a taken
// email fails with model.ErrEmailTaken before the insert. The check
// and the insert are separate statements, so concurrent requests can
// still race; the unique index is the backstop.
func (s *User) Create(ctx context.Context, user model.User) (model.User, error) {
	if s.checks.EnforceUniqueEmail {
		taken, err := s.userStore.EmailInUse(ctx, user.Email, 0)
		if err != nil {
			s.logger.Error("User service: failed to check email",
				"email", user.Email,
				"error", err.Error())
			return model.User{}, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			s.logger.Info("User service: email already registered",
				"email", user.Email)
			return model.User{}, model.ErrEmailTaken
		}
	}

	created, err := s.userStore.Create(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", user.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", created.ID,
		"email", created.Email)

	return created, nil
}

// Update replaces all fields of an existing user. A missing id fails
// with model.ErrNotFound; an email belonging to a different user fails
// with model.ErrEmailTaken when the check is enabled.
func (s *User) Update(ctx context.Context, user model.User) (model.User, error) {
	if _, err := s.userStore.GetByID(ctx, user.ID); err != nil {
		return model.User{}, err
	}

	if s.checks.EnforceUniqueEmail {
		taken, err := s.userStore.EmailInUse(ctx, user.Email, user.ID)
		if err != nil {
			s.logger.Error("User service: failed to check email",
				"email", user.Email,
				"error", err.Error())
			return model.User{}, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			s.logger.Info("User service: email already registered",
				"email", user.Email,
				"user_id", user.ID)
			return model.User{}, model.ErrEmailTaken
		}
	}

	updated, err := s.userStore.Update(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to update user",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// Delete removes the user; the database cascades to their addresses.
func (s *User) Delete(ctx context.Context, id int64) error {
	if s.checks.ExistenceBeforeDelete {
		if _, err := s.userStore.GetByID(ctx, id); err != nil {
			return err
		}
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		s.logger.Error("User service: failed to delete user",
			"user_id", id,
			"error", err.Error())
		return err
	}

	s.logger.Info("User service: user deleted",
		"user_id", id)

	return nil
}

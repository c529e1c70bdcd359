package model

import "errors"

var (
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken indicates the email already belongs to another user.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so callers cannot tell which field was incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

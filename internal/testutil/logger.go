package testutil

import "github.com/rmontufar/usuarios-service/internal/logger"

// NewLogger returns a logger silenced for tests.
func NewLogger() *logger.Logger {
	return logger.New(7) // zerolog disabled level
}

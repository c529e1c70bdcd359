package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health answers the liveness probe with a fixed payload.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "usuarios-service",
		"time":    time.Now().Format(time.RFC3339),
	})
}

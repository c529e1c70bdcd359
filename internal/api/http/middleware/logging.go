package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rmontufar/usuarios-service/internal/logger"
)

// Logging logs method, path, status and duration for each request.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle wraps the next handler with request logging.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		err := next(c)
		if err != nil {
			// Commit the error response so the status below is real.
			c.Error(err)
		}

		duration := time.Since(start)
		res := c.Response()

		l.logger.Info("request completed",
			"method", req.Method,
			"path", req.URL.Path,
			"status", res.Status,
			"duration_ms", duration.Milliseconds(),
			"request_id", res.Header().Get(echo.HeaderXRequestID))

		if err != nil {
			l.logger.Error("request failed",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"error", err.Error())
		}

		return err
	}
}

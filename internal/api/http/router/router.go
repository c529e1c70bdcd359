package router

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/rmontufar/usuarios-service/internal/api/http/handler"
	"github.com/rmontufar/usuarios-service/internal/api/http/middleware"
	"github.com/rmontufar/usuarios-service/internal/config"
	"github.com/rmontufar/usuarios-service/internal/logger"
)

// Router registers the HTTP routes and middleware for the record
// service.
type Router struct {
	authService    handler.AuthService
	userService    handler.UserService
	addressService handler.AddressService
	cors           config.CORS
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	addressService handler.AddressService,
	cors config.CORS,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		addressService: addressService,
		cors:           cors,
		logger:         logger,
	}
}

// Register builds the echo instance with all middleware and routes.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logging := middleware.NewLogging(r.logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: r.cors.Origins(),
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
	}))
	e.Use(echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(50),
			Burst:     100,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
	}))
	e.Use(logging.Handle)

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	addressHandler := handler.NewAddress(r.addressService, r.logger)

	e.GET("/health", handler.Health)
	e.POST("/login", authHandler.Login)

	e.GET("/usuarios/all", userHandler.List)
	e.GET("/usuarios/:id", userHandler.GetByID)
	e.POST("/usuarios", userHandler.Create)
	e.PUT("/usuarios/:id", userHandler.Update)
	e.DELETE("/usuarios/:id", userHandler.Delete)

	e.GET("/direcciones/:user_id", addressHandler.ListByUserID)
	e.POST("/direcciones", addressHandler.Create)
	e.PUT("/direcciones/:id", addressHandler.Update)
	e.DELETE("/direcciones/:id", addressHandler.Delete)

	return e
}

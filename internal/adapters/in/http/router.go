package http

import (
	"log/slog"
	"net/http"

	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Options carries the collaborators the router needs besides the handlers.
type Options struct {
	Resolver ports.TokenResolver
	Metrics  requestCounter
	Logger   *slog.Logger
}

// NewEcho builds the application router: middleware, API routes under
// /api/v1, health and documentation endpoints. /metrics is added by main.
func NewEcho(server *Server, opts Options) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(opts.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		e.Use(RequestMetrics(opts.Metrics))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err := RegisterDocs(e); err != nil {
		return nil, err
	}

	api := e.Group("/api/v1", Authenticate(opts.Resolver))
	servers.RegisterHandlers(api, server)

	return e, nil
}

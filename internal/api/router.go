package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/nyayasetu/portal-api/docs"
	"github.com/nyayasetu/portal-api/internal/api/handler"
	"github.com/nyayasetu/portal-api/internal/api/middleware"
	"github.com/nyayasetu/portal-api/internal/core/ports"
)

const rootBanner = "NyayaSetu Backend Running Successfully"

// Dependencies is everything the HTTP layer needs. Services are built by the
// caller so each backend choice stays in cmd/api.
type Dependencies struct {
	Log       zerolog.Logger
	Auth      ports.AuthService
	Sessions  ports.SessionService
	Directory ports.DirectoryService
	News      ports.NewsService
	Cookie    *middleware.SessionCookie

	AllowedOrigins []string
	// BodyLimit caps request bodies, e.g. "5M". Empty disables the limit.
	BodyLimit string
	// UploadsDir is served under /uploads when set.
	UploadsDir string
	Health     map[string]handler.Pinger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowCredentials: true,
	}))
	if deps.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(deps.BodyLimit))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(deps.Cookie.Middleware())

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie)
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Cookie)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory, deps.Log)
	newsHandler := handler.NewNewsHandler(deps.News, deps.Log)
	healthHandler := handler.NewHealthHandler(deps.Health)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, rootBanner)
	})

	// --- Account routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/session", sessionHandler.Status)
	e.GET("/logout", sessionHandler.Logout)

	// --- Public content ---
	e.GET("/advocates", directoryHandler.ListAdvocates)
	e.GET("/news", newsHandler.Headlines)
	if deps.UploadsDir != "" {
		e.Static("/uploads", deps.UploadsDir)
	}

	// --- Operations ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

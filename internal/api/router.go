package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/fleetdemo/commute-benefits/docs"
	"github.com/fleetdemo/commute-benefits/internal/api/handler"
	"github.com/fleetdemo/commute-benefits/internal/api/middleware"
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/http/handlers"
)

// Deps are the services the router exposes.
type Deps struct {
	Log       zerolog.Logger
	JWTSecret string

	Sessions ports.SessionService
	Consoles ports.Consoles
	Reports  ports.ReportService
	Play     ports.PlayService

	// Readiness lists the dependencies probed by /health/ready. Nil
	// entries are ignored.
	Readiness map[string]handlers.Pinger

	// Registerer and Gatherer back the HTTP metrics and /metrics. Tests pass
	// a fresh registry so routers can be built more than once per process.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
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
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "commute",
		Registerer: deps.Registerer,
		Skipper:    skipInfraPaths,
	}))

	// --- Infrastructure routes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readyHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	enrollmentHandler := handler.NewEnrollmentHandler(deps.Consoles)
	poolHandler := handler.NewPoolHandler(deps.Consoles)
	reportHandler := handler.NewReportHandler(deps.Reports)
	playHandler := handler.NewPlayHandler(deps.Play)

	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	v1 := e.Group("/v1", authMiddleware)

	// --- Admin console ---
	admin := v1.Group("", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/employees", enrollmentHandler.Roster)
	admin.POST("/employees/:id/enroll", enrollmentHandler.Enroll)
	admin.POST("/employees/:id/cancel", enrollmentHandler.Cancel)
	admin.GET("/pool", poolHandler.List)
	admin.PUT("/pool/:id", poolHandler.Join)
	admin.DELETE("/pool/:id", poolHandler.Leave)
	admin.GET("/reports/participation", reportHandler.Participation)
	admin.GET("/hr/dashboard", reportHandler.HRDashboard)

	// --- Commuter flow ---
	play := v1.Group("/play", middleware.RBAC(domain.RoleCommuter))
	play.GET("/lobby", playHandler.Lobby)
	play.GET("/today", playHandler.Today)
	play.POST("/select", playHandler.Select)
	play.POST("/sessions", playHandler.StartQuest)
	play.POST("/sessions/:id/finish", playHandler.FinishQuest)
	play.GET("/rewards", playHandler.Rewards)

	return e
}

func skipInfraPaths(c echo.Context) bool {
	p := c.Path()
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}

// requestLogger writes one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper:      skipInfraPaths,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= 500 {
				ev = log.Warn().Err(v.Error)
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

package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/metrics"
	mw "github.com/zizouhuweidi/trivia/internal/middleware"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
	"go.uber.org/zap"
)

// Options are the dependencies of the HTTP server. Hub, Metrics and Limiter
// are optional; their routes and middleware are left out when nil.
type Options struct {
	Trivia  handler.TriviaService
	Hub     *ws.Hub
	Metrics *metrics.Metrics
	Limiter mw.Allower
	Logger  *zap.Logger
}

// New builds the echo instance with all middleware and routes
func New(opts Options) *echo.Echo {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.NewErrorHandler(log)
	// Rate limiting keys on the peer address; forwarding headers are not trusted
	e.IPExtractor = echo.ExtractIPDirect()

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(mw.RequestLogger(log))
	if opts.Metrics != nil {
		e.Use(opts.Metrics.Middleware())
	}
	e.Use(middleware.Recover())
	e.Use(mw.CORS())
	e.Use(mw.CORSHeaders())

	var routeMiddleware []echo.MiddlewareFunc
	if opts.Limiter != nil {
		routeMiddleware = append(routeMiddleware, mw.RateLimit(opts.Limiter, log))
	}

	// Routes
	handler.NewTriviaHandler(opts.Trivia).Register(e, routeMiddleware...)

	if opts.Hub != nil {
		e.GET("/ws", handler.NewWebSocketHandler(opts.Hub).HandleWebSocket)
	}

	if opts.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))
	}

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	return e
}

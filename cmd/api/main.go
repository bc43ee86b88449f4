package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/logger"
	"github.com/zizouhuweidi/trivia/internal/metrics"
	"github.com/zizouhuweidi/trivia/internal/ratelimit"
	"github.com/zizouhuweidi/trivia/internal/server"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/store"
	"github.com/zizouhuweidi/trivia/internal/websocket"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet
		panic(err)
	}

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer st.Close()

	// Initialize rate limiter, backed by Redis
	opts := server.Options{Logger: log, Metrics: metrics.New()}
	if cfg.RateLimitPerMinute > 0 {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		opts.Limiter = ratelimit.NewLimiter(redisClient, cfg.RateLimitPerMinute, time.Minute)
	}

	// Initialize websocket hub
	hub := websocket.NewHub(log)
	go hub.Run(ctx)
	opts.Hub = hub

	// Initialize services
	opts.Trivia = service.NewTriviaService(st.Questions, st.Categories, hub)

	e := server.New(opts)

	// Start server
	go func() {
		log.Info("Starting server", zap.String("addr", cfg.HTTPAddr), zap.String("driver", cfg.DBDriver))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
}

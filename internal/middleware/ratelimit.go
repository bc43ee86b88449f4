package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Allower decides whether one more request for key is permitted
type Allower interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects clients over their limit with 429. Requests pass when
// the limiter itself fails.
func RateLimit(limiter Allower, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn("rate limiter unavailable", zap.Error(err))
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests)
			}
			return next(c)
		}
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func serve(t *testing.T, limiter Allower) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/questions", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RateLimit(limiter, zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitAllows(t *testing.T) {
	limiter := &stubLimiter{allowed: true}

	rec := serve(t, limiter)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"10.0.0.7"}, limiter.keys)
}

func TestRateLimitRejects(t *testing.T) {
	rec := serve(t, &stubLimiter{allowed: false})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	rec := serve(t, &stubLimiter{err: errors.New("redis: connection refused")})
	assert.Equal(t, http.StatusOK, rec.Code)
}

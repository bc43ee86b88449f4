package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	allowHeaders = "Content-Type,Authorization,true"
	allowMethods = "GET,PUT,POST,DELETE,OPTIONS"
)

// CORS allows any origin and answers preflight requests
func CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPut,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		// same value CORSHeaders stamps on every other response
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "true"},
	})
}

// CORSHeaders stamps the allowed headers and methods on every response,
// not only on preflight answers.
func CORSHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
			h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			return next(c)
		}
	}
}

package b2cecho

import (
	"github.com/labstack/echo/v4"
)

// Option is a function that configures the middleware
type Option func(*echoMiddlewareConfig)

// WithErrorHandler sets a custom error handler
func WithErrorHandler(handler func(echo.Context, error) error) Option {
	return func(config *echoMiddlewareConfig) {
		config.errorHandler = handler
	}
}

// WithContextKey sets a custom context key to store the result
func WithContextKey(key string) Option {
	return func(config *echoMiddlewareConfig) {
		config.contextKey = key
	}
}

package b2cgin

import (
	"github.com/gin-gonic/gin"
)

// Option defines a functional option for configuring the middleware
type Option func(*GinMiddlewareConfig)

// WithErrorHandler sets a custom error handler for the middleware
func WithErrorHandler(handler func(*gin.Context, error)) Option {
	return func(config *GinMiddlewareConfig) {
		config.errorHandler = handler
	}
}

// WithContextKey sets a custom gin.Context key to store the result
func WithContextKey(key string) Option {
	return func(config *GinMiddlewareConfig) {
		config.contextKey = key
	}
}

// Package b2cgin adapts the azureb2c Middleware to Gin.
package b2cgin

import (
	"github.com/gin-gonic/gin"

	azureb2c "github.com/MatthewWilkes/openid-connect-azure-b2c"
	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

// DefaultContextKey is the gin.Context key the result is stored under.
const DefaultContextKey = "b2c_email"

type GinMiddlewareConfig struct {
	errorHandler func(*gin.Context, error)
	contextKey   string
}

// NewGinMiddleware returns a gin.HandlerFunc that resolves the email address
// with m. The email.Result is stored on the gin.Context under the context key
// and in the request context, where azureb2c.EmailFromContext finds it.
func NewGinMiddleware(m *azureb2c.Middleware, opts ...Option) gin.HandlerFunc {
	config := &GinMiddlewareConfig{
		errorHandler: defaultGinErrorHandler,
		contextKey:   DefaultContextKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(c *gin.Context) {
		if m.Excluded(c.Request) {
			c.Next()
			return
		}

		res, err := m.Resolve(c.Request)
		if err != nil {
			config.errorHandler(c, err)
			c.Abort()
			return
		}

		c.Set(config.contextKey, res)
		c.Request = c.Request.WithContext(azureb2c.ContextWithEmail(c.Request.Context(), res))
		c.Next()
	}
}

func defaultGinErrorHandler(c *gin.Context, err error) {
	status, message := azureb2c.ErrorResponse(err)
	c.AbortWithStatusJSON(status, gin.H{
		"message": message,
	})
}

// GetEmail returns the result stored by the middleware. An empty
// contextKey means DefaultContextKey.
func GetEmail(c *gin.Context, contextKey string) (email.Result, bool) {
	if contextKey == "" {
		contextKey = DefaultContextKey
	}
	v, exists := c.Get(contextKey)
	if !exists {
		return email.Result{}, false
	}

	res, ok := v.(email.Result)
	return res, ok
}

// Package b2cecho adapts the azureb2c Middleware to Echo.
package b2cecho

import (
	"github.com/labstack/echo/v4"

	azureb2c "github.com/MatthewWilkes/openid-connect-azure-b2c"
	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

// DefaultContextKey is the echo.Context key the result is stored under.
const DefaultContextKey = "b2c_email"

// echoMiddlewareConfig holds all configuration for the middleware
type echoMiddlewareConfig struct {
	errorHandler func(echo.Context, error) error
	contextKey   string
}

// NewEchoMiddleware returns an echo.MiddlewareFunc that resolves the email
// address with m and stores the email.Result on the echo.Context and in the
// request context.
func NewEchoMiddleware(m *azureb2c.Middleware, opts ...Option) echo.MiddlewareFunc {
	config := &echoMiddlewareConfig{
		errorHandler: defaultEchoErrorHandler,
		contextKey:   DefaultContextKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if m.Excluded(req) {
				return next(c)
			}

			res, err := m.Resolve(req)
			if err != nil {
				return config.errorHandler(c, err)
			}

			c.Set(config.contextKey, res)
			c.SetRequest(req.WithContext(azureb2c.ContextWithEmail(req.Context(), res)))
			return next(c)
		}
	}
}

func defaultEchoErrorHandler(c echo.Context, err error) error {
	status, message := azureb2c.ErrorResponse(err)
	return c.JSON(status, map[string]string{
		"message": message,
	})
}

// GetEmail extracts the result from the Echo context. An empty
// contextKey means DefaultContextKey.
func GetEmail(c echo.Context, contextKey string) (email.Result, bool) {
	if contextKey == "" {
		contextKey = DefaultContextKey
	}
	res, ok := c.Get(contextKey).(email.Result)
	return res, ok
}

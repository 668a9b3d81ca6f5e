package azureb2c

import (
	"errors"
	"net/http"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

// Option configures the Middleware.
// Returns error for validation failures.
type Option func(*Middleware) error

// ExclusionUrlHandler reports whether a request skips email resolution.
type ExclusionUrlHandler func(r *http.Request) bool

// WithClaimsExtractor sets how claims are read from a request.
//
// Default: MultiClaimsExtractor(HeaderClaimsExtractor(AppServiceIDTokenHeader), BearerClaimsExtractor)
func WithClaimsExtractor(e ClaimsExtractor) Option {
	return func(m *Middleware) error {
		if e == nil {
			return errors.New("claims extractor cannot be nil")
		}
		m.extractor = e
		return nil
	}
}

// WithResolver sets the email resolver.
//
// Default: a resolver without logging, metrics or tracing.
func WithResolver(r *email.Resolver) Option {
	return func(m *Middleware) error {
		if r == nil {
			return errors.New("resolver cannot be nil")
		}
		m.resolver = r
		return nil
	}
}

// WithEmailRequired rejects requests without a resolvable email address.
//
// Default: false (the request continues with an empty result)
func WithEmailRequired(value bool) Option {
	return func(m *Middleware) error {
		m.emailRequired = value
		return nil
	}
}

// WithErrorHandler sets the handler called when a request is rejected.
//
// Default: DefaultErrorHandler
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *Middleware) error {
		if h == nil {
			return errors.New("error handler cannot be nil")
		}
		m.errorHandler = h
		return nil
	}
}

// WithLogger sets the middleware logger.
func WithLogger(l email.Logger) Option {
	return func(m *Middleware) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		m.logger = l
		return nil
	}
}

// WithExclusionUrls skips email resolution for requests whose path
// matches one of paths exactly.
func WithExclusionUrls(paths []string) Option {
	return func(m *Middleware) error {
		if len(paths) == 0 {
			return errors.New("exclusion paths cannot be empty")
		}
		excluded := make(map[string]struct{}, len(paths))
		for _, p := range paths {
			excluded[p] = struct{}{}
		}
		m.exclusionUrlHandler = func(r *http.Request) bool {
			_, ok := excluded[r.URL.Path]
			return ok
		}
		return nil
	}
}

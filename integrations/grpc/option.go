package grpc

import (
	"errors"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

// Option configures the EmailInterceptor.
type Option func(*EmailInterceptor) error

// WithResolver sets the email resolver. Default is a resolver built by
// email.New with no options.
func WithResolver(r *email.Resolver) Option {
	return func(i *EmailInterceptor) error {
		if r == nil {
			return errors.New("resolver cannot be nil")
		}
		i.resolver = r
		return nil
	}
}

// WithClaimsExtractor sets a custom claims extractor. Default reads
// IDTokenMetadataKey, then the "authorization" bearer token.
func WithClaimsExtractor(extractor ClaimsExtractor) Option {
	return func(i *EmailInterceptor) error {
		if extractor == nil {
			return errors.New("claims extractor cannot be nil")
		}
		i.extractor = extractor
		return nil
	}
}

// WithErrorHandler sets a custom error handler function.
// Default is DefaultErrorHandler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(i *EmailInterceptor) error {
		if handler == nil {
			return errors.New("error handler cannot be nil")
		}
		i.errorHandler = handler
		return nil
	}
}

// WithEmailRequired rejects calls for which no email address is found.
//
// Default: false
func WithEmailRequired(required bool) Option {
	return func(i *EmailInterceptor) error {
		i.emailRequired = required
		return nil
	}
}

// WithLogger sets the interceptor logger.
func WithLogger(logger email.Logger) Option {
	return func(i *EmailInterceptor) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		i.logger = logger
		return nil
	}
}

// WithExcludedMethods skips email resolution for the given methods, in the
// format "/package.Service/Method".
func WithExcludedMethods(methods ...string) Option {
	return func(i *EmailInterceptor) error {
		for _, method := range methods {
			i.excludedMethods[method] = true
		}
		return nil
	}
}

package azureb2c

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

// Middleware resolves the signed-in user's email address from request
// claims and makes it available in the request context.
type Middleware struct {
	resolver            *email.Resolver
	extractor           ClaimsExtractor
	errorHandler        ErrorHandler
	emailRequired       bool
	exclusionUrlHandler ExclusionUrlHandler
	logger              email.Logger
}

type contextKey struct{}

// New constructs a Middleware with the supplied options.
func New(opts ...Option) (*Middleware, error) {
	m := &Middleware{}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	if err := m.applyDefaults(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Middleware) applyDefaults() error {
	if m.resolver == nil {
		r, err := email.New()
		if err != nil {
			return fmt.Errorf("failed to create resolver: %w", err)
		}
		m.resolver = r
	}
	if m.extractor == nil {
		m.extractor = MultiClaimsExtractor(
			HeaderClaimsExtractor(AppServiceIDTokenHeader),
			BearerClaimsExtractor,
		)
	}
	if m.errorHandler == nil {
		m.errorHandler = DefaultErrorHandler
	}
	if m.logger == nil {
		m.logger = email.NopLogger{}
	}
	return nil
}

// EmailFromContext returns the result stored by the Middleware.
func EmailFromContext(ctx context.Context) (email.Result, bool) {
	res, ok := ctx.Value(contextKey{}).(email.Result)
	return res, ok
}

// ContextWithEmail returns a copy of ctx carrying res.
func ContextWithEmail(ctx context.Context, res email.Result) context.Context {
	return context.WithValue(ctx, contextKey{}, res)
}

// Excluded reports whether r skips email resolution.
func (m *Middleware) Excluded(r *http.Request) bool {
	return m.exclusionUrlHandler != nil && m.exclusionUrlHandler(r)
}

// Resolve extracts the claims of r and resolves the email address. An
// error is returned when extraction fails, or when the address is required
// and cannot be found.
func (m *Middleware) Resolve(r *http.Request) (email.Result, error) {
	c, err := m.extractor(r)
	if err != nil {
		m.logger.Errorf("failed to extract claims from request %s %s: %v", r.Method, r.URL.Path, err)
		return email.Result{Source: email.SourceNone}, invalidError{details: err}
	}

	if len(c) == 0 {
		if m.emailRequired {
			m.logger.Warnf("no claims on request %s %s", r.Method, r.URL.Path)
			return email.Result{Source: email.SourceNone}, ErrClaimsMissing
		}
		return email.Result{Source: email.SourceNone}, nil
	}

	res := m.resolver.Resolve(r.Context(), c)
	if !res.HasAddress() && m.emailRequired {
		m.logger.Warnf("no email address in claims on request %s %s", r.Method, r.URL.Path)
		return res, ErrEmailNotFound
	}

	return res, nil
}

// Handler wraps next, storing the resolved email.Result in the request
// context. Rejected requests are passed to the error handler instead.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Excluded(r) {
			m.logger.Debugf("skipping email resolution for excluded URL %s", r.URL.Path)
			next.ServeHTTP(w, r)
			return
		}

		res, err := m.Resolve(r)
		if err != nil {
			m.errorHandler(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithEmail(r.Context(), res)))
	})
}

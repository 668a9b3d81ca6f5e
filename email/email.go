// Package email resolves a user's email address from identity provider claims.
//
// Azure AD B2C does not place the address in one predictable claim. Depending
// on the user flow and the federated identity provider it arrives as:
//
//   - "email", a single address;
//   - "emails", a list of every address B2C knows for the user;
//   - inside "idp_access_token", the token issued by the upstream identity
//     provider, as its own "email" or "upn" claim.
//
// Resolve checks these in that order and stops at the first hit. A missing
// address is not an error: the result is simply empty.
//
//	addr := email.Extract(c)
//
// or, with logging and metrics:
//
//	r, err := email.New(
//	    email.WithLogger(email.NewLogrusLogger(logrus.StandardLogger())),
//	    email.WithMetrics(email.NewPrometheusMetrics(nil)),
//	)
//	res := r.Resolve(ctx, c)
//
// The upstream token is decoded without signature verification.
package email

import (
	"context"
	"time"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/claims"
)

// Claim names consulted by the Resolver.
const (
	ClaimEmail          = "email"
	ClaimEmails         = "emails"
	ClaimIdPAccessToken = "idp_access_token"
	ClaimUPN            = "upn"
)

// Source identifies the claim an address was resolved from.
type Source string

const (
	SourceNone          Source = "none"
	SourceEmail         Source = "email"
	SourceEmails        Source = "emails"
	SourceUpstreamEmail Source = "idp_access_token.email"
	SourceUpstreamUPN   Source = "idp_access_token.upn"
)

// Result is the outcome of a resolution.
type Result struct {
	Email  string
	Source Source
}

// Found reports whether any claim matched. A matched claim may still
// carry an empty string.
func (r Result) Found() bool {
	return r.Source != SourceNone
}

// HasAddress reports whether the result carries a non-empty address.
// An empty string means no email was found even when a claim matched.
func (r Result) HasAddress() bool {
	return r.Email != ""
}

// Resolver applies the claim precedence. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	logger  Logger
	metrics Metrics
	tracer  Tracer
}

var defaultResolver = &Resolver{
	logger:  NopLogger{},
	metrics: NoopMetrics{},
	tracer:  NoopTracer{},
}

// New constructs a Resolver with the supplied options.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		logger:  NopLogger{},
		metrics: NoopMetrics{},
		tracer:  NoopTracer{},
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Extract returns the best available email address in c, or "" when
// none of the email bearing claims is usable.
func Extract(c claims.Claims) string {
	return defaultResolver.Resolve(context.Background(), c).Email
}

// Resolve returns the best available email address in c together with
// the claim it came from. It never modifies c.
func (r *Resolver) Resolve(ctx context.Context, c claims.Claims) Result {
	_, span := r.tracer.StartSpan(ctx, "email.Resolve")
	defer span.Finish()

	start := time.Now()
	res := r.resolve(c)

	span.SetTag("b2c.email.source", res.Source)
	r.metrics.IncCounter(MetricResolutions, map[string]string{"source": string(res.Source)})
	r.metrics.ObserveHistogram(MetricResolutionSeconds, time.Since(start).Seconds(), map[string]string{"source": string(res.Source)})

	if res.Found() {
		r.logger.Debugf("email resolved from %s claim", res.Source)
	} else {
		r.logger.Debugf("no email bearing claim found among %d claims", len(c))
	}

	return res
}

func (r *Resolver) resolve(c claims.Claims) Result {
	if v, ok := c.String(ClaimEmail); ok {
		return Result{Email: v, Source: SourceEmail}
	}

	// An empty list must not stop the upstream token from being consulted.
	if v, ok := c.First(ClaimEmails); ok {
		return Result{Email: v, Source: SourceEmails}
	}

	if token, ok := c[ClaimIdPAccessToken].(string); ok {
		return r.resolveUpstream(token)
	}

	return Result{Source: SourceNone}
}

func (r *Resolver) resolveUpstream(token string) Result {
	inner := claims.DecodePayload(token)
	if len(inner) == 0 {
		r.logger.Debugf("%s claim could not be decoded", ClaimIdPAccessToken)
		r.metrics.IncCounter(MetricUpstreamDecodes, map[string]string{"result": "empty"})
		return Result{Source: SourceNone}
	}
	r.metrics.IncCounter(MetricUpstreamDecodes, map[string]string{"result": "decoded"})

	if v, ok := inner.String(ClaimEmail); ok {
		return Result{Email: v, Source: SourceUpstreamEmail}
	}
	if v, ok := inner.String(ClaimUPN); ok {
		return Result{Email: v, Source: SourceUpstreamUPN}
	}

	return Result{Source: SourceNone}
}

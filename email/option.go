package email

import "errors"

// Option configures a Resolver.
// Options return errors to enable validation during construction.
type Option func(*Resolver) error

// WithLogger sets the logger used to report which claim matched.
//
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(r *Resolver) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		r.logger = l
		return nil
	}
}

// WithMetrics sets the metrics sink for resolution counters.
//
// Default: NoopMetrics
func WithMetrics(m Metrics) Option {
	return func(r *Resolver) error {
		if m == nil {
			return errors.New("metrics cannot be nil")
		}
		r.metrics = m
		return nil
	}
}

// WithTracer sets the tracer used to wrap each resolution in a span.
//
// Default: NoopTracer
func WithTracer(t Tracer) Option {
	return func(r *Resolver) error {
		if t == nil {
			return errors.New("tracer cannot be nil")
		}
		r.tracer = t
		return nil
	}
}

package grpc

import (
	"context"

	"google.golang.org/grpc"

	azureb2c "github.com/MatthewWilkes/openid-connect-azure-b2c"
	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

// EmailInterceptor resolves the caller's email address for gRPC servers.
type EmailInterceptor struct {
	resolver        *email.Resolver
	extractor       ClaimsExtractor
	errorHandler    ErrorHandler
	excludedMethods map[string]bool
	emailRequired   bool
	logger          email.Logger
}

// New creates a new EmailInterceptor with the provided options.
func New(opts ...Option) (*EmailInterceptor, error) {
	interceptor := &EmailInterceptor{
		extractor: MultiClaimsExtractor(
			MetadataClaimsExtractor(IDTokenMetadataKey),
			BearerClaimsExtractor,
		),
		errorHandler:    DefaultErrorHandler,
		excludedMethods: make(map[string]bool),
		logger:          email.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(interceptor); err != nil {
			return nil, err
		}
	}

	if interceptor.resolver == nil {
		r, err := email.New(email.WithLogger(interceptor.logger))
		if err != nil {
			return nil, err
		}
		interceptor.resolver = r
	}

	return interceptor, nil
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that stores
// the resolved email.Result in the request context.
func (i *EmailInterceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if i.excludedMethods[info.FullMethod] {
			i.logger.Debugf("skipping email resolution for excluded method %s", info.FullMethod)
			return handler(ctx, req)
		}

		resolvedCtx, err := i.resolveRequest(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}

		return handler(resolvedCtx, req)
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that stores
// the resolved email.Result in the stream context.
func (i *EmailInterceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.excludedMethods[info.FullMethod] {
			i.logger.Debugf("skipping email resolution for excluded method %s", info.FullMethod)
			return handler(srv, ss)
		}

		resolvedCtx, err := i.resolveRequest(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}

		return handler(srv, &wrappedServerStream{
			ServerStream: ss,
			ctx:          resolvedCtx,
		})
	}
}

func (i *EmailInterceptor) resolveRequest(ctx context.Context, method string) (context.Context, error) {
	c, err := i.extractor(ctx)
	if err != nil {
		i.logger.Errorf("failed to extract claims for %s: %v", method, err)
		return ctx, i.errorHandler(err)
	}

	if len(c) == 0 {
		if i.emailRequired {
			i.logger.Warnf("no claims on call %s", method)
			return ctx, i.errorHandler(azureb2c.ErrClaimsMissing)
		}
		return azureb2c.ContextWithEmail(ctx, email.Result{Source: email.SourceNone}), nil
	}

	res := i.resolver.Resolve(ctx, c)
	if !res.HasAddress() && i.emailRequired {
		i.logger.Warnf("no email address in claims on call %s", method)
		return ctx, i.errorHandler(azureb2c.ErrEmailNotFound)
	}

	return azureb2c.ContextWithEmail(ctx, res), nil
}

// wrappedServerStream wraps grpc.ServerStream with a custom context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context carrying the email result.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

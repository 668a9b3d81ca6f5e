package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	azureb2c "github.com/MatthewWilkes/openid-connect-azure-b2c"
)

// ErrorHandler converts interceptor errors to gRPC status errors.
type ErrorHandler func(error) error

// DefaultErrorHandler maps interceptor errors to gRPC status codes.
func DefaultErrorHandler(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrMultipleAuthHeaders),
		errors.Is(err, ErrInvalidAuthFormat),
		errors.Is(err, ErrUnsupportedScheme):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, azureb2c.ErrClaimsMissing):
		return status.Error(codes.Unauthenticated, "missing credentials")
	case errors.Is(err, azureb2c.ErrEmailNotFound):
		return status.Error(codes.PermissionDenied, "no email address found in claims")
	case errors.Is(err, azureb2c.ErrClaimsInvalid):
		return status.Error(codes.InvalidArgument, "claims could not be read")
	default:
		return status.Error(codes.Internal, "something went wrong while resolving the email address")
	}
}

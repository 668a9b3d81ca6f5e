package grpc

import (
	"context"
	"errors"

	azureb2c "github.com/MatthewWilkes/openid-connect-azure-b2c"
	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

// ErrNoEmail is returned by GetEmail when the interceptor did not run for
// the call, e.g. for an excluded method.
var ErrNoEmail = errors.New("no email result found in context")

// GetEmail returns the result stored by the interceptor. A call without an
// email bearing claim yields a result whose HasAddress reports false.
func GetEmail(ctx context.Context) (email.Result, error) {
	res, ok := azureb2c.EmailFromContext(ctx)
	if !ok {
		return email.Result{}, ErrNoEmail
	}
	return res, nil
}

// MustGetEmail returns the result stored by the interceptor or panics.
func MustGetEmail(ctx context.Context) email.Result {
	res, err := GetEmail(ctx)
	if err != nil {
		panic(err)
	}
	return res
}

// HasEmail reports whether the interceptor resolved a non-empty address for
// the call.
func HasEmail(ctx context.Context) bool {
	res, ok := azureb2c.EmailFromContext(ctx)
	return ok && res.HasAddress()
}

package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/claims"
)

// IDTokenMetadataKey carries a raw id_token, mirroring the header Azure App
// Service forwards. gRPC lowercases incoming metadata keys.
const IDTokenMetadataKey = "x-ms-token-aad-id-token"

// ClaimsExtractor reads the caller's claims from gRPC metadata. Absent
// credentials yield nil claims and no error.
type ClaimsExtractor func(ctx context.Context) (claims.Claims, error)

// Extractor errors
var (
	// ErrMultipleAuthHeaders indicates multiple authorization metadata entries were provided.
	ErrMultipleAuthHeaders = errors.New("multiple authorization metadata entries are not allowed")

	// ErrInvalidAuthFormat indicates the authorization metadata format is invalid.
	ErrInvalidAuthFormat = errors.New("invalid authorization metadata format, expected: Bearer <token>")

	// ErrUnsupportedScheme indicates an unsupported authorization scheme was used.
	ErrUnsupportedScheme = errors.New("unsupported authorization scheme, expected: Bearer")
)

// BearerClaimsExtractor decodes the payload of the token in the
// "authorization" metadata entry.
func BearerClaimsExtractor(ctx context.Context) (claims.Claims, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, nil
	}

	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return nil, nil
	}
	if len(authHeaders) > 1 {
		return nil, ErrMultipleAuthHeaders
	}

	parts := strings.Fields(authHeaders[0])
	if len(parts) != 2 {
		return nil, ErrInvalidAuthFormat
	}
	if !strings.EqualFold(parts[0], "bearer") {
		return nil, ErrUnsupportedScheme
	}

	return claims.DecodePayload(parts[1]), nil
}

// MetadataClaimsExtractor returns a ClaimsExtractor that decodes the raw
// token in the named metadata entry.
func MetadataClaimsExtractor(key string) ClaimsExtractor {
	key = strings.ToLower(key)
	return func(ctx context.Context) (claims.Claims, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, nil
		}

		values := md.Get(key)
		if len(values) == 0 {
			return nil, nil
		}
		if len(values) > 1 {
			return nil, ErrMultipleAuthHeaders
		}

		token := strings.TrimSpace(values[0])
		if token == "" {
			return nil, nil
		}
		return claims.DecodePayload(token), nil
	}
}

// MultiClaimsExtractor runs extractors in order and returns the first
// non-empty claims. The first error is returned immediately.
func MultiClaimsExtractor(extractors ...ClaimsExtractor) ClaimsExtractor {
	return func(ctx context.Context) (claims.Claims, error) {
		for _, ex := range extractors {
			c, err := ex(ctx)
			if err != nil {
				return nil, err
			}
			if len(c) > 0 {
				return c, nil
			}
		}
		return nil, nil
	}
}

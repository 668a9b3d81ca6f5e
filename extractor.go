package azureb2c

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/claims"
)

// AppServiceIDTokenHeader is the header in which Azure App Service
// authentication forwards the signed-in user's id_token.
const AppServiceIDTokenHeader = "X-MS-TOKEN-AAD-ID-TOKEN"

// ClaimsExtractor reads the claims of the signed-in user from a request.
// An error should only be returned when credentials are present but
// malformed; absent credentials yield nil claims and no error.
//
// Extractors decode tokens without verifying them. The Middleware is meant
// to run behind a layer that has already authenticated the request.
type ClaimsExtractor func(r *http.Request) (claims.Claims, error)

// BearerClaimsExtractor decodes the payload of the token in the
// Authorization header.
func BearerClaimsExtractor(r *http.Request) (claims.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	authHeaderParts := strings.Fields(authHeader)
	if len(authHeaderParts) != 2 || !strings.EqualFold(authHeaderParts[0], "bearer") {
		return nil, errors.New("authorization header format must be Bearer {token}")
	}

	return claims.DecodePayload(authHeaderParts[1]), nil
}

// HeaderClaimsExtractor returns a ClaimsExtractor that decodes the payload
// of the raw token in the named header, e.g. AppServiceIDTokenHeader.
func HeaderClaimsExtractor(name string) ClaimsExtractor {
	return func(r *http.Request) (claims.Claims, error) {
		token := strings.TrimSpace(r.Header.Get(name))
		if token == "" {
			return nil, nil
		}
		return claims.DecodePayload(token), nil
	}
}

// MultiClaimsExtractor runs extractors in order and returns the first
// non-empty claims. The first error is returned immediately.
func MultiClaimsExtractor(extractors ...ClaimsExtractor) ClaimsExtractor {
	return func(r *http.Request) (claims.Claims, error) {
		for _, ex := range extractors {
			c, err := ex(r)
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

/*
Package azureb2c resolves the email address of users signed in through
Azure AD B2C.

B2C is inconsistent about where it puts the address: a single "email" claim,
an "emails" list, or only inside "idp_access_token", the token of the
federated identity provider, as "email" or "upn". The email package applies
that precedence; this package is the HTTP transport adapter around it.

# Quick Start

	import (
	    azureb2c "github.com/MatthewWilkes/openid-connect-azure-b2c"
	)

	func main() {
	    mw, err := azureb2c.New(
	        azureb2c.WithEmailRequired(true),
	    )
	    if err != nil {
	        log.Fatal(err)
	    }

	    handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	        res, _ := azureb2c.EmailFromContext(r.Context())
	        fmt.Fprintf(w, "hello %s", res.Email)
	    })

	    http.ListenAndServe(":8080", mw.Handler(handler))
	}

# Claims Extraction

By default claims are read from the App Service authentication header
(X-MS-TOKEN-AAD-ID-TOKEN) and then from the Authorization bearer token.
Tokens are decoded, not verified: put the Middleware behind whatever
authenticates the request. Use WithClaimsExtractor to read claims from
somewhere else, for example a session.

# Error Handling

With WithEmailRequired(true), requests without claims fail with
ErrClaimsMissing and requests whose claims carry no address fail with
ErrEmailNotFound; both map to 401 in DefaultErrorHandler. Extractor failures
are reported as ErrClaimsInvalid (400).

An email claim holding an empty string counts as no address.

Without it, every request continues and handlers check Result.HasAddress.

# Frameworks

See framework/gin and framework/echo for adapters built on the same
Middleware, and integrations/grpc for gRPC server interceptors.
*/
package azureb2c

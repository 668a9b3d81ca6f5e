package azureb2c

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrClaimsMissing is returned when no claims could be found on a request
	// that requires an email address.
	ErrClaimsMissing = errors.New("claims missing")

	// ErrClaimsInvalid is returned when the claims extractor fails.
	ErrClaimsInvalid = errors.New("claims invalid")

	// ErrEmailNotFound is returned when claims are present but none of them
	// carries an email address, and an email address is required.
	ErrEmailNotFound = errors.New("email not found")
)

// ErrorHandler is called when the Middleware rejects a request. err can be
// checked against ErrClaimsMissing, ErrClaimsInvalid and ErrEmailNotFound.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ErrorResponse maps a Middleware error to an HTTP status and message. It is
// used by DefaultErrorHandler and by the framework adapters.
func ErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, ErrClaimsInvalid):
		return http.StatusBadRequest, "Claims could not be read."
	case errors.Is(err, ErrClaimsMissing):
		return http.StatusUnauthorized, "Claims are missing."
	case errors.Is(err, ErrEmailNotFound):
		return http.StatusUnauthorized, "No email address found in claims."
	default:
		return http.StatusInternalServerError, "Something went wrong while resolving the email address."
	}
}

// DefaultErrorHandler writes a JSON body with the status from ErrorResponse.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status, message := ErrorResponse(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// invalidError wraps an extractor error with ErrClaimsInvalid.
type invalidError struct {
	details error
}

// Is allows the error to support equality to ErrClaimsInvalid.
func (e invalidError) Is(target error) bool {
	return target == ErrClaimsInvalid
}

func (e invalidError) Error() string {
	return fmt.Sprintf("%s: %s", ErrClaimsInvalid, e.details)
}

// Unwrap allows the error to support equality to the underlying error.
func (e invalidError) Unwrap() error {
	return e.details
}

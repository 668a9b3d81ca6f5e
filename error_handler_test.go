package azureb2c

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_invalidError(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err := invalidError{details: errors.New("error details")}

		assert.ErrorIs(t, err, ErrClaimsInvalid)
	})

	t.Run("Error", func(t *testing.T) {
		err := invalidError{details: errors.New("error details")}

		assert.Equal(t, "claims invalid: error details", err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		expectedErr := errors.New("expected err")
		err := invalidError{details: expectedErr}

		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestDefaultErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ErrClaimsMissing",
			err:        ErrClaimsMissing,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Claims are missing."}`,
		},
		{
			name:       "ErrEmailNotFound",
			err:        ErrEmailNotFound,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"No email address found in claims."}`,
		},
		{
			name:       "wrapped ErrClaimsInvalid",
			err:        fmt.Errorf("outer: %w", invalidError{details: errors.New("bad header")}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Claims could not be read."}`,
		},
		{
			name:       "anything else",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Something went wrong while resolving the email address."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			DefaultErrorHandler(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

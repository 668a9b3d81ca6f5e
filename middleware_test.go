package azureb2c

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

func testToken(t *testing.T, c map[string]any) string {
	t.Helper()

	token := jwt.New()
	for k, v := range c {
		require.NoError(t, token.Set(k, v))
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte("a")))
	require.NoError(t, err)

	return string(signed)
}

var echoResult = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	res, ok := EmailFromContext(r.Context())
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"in_context": ok,
		"email":      res.Email,
		"source":     res.Source,
	})
})

func Test_Middleware(t *testing.T) {
	upstream := testToken(t, map[string]any{"upn": "jo@contoso.com"})

	testCases := []struct {
		name           string
		options        []Option
		method         string
		path           string
		headers        map[string]string
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "email from the App Service header",
			headers: map[string]string{
				AppServiceIDTokenHeader: testToken(t, map[string]any{"email": "foo@example.com"}),
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"email":"foo@example.com","in_context":true,"source":"email"}`,
		},
		{
			name: "App Service header is preferred to the bearer token",
			headers: map[string]string{
				AppServiceIDTokenHeader: testToken(t, map[string]any{"emails": []any{"a@example.com"}}),
				"Authorization":         "Bearer " + testToken(t, map[string]any{"email": "b@example.com"}),
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"email":"a@example.com","in_context":true,"source":"emails"}`,
		},
		{
			name: "upstream token inside the bearer token",
			headers: map[string]string{
				"Authorization": "Bearer " + testToken(t, map[string]any{"emails": []any{}, "idp_access_token": upstream}),
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"email":"jo@contoso.com","in_context":true,"source":"idp_access_token.upn"}`,
		},
		{
			name:           "no claims and email optional",
			wantStatusCode: http.StatusOK,
			wantBody:       `{"email":"","in_context":true,"source":"none"}`,
		},
		{
			name:           "no claims and email required",
			options:        []Option{WithEmailRequired(true)},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"message":"Claims are missing."}`,
		},
		{
			name:    "claims without email and email required",
			options: []Option{WithEmailRequired(true)},
			headers: map[string]string{
				"Authorization": "Bearer " + testToken(t, map[string]any{"sub": "abc"}),
			},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"message":"No email address found in claims."}`,
		},
		{
			name:    "empty email claim and email required",
			options: []Option{WithEmailRequired(true)},
			headers: map[string]string{
				"Authorization": "Bearer " + testToken(t, map[string]any{"email": "", "emails": []any{"foo@example.com"}}),
			},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"message":"No email address found in claims."}`,
		},
		{
			name: "empty email claim and email optional",
			headers: map[string]string{
				"Authorization": "Bearer " + testToken(t, map[string]any{"email": ""}),
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"email":"","in_context":true,"source":"email"}`,
		},
		{
			name: "malformed authorization header",
			headers: map[string]string{
				"Authorization": "Basic dXNlcjpwYXNz",
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"message":"Claims could not be read."}`,
		},
		{
			name:           "excluded path",
			options:        []Option{WithEmailRequired(true), WithExclusionUrls([]string{"/health"})},
			path:           "/health",
			wantStatusCode: http.StatusOK,
			wantBody:       `{"email":"","in_context":false,"source":""}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mw, err := New(tc.options...)
			require.NoError(t, err)

			server := httptest.NewServer(mw.Handler(echoResult))
			defer server.Close()

			method := tc.method
			if method == "" {
				method = http.MethodGet
			}

			req, err := http.NewRequest(method, server.URL+tc.path, nil)
			require.NoError(t, err)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			res, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatusCode, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
			assert.JSONEq(t, tc.wantBody, string(body))
		})
	}
}

func Test_Middleware_CustomErrorHandler(t *testing.T) {
	var gotErr error
	mw, err := New(
		WithEmailRequired(true),
		WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			gotErr = err
			w.WriteHeader(http.StatusTeapot)
		}),
	)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	mw.Handler(echoResult).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.ErrorIs(t, gotErr, ErrClaimsMissing)
}

func Test_Middleware_Resolve(t *testing.T) {
	resolver, err := email.New()
	require.NoError(t, err)

	mw, err := New(WithResolver(resolver))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, map[string]any{"email": "foo@example.com"}))

	res, err := mw.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, email.Result{Email: "foo@example.com", Source: email.SourceEmail}, res)
}

func Test_ContextWithEmail(t *testing.T) {
	_, ok := EmailFromContext(context.Background())
	assert.False(t, ok)

	want := email.Result{Email: "foo@example.com", Source: email.SourceEmail}
	got, ok := EmailFromContext(ContextWithEmail(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerClaimsExtractor(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		c, err := BearerClaimsExtractor(incomingContext("authorization", "Bearer "+upstreamUPNToken))
		require.NoError(t, err)
		assert.Equal(t, "other@example.com", c["upn"])
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		c, err := BearerClaimsExtractor(incomingContext("authorization", "bearer "+upstreamUPNToken))
		require.NoError(t, err)
		assert.Equal(t, "other@example.com", c["upn"])
	})

	t.Run("no metadata", func(t *testing.T) {
		c, err := BearerClaimsExtractor(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("no authorization entry", func(t *testing.T) {
		c, err := BearerClaimsExtractor(incomingContext("other-header", "value"))
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("malformed token decodes to empty claims", func(t *testing.T) {
		c, err := BearerClaimsExtractor(incomingContext("authorization", "Bearer not-a-token"))
		assert.NoError(t, err)
		assert.Empty(t, c)
	})

	tests := []struct {
		name    string
		kv      []string
		wantErr error
	}{
		{
			name:    "multiple entries",
			kv:      []string{"authorization", "Bearer token1", "authorization", "Bearer token2"},
			wantErr: ErrMultipleAuthHeaders,
		},
		{
			name:    "no scheme",
			kv:      []string{"authorization", "token123"},
			wantErr: ErrInvalidAuthFormat,
		},
		{
			name:    "only scheme",
			kv:      []string{"authorization", "Bearer"},
			wantErr: ErrInvalidAuthFormat,
		},
		{
			name:    "too many parts",
			kv:      []string{"authorization", "Bearer token extra"},
			wantErr: ErrInvalidAuthFormat,
		},
		{
			name:    "basic scheme",
			kv:      []string{"authorization", "Basic dXNlcjpwYXNz"},
			wantErr: ErrUnsupportedScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := BearerClaimsExtractor(incomingContext(tt.kv...))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, c)
		})
	}
}

func TestMetadataClaimsExtractor(t *testing.T) {
	extractor := MetadataClaimsExtractor("X-MS-TOKEN-AAD-ID-TOKEN")

	t.Run("valid token", func(t *testing.T) {
		c, err := extractor(incomingContext(IDTokenMetadataKey, testToken(`{"email":"foo@example.com"}`)))
		require.NoError(t, err)
		assert.Equal(t, "foo@example.com", c["email"])
	})

	t.Run("blank entry", func(t *testing.T) {
		c, err := extractor(incomingContext(IDTokenMetadataKey, "  "))
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("no metadata", func(t *testing.T) {
		c, err := extractor(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("multiple entries", func(t *testing.T) {
		_, err := extractor(incomingContext(IDTokenMetadataKey, "a", IDTokenMetadataKey, "b"))
		assert.ErrorIs(t, err, ErrMultipleAuthHeaders)
	})
}

func TestMultiClaimsExtractor(t *testing.T) {
	extractor := MultiClaimsExtractor(MetadataClaimsExtractor(IDTokenMetadataKey), BearerClaimsExtractor)

	t.Run("first non-empty wins", func(t *testing.T) {
		ctx := incomingContext(
			IDTokenMetadataKey, testToken(`{"email":"id@example.com"}`),
			"authorization", "Bearer "+upstreamUPNToken,
		)

		c, err := extractor(ctx)
		require.NoError(t, err)
		assert.Equal(t, "id@example.com", c["email"])
	})

	t.Run("falls back to the bearer token", func(t *testing.T) {
		c, err := extractor(incomingContext("authorization", "Bearer "+upstreamUPNToken))
		require.NoError(t, err)
		assert.Equal(t, "other@example.com", c["upn"])
	})

	t.Run("errors stop the chain", func(t *testing.T) {
		_, err := extractor(incomingContext("authorization", "Basic abc"))
		assert.ErrorIs(t, err, ErrUnsupportedScheme)
	})

	t.Run("nothing found", func(t *testing.T) {
		c, err := extractor(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, c)
	})
}

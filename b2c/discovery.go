package b2c

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Metadata is the subset of the OpenID Connect discovery document
// used by this package.
type Metadata struct {
	Issuer                string   `json:"issuer"`
	AuthorizationEndpoint string   `json:"authorization_endpoint"`
	TokenEndpoint         string   `json:"token_endpoint"`
	EndSessionEndpoint    string   `json:"end_session_endpoint"`
	UserInfoEndpoint      string   `json:"userinfo_endpoint,omitempty"`
	JWKSURI               string   `json:"jwks_uri"`
	ScopesSupported       []string `json:"scopes_supported,omitempty"`
	ClaimsSupported       []string `json:"claims_supported,omitempty"`
}

// Endpoints converts the discovered metadata into Endpoints.
func (m *Metadata) Endpoints() Endpoints {
	return Endpoints{
		Authorization: m.AuthorizationEndpoint,
		Token:         m.TokenEndpoint,
		UserInfo:      m.UserInfoEndpoint,
		EndSession:    m.EndSessionEndpoint,
	}
}

// Discover fetches and decodes the discovery document at wellKnownURL.
func Discover(ctx context.Context, client *http.Client, wellKnownURL string) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wellKnownURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request to get well known endpoints: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch well-known endpoints from %s: %w", wellKnownURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d fetching well-known endpoints from %s", resp.StatusCode, wellKnownURL)
	}

	var md Metadata
	if err := json.NewDecoder(resp.Body).Decode(&md); err != nil {
		return nil, fmt.Errorf("could not decode json body when getting well known endpoints: %w", err)
	}

	return &md, nil
}

// Discover fetches the discovery document of the configured user flow.
func (p *Provider) Discover(ctx context.Context) (*Metadata, error) {
	return Discover(ctx, p.httpClient, p.cfg.WellKnownURL())
}

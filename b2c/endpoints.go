package b2c

import (
	"fmt"
	"net/url"
)

// Endpoints are the OAuth 2.0 / OpenID Connect endpoints of a user flow.
// UserInfo is empty: B2C user flows do not expose a userinfo endpoint, so
// claims come from the id_token instead.
type Endpoints struct {
	Authorization string `json:"authorization"`
	Token         string `json:"token"`
	UserInfo      string `json:"userinfo"`
	EndSession    string `json:"end_session"`
}

func (c Configuration) baseURL() string {
	return fmt.Sprintf("https://%s.b2clogin.com/%s.onmicrosoft.com", c.Tenant, c.Tenant)
}

func (c Configuration) oauthURL(action string) string {
	return c.baseURL() + "/oauth2/v2.0/" + action + "?p=" + url.QueryEscape(c.Flow)
}

// Endpoints returns the endpoint URLs for the configured tenant and flow.
func (c Configuration) Endpoints() Endpoints {
	return Endpoints{
		Authorization: c.oauthURL("authorize"),
		Token:         c.oauthURL("token"),
		UserInfo:      "",
		EndSession:    c.oauthURL("logout"),
	}
}

// WellKnownURL returns the OpenID Connect discovery document URL of the flow.
func (c Configuration) WellKnownURL() string {
	return c.baseURL() + "/" + url.PathEscape(c.Flow) + "/v2.0/.well-known/openid-configuration"
}

package b2c

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfiguration_Endpoints(t *testing.T) {
	cfg := Configuration{Tenant: "contoso", Flow: "B2C_1_signupsignin"}

	want := Endpoints{
		Authorization: "https://contoso.b2clogin.com/contoso.onmicrosoft.com/oauth2/v2.0/authorize?p=B2C_1_signupsignin",
		Token:         "https://contoso.b2clogin.com/contoso.onmicrosoft.com/oauth2/v2.0/token?p=B2C_1_signupsignin",
		UserInfo:      "",
		EndSession:    "https://contoso.b2clogin.com/contoso.onmicrosoft.com/oauth2/v2.0/logout?p=B2C_1_signupsignin",
	}
	assert.Equal(t, want, cfg.Endpoints())
}

func TestConfiguration_EndpointsEscapeFlow(t *testing.T) {
	cfg := Configuration{Tenant: "contoso", Flow: "B2C_1 a&b"}

	assert.Equal(t,
		"https://contoso.b2clogin.com/contoso.onmicrosoft.com/oauth2/v2.0/token?p=B2C_1+a%26b",
		cfg.Endpoints().Token,
	)
}

func TestConfiguration_WellKnownURL(t *testing.T) {
	cfg := Configuration{Tenant: "contoso", Flow: "B2C_1_signupsignin"}

	assert.Equal(t,
		"https://contoso.b2clogin.com/contoso.onmicrosoft.com/B2C_1_signupsignin/v2.0/.well-known/openid-configuration",
		cfg.WellKnownURL(),
	)
}

package b2c

import (
	"regexp"
	"slices"
)

// DefaultFlow is the placeholder user flow of a fresh configuration.
const DefaultFlow = "b2c_1_flow_name"

var tenantPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Configuration selects the B2C tenant and user flow to sign in against.
type Configuration struct {
	// Tenant is the B2C directory name, the "contoso" in
	// contoso.onmicrosoft.com.
	Tenant string `json:"tenant" mapstructure:"tenant"`

	// Flow is the user flow or custom policy name, e.g. "B2C_1_signupsignin".
	Flow string `json:"flow" mapstructure:"flow"`

	// Scopes requested during authorization.
	Scopes []string `json:"scopes" mapstructure:"scopes"`
}

// DefaultConfiguration returns the configuration a new client starts from.
func DefaultConfiguration() Configuration {
	return Configuration{
		Tenant: "",
		Flow:   DefaultFlow,
		Scopes: []string{"openid", "email", "profile"},
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c Configuration) Validate() error {
	switch {
	case c.Tenant == "":
		return newConfigError(FieldTenant, ErrorCodeTenantMissing, "tenant is required")
	case !tenantPattern.MatchString(c.Tenant):
		return newConfigError(FieldTenant, ErrorCodeTenantInvalid, "tenant must contain only letters, digits and hyphens")
	case c.Flow == "":
		return newConfigError(FieldFlow, ErrorCodeFlowMissing, "flow is required")
	case len(c.Scopes) == 0:
		return newConfigError(FieldScopes, ErrorCodeScopesMissing, "at least one scope is required")
	}
	return nil
}

func (c Configuration) clone() Configuration {
	c.Scopes = slices.Clone(c.Scopes)
	return c
}

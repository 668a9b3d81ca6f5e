package b2c

import "strings"

// Form field names. They double as keys for Submit.
const (
	FieldTenant = "tenant"
	FieldFlow   = "flow"
	FieldScopes = "scopes"
)

// FormField describes one input of the provider settings form.
type FormField struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default"`
}

// BuildForm returns the settings form pre-filled with c.
func (c Configuration) BuildForm() []FormField {
	return []FormField{
		{
			Name:    FieldTenant,
			Title:   "Name of the B2C tenant",
			Type:    "textfield",
			Default: c.Tenant,
		},
		{
			Name:    FieldFlow,
			Title:   "Name of the B2C flow",
			Type:    "textfield",
			Default: c.Flow,
		},
		{
			Name:        FieldScopes,
			Title:       "Scopes",
			Type:        "textfield",
			Description: "Custom scopes, separated by spaces, for example: openid email",
			Default:     FormatScopes(c.Scopes),
		},
	}
}

// Submit applies submitted form values. Tenant and flow are replaced when
// present; scopes only when the submitted list is not blank, so clearing
// the field keeps the current scopes.
func (c *Configuration) Submit(values map[string]string) {
	if v, ok := values[FieldTenant]; ok {
		c.Tenant = strings.TrimSpace(v)
	}
	if v, ok := values[FieldFlow]; ok {
		c.Flow = strings.TrimSpace(v)
	}
	if scopes := ParseScopes(values[FieldScopes]); len(scopes) > 0 {
		c.Scopes = scopes
	}
}

package b2c

import "errors"

// Sentinel errors for the B2C provider.
var (
	// ErrConfigInvalid matches every *ConfigError via errors.Is.
	ErrConfigInvalid = errors.New("b2c configuration invalid")

	// ErrIDTokenMissing is returned when a token response carries no id_token.
	ErrIDTokenMissing = errors.New("token response did not include an id_token")
)

// Configuration error codes.
const (
	ErrorCodeTenantMissing = "tenant_missing"
	ErrorCodeTenantInvalid = "tenant_invalid"
	ErrorCodeFlowMissing   = "flow_missing"
	ErrorCodeScopesMissing = "scopes_missing"
)

// ConfigError describes a single invalid configuration field.
type ConfigError struct {
	// Field is the configuration key, e.g. "tenant".
	Field string

	// Code is a machine-readable error code, e.g. "tenant_missing".
	Code string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Message
}

// Is allows the error to be compared with ErrConfigInvalid.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigInvalid
}

func newConfigError(field, code, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Code:    code,
		Message: message,
	}
}

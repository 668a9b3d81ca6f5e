package b2c

import "strings"

// FormatScopes renders scopes as the space separated list used in
// configuration forms and in the OAuth scope parameter.
func FormatScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}

// ParseScopes splits a space separated scope list. Repeated whitespace
// does not produce empty scopes.
func ParseScopes(s string) []string {
	return strings.Fields(s)
}

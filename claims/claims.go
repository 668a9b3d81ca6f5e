// Package claims holds the loosely typed claims mapping returned by an identity
// provider and the decoder for claims carried inside a compact token.
package claims

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNotObject is returned by Parse when the document is valid JSON
// but not a JSON object.
var ErrNotObject = errors.New("claims document is not a JSON object")

// Claims maps a claim name to its decoded JSON value. Values are one of
// string, json.Number, bool, nil, map[string]any or []any. Claims built in
// Go may also hold Go numbers and []string.
//
// Claims is treated as read-only by everything in this module.
type Claims map[string]any

// Parse decodes a JSON object document, such as a userinfo or token
// endpoint response body, into Claims.
func Parse(data []byte) (Claims, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode claims: %w", err)
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	return Claims(m), nil
}

// Lookup returns the raw value stored under name.
func (c Claims) Lookup(name string) (any, bool) {
	v, ok := c[name]
	return v, ok
}

// String returns the value stored under name coerced to a string.
// It reports false when the claim is absent or not a scalar.
func (c Claims) String(name string) (string, bool) {
	v, ok := c[name]
	if !ok {
		return "", false
	}
	return Stringify(v)
}

// First returns the first element of the sequence stored under name,
// coerced to a string. Both decoded JSON arrays ([]any) and []string are
// accepted. Empty sequences and non-sequence values report false.
func (c Claims) First(name string) (string, bool) {
	switch list := c[name].(type) {
	case []any:
		if len(list) == 0 {
			return "", false
		}
		return Stringify(list[0])
	case []string:
		if len(list) == 0 {
			return "", false
		}
		return list[0], true
	default:
		return "", false
	}
}

// Stringify coerces a scalar claim value to its string form.
// Null, objects and arrays are not scalars and report false.
func Stringify(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// Trailing data after the first value makes the document invalid.
	if len(bytes.TrimSpace(data[dec.InputOffset():])) != 0 {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

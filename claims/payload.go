package claims

import (
	"encoding/base64"
	"strings"
)

// segmentCount is the number of dot separated segments in a compact token:
// header, payload and signature.
const segmentCount = 3

var urlSafeReplacer = strings.NewReplacer("-", "+", "_", "/")

// DecodePayload returns the claims carried in the payload segment of a
// compact token. The header and signature segments are not inspected and
// the signature is not verified.
//
// A token that does not have exactly three segments, or whose payload is
// not base64 encoded JSON object, yields empty Claims. DecodePayload never
// returns nil.
func DecodePayload(token string) Claims {
	if strings.Count(token, ".") != segmentCount-1 {
		return Claims{}
	}
	parts := strings.SplitN(token, ".", segmentCount)

	// Accept both padded and unpadded payloads.
	payload := strings.TrimRight(urlSafeReplacer.Replace(parts[1]), "=")
	raw, err := base64.RawStdEncoding.DecodeString(payload)
	if err != nil {
		return Claims{}
	}

	v, err := decodeJSON(raw)
	if err != nil {
		return Claims{}
	}

	m, ok := v.(map[string]any)
	if !ok {
		return Claims{}
	}
	return Claims(m)
}

package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Payload defines a public type used by Planner session APIs.
//
// Payload instances are intended to be treated as immutable snapshots of a
// single decode; recompute them from the raw token rather than caching.
type Payload struct {
	Expiry    int64
	HasExpiry bool
}

type rawClaims struct {
	Exp *float64 `json:"exp"`
}

// DecodePayload describes the decodepayload operation and its observable behavior.
//
// DecodePayload splits raw into its dot-separated segments, recovers the
// second segment from its URL-safe base64 form, and parses it as JSON. Any
// failure at any step yields ok == false; DecodePayload never returns an
// error and never panics, regardless of input.
func DecodePayload(raw string) (Payload, bool) {
	segments := strings.Split(raw, ".")
	if len(segments) < 2 {
		return Payload{}, false
	}

	encoded := strings.ReplaceAll(segments[1], "-", "+")
	encoded = strings.ReplaceAll(encoded, "_", "/")
	if padding := len(encoded) % 4; padding != 0 {
		encoded += strings.Repeat("=", 4-padding)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Payload{}, false
	}

	var claims rawClaims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return Payload{}, false
	}

	if claims.Exp == nil {
		return Payload{HasExpiry: false}, true
	}

	return Payload{Expiry: int64(*claims.Exp), HasExpiry: true}, true
}

// ExpiresAt describes the expiresat operation and its observable behavior.
//
// ExpiresAt returns the expiry claim as a wall-clock time, or false when the
// payload carries no expiry claim.
func (p Payload) ExpiresAt() (time.Time, bool) {
	if !p.HasExpiry {
		return time.Time{}, false
	}
	return time.Unix(p.Expiry, 0).UTC(), true
}

// Expired describes the expired operation and its observable behavior.
//
// Expired reports whether raw should be treated as expired at now, at second
// resolution. Missing payloads and missing expiry claims count as expired, as
// does an expiry exactly equal to now. Expired is total over its input domain.
func Expired(raw string, now time.Time) bool {
	payload, ok := DecodePayload(raw)
	if !ok || !payload.HasExpiry {
		return true
	}
	return now.Unix() >= payload.Expiry
}

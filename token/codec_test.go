package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return signed
}

func mintTokenWithoutExpiry(t *testing.T) string {
	t.Helper()

	claims := jwt.RegisteredClaims{Subject: "user-1"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return signed
}

func TestDecodePayloadRoundTrip(t *testing.T) {
	expires := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	raw := mintToken(t, expires)

	payload, ok := DecodePayload(raw)
	if !ok {
		t.Fatal("expected decodable payload")
	}
	if !payload.HasExpiry {
		t.Fatal("expected expiry claim")
	}
	if payload.Expiry != expires.Unix() {
		t.Fatalf("expiry = %d, want %d", payload.Expiry, expires.Unix())
	}

	at, ok := payload.ExpiresAt()
	if !ok {
		t.Fatal("expected ExpiresAt to report a time")
	}
	if !at.Equal(time.Unix(expires.Unix(), 0)) {
		t.Fatalf("ExpiresAt = %v, want %v", at, expires)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "single segment", raw: "justheader"},
		{name: "bad base64", raw: "header.!!!not-base64!!!.sig"},
		{name: "payload not json", raw: "header." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".sig"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := DecodePayload(tc.raw); ok {
				t.Fatalf("DecodePayload(%q) ok = true, want false", tc.raw)
			}
		})
	}
}

func TestDecodePayloadNoExpiryClaim(t *testing.T) {
	payload, ok := DecodePayload(mintTokenWithoutExpiry(t))
	if !ok {
		t.Fatal("expected decodable payload")
	}
	if payload.HasExpiry {
		t.Fatal("expected no expiry claim")
	}
	if _, ok := payload.ExpiresAt(); ok {
		t.Fatal("ExpiresAt should report false without an expiry claim")
	}
}

func TestExpiredBoundaries(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "future expiry", raw: mintToken(t, now.Add(10*time.Minute)), want: false},
		{name: "past expiry", raw: mintToken(t, now.Add(-time.Minute)), want: true},
		{name: "expiry equals now", raw: mintToken(t, now), want: true},
		{name: "no expiry claim", raw: mintTokenWithoutExpiry(t), want: true},
		{name: "malformed", raw: "garbage", want: true},
		{name: "empty", raw: "", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Expired(tc.raw, now); got != tc.want {
				t.Fatalf("Expired = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecodePayloadURLSafeAlphabet(t *testing.T) {
	// Payload chosen so its base64 form contains '-' and '_' characters.
	payload := []byte(`{"exp": 1700000000, "note": "????>>>"}`)
	encoded := base64.RawURLEncoding.EncodeToString(payload)

	decoded, ok := DecodePayload("h." + encoded + ".s")
	if !ok {
		t.Fatal("expected decodable payload")
	}
	if !decoded.HasExpiry || decoded.Expiry != 1_700_000_000 {
		t.Fatalf("payload = %+v, want expiry 1700000000", decoded)
	}
}

// Package token decodes the payload segment of compact dot-separated bearer tokens
// without verifying their signature, exposing only the expiry claim.
//
// # Trust model
//
// Decoded claims are a client-side hint. Nothing in this package checks a
// signature, an issuer, or an audience; any server consuming the same token
// must re-validate it independently.
//
// # Architecture boundaries
//
// This package owns the segment split, base64 recovery, and claim extraction.
// It does NOT decide whether a session is authenticated — that responsibility
// belongs to the Client and the route guard.
//
// # What this package must NOT do
//
//   - Return errors or panic on malformed input (absent payload is the only failure shape).
//   - Verify cryptographic signatures.
//   - Import planner or any sibling package (no upward imports).
package token

// Package idle implements the scoped idle/expiry watcher that guards a mounted
// protected view: a single idle timer reset by user-activity signals, a
// periodic token-expiry re-check, and a forced logout when either trips.
//
// # Lifecycle
//
// A [Watcher] is created per protected view, started on mount, and stopped on
// unmount. Start checks expiry immediately and refuses to run an already-dead
// session. Stop tears the watcher down synchronously: when it returns, no
// further logout can fire against stale state.
//
// # Timer discipline
//
// Exactly one idle timer is pending per running watcher. Every activity
// signal re-checks token expiry and then replaces the pending timer; the
// replacement cancels the prior timer before scheduling the next one.
//
// # Architecture boundaries
//
// This package owns timing and teardown. It does NOT read the credential
// store directly or know about routes — the token supplier and logout action
// are injected by the Client.
//
// # What this package must NOT do
//
//   - Block a caller of Activity or Visible (signals are coalesced, never queued).
//   - Let an error escape its boundary (a failing token supplier reads as "no token").
//   - Import planner or any sibling package (no upward imports).
package idle

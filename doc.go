// Package planner provides the session-lifecycle core of a task-planning
// client: credential storage, fail-closed token expiry evaluation, a
// protected-navigation guard, an idle/expiry watcher, and post-login
// redirect resolution.
//
// The package is designed for concurrent use: Client methods are safe to
// call from multiple goroutines after initialization through [Builder.Build].
//
// # Trust model
//
// The access token is never cryptographically verified here. Its payload is
// decoded only to read the expiry claim, and every failure mode — missing
// token, malformed token, absent claim — reads as "expired". Real
// authorization belongs to the backend; the guard only decides what to
// render and where to redirect.
//
// # Architecture boundaries
//
// planner is the public surface. It exposes [Client], [Builder], [Config],
// and value types (Verdict, SessionSnapshot, MetricsSnapshot). Token
// decoding, route classification, credential storage, and the idle watcher
// live in sub-packages and never import planner back.
//
// # What this package must NOT do
//
//   - Verify token signatures or refresh tokens against the backend.
//   - Leave the credential store partially cleared (the four keys live and
//     die together).
//   - Perform I/O outside of Client methods (construction via Builder is
//     allocation-only until Build).
package planner

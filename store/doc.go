// Package store provides the shared, persistent credential store backing the
// Planner session client: access token, refresh token, serialized user record,
// and last visited protected path.
//
// # Components
//
//   - [Store] — key-value interface over the four session keys.
//   - [Memory] — in-process backend; the default for single-shell use and tests.
//   - [Redis] — go-redis backend for state that must survive restarts and be
//     shared across tabs or processes.
//
// # Consistency
//
// The store is shared mutable state touched by login, logout, the idle
// watcher, and route tracking — potentially from independent actors. There is
// no locking across consumers; callers must re-read values fresh on every
// decision rather than cache them.
//
// # Architecture boundaries
//
// This package owns persistence only. It does NOT interpret tokens, evaluate
// expiry, or decide routing — those responsibilities belong to the Client.
//
// # What this package must NOT do
//
//   - Clear a subset of the session keys (all four leave together).
//   - Import planner or any sibling package (no upward imports).
package store

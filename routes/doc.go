// Package routes maps logical page sections to URL paths and carries the role
// allow-lists the navigation guard enforces on protected views.
//
// # Components
//
//   - [Table] — frozen bidirectional section/path registry with per-route allow-lists.
//   - [Default] — the Planner application's section table.
//   - [Role] / [Section] — enumerated identifiers used across the session client.
//
// # Architecture boundaries
//
// This package owns the static route configuration. It does NOT read the
// credential store or decide whether a session is authenticated — that
// responsibility belongs to the Client.
//
// # What this package must NOT do
//
//   - Raise errors for unmapped paths or sections (absent is the only failure shape after Freeze).
//   - Mutate the table after Freeze.
//   - Import planner or any sibling package (no upward imports).
package routes

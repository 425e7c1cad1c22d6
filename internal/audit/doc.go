// Package audit implements the event model for session-lifecycle auditing.
//
// # Components
//
//   - [Sink] — interface for event consumers (channel, JSON writer, no-op).
//   - [Event] — structured record with timestamp, type, identifier, role, path, metadata.
//
// # Architecture boundaries
//
// This package owns the event shape and sink delivery primitives. It does NOT
// decide which events to emit — that responsibility belongs to the Client —
// and buffering lives in the Client's dispatcher.
//
// # What this package must NOT do
//
//   - Filter or suppress events based on business logic.
//   - Import planner or any sibling internal package.
//   - Perform network I/O beyond what a caller-supplied Sink does.
package audit

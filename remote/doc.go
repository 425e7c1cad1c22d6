// Package remote implements the HTTP [planner.AuthAPI] against the
// task-planning backend: POST /auth/login/ for the token pair and user
// record, GET /users/profile/ for the role backfill.
//
// # Architecture boundaries
//
// This package owns transport concerns only: request shaping, request-ID
// stamping, the client-side login throttle, and the mapping of HTTP
// failures onto planner sentinel errors. It never touches the credential
// store and never decides navigation.
//
// # What this package must NOT do
//
//   - Persist tokens or user records (the Client in the root package does that).
//   - Retry failed logins on its own.
//   - Leak raw backend error bodies beyond the detail message.
package remote

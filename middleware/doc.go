// Package middleware adapts the session client to net/http server shells:
// Guard turns authorization verdicts into redirects, Track feeds served
// paths into the route-visit tracker.
//
// # Architecture boundaries
//
// This package is glue only. All decisions are made by the planner Client;
// the middleware never inspects tokens, roles, or the store.
package middleware

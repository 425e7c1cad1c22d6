// Package prometheus provides Prometheus collectors for session-client metrics.
//
// [NewPrometheusExporter] accepts a [planner.Client] and exposes an [http.Handler]
// that renders all counters and histograms in Prometheus text exposition format.
// Counter names are prefixed planner_*_total; the single histogram is
// planner_authorize_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate client state.
package prometheus

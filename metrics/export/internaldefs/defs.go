package internaldefs

import (
	planner "github.com/shahriyarnawaz/Planner"
)

// CounterDef defines a public type used by Planner session APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   planner.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by Planner session APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   planner.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session client.
var CounterDefs = []CounterDef{
	{ID: planner.MetricLoginSuccess, Name: "planner_login_success_total", Help: "Successful login attempts."},
	{ID: planner.MetricLoginFailure, Name: "planner_login_failure_total", Help: "Failed login attempts."},
	{ID: planner.MetricLoginRateLimited, Name: "planner_login_rate_limited_total", Help: "Rate-limited login attempts."},
	{ID: planner.MetricProfileBackfill, Name: "planner_profile_backfill_total", Help: "Roles backfilled from the profile endpoint."},
	{ID: planner.MetricLogout, Name: "planner_logout_total", Help: "User-initiated logouts."},
	{ID: planner.MetricForcedLogout, Name: "planner_forced_logout_total", Help: "Logouts forced by the idle/expiry watcher."},
	{ID: planner.MetricIdleTimeout, Name: "planner_idle_timeout_total", Help: "Sessions ended by idle timeout."},
	{ID: planner.MetricExpirySweep, Name: "planner_expiry_sweep_total", Help: "Expired sessions swept from the credential store."},
	{ID: planner.MetricGuardRender, Name: "planner_guard_render_total", Help: "Navigation attempts allowed to render."},
	{ID: planner.MetricGuardLoginRedirect, Name: "planner_guard_login_redirect_total", Help: "Navigation attempts redirected to login."},
	{ID: planner.MetricGuardRoleRedirect, Name: "planner_guard_role_redirect_total", Help: "Navigation attempts redirected for role mismatch."},
	{ID: planner.MetricRedirectRemembered, Name: "planner_redirect_remembered_total", Help: "Post-login redirects honoring the remembered last page."},
	{ID: planner.MetricRedirectDefault, Name: "planner_redirect_default_total", Help: "Post-login redirects falling back to the default landing."},
	{ID: planner.MetricVisitTracked, Name: "planner_visit_tracked_total", Help: "Protected-path visits recorded as last page."},
}

// HistogramDefs is an exported constant or variable used by the session client.
var HistogramDefs = []HistogramDef{
	{ID: planner.MetricAuthorizeLatency, Name: "planner_authorize_latency_seconds", Help: "Authorize latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the session client.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the session client.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}

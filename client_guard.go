package planner

import (
	"context"
	"time"

	"github.com/shahriyarnawaz/Planner/routes"
)

// Decision defines a public type used by Planner session APIs.
//
// Decision instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Decision uint8

const (
	// DecisionRender is an exported constant or variable used by the session client.
	DecisionRender Decision = iota
	// DecisionLoginRedirect is an exported constant or variable used by the session client.
	DecisionLoginRedirect
	// DecisionRoleRedirect is an exported constant or variable used by the session client.
	DecisionRoleRedirect
)

// String describes the string operation and its observable behavior.
//
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (d Decision) String() string {
	switch d {
	case DecisionRender:
		return "render"
	case DecisionLoginRedirect:
		return "login_redirect"
	case DecisionRoleRedirect:
		return "role_redirect"
	default:
		return "unknown"
	}
}

// Verdict is the guard's answer for one navigation attempt. RedirectTo is
// empty exactly when Decision is [DecisionRender].
type Verdict struct {
	Decision   Decision
	RedirectTo string
}

// Authorize evaluates a navigation attempt against the current session.
//
// Unprotected paths always render. Protected paths require a live session
// (token present and unexpired at evaluation time) and a role admitted by
// the route's allow-list; a missing session redirects to the login view and
// a role mismatch redirects to the user's own landing page, so a redirect
// target is always a path the user may actually visit.
func (c *Client) Authorize(ctx context.Context, path string) Verdict {
	if c.metrics != nil && c.metrics.LatencyEnabled() {
		start := time.Now()
		defer c.metrics.Observe(MetricAuthorizeLatency, time.Since(start))
	}

	if !c.routes.IsProtected(path) {
		c.metricInc(MetricGuardRender)
		return Verdict{Decision: DecisionRender}
	}

	snap := c.snapshot(ctx)

	if !snap.Authenticated(c.now()) {
		c.metricInc(MetricGuardLoginRedirect)
		c.emitAudit(ctx, auditEventGuardRedirect, false, "", "", path, ErrNotAuthenticated, func() map[string]string {
			return map[string]string{
				"decision": DecisionLoginRedirect.String(),
			}
		})
		return Verdict{
			Decision:   DecisionLoginRedirect,
			RedirectTo: c.config.Guard.LoginPath,
		}
	}

	role := snap.Role()
	if !c.routes.Allowed(path, routes.Role(role)) {
		landing := c.landingFor(role)
		c.metricInc(MetricGuardRoleRedirect)
		c.emitAudit(ctx, auditEventGuardRedirect, false, "", role, path, nil, func() map[string]string {
			return map[string]string{
				"decision":    DecisionRoleRedirect.String(),
				"redirect_to": landing,
			}
		})
		return Verdict{
			Decision:   DecisionRoleRedirect,
			RedirectTo: landing,
		}
	}

	c.metricInc(MetricGuardRender)
	return Verdict{Decision: DecisionRender}
}

// landingFor returns the landing page for a backend role string. Unknown
// and empty roles land on the regular dashboard.
func (c *Client) landingFor(role string) string {
	class, ok := roleClass(role)
	if !ok {
		class = routes.RoleRegularUser
	}
	return c.routes.DefaultLanding(class)
}

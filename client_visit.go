package planner

import (
	"context"

	"github.com/shahriyarnawaz/Planner/idle"
	"github.com/shahriyarnawaz/Planner/store"
)

// ObservePath records a completed navigation and sweeps dead sessions.
//
// If the stored access token has expired, all credential keys are cleared
// together before anything else happens; a swept session on a protected
// path redirects to login and the visit is not tracked. Otherwise, visits
// to protected paths become the remembered last page. Unprotected paths are
// never tracked.
func (c *Client) ObservePath(ctx context.Context, path string) Verdict {
	snap := c.snapshot(ctx)

	if snap.AccessToken != "" && IsExpired(snap.AccessToken, c.now()) {
		_ = c.store.Clear(ctx)
		c.metricInc(MetricExpirySweep)
		c.emitAudit(ctx, auditEventExpirySweep, true, "", "", path, nil, nil)

		if c.routes.IsProtected(path) {
			return Verdict{
				Decision:   DecisionLoginRedirect,
				RedirectTo: c.config.Guard.LoginPath,
			}
		}
		return Verdict{Decision: DecisionRender}
	}

	if c.routes.IsProtected(path) && snap.Authenticated(c.now()) {
		if err := c.store.Set(ctx, store.KeyLastPage, path); err == nil {
			c.metricInc(MetricVisitTracked)
			c.emitAudit(ctx, auditEventVisitTracked, true, "", snap.Role(), path, nil, nil)
		}
	}

	return Verdict{Decision: DecisionRender}
}

// WatchPath creates and starts an idle/expiry watcher scoped to a mounted
// protected view. The watcher reads the access token fresh from the store
// on every check and forces a full logout when the idle window elapses or
// the token expires.
//
// Starting on an already-expired session performs the logout immediately
// and returns [idle.ErrExpiredOnStart] with no watcher. The caller owns the
// returned watcher and must stop it on unmount.
func (c *Client) WatchPath(path string) (*idle.Watcher, error) {
	if !c.routes.IsProtected(path) {
		return nil, ErrPathNotProtected
	}

	tokenFn := func() (string, bool) {
		v, ok, err := c.store.Get(context.Background(), store.KeyAccessToken)
		if err != nil || !ok {
			return "", false
		}
		return v, true
	}

	logoutFn := func(reason idle.Reason) {
		eventType := auditEventIdleTimeout
		if reason == idle.ReasonTokenExpired {
			eventType = auditEventExpirySweep
		}
		c.forceLogout(context.Background(), eventType, path)
	}

	w, err := idle.New(
		idle.Config{
			Timeout:       c.config.Idle.Timeout,
			CheckInterval: c.config.Idle.ExpiryCheckInterval,
		},
		tokenFn,
		logoutFn,
	)
	if err != nil {
		return nil, err
	}

	if err := w.Start(); err != nil {
		return nil, err
	}

	return w, nil
}

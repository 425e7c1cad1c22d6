package planner

import (
	"context"
	"time"

	"github.com/shahriyarnawaz/Planner/routes"
	"github.com/shahriyarnawaz/Planner/store"
)

// Client defines a public type used by Planner session APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	config    Config
	store     store.Store
	routes    *routes.Table
	api       AuthAPI
	navigator Navigator
	audit     *auditDispatcher
	metrics   *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.audit != nil {
		c.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) AuditDropped() uint64 {
	if c == nil || c.audit == nil {
		return 0
	}
	return c.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

// Routes describes the routes operation and its observable behavior.
//
// Routes does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Routes() *routes.Table {
	if c == nil {
		return nil
	}
	return c.routes
}

// LoginPath describes the loginpath operation and its observable behavior.
//
// LoginPath does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) LoginPath() string {
	if c == nil {
		return "/login"
	}
	return c.config.Guard.LoginPath
}

func (c *Client) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}

// snapshot reads the four credential keys fresh from the store. Store
// failures read as absent values: an unreadable session is an expired one.
func (c *Client) snapshot(ctx context.Context) SessionSnapshot {
	var snap SessionSnapshot

	if v, ok, err := c.store.Get(ctx, store.KeyAccessToken); err == nil && ok {
		snap.AccessToken = v
	}
	if v, ok, err := c.store.Get(ctx, store.KeyRefreshToken); err == nil && ok {
		snap.RefreshToken = v
	}
	if v, ok, err := c.store.Get(ctx, store.KeyUser); err == nil && ok {
		snap.RawUser = v
	}
	if v, ok, err := c.store.Get(ctx, store.KeyLastPage); err == nil && ok {
		snap.LastPage = v
	}

	return snap
}

// forceLogout clears all credential keys together and sends the user to the
// login view. Used by the idle watcher and the expiry sweep; never partial.
func (c *Client) forceLogout(ctx context.Context, eventType, path string) {
	_ = c.store.Clear(ctx)

	c.metricInc(MetricForcedLogout)
	switch eventType {
	case auditEventIdleTimeout:
		c.metricInc(MetricIdleTimeout)
	case auditEventExpirySweep:
		c.metricInc(MetricExpirySweep)
	}

	c.emitAudit(ctx, eventType, true, "", "", path, nil, nil)
	c.navigator.Navigate(c.config.Guard.LoginPath)
}

func (c *Client) now() time.Time {
	return time.Now()
}

package planner

import (
	"context"

	"github.com/shahriyarnawaz/Planner/routes"
	"github.com/shahriyarnawaz/Planner/store"
)

// ResolveLoginRedirect picks the post-login destination for the current
// session.
//
// The remembered last page wins only when it is a protected path whose
// owner class matches the user's own role class and whose allow-list admits
// the user; everything else falls back to the role's default landing page.
// The chosen destination is persisted as the new last page so a reload
// lands in the same place.
func (c *Client) ResolveLoginRedirect(ctx context.Context) (string, error) {
	snap := c.snapshot(ctx)

	if !snap.Authenticated(c.now()) {
		return "", ErrNotAuthenticated
	}

	role := snap.Role()
	class, ok := roleClass(role)
	if !ok {
		class = routes.RoleRegularUser
	}

	target := c.routes.DefaultLanding(class)
	remembered := false

	if last := snap.LastPage; last != "" && c.routes.IsProtected(last) {
		if owner, known := c.routes.OwnerRole(last); known && owner == class {
			if c.routes.Allowed(last, routes.Role(role)) {
				target = last
				remembered = true
			}
		}
	}

	if remembered {
		c.metricInc(MetricRedirectRemembered)
	} else {
		c.metricInc(MetricRedirectDefault)
	}

	_ = c.store.Set(ctx, store.KeyLastPage, target)

	c.emitAudit(ctx, auditEventRedirectResolved, true, "", role, target, nil, func() map[string]string {
		source := "default_landing"
		if remembered {
			source = "last_page"
		}
		return map[string]string{
			"source": source,
		}
	})

	return target, nil
}

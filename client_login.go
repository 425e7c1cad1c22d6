package planner

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shahriyarnawaz/Planner/store"
)

// Login authenticates against the backend and establishes the local session.
//
// On success the token pair and the user record are persisted together,
// the role is backfilled from the profile endpoint when the login response
// carried none, and the post-login destination is resolved and navigated
// to. The returned path is that destination. Backfill failures are
// swallowed: a missing role degrades to regular-user routing rather than
// blocking login.
func (c *Client) Login(ctx context.Context, identifier, password string) (string, error) {
	if c == nil || c.api == nil {
		return "", ErrClientNotReady
	}

	payload, err := c.api.Login(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, ErrLoginRateLimited) {
			c.metricInc(MetricLoginRateLimited)
			c.emitAudit(ctx, auditEventLoginRateLimited, false, identifier, "", "", err, nil)
			return "", err
		}
		c.metricInc(MetricLoginFailure)
		c.emitAudit(ctx, auditEventLoginFailure, false, identifier, "", "", err, nil)
		return "", err
	}

	user := payload.User

	if user.Role == "" && (user.Profile == nil || user.Profile.Role == "") {
		if profile, perr := c.api.Profile(ctx, payload.AccessToken); perr == nil && profile.Role != "" {
			user.Profile = &profile
			c.metricInc(MetricProfileBackfill)
			c.emitAudit(ctx, auditEventProfileBackfill, true, identifier, profile.Role, "", nil, nil)
		}
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		c.metricInc(MetricLoginFailure)
		c.emitAudit(ctx, auditEventLoginFailure, false, identifier, "", "", err, func() map[string]string {
			return map[string]string{
				"reason": "user_encode_failed",
			}
		})
		return "", errors.Join(ErrLoginFailed, err)
	}

	if err := c.persistLogin(ctx, payload.AccessToken, payload.RefreshToken, string(rawUser)); err != nil {
		c.metricInc(MetricLoginFailure)
		c.emitAudit(ctx, auditEventLoginFailure, false, identifier, "", "", err, func() map[string]string {
			return map[string]string{
				"reason": "store_write_failed",
			}
		})
		return "", err
	}

	redirect, err := c.ResolveLoginRedirect(ctx)
	if err != nil {
		redirect = c.routes.DefaultLanding("")
	}

	c.metricInc(MetricLoginSuccess)
	c.emitAudit(ctx, auditEventLoginSuccess, true, identifier, snapshotRole(string(rawUser)), redirect, nil, nil)

	c.navigator.Navigate(redirect)

	return redirect, nil
}

// persistLogin writes the token pair and user record. A partially written
// session is never left behind: any failed write clears all keys before the
// error is returned.
func (c *Client) persistLogin(ctx context.Context, access, refresh, rawUser string) error {
	err := c.store.Set(ctx, store.KeyAccessToken, access)
	if err == nil {
		err = c.store.Set(ctx, store.KeyRefreshToken, refresh)
	}
	if err == nil {
		err = c.store.Set(ctx, store.KeyUser, rawUser)
	}
	if err != nil {
		_ = c.store.Clear(ctx)
		return err
	}
	return nil
}

// Logout clears all credential keys together and returns to the login view.
// It is deliberately local: the backend is not told, matching the fail-safe
// posture where the stored session is the only session.
func (c *Client) Logout(ctx context.Context) {
	if c == nil {
		return
	}

	_ = c.store.Clear(ctx)

	c.metricInc(MetricLogout)
	c.emitAudit(ctx, auditEventLogout, true, "", "", "", nil, nil)

	c.navigator.Navigate(c.config.Guard.LoginPath)
}

func snapshotRole(rawUser string) string {
	return SessionSnapshot{RawUser: rawUser}.Role()
}

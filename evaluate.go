package planner

import (
	"encoding/json"
	"time"

	"github.com/shahriyarnawaz/Planner/routes"
	"github.com/shahriyarnawaz/Planner/token"
)

// IsExpired reports whether the raw access token is expired at now.
// Absent, malformed, and expiry-free tokens all read as expired.
func IsExpired(raw string, now time.Time) bool {
	if raw == "" {
		return true
	}
	return token.Expired(raw, now)
}

// Authenticated reports whether the snapshot holds a live session: an access
// token is present and not expired at now. Everything else is unauthenticated,
// including tokens the codec cannot read.
func (s SessionSnapshot) Authenticated(now time.Time) bool {
	return !IsExpired(s.AccessToken, now)
}

// Role extracts the user's role from the stored user record: the top-level
// role wins, the nested profile role is the fallback. An unreadable record
// yields the empty role.
func (s SessionSnapshot) Role() string {
	if s.RawUser == "" {
		return ""
	}

	var user UserRecord
	if err := json.Unmarshal([]byte(s.RawUser), &user); err != nil {
		return ""
	}

	if user.Role != "" {
		return user.Role
	}
	if user.Profile != nil {
		return user.Profile.Role
	}
	return ""
}

// roleClass maps a backend role string to a route-table role. Exactly
// "super_admin" is privileged; any other non-empty role is a regular user.
func roleClass(role string) (routes.Role, bool) {
	switch {
	case role == "":
		return "", false
	case role == string(routes.RoleSuperAdmin):
		return routes.RoleSuperAdmin, true
	default:
		return routes.RoleRegularUser, true
	}
}

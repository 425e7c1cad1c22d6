package planner

import (
	"context"
	"errors"
	"time"
)

const (
	auditEventLoginSuccess     = "login_success"
	auditEventLoginFailure     = "login_failure"
	auditEventLoginRateLimited = "login_rate_limited"
	auditEventProfileBackfill  = "profile_backfill"
	auditEventLogout           = "logout"
	auditEventIdleTimeout      = "idle_timeout"
	auditEventExpirySweep      = "expiry_sweep"
	auditEventGuardRedirect    = "guard_redirect"
	auditEventRedirectResolved = "redirect_resolved"
	auditEventVisitTracked     = "visit_tracked"
)

// AuditErrorCode defines a public type used by Planner session APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrLoginFailed      AuditErrorCode = "login_failed"
	auditErrRateLimited      AuditErrorCode = "rate_limited"
	auditErrNotAuthenticated AuditErrorCode = "not_authenticated"
	auditErrNotProtected     AuditErrorCode = "path_not_protected"
	auditErrUnavailable      AuditErrorCode = "backend_unavailable"
	auditErrInternal         AuditErrorCode = "internal_error"
)

func (c *Client) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	identifier string,
	role string,
	path string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if c == nil || c.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp:  time.Now().UTC(),
		EventType:  eventType,
		Identifier: identifier,
		Role:       role,
		Path:       path,
		TabID:      tabIDFromContext(ctx),
		Success:    success,
		Metadata:   metadata,
	}
	if path != "" && c.routes != nil {
		if section, ok := c.routes.SectionForPath(path); ok {
			event.Section = string(section)
		}
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	c.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrLoginFailed):
		return auditErrLoginFailed
	case errors.Is(err, ErrLoginRateLimited):
		return auditErrRateLimited
	case errors.Is(err, ErrNotAuthenticated):
		return auditErrNotAuthenticated
	case errors.Is(err, ErrPathNotProtected):
		return auditErrNotProtected
	case errors.Is(err, ErrBackendUnavailable):
		return auditErrUnavailable
	default:
		return auditErrInternal
	}
}

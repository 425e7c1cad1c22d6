package planner

import (
	"context"
	"testing"
	"time"
)

func TestAuthorizeUnprotectedPathRenders(t *testing.T) {
	client, _, _ := newTestClient(t, sessionTestConfig(), nil)

	verdict := client.Authorize(context.Background(), "/login")
	if verdict.Decision != DecisionRender {
		t.Fatalf("expected render for unprotected path, got %v", verdict.Decision)
	}
	if verdict.RedirectTo != "" {
		t.Fatalf("render verdict must carry no redirect, got %q", verdict.RedirectTo)
	}
}

func TestAuthorizeAnonymousRedirectsToLogin(t *testing.T) {
	client, _, _ := newTestClient(t, sessionTestConfig(), nil)

	verdict := client.Authorize(context.Background(), "/tasks")
	if verdict.Decision != DecisionLoginRedirect {
		t.Fatalf("expected login redirect, got %v", verdict.Decision)
	}
	if verdict.RedirectTo != "/login" {
		t.Fatalf("expected /login, got %q", verdict.RedirectTo)
	}
	if got := client.MetricsSnapshot().Counters[MetricGuardLoginRedirect]; got != 1 {
		t.Fatalf("expected one login redirect, got %d", got)
	}
}

func TestAuthorizeExpiredTokenRedirectsToLogin(t *testing.T) {
	client, mem, _ := newTestClient(t, sessionTestConfig(), nil)
	seedSession(t, mem, mintToken(t, -time.Minute), encodeUser(t, UserRecord{ID: "u1", Role: "user"}))

	verdict := client.Authorize(context.Background(), "/tasks")
	if verdict.Decision != DecisionLoginRedirect {
		t.Fatalf("expected login redirect for expired token, got %v", verdict.Decision)
	}
}

func TestAuthorizeRegularUserOnAdminPathRoleRedirects(t *testing.T) {
	client, mem, _ := newTestClient(t, sessionTestConfig(), nil)
	seedSession(t, mem, mintToken(t, time.Hour), encodeUser(t, UserRecord{ID: "u1", Role: "user"}))

	verdict := client.Authorize(context.Background(), "/admin-users")
	if verdict.Decision != DecisionRoleRedirect {
		t.Fatalf("expected role redirect, got %v", verdict.Decision)
	}
	if verdict.RedirectTo != "/dashboard" {
		t.Fatalf("expected own landing /dashboard, got %q", verdict.RedirectTo)
	}
	if got := client.MetricsSnapshot().Counters[MetricGuardRoleRedirect]; got != 1 {
		t.Fatalf("expected one role redirect, got %d", got)
	}
}

func TestAuthorizeSuperAdminRendersAdminPath(t *testing.T) {
	client, mem, _ := newTestClient(t, sessionTestConfig(), nil)
	seedSession(t, mem, mintToken(t, time.Hour), encodeUser(t, UserRecord{ID: "u1", Role: "super_admin"}))

	verdict := client.Authorize(context.Background(), "/admin-users")
	if verdict.Decision != DecisionRender {
		t.Fatalf("expected render for super admin, got %v", verdict.Decision)
	}
}

func TestAuthorizeSuperAdminRendersRegularPath(t *testing.T) {
	client, mem, _ := newTestClient(t, sessionTestConfig(), nil)
	seedSession(t, mem, mintToken(t, time.Hour), encodeUser(t, UserRecord{ID: "u1", Role: "super_admin"}))

	verdict := client.Authorize(context.Background(), "/tasks")
	if verdict.Decision != DecisionRender {
		t.Fatalf("expected open allow-list to admit super admin, got %v", verdict.Decision)
	}
}

func TestAuthorizeProfileRoleFallback(t *testing.T) {
	client, mem, _ := newTestClient(t, sessionTestConfig(), nil)
	user := UserRecord{ID: "u1", Profile: &Profile{Role: "super_admin"}}
	seedSession(t, mem, mintToken(t, time.Hour), encodeUser(t, user))

	verdict := client.Authorize(context.Background(), "/admin-dashboard")
	if verdict.Decision != DecisionRender {
		t.Fatalf("expected profile role fallback to admit, got %v", verdict.Decision)
	}
}

func TestAuthorizeUnreadableUserRecordRoleRedirects(t *testing.T) {
	client, mem, _ := newTestClient(t, sessionTestConfig(), nil)
	seedSession(t, mem, mintToken(t, time.Hour), "{not json")

	// Token is live but the role is unreadable: admin paths reject, and the
	// redirect lands on the regular dashboard.
	verdict := client.Authorize(context.Background(), "/admin-users")
	if verdict.Decision != DecisionRoleRedirect {
		t.Fatalf("expected role redirect, got %v", verdict.Decision)
	}
	if verdict.RedirectTo != "/dashboard" {
		t.Fatalf("expected /dashboard fallback, got %q", verdict.RedirectTo)
	}
}

func TestAuthorizeLatencyObservedWhenEnabled(t *testing.T) {
	cfg := sessionTestConfig()
	cfg.Metrics.EnableLatencyHistograms = true

	client, _, _ := newTestClient(t, cfg, nil)

	client.Authorize(context.Background(), "/login")

	snap := client.MetricsSnapshot()
	buckets := snap.Histograms[MetricAuthorizeLatency]
	if len(buckets) != histBucketCount {
		t.Fatalf("expected %d buckets, got %d", histBucketCount, len(buckets))
	}

	var total uint64
	for _, v := range buckets {
		total += v
	}
	if total != 1 {
		t.Fatalf("expected one latency observation, got %d", total)
	}
}

func TestDecisionString(t *testing.T) {
	tests := []struct {
		decision Decision
		want     string
	}{
		{DecisionRender, "render"},
		{DecisionLoginRedirect, "login_redirect"},
		{DecisionRoleRedirect, "role_redirect"},
		{Decision(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.decision.String(); got != tt.want {
			t.Fatalf("Decision(%d).String() = %q, want %q", tt.decision, got, tt.want)
		}
	}
}

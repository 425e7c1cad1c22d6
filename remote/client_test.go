package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	planner "github.com/shahriyarnawaz/Planner"
)

func TestLoginSuccess(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotRequestID = r.Header.Get("X-Request-ID")

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["email"] != "ada@example.com" || body["password"] != "hunter2" {
			t.Errorf("unexpected credentials: %v", body)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{
				"id":    "u-1",
				"email": "ada@example.com",
				"role":  "super_admin",
			},
			"tokens": map[string]any{
				"access":  "access-token",
				"refresh": "refresh-token",
			},
		})
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	payload, err := c.Login(context.Background(), "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if payload.AccessToken != "access-token" || payload.RefreshToken != "refresh-token" {
		t.Errorf("unexpected tokens: %+v", payload)
	}
	if payload.User.Role != "super_admin" {
		t.Errorf("user role = %q, want super_admin", payload.User.Role)
	}
	if gotRequestID == "" {
		t.Error("request missing X-Request-ID header")
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.Login(context.Background(), "ada@example.com", "wrong")
	if !errors.Is(err, planner.ErrLoginFailed) {
		t.Fatalf("login error = %v, want ErrLoginFailed", err)
	}
}

func TestLoginBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.Login(context.Background(), "ada@example.com", "hunter2")
	if !errors.Is(err, planner.ErrBackendUnavailable) {
		t.Fatalf("login error = %v, want ErrBackendUnavailable", err)
	}
}

func TestLoginServerRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.Login(context.Background(), "ada@example.com", "hunter2")
	if !errors.Is(err, planner.ErrLoginRateLimited) {
		t.Fatalf("login error = %v, want ErrLoginRateLimited", err)
	}
}

func TestLoginClientThrottle(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))
	defer srv.Close()

	// One token in the bucket, refilled once a minute: the second attempt
	// must be throttled locally without reaching the backend.
	c, err := NewClient(Config{BaseURL: srv.URL, LoginRatePerMin: 1, LoginBurst: 1})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, _ = c.Login(context.Background(), "ada@example.com", "wrong")
	_, err = c.Login(context.Background(), "ada@example.com", "wrong")
	if !errors.Is(err, planner.ErrLoginRateLimited) {
		t.Fatalf("second login error = %v, want ErrLoginRateLimited", err)
	}
	if hits != 1 {
		t.Errorf("backend hit %d times, want 1", hits)
	}
}

func TestProfileFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/profile/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer access-token" {
			t.Errorf("authorization header = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"role": "user"})
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	profile, err := c.Profile(context.Background(), "access-token")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Role != "user" {
		t.Errorf("profile role = %q, want user", profile.Role)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Error("empty base URL accepted")
	}
	if _, err := NewClient(Config{BaseURL: "ftp://example.com"}); err == nil {
		t.Error("non-http base URL accepted")
	}
}

package planner

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "defaults valid",
			mutate:    func(*Config) {},
			wantValid: true,
		},
		{
			name: "base url http valid",
			mutate: func(c *Config) {
				c.Remote.BaseURL = "http://localhost:8000"
			},
			wantValid: true,
		},
		{
			name: "base url scheme invalid",
			mutate: func(c *Config) {
				c.Remote.BaseURL = "localhost:8000"
			},
			wantValid: false,
		},
		{
			name: "request timeout zero invalid",
			mutate: func(c *Config) {
				c.Remote.RequestTimeout = 0
			},
			wantValid: false,
		},
		{
			name: "login rate negative invalid",
			mutate: func(c *Config) {
				c.Remote.LoginRatePerMin = -1
			},
			wantValid: false,
		},
		{
			name: "login burst required when throttled",
			mutate: func(c *Config) {
				c.Remote.LoginRatePerMin = 5
				c.Remote.LoginBurst = 0
			},
			wantValid: false,
		},
		{
			name: "throttling disabled ignores burst",
			mutate: func(c *Config) {
				c.Remote.LoginRatePerMin = 0
				c.Remote.LoginBurst = 0
			},
			wantValid: true,
		},
		{
			name: "idle timeout zero invalid",
			mutate: func(c *Config) {
				c.Idle.Timeout = 0
			},
			wantValid: false,
		},
		{
			name: "expiry check interval negative invalid",
			mutate: func(c *Config) {
				c.Idle.ExpiryCheckInterval = -time.Second
			},
			wantValid: false,
		},
		{
			name: "login path without slash invalid",
			mutate: func(c *Config) {
				c.Guard.LoginPath = "login"
			},
			wantValid: false,
		},
		{
			name: "login path empty invalid",
			mutate: func(c *Config) {
				c.Guard.LoginPath = ""
			},
			wantValid: false,
		},
		{
			name: "audit enabled needs buffer",
			mutate: func(c *Config) {
				c.Audit.Enabled = true
				c.Audit.BufferSize = 0
			},
			wantValid: false,
		},
		{
			name: "audit disabled ignores buffer",
			mutate: func(c *Config) {
				c.Audit.Enabled = false
				c.Audit.BufferSize = 0
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantValid && err != nil {
				t.Fatalf("expected valid config, got error: %v", err)
			}
			if !tt.wantValid && err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Idle.Timeout != 15*time.Minute {
		t.Fatalf("expected 15m idle timeout, got %v", cfg.Idle.Timeout)
	}
	if cfg.Idle.ExpiryCheckInterval != time.Minute {
		t.Fatalf("expected 1m expiry check interval, got %v", cfg.Idle.ExpiryCheckInterval)
	}
	if cfg.Guard.LoginPath != "/login" {
		t.Fatalf("expected /login login path, got %q", cfg.Guard.LoginPath)
	}
	if cfg.Audit.Enabled || cfg.Metrics.Enabled {
		t.Fatal("expected audit and metrics disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestCloneConfigIsIndependent(t *testing.T) {
	original := defaultConfig()
	clone := cloneConfig(original)

	clone.Guard.LoginPath = "/signin"
	clone.Idle.Timeout = time.Second

	if original.Guard.LoginPath != "/login" {
		t.Fatal("mutating clone changed original login path")
	}
	if original.Idle.Timeout != 15*time.Minute {
		t.Fatal("mutating clone changed original idle timeout")
	}
}

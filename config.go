package planner

import (
	"errors"
	"strings"
	"time"
)

// Config defines a public type used by Planner session APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Remote  RemoteConfig
	Store   StoreConfig
	Idle    IdleConfig
	Guard   GuardConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
REMOTE CONFIG
====================================
*/

// RemoteConfig defines a public type used by Planner session APIs.
//
// RemoteConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RemoteConfig struct {
	BaseURL         string
	RequestTimeout  time.Duration
	LoginRatePerMin int
	LoginBurst      int
}

/*
====================================
STORE CONFIG
====================================
*/

// StoreConfig defines a public type used by Planner session APIs.
//
// StoreConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StoreConfig struct {
	RedisPrefix string
}

/*
====================================
IDLE CONFIG
====================================
*/

// IdleConfig defines a public type used by Planner session APIs.
//
// IdleConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type IdleConfig struct {
	Timeout             time.Duration
	ExpiryCheckInterval time.Duration
}

// GuardConfig defines a public type used by Planner session APIs.
//
// GuardConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GuardConfig struct {
	LoginPath string
}

// AuditConfig defines a public type used by Planner session APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by Planner session APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the baseline configuration: 15 minute idle window,
// one minute expiry re-check, "/login" as the login view, audit and metrics
// disabled.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Remote: RemoteConfig{
			RequestTimeout:  10 * time.Second,
			LoginRatePerMin: 10,
			LoginBurst:      3,
		},
		Store: StoreConfig{
			RedisPrefix: "planner",
		},
		Idle: IdleConfig{
			Timeout:             15 * time.Minute,
			ExpiryCheckInterval: time.Minute,
		},
		Guard: GuardConfig{
			LoginPath: "/login",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Remote
	if c.Remote.BaseURL != "" {
		if !strings.HasPrefix(c.Remote.BaseURL, "http://") && !strings.HasPrefix(c.Remote.BaseURL, "https://") {
			return errors.New("Remote BaseURL must be an http(s) URL")
		}
	}
	if c.Remote.RequestTimeout <= 0 {
		return errors.New("Remote RequestTimeout must be > 0")
	}
	if c.Remote.LoginRatePerMin < 0 {
		return errors.New("Remote LoginRatePerMin must be >= 0")
	}
	if c.Remote.LoginRatePerMin > 0 && c.Remote.LoginBurst <= 0 {
		return errors.New("Remote LoginBurst must be > 0 when login throttling is enabled")
	}

	// Idle
	if c.Idle.Timeout <= 0 {
		return errors.New("Idle Timeout must be > 0")
	}
	if c.Idle.ExpiryCheckInterval <= 0 {
		return errors.New("Idle ExpiryCheckInterval must be > 0")
	}

	// Guard
	if c.Guard.LoginPath == "" || !strings.HasPrefix(c.Guard.LoginPath, "/") {
		return errors.New("Guard LoginPath must begin with '/'")
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}

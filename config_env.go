package planner

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	BaseURL         string        `env:"PLANNER_API_BASE_URL"`
	RequestTimeout  time.Duration `env:"PLANNER_API_TIMEOUT" envDefault:"10s"`
	LoginRatePerMin int           `env:"PLANNER_LOGIN_RATE_PER_MIN" envDefault:"10"`
	LoginBurst      int           `env:"PLANNER_LOGIN_BURST" envDefault:"3"`

	RedisPrefix string `env:"PLANNER_REDIS_PREFIX" envDefault:"planner"`

	IdleTimeout         time.Duration `env:"PLANNER_IDLE_TIMEOUT" envDefault:"15m"`
	ExpiryCheckInterval time.Duration `env:"PLANNER_EXPIRY_CHECK_INTERVAL" envDefault:"1m"`

	LoginPath string `env:"PLANNER_LOGIN_PATH" envDefault:"/login"`

	AuditEnabled    bool `env:"PLANNER_AUDIT_ENABLED" envDefault:"false"`
	AuditBufferSize int  `env:"PLANNER_AUDIT_BUFFER_SIZE" envDefault:"1024"`
	AuditDropIfFull bool `env:"PLANNER_AUDIT_DROP_IF_FULL" envDefault:"true"`

	MetricsEnabled          bool `env:"PLANNER_METRICS_ENABLED" envDefault:"false"`
	EnableLatencyHistograms bool `env:"PLANNER_METRICS_LATENCY_HISTOGRAMS" envDefault:"false"`
}

// FromEnv builds a [Config] from PLANNER_* environment variables, falling
// back to the same defaults as the zero-configuration path. The result is
// validated before it is returned.
func FromEnv() (Config, error) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Remote: RemoteConfig{
			BaseURL:         e.BaseURL,
			RequestTimeout:  e.RequestTimeout,
			LoginRatePerMin: e.LoginRatePerMin,
			LoginBurst:      e.LoginBurst,
		},
		Store: StoreConfig{
			RedisPrefix: e.RedisPrefix,
		},
		Idle: IdleConfig{
			Timeout:             e.IdleTimeout,
			ExpiryCheckInterval: e.ExpiryCheckInterval,
		},
		Guard: GuardConfig{
			LoginPath: e.LoginPath,
		},
		Audit: AuditConfig{
			Enabled:    e.AuditEnabled,
			BufferSize: e.AuditBufferSize,
			DropIfFull: e.AuditDropIfFull,
		},
		Metrics: MetricsConfig{
			Enabled:                 e.MetricsEnabled,
			EnableLatencyHistograms: e.EnableLatencyHistograms,
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

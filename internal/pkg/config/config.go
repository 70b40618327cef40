package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds a console session; the upstream token's own expiry
	// wins when it is sooner.
	SessionTTL time.Duration `env:"SESSION_TTL, default=12h"`
	// ProfileTTL bounds how long an idle rewards pool is kept. Zero keeps it.
	ProfileTTL time.Duration `env:"PROFILE_TTL, default=0"`
	// DefaultOptionID is the commute option new enrollments are created with.
	DefaultOptionID int64 `env:"DEFAULT_OPTION_ID, default=1"`
	// ConsoleSweep is how often consoles of ended sessions are dropped.
	ConsoleSweep time.Duration `env:"CONSOLE_SWEEP_INTERVAL, default=1m"`

	CommuteAPI CommuteAPIConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Audit      AuditConfig
}

type CommuteAPIConfig struct {
	BaseURL string        `env:"COMMUTE_API_BASE,    default=http://localhost:8000/api/"`
	Timeout time.Duration `env:"COMMUTE_API_TIMEOUT, default=10s"`
	RPS     float64       `env:"COMMUTE_API_RPS,     default=20"`
}

// MongoConfig is optional: with an empty URI the audit trail is only logged.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=commute_console"`
}

// RedisConfig is optional: with an empty address sessions live in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool { return c.Env == "production" }

// Validate checks settings that have no safe default.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if c.DefaultOptionID <= 0 {
		return fmt.Errorf("config: DEFAULT_OPTION_ID must be positive")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

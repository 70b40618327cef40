package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// CLIConfig is the configuration of the commutectl command. Flags override
// these values.
type CLIConfig struct {
	ProfilePath     string `env:"PROFILE_PATH,      default=commutectl.db"`
	DefaultOptionID int64  `env:"DEFAULT_OPTION_ID, default=1"`

	CommuteAPI CommuteAPIConfig
}

// LoadCLIWith reads the CLI configuration through lookuper.
func LoadCLIWith(ctx context.Context, lookuper envconfig.Lookuper) (*CLIConfig, error) {
	var cfg CLIConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) if RATING_CONFIG is set
//  3. env (prefix RATING_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("RATING_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: RATING_ADDR, RATING_TABLE_NAME, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("RATING_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "rating_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.TableName == "":
		return fmt.Errorf("%w: table_name must not be empty", ErrInvalidConfig)
	case len(c.Judges) == 0:
		return fmt.Errorf("%w: judges must not be empty", ErrInvalidConfig)
	case c.LockTimeoutMS <= 0:
		return fmt.Errorf("%w: lock_timeout_ms must be positive", ErrInvalidConfig)
	case c.MinFieldSize < 1:
		return fmt.Errorf("%w: min_field_size must be >= 1", ErrInvalidConfig)
	}
	return nil
}

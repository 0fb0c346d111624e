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
//  1. defaults (New())
//  2. file (YAML) if EVENTOS_CONFIG is set
//  3. env (prefix EVENTOS_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("EVENTOS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: EVENTOS_API_BASE_URL, EVENTOS_SESSION_TOKEN, ...
	// Underscores are preserved so keys line up with the koanf struct tags.
	envProvider := env.Provider("EVENTOS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "eventos_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("%w: api_base_url must not be empty", ErrInvalidConfig)
	}
	if cfg.RequestTimeoutMS <= 0 {
		return nil, fmt.Errorf("%w: request_timeout_ms must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}

package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	envPrefix     = "PRESS_"
	envConfigPath = "PRESS_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PRESS_CONFIG is set
//  3. env (prefix PRESS_)
func Load(_ context.Context) (*Config, error) {
	const op = "config.load"
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, WrapKind(op, ErrLoadConfig, err)
		}
	}

	// PRESS_ANALYZE_ENDPOINT -> analyze_endpoint (flat keys, underscores kept).
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		if s == envConfigPath {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, WrapKind(op, ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, WrapKind(op, ErrLoadConfig, err)
	}

	cfg.Variant = strings.ToLower(strings.TrimSpace(cfg.Variant))
	cfg.LeaderboardMode = strings.ToLower(strings.TrimSpace(cfg.LeaderboardMode))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

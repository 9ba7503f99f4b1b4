// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and PRESS_* env vars.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Variant names the two rendering presets of the front-end.
const (
	VariantStyled  = "styled"
	VariantMinimal = "minimal"
)

// Leaderboard source policies.
const (
	LeaderboardStatic  = "static"
	LeaderboardDynamic = "dynamic"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Variant selects score precision and page styling: styled or minimal.
	Variant string `koanf:"variant"`

	// APIBaseURL resolves relative endpoints, e.g. "http://backend:8000".
	APIBaseURL string `koanf:"api_base_url"`

	// AnalyzeEndpoint is absolute or relative to APIBaseURL.
	AnalyzeEndpoint string `koanf:"analyze_endpoint"`

	// LeaderboardEndpoint is absolute or relative to APIBaseURL. Only used
	// with the dynamic leaderboard mode.
	LeaderboardEndpoint string `koanf:"leaderboard_endpoint"`

	// LeaderboardMode is static (seeded once) or dynamic (fetched after each analysis).
	LeaderboardMode string `koanf:"leaderboard_mode"`

	// LeaderboardSeedFile optionally replaces the built-in static leaderboard.
	LeaderboardSeedFile string `koanf:"leaderboard_seed_file"`

	// AnalyzeTimeoutMS bounds one analyze call; 0 disables the client timeout.
	AnalyzeTimeoutMS int `koanf:"analyze_timeout_ms"`

	// SessionCapacity caps in-memory browser sessions; <= 0 is unbounded.
	SessionCapacity int `koanf:"session_capacity"`
}

// New creates a Config with defaults matching the styled demo deployment.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		Variant:             VariantStyled,
		APIBaseURL:          "",
		AnalyzeEndpoint:     "http://localhost:8000/analyze",
		LeaderboardEndpoint: "/leaderboard",
		LeaderboardMode:     LeaderboardStatic,
		AnalyzeTimeoutMS:    0,
		SessionCapacity:     10_000,
	}
}

// AnalyzeTimeout returns the analyze client timeout.
func (c *Config) AnalyzeTimeout() time.Duration {
	if c.AnalyzeTimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.AnalyzeTimeoutMS) * time.Millisecond
}

// AnalyzeURL returns the resolved analyze endpoint.
func (c *Config) AnalyzeURL() (string, error) {
	return resolve(c.APIBaseURL, c.AnalyzeEndpoint)
}

// LeaderboardURL returns the resolved leaderboard endpoint.
func (c *Config) LeaderboardURL() (string, error) {
	return resolve(c.APIBaseURL, c.LeaderboardEndpoint)
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	const op = "config.validate"
	if strings.TrimSpace(c.Addr) == "" {
		return WrapKind(op, ErrInvalidConfig, fmt.Errorf("addr must not be empty"))
	}
	switch c.Variant {
	case VariantStyled, VariantMinimal:
	default:
		return WrapKind(op, ErrInvalidConfig, fmt.Errorf("unknown variant %q", c.Variant))
	}
	switch c.LeaderboardMode {
	case LeaderboardStatic, LeaderboardDynamic:
	default:
		return WrapKind(op, ErrInvalidConfig, fmt.Errorf("unknown leaderboard_mode %q", c.LeaderboardMode))
	}
	if _, err := c.AnalyzeURL(); err != nil {
		return WrapKind(op, ErrInvalidConfig, fmt.Errorf("analyze_endpoint: %w", err))
	}
	if c.LeaderboardMode == LeaderboardDynamic {
		if _, err := c.LeaderboardURL(); err != nil {
			return WrapKind(op, ErrInvalidConfig, fmt.Errorf("leaderboard_endpoint: %w", err))
		}
	}
	return nil
}

// resolve joins a relative endpoint onto base; absolute endpoints win.
func resolve(base, endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", fmt.Errorf("endpoint must not be empty")
	}
	ep, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	if ep.IsAbs() {
		return ep.String(), nil
	}
	if strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("relative endpoint %q requires api_base_url", endpoint)
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if !b.IsAbs() {
		return "", fmt.Errorf("api_base_url %q must be absolute", base)
	}
	return b.ResolveReference(ep).String(), nil
}

/*
Copyright 2025 The rulesolver Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultMaxNodes bounds the branch-and-bound search when no budget is
	// configured.
	DefaultMaxNodes = 10000

	// DefaultIntTol is the default integrality tolerance.
	DefaultIntTol = 1e-9

	// DefaultSolveTimeout bounds a single solve call.
	DefaultSolveTimeout = 30 * time.Second

	envPrefix = "RULESOLVER"
)

// Settings holds solver tuning and logging configuration.
type Settings struct {
	// Tolerance is the simplex pivot tolerance; zero selects the engine
	// default.
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`

	// IntTol is the integrality tolerance for branch-and-bound.
	IntTol float64 `mapstructure:"intTolerance" yaml:"intTolerance"`

	// MaxNodes is the branch-and-bound node budget.
	MaxNodes int `mapstructure:"maxNodes" yaml:"maxNodes"`

	// SolveTimeout bounds a single solve call; zero disables the bound.
	SolveTimeout time.Duration `mapstructure:"solveTimeout" yaml:"solveTimeout"`

	// LogLevel is the initial logging severity (debug, info, warn, error).
	LogLevel string `mapstructure:"logLevel" yaml:"logLevel"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		IntTol:       DefaultIntTol,
		MaxNodes:     DefaultMaxNodes,
		SolveTimeout: DefaultSolveTimeout,
		LogLevel:     "info",
	}
}

// Validate checks for invalid configuration values.
func (s *Settings) Validate() error {
	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %g", s.Tolerance)
	}
	if s.IntTol <= 0 || s.IntTol >= 0.5 {
		return fmt.Errorf("intTolerance must be in (0, 0.5), got %g", s.IntTol)
	}
	if s.MaxNodes <= 0 {
		return fmt.Errorf("maxNodes must be > 0, got %d", s.MaxNodes)
	}
	if s.SolveTimeout < 0 {
		return fmt.Errorf("solveTimeout must not be negative, got %s", s.SolveTimeout)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logLevel must be one of debug, info, warn, error, got %q", s.LogLevel)
	}
	return nil
}

// Load reads settings from defaults, an optional YAML file, and the
// RULESOLVER_* environment, in increasing precedence. An empty path skips
// the file layer.
func Load(path string) (*Settings, error) {
	v := viper.New()
	defaults := DefaultSettings()
	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("intTolerance", defaults.IntTol)
	v.SetDefault("maxNodes", defaults.MaxNodes)
	v.SetDefault("solveTimeout", defaults.SolveTimeout)
	v.SetDefault("logLevel", defaults.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file %q: %w", path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

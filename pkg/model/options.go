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

package model

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/ruleopt/rulesolver/internal/logging"
	"github.com/ruleopt/rulesolver/pkg/config"
	"github.com/ruleopt/rulesolver/pkg/core"
	"github.com/ruleopt/rulesolver/pkg/solver"
)

// Option configures a Model at construction time.
type Option func(*Model) error

// WithAdapter selects the solver adapter. The default is the gonum-backed
// simplex adapter.
func WithAdapter(adapter solver.Adapter) Option {
	return func(m *Model) error {
		if adapter == nil {
			return fmt.Errorf("%w: adapter must not be nil", core.ErrInvalidInputType)
		}
		m.adapter = adapter
		return nil
	}
}

// WithLogger supplies an external logger. Level control via SetLogLevel is
// unavailable for externally supplied loggers.
func WithLogger(logger logr.Logger) Option {
	return func(m *Model) error {
		m.logger = logger
		m.level = nil
		return nil
	}
}

// WithTimeout bounds the duration of each Solve call. A solve exceeding the
// timeout is reported as TimedOut.
func WithTimeout(timeout time.Duration) Option {
	return func(m *Model) error {
		if timeout < 0 {
			return fmt.Errorf("%w: timeout must not be negative", core.ErrInvalidInputType)
		}
		m.timeout = timeout
		return nil
	}
}

// WithSettings applies loaded configuration: solver tolerances and node
// budget, the solve timeout, and the initial log level.
func WithSettings(settings *config.Settings) Option {
	return func(m *Model) error {
		if settings == nil {
			return fmt.Errorf("%w: settings must not be nil", core.ErrInvalidInputType)
		}
		if err := settings.Validate(); err != nil {
			return err
		}
		m.adapter = solver.NewSimplexAdapter(&solver.SimplexConfig{
			Tolerance: settings.Tolerance,
			IntTol:    settings.IntTol,
			MaxNodes:  settings.MaxNodes,
		})
		m.timeout = settings.SolveTimeout

		logger, level, err := logging.New(settings.LogLevel)
		if err != nil {
			return err
		}
		m.logger = logger
		m.level = level
		return nil
	}
}

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

// Package logging builds zap-backed logr loggers with a per-logger
// adjustable level, so each model carries isolated, testable log output
// instead of mutating process-global logging state.
package logging

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level wraps a zap atomic level so the verbosity of an already-constructed
// logger can be adjusted at runtime.
type Level struct {
	atomic zap.AtomicLevel
}

// Set applies the named severity. Recognized levels are debug, info, warn,
// and error. An unrecognized name leaves the current level unchanged and is
// reported as an error.
func (l *Level) Set(name string) error {
	parsed, ok := parseLevel(name)
	if !ok {
		return fmt.Errorf("unrecognized logging level %q", name)
	}
	l.atomic.SetLevel(parsed)
	return nil
}

func parseLevel(name string) (zapcore.Level, bool) {
	switch name {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	}
	return zapcore.InvalidLevel, false
}

// New returns a structured JSON logger writing to stderr along with its
// level handle. An empty level selects info.
func New(level string) (logr.Logger, *Level, error) {
	lvl := &Level{atomic: zap.NewAtomicLevelAt(zapcore.InfoLevel)}
	if level != "" {
		if err := lvl.Set(level); err != nil {
			return logr.Logger{}, nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	zcore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		lvl.atomic,
	)
	return zapr.NewLogger(zap.New(zcore)), lvl, nil
}

// NewTestLogger returns a development-encoded logger for test suites.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	z, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(z)
}

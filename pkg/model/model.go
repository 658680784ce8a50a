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
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"

	"github.com/ruleopt/rulesolver/internal/logging"
	"github.com/ruleopt/rulesolver/internal/metrics"
	"github.com/ruleopt/rulesolver/pkg/core"
	"github.com/ruleopt/rulesolver/pkg/solver"
)

// Model encodes rule-based decision logic as a linear program and delegates
// solving to a solver adapter. The zero value is not usable; construct with
// New.
type Model struct {
	name     string
	sense    core.Sense
	registry *core.VariableRegistry

	objective   map[string]float64
	constraints []core.ConstraintSpec

	adapter solver.Adapter
	timeout time.Duration
	logger  logr.Logger
	level   *logging.Level

	status         solver.Status
	objectiveValue float64
	solution       map[string]float64
	failureReason  string
}

// New creates a Model with the given name and optimization sense.
func New(name string, sense core.Sense, opts ...Option) (*Model, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: model name must not be empty", core.ErrInvalidInputType)
	}
	if !sense.Valid() {
		return nil, fmt.Errorf("%w: unknown sense %q", core.ErrMalformedEntry, sense)
	}

	m := &Model{
		name:     name,
		sense:    sense,
		registry: core.NewVariableRegistry(),
		status:   solver.StatusNotSolved,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	if m.adapter == nil {
		m.adapter = solver.NewSimplexAdapter(nil)
	}
	if m.logger.GetSink() == nil {
		logger, level, err := logging.New("")
		if err != nil {
			return nil, err
		}
		m.logger = logger
		m.level = level
	}

	m.logger.V(1).Info("initialized model", "model", m.name, "sense", m.sense)
	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Sense returns the optimization direction.
func (m *Model) Sense() core.Sense { return m.sense }

// DefineVariables adds one decision variable per entry. The batch is
// validated in full before any mutation; on failure the registry is left
// exactly as it was. A successful call invalidates any previous solve
// result.
func (m *Model) DefineVariables(specs map[string]core.VariableSpec) error {
	if err := m.registry.Define(specs); err != nil {
		m.logger.Error(err, "defining variables failed", "model", m.name)
		return err
	}
	m.invalidate()
	m.logger.V(1).Info("defined variables", "model", m.name, "count", len(specs), "total", m.registry.Len())
	return nil
}

// SetObjective builds the linear expression sum(coeff * variable) and
// replaces any existing objective. Repeated calls are idempotent-replacing,
// never additive. On failure the previously active objective is unchanged.
func (m *Model) SetObjective(coeffs map[string]float64) error {
	if len(coeffs) == 0 {
		err := fmt.Errorf("%w: objective coefficients must be a non-empty map", core.ErrInvalidInputType)
		m.logger.Error(err, "setting objective failed", "model", m.name)
		return err
	}
	for name, coeff := range coeffs {
		if !m.registry.Has(name) {
			err := fmt.Errorf("%w: %q in objective", core.ErrUnknownVariable, name)
			m.logger.Error(err, "setting objective failed", "model", m.name)
			return err
		}
		if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
			err := fmt.Errorf("%w: coefficient for %q is not finite", core.ErrMalformedEntry, name)
			m.logger.Error(err, "setting objective failed", "model", m.name)
			return err
		}
	}

	objective := make(map[string]float64, len(coeffs))
	for name, coeff := range coeffs {
		objective[name] = coeff
	}
	m.objective = objective
	m.invalidate()
	m.logger.V(1).Info("set objective", "model", m.name, "terms", len(objective))
	return nil
}

// AddConstraints appends a batch of constraints. The entire batch is
// validated before any mutation: if any single candidate fails, the whole
// batch is rejected and the constraint list is unchanged. Input order is
// preserved for deterministic reporting.
func (m *Model) AddConstraints(batch []core.ConstraintSpec) error {
	if len(batch) == 0 {
		err := fmt.Errorf("%w: constraint batch must be a non-empty sequence", core.ErrInvalidInputType)
		m.logger.Error(err, "adding constraints failed", "model", m.name)
		return err
	}
	for i, cons := range batch {
		if err := cons.Validate(m.registry); err != nil {
			err = fmt.Errorf("constraint %d: %w", i, err)
			m.logger.Error(err, "adding constraints failed", "model", m.name)
			return err
		}
	}

	for _, cons := range batch {
		m.constraints = append(m.constraints, cons.Clone())
	}
	m.invalidate()
	m.logger.V(1).Info("added constraints", "model", m.name, "batch", len(batch), "total", len(m.constraints))
	return nil
}

// Constraints returns the number of accepted constraints.
func (m *Model) Constraints() int { return len(m.constraints) }

// Solve snapshots the current formulation and hands it to the adapter.
// Adapter faults, timeouts, and panics never propagate: they are recorded
// as SolverFailure (or the distinguished TimedOut/Cancelled statuses) and
// reflected in the returned status. Infeasible and unbounded terminations
// are valid statuses, not faults.
func (m *Model) Solve(ctx context.Context) solver.Status {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	m.solution = nil
	m.objectiveValue = 0
	m.failureReason = ""

	f := &solver.Formulation{
		Sense:       m.sense,
		Variables:   m.registry.Variables(),
		Objective:   m.objective,
		Constraints: m.constraints,
	}

	solveCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	sol, err := m.invokeAdapter(solveCtx, f)
	switch {
	case err != nil:
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			m.status = solver.StatusTimedOut
		case errors.Is(err, context.Canceled):
			m.status = solver.StatusCancelled
		default:
			m.status = solver.StatusSolverFailure
		}
		m.failureReason = err.Error()
		m.logger.Error(err, "solve failed", "model", m.name, "status", m.status)
	case sol == nil:
		m.status = solver.StatusSolverFailure
		m.failureReason = "adapter returned no solution"
		m.logger.Error(nil, "solve failed", "model", m.name, "status", m.status)
	default:
		m.status = sol.Status
		if sol.Status == solver.StatusOptimal {
			m.objectiveValue = sol.Objective
			m.solution = sol.Values
		}
		m.logger.Info("solve completed",
			"model", m.name,
			"status", m.status,
			"objective", m.objectiveValue,
			"elapsed", time.Since(start))
	}

	metrics.ObserveSolve(string(m.status), time.Since(start))
	return m.status
}

// invokeAdapter shields the model from a panicking adapter.
func (m *Model) invokeAdapter(ctx context.Context, f *solver.Formulation) (sol *solver.Solution, err error) {
	defer func() {
		if r := recover(); r != nil {
			sol = nil
			err = fmt.Errorf("%w: adapter panic: %v", core.ErrSolverFailure, r)
		}
	}()
	return m.adapter.Solve(ctx, f)
}

// Status returns the status recorded by the last Solve, or StatusNotSolved
// if the formulation changed since.
func (m *Model) Status() solver.Status { return m.status }

// ObjectiveValue returns the optimal objective value. The second return is
// false unless the last solve reached Optimal.
func (m *Model) ObjectiveValue() (float64, bool) {
	if m.status != solver.StatusOptimal {
		return 0, false
	}
	return m.objectiveValue, true
}

// Results returns a copy of the per-variable solution mapping if the last
// Solve produced an optimal solution. Otherwise it returns nil and an error
// wrapping core.ErrNoSolution that reports why: no solve performed yet, or
// the last solve did not reach Optimal.
func (m *Model) Results() (map[string]float64, error) {
	switch {
	case m.status == solver.StatusNotSolved:
		return nil, fmt.Errorf("%w: model %q has not been solved", core.ErrNoSolution, m.name)
	case m.status != solver.StatusOptimal:
		if m.failureReason != "" {
			return nil, fmt.Errorf("%w: last solve of %q finished with status %s: %s",
				core.ErrNoSolution, m.name, m.status, m.failureReason)
		}
		return nil, fmt.Errorf("%w: last solve of %q finished with status %s",
			core.ErrNoSolution, m.name, m.status)
	}

	values := make(map[string]float64, len(m.solution))
	for name, value := range m.solution {
		values[name] = value
	}
	return values, nil
}

// Run orchestrates DefineVariables → SetObjective → AddConstraints → Solve
// → Results, short-circuiting on the first stage that fails. On any failure
// it returns a nil mapping and the stage's error; on full success it
// returns exactly what Results would return. An empty constraint batch
// leaves the constraint set unchanged rather than failing the run.
func (m *Model) Run(
	ctx context.Context,
	varSpecs map[string]core.VariableSpec,
	objCoeffs map[string]float64,
	batch []core.ConstraintSpec,
) (map[string]float64, error) {
	if err := m.DefineVariables(varSpecs); err != nil {
		return nil, err
	}
	if err := m.SetObjective(objCoeffs); err != nil {
		return nil, err
	}
	if len(batch) > 0 {
		if err := m.AddConstraints(batch); err != nil {
			return nil, err
		}
	}
	m.Solve(ctx)
	return m.Results()
}

// SetLogLevel adjusts the severity of this model's logger. Recognized
// levels are debug, info, warn, and error; an unrecognized level leaves the
// current level unchanged and is reported as an error. Models constructed
// with an externally supplied logger do not support level control.
func (m *Model) SetLogLevel(level string) error {
	if m.level == nil {
		return errors.New("log level control is not available for an externally supplied logger")
	}
	if err := m.level.Set(level); err != nil {
		m.logger.Error(err, "setting log level failed", "model", m.name)
		return err
	}
	m.logger.V(1).Info("set log level", "model", m.name, "level", level)
	return nil
}

// invalidate drops the result snapshot after a formulation change, so stale
// values can never be read against a newer formulation.
func (m *Model) invalidate() {
	m.status = solver.StatusNotSolved
	m.solution = nil
	m.objectiveValue = 0
	m.failureReason = ""
}

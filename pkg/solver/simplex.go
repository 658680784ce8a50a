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

package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ruleopt/rulesolver/pkg/core"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// DefaultMaxNodes bounds the branch-and-bound search tree.
	DefaultMaxNodes = 10000

	// DefaultIntTol is the tolerance for accepting a relaxation value as
	// integral.
	DefaultIntTol = 1e-9
)

// SimplexConfig holds configuration for the SimplexAdapter.
type SimplexConfig struct {
	// Tolerance is the simplex pivot tolerance; zero selects the engine
	// default.
	Tolerance float64

	// IntTol is the integrality tolerance for branch-and-bound.
	IntTol float64

	// MaxNodes is the branch-and-bound node budget. Exhausting it is a
	// solver fault, not a valid termination.
	MaxNodes int
}

// SimplexAdapter solves linear programs with gonum's simplex method.
// Formulations containing integer or binary variables are solved by
// branch-and-bound over LP relaxations.
type SimplexAdapter struct {
	config SimplexConfig
}

// NewSimplexAdapter creates a new SimplexAdapter instance. A nil config
// selects defaults.
func NewSimplexAdapter(config *SimplexConfig) *SimplexAdapter {
	cfg := SimplexConfig{}
	if config != nil {
		cfg = *config
	}
	if cfg.IntTol <= 0 {
		cfg.IntTol = DefaultIntTol
	}
	if cfg.MaxNodes <= 0 {
		cfg.MaxNodes = DefaultMaxNodes
	}
	return &SimplexAdapter{config: cfg}
}

// Solve implements Adapter.
func (s *SimplexAdapter) Solve(ctx context.Context, f *Formulation) (*Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := buildRelaxation(f)
	if err != nil {
		return nil, err
	}
	if rel.hasIntegers() {
		return s.solveMIP(ctx, rel)
	}

	x, obj, err := s.runSimplex(ctx, rel)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return &Solution{Status: StatusInfeasible}, nil
	case errors.Is(err, lp.ErrUnbounded):
		return &Solution{Status: StatusUnbounded}, nil
	case err != nil:
		return nil, err
	}
	return &Solution{Status: StatusOptimal, Objective: obj, Values: rel.valuesMap(x)}, nil
}

// runSimplex solves one relaxation, racing the engine against the context so
// a deadline cannot leave the caller blocked.
func (s *SimplexAdapter) runSimplex(ctx context.Context, rel *relaxation) ([]float64, float64, error) {
	type result struct {
		x   []float64
		obj float64
		err error
	}
	// buffered so an abandoned solve can still finish and be collected
	done := make(chan result, 1)
	go func() {
		x, obj, err := rel.solve(s.config.Tolerance)
		done <- result{x: x, obj: obj, err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	case r := <-done:
		return r.x, r.obj, r.err
	}
}

// relaxation is a formulation lowered to general LP form: minimize c'x
// subject to gRows·x <= h and aRows·x = b, with variable bounds already
// folded into gRows. The objective sign is flipped for maximization.
type relaxation struct {
	n        int
	names    []string
	maximize bool
	intMask  []bool

	c     []float64
	gRows [][]float64
	h     []float64
	aRows [][]float64
	b     []float64
}

func buildRelaxation(f *Formulation) (*relaxation, error) {
	if f == nil || len(f.Variables) == 0 {
		return nil, fmt.Errorf("%w: formulation has no variables", core.ErrInvalidInputType)
	}
	if !f.Sense.Valid() {
		return nil, fmt.Errorf("%w: unknown sense %q", core.ErrMalformedEntry, f.Sense)
	}

	n := len(f.Variables)
	rel := &relaxation{
		n:        n,
		names:    make([]string, n),
		maximize: f.Sense == core.Maximize,
		intMask:  make([]bool, n),
		c:        make([]float64, n),
	}
	index := make(map[string]int, n)
	for i, v := range f.Variables {
		rel.names[i] = v.Name
		index[v.Name] = i
		rel.intMask[i] = v.Category.Integral()
	}

	for name, coeff := range f.Objective {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q in objective", core.ErrUnknownVariable, name)
		}
		if rel.maximize {
			coeff = -coeff
		}
		rel.c[i] = coeff
	}

	for _, cons := range f.Constraints {
		row := make([]float64, n)
		for name, coeff := range cons.Expr {
			i, ok := index[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q in constraint expression", core.ErrUnknownVariable, name)
			}
			row[i] = coeff
		}
		switch cons.Op {
		case core.OpLessEqual:
			rel.addInequality(row, cons.RHS)
		case core.OpGreaterEqual:
			rel.addInequality(negate(row), -cons.RHS)
		case core.OpEqual:
			rel.aRows = append(rel.aRows, row)
			rel.b = append(rel.b, cons.RHS)
		default:
			return nil, fmt.Errorf("%w: %q", core.ErrInvalidOperator, cons.Op)
		}
	}

	// variable bounds become inequality rows; the standard-form conversion
	// below treats every variable as free
	for i, v := range f.Variables {
		lo, up := v.EffectiveBounds()
		if !math.IsInf(lo, -1) {
			row := make([]float64, n)
			row[i] = -1
			rel.addInequality(row, -lo)
		}
		if !math.IsInf(up, 1) {
			row := make([]float64, n)
			row[i] = 1
			rel.addInequality(row, up)
		}
	}

	return rel, nil
}

func (r *relaxation) addInequality(row []float64, rhs float64) {
	r.gRows = append(r.gRows, row)
	r.h = append(r.h, rhs)
}

func (r *relaxation) hasIntegers() bool {
	for _, isInt := range r.intMask {
		if isInt {
			return true
		}
	}
	return false
}

// withBound returns a copy of the relaxation with the branch cut
// factor*x_col <= limit appended.
func (r *relaxation) withBound(col int, factor, limit float64) *relaxation {
	child := *r
	row := make([]float64, r.n)
	row[col] = factor
	// full slice expressions force append to copy, so sibling nodes never
	// share cut rows
	child.gRows = append(r.gRows[:len(r.gRows):len(r.gRows)], row)
	child.h = append(r.h[:len(r.h):len(r.h)], limit)
	return &child
}

// solve converts the relaxation to standard form and runs the simplex
// method. Every variable x_i is split into nonnegative parts x_i = p_i - n_i
// and each inequality row gains a slack column, following the classic
// general-to-standard-form reduction. The returned objective is in the
// formulation's own sense.
func (r *relaxation) solve(tol float64) ([]float64, float64, error) {
	nIneq := len(r.gRows)
	nEq := len(r.aRows)
	rows := nEq + nIneq
	cols := 2*r.n + nIneq

	if rows == 0 {
		// no constraints and no finite bounds: any nonzero objective
		// coefficient makes the problem unbounded
		for _, ci := range r.c {
			if ci != 0 {
				return nil, 0, lp.ErrUnbounded
			}
		}
		return make([]float64, r.n), 0, nil
	}

	cStd := make([]float64, cols)
	copy(cStd, r.c)
	for i, ci := range r.c {
		cStd[r.n+i] = -ci
	}

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	for i, row := range r.aRows {
		for j, v := range row {
			a.Set(i, j, v)
			a.Set(i, r.n+j, -v)
		}
		b[i] = r.b[i]
	}
	for i, row := range r.gRows {
		ri := nEq + i
		for j, v := range row {
			a.Set(ri, j, v)
			a.Set(ri, r.n+j, -v)
		}
		a.Set(ri, 2*r.n+i, 1)
		b[ri] = r.h[i]
	}

	obj, xStd, err := lp.Simplex(cStd, a, b, tol, nil)
	if err != nil {
		return nil, 0, err
	}

	x := make([]float64, r.n)
	for i := range x {
		x[i] = xStd[i] - xStd[r.n+i]
	}
	if r.maximize {
		obj = -obj
	}
	return x, obj, nil
}

func (r *relaxation) valuesMap(x []float64) map[string]float64 {
	values := make(map[string]float64, r.n)
	for i, name := range r.names {
		values[name] = x[i]
	}
	return values
}

func negate(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = -v
	}
	return out
}

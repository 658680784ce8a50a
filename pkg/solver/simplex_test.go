package solver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruleopt/rulesolver/pkg/core"
)

func formulation(t *testing.T, sense core.Sense, specs map[string]core.VariableSpec, obj map[string]float64, cons []core.ConstraintSpec) *Formulation {
	t.Helper()
	reg := core.NewVariableRegistry()
	require.NoError(t, reg.Define(specs))
	return &Formulation{
		Sense:       sense,
		Variables:   reg.Variables(),
		Objective:   obj,
		Constraints: cons,
	}
}

func TestSimplexOptimal(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x1": core.Continuous(0, math.Inf(1)),
			"x2": core.Continuous(0, math.Inf(1)),
		},
		map[string]float64{"x1": 1, "x2": 2},
		[]core.ConstraintSpec{
			core.NewConstraint(map[string]float64{"x1": 1, "x2": 1}, core.OpLessEqual, 10),
		},
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 20, sol.Objective, 1e-6)
	assert.InDelta(t, 0, sol.Values["x1"], 1e-6)
	assert.InDelta(t, 10, sol.Values["x2"], 1e-6)
}

func TestSimplexMinimize(t *testing.T) {
	f := formulation(t, core.Minimize,
		map[string]core.VariableSpec{
			"x1": core.Continuous(0, math.Inf(1)),
			"x2": core.Continuous(0, math.Inf(1)),
		},
		map[string]float64{"x1": 3, "x2": 5},
		[]core.ConstraintSpec{
			core.NewConstraint(map[string]float64{"x1": 1, "x2": 1}, core.OpGreaterEqual, 4),
		},
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 12, sol.Objective, 1e-6)
	assert.InDelta(t, 4, sol.Values["x1"], 1e-6)
}

func TestSimplexEquality(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x1": core.Continuous(0, 10),
		},
		map[string]float64{"x1": 1},
		[]core.ConstraintSpec{
			core.NewConstraint(map[string]float64{"x1": 1}, core.OpEqual, 3),
		},
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 3, sol.Objective, 1e-6)
}

func TestSimplexInfeasible(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x1": core.Continuous(0, math.Inf(1)),
		},
		map[string]float64{"x1": 1},
		[]core.ConstraintSpec{
			core.NewConstraint(map[string]float64{"x1": 1}, core.OpLessEqual, -1),
		},
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestSimplexUnbounded(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x1": core.Continuous(0, math.Inf(1)),
		},
		map[string]float64{"x1": 1},
		nil,
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, StatusUnbounded, sol.Status)
}

func TestBranchAndBoundInteger(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x": core.Integer(0, 10),
		},
		map[string]float64{"x": 1},
		[]core.ConstraintSpec{
			core.NewConstraint(map[string]float64{"x": 2}, core.OpLessEqual, 7),
		},
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 3, sol.Objective, 1e-6)
	assert.InDelta(t, 3, sol.Values["x"], 1e-6)
}

func TestBranchAndBoundTwoVariables(t *testing.T) {
	// LP relaxation peaks fractionally at (5/3, 7/6); the integer optimum
	// has value 2
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x1": core.Integer(0, math.Inf(1)),
			"x2": core.Integer(0, math.Inf(1)),
		},
		map[string]float64{"x1": 1, "x2": 1},
		[]core.ConstraintSpec{
			core.NewConstraint(map[string]float64{"x1": 1, "x2": 2}, core.OpLessEqual, 4),
			core.NewConstraint(map[string]float64{"x1": 4, "x2": 2}, core.OpLessEqual, 9),
		},
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 2, sol.Objective, 1e-6)
}

func TestBranchAndBoundBinary(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"a": core.Binary(),
			"b": core.Binary(),
			"c": core.Binary(),
		},
		map[string]float64{"a": 1, "b": 1, "c": 1},
		[]core.ConstraintSpec{
			core.NewConstraint(map[string]float64{"a": 1, "b": 1, "c": 1}, core.OpLessEqual, 2),
		},
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 2, sol.Objective, 1e-6)
}

func TestBranchAndBoundInfeasible(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x": core.Integer(0, 10),
		},
		map[string]float64{"x": 1},
		[]core.ConstraintSpec{
			core.NewConstraint(map[string]float64{"x": 2}, core.OpEqual, 7),
		},
	)

	sol, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, sol.Status)
}

func TestSolveCancelledContext(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x": core.Continuous(0, 1),
		},
		map[string]float64{"x": 1},
		nil,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSimplexAdapter(nil).Solve(ctx, f)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveRejectsDanglingObjective(t *testing.T) {
	f := formulation(t, core.Maximize,
		map[string]core.VariableSpec{
			"x": core.Continuous(0, 1),
		},
		map[string]float64{"y": 1},
		nil,
	)

	_, err := NewSimplexAdapter(nil).Solve(context.Background(), f)
	assert.ErrorIs(t, err, core.ErrUnknownVariable)
}

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

	"github.com/ruleopt/rulesolver/pkg/core"
)

// Status is the terminal state of a solve attempt.
type Status string

const (
	// StatusNotSolved means no solve has been performed on the current
	// formulation.
	StatusNotSolved Status = "NotSolved"

	// StatusOptimal means the engine proved an optimal solution.
	StatusOptimal Status = "Optimal"

	// StatusInfeasible means no assignment satisfies the constraints.
	StatusInfeasible Status = "Infeasible"

	// StatusUnbounded means the objective can be improved without limit.
	StatusUnbounded Status = "Unbounded"

	// StatusSolverFailure means the engine faulted; no result is available.
	StatusSolverFailure Status = "SolverFailure"

	// StatusTimedOut means the solve exceeded its deadline.
	StatusTimedOut Status = "TimedOut"

	// StatusCancelled means the solve was cancelled cooperatively.
	StatusCancelled Status = "Cancelled"
)

// Formulation is the immutable snapshot of a model handed to an adapter.
// Variables carry a deterministic order; Objective and Constraints reference
// variables only by names present in Variables.
type Formulation struct {
	Sense       core.Sense
	Variables   []core.Variable
	Objective   map[string]float64
	Constraints []core.ConstraintSpec
}

// Solution is the outcome of a solve attempt. Objective and Values are
// populated only when Status is StatusOptimal.
type Solution struct {
	Status    Status
	Objective float64
	Values    map[string]float64
}

// Adapter is the boundary to an optimization engine. Implementations honor
// ctx cancellation and deadlines cooperatively, return Infeasible/Unbounded
// as Solution statuses with a nil error, and reserve the error return for
// genuine faults.
type Adapter interface {
	Solve(ctx context.Context, f *Formulation) (*Solution, error)
}

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

// Package model builds linear programs from rule-based decision logic and
// orchestrates solving them.
//
// A Model owns a variable registry, at most one linear objective, and an
// ordered constraint list. The calling sequence is strictly linear:
//
//	DefineVariables → SetObjective → AddConstraints → Solve → Results
//
// Every mutating call is atomic: a batch either passes validation in full
// and is applied, or the model is left exactly as it was. SetObjective
// replaces any previously set objective rather than accumulating. Run
// composes the full sequence and short-circuits on the first stage that
// fails.
//
// Example usage:
//
//	m, err := model.New("allocation", core.Maximize)
//	if err != nil { ... }
//
//	values, err := m.Run(ctx,
//	    map[string]core.VariableSpec{
//	        "x1": core.Continuous(0, math.Inf(1)),
//	        "x2": core.Continuous(0, math.Inf(1)),
//	    },
//	    map[string]float64{"x1": 1, "x2": 2},
//	    []core.ConstraintSpec{
//	        core.NewConstraint(map[string]float64{"x1": 1, "x2": 1}, core.OpLessEqual, 10),
//	    },
//	)
//
// Solve never propagates an adapter fault: faults, timeouts, and panics are
// converted into the SolverFailure status, and Results reports why no
// result is available. Infeasible and unbounded formulations are valid
// terminal statuses, not faults.
//
// A Model is not safe for concurrent use; callers needing concurrency run
// one Model per logical decision request.
package model

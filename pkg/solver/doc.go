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

// Package solver defines the adapter boundary to external optimization
// engines and provides the default pure-Go simplex adapter.
//
// Key Components:
//
//   - Adapter: the interface a solving engine implements
//   - Formulation / Solution: the immutable exchange types across the boundary
//   - SimplexAdapter: the default engine, built on gonum's simplex method
//     with floor/ceil branch-and-bound for integer and binary variables
//
// Status Semantics:
//
// Infeasible and unbounded terminations are valid solver outcomes and are
// reported in Solution.Status with a nil error. An error return is reserved
// for genuine faults: context cancellation, numerical breakdown, or an
// exhausted branch-and-bound node budget. The model layer converts errors
// into its SolverFailure status; adapters never panic across the boundary
// by contract, and the model layer guards against it regardless.
//
// Example usage:
//
//	adapter := solver.NewSimplexAdapter(nil)
//	sol, err := adapter.Solve(ctx, formulation)
//	if err != nil {
//	    // fault: timed out, cancelled, or numerical failure
//	}
//	switch sol.Status {
//	case solver.StatusOptimal:
//	    // sol.Objective and sol.Values are populated
//	case solver.StatusInfeasible, solver.StatusUnbounded:
//	    // valid terminal outcomes, no values
//	}
//
// The solver package is designed to be:
//   - Deterministic: same formulation produces the same solution
//   - Cooperative: the context is honored between branch-and-bound nodes
//   - Extensible: interface-based for alternative engines
package solver

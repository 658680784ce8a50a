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

package core

import "errors"

// Sentinel errors for formulation validation. Every validation failure
// returned by this module wraps one of these, so callers distinguish
// failure classes with errors.Is rather than string matching.
var (
	// ErrInvalidInputType reports an input container of the wrong shape,
	// such as a nil variable map or an empty constraint batch.
	ErrInvalidInputType = errors.New("invalid input type")

	// ErrMalformedEntry reports a structurally broken entry within an
	// otherwise well-shaped batch: inverted or NaN bounds, an unknown
	// variable category, an empty variable name, or a redefinition.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrUnknownVariable reports a reference to a variable that was never
	// defined in the registry.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrInvalidOperator reports a relational operator outside {<=, >=, =}.
	ErrInvalidOperator = errors.New("invalid relational operator")

	// ErrInvalidRHS reports a non-finite constraint right-hand side.
	ErrInvalidRHS = errors.New("invalid right-hand side")

	// ErrSolverFailure reports a fault raised by the solver adapter, as
	// opposed to a valid infeasible or unbounded termination.
	ErrSolverFailure = errors.New("solver failure")

	// ErrNoSolution is returned when results are requested but the last
	// solve did not produce an optimal solution.
	ErrNoSolution = errors.New("no solution available")
)

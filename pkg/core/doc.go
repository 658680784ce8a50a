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

// Package core provides the fundamental data structures for linear-program
// formulations built from rule-based decision logic.
//
// This package contains the domain model shared by the model builder and the
// solver adapters:
//
//   - VariableSpec / Variable: decision variables with bounds and a category
//     (continuous, integer, or binary)
//   - VariableRegistry: the set of declared variables, unique by name
//   - ConstraintSpec: a linear expression related to a scalar right-hand side
//   - Sense / Operator / Category: the enumerations of a formulation
//
// All specs are validated up front: a VariableSpec rejects inverted or NaN
// bounds at definition time, and a ConstraintSpec rejects dangling variable
// references, unknown relational operators, and non-finite right-hand sides
// before any mutation takes place. Failures are reported as errors wrapping
// the sentinels in errors.go so callers can branch with errors.Is.
//
// Example usage:
//
//	reg := core.NewVariableRegistry()
//	err := reg.Define(map[string]core.VariableSpec{
//	    "x1": core.Continuous(0, math.Inf(1)),
//	    "x2": core.Continuous(0, math.Inf(1)),
//	})
//	if err != nil {
//	    // the registry is unchanged; no partial batch was applied
//	}
//
// The core package is designed to be:
//   - Immutable where possible (specs are value types)
//   - Independent of any solver engine (pure domain logic)
//   - Strict about validation before mutation
package core

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

import (
	"fmt"
	"sort"
)

// VariableRegistry owns the set of declared decision variables of a model.
// Names are unique; a variable is immutable once defined.
//
// The registry is not safe for concurrent use. Each model owns its registry
// exclusively and callers needing concurrent access serialize externally.
type VariableRegistry struct {
	vars map[string]Variable
}

// NewVariableRegistry returns an empty registry.
func NewVariableRegistry() *VariableRegistry {
	return &VariableRegistry{vars: make(map[string]Variable)}
}

// Define adds one variable per entry in specs. The whole batch is validated
// before any mutation: on any failure the registry is left exactly as it was,
// and the returned error wraps the sentinel describing the first defect
// found. Redefining an existing name is rejected.
func (r *VariableRegistry) Define(specs map[string]VariableSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("%w: variable specs must be a non-empty map", ErrInvalidInputType)
	}

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	// deterministic validation order so the reported defect is stable
	sort.Strings(names)

	for _, name := range names {
		if name == "" {
			return fmt.Errorf("%w: variable name must not be empty", ErrMalformedEntry)
		}
		if _, exists := r.vars[name]; exists {
			return fmt.Errorf("%w: variable %q already defined", ErrMalformedEntry, name)
		}
		if err := specs[name].Validate(); err != nil {
			return fmt.Errorf("variable %q: %w", name, err)
		}
	}

	for _, name := range names {
		r.vars[name] = Variable{Name: name, VariableSpec: specs[name]}
	}
	return nil
}

// Has reports whether a variable with the given name is defined.
func (r *VariableRegistry) Has(name string) bool {
	_, ok := r.vars[name]
	return ok
}

// Get returns the variable with the given name, if defined.
func (r *VariableRegistry) Get(name string) (Variable, bool) {
	v, ok := r.vars[name]
	return v, ok
}

// Len returns the number of defined variables.
func (r *VariableRegistry) Len() int {
	return len(r.vars)
}

// Names returns the defined variable names in sorted order.
func (r *VariableRegistry) Names() []string {
	names := make([]string, 0, len(r.vars))
	for name := range r.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variables returns the defined variables sorted by name, giving adapters a
// deterministic column order.
func (r *VariableRegistry) Variables() []Variable {
	names := r.Names()
	vars := make([]Variable, len(names))
	for i, name := range names {
		vars[i] = r.vars[name]
	}
	return vars
}

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
	"fmt"

	"github.com/ruleopt/rulesolver/pkg/config"
	"github.com/ruleopt/rulesolver/pkg/core"
)

// NewFromFormulation builds a fully populated Model from a declarative
// formulation, ready to Solve. The formulation was already validated at
// parse time, so a failure here indicates an internal inconsistency.
func NewFromFormulation(f *config.Formulation, opts ...Option) (*Model, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: formulation must not be nil", core.ErrInvalidInputType)
	}

	m, err := New(f.Name, f.Sense, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.DefineVariables(f.Variables); err != nil {
		return nil, err
	}
	if len(f.Objective) > 0 {
		if err := m.SetObjective(f.Objective); err != nil {
			return nil, err
		}
	}
	if len(f.Constraints) > 0 {
		if err := m.AddConstraints(f.Constraints); err != nil {
			return nil, err
		}
	}
	return m, nil
}

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

package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ruleopt/rulesolver/pkg/core"
)

// Formulation is a declarative model description parsed from YAML, ready to
// feed into a model's Run call.
type Formulation struct {
	Name        string
	Sense       core.Sense
	Variables   map[string]core.VariableSpec
	Objective   map[string]float64
	Constraints []core.ConstraintSpec
}

// formulationDoc mirrors the YAML document shape. Bounds are pointers so a
// missing side can default to unbounded.
type formulationDoc struct {
	Name        string                   `yaml:"name"`
	Sense       string                   `yaml:"sense"`
	Variables   map[string]variableEntry `yaml:"variables"`
	Objective   map[string]float64       `yaml:"objective"`
	Constraints []constraintEntry        `yaml:"constraints"`
}

type variableEntry struct {
	Lower    *float64 `yaml:"lower"`
	Upper    *float64 `yaml:"upper"`
	Category string   `yaml:"category"`
}

type constraintEntry struct {
	Expr map[string]float64 `yaml:"expr"`
	Op   string             `yaml:"op"`
	RHS  float64            `yaml:"rhs"`
}

// ParseFormulation parses and validates one YAML formulation document.
// A document that fails validation is rejected as a whole.
func ParseFormulation(data []byte) (*Formulation, error) {
	doc := formulationDoc{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing formulation: %v", core.ErrInvalidInputType, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("%w: formulation name must not be empty", core.ErrMalformedEntry)
	}

	sense := core.Sense(doc.Sense)
	if !sense.Valid() {
		return nil, fmt.Errorf("%w: sense must be maximize or minimize, got %q", core.ErrMalformedEntry, doc.Sense)
	}
	if len(doc.Variables) == 0 {
		return nil, fmt.Errorf("%w: formulation declares no variables", core.ErrInvalidInputType)
	}

	out := &Formulation{
		Name:      doc.Name,
		Sense:     sense,
		Variables: make(map[string]core.VariableSpec, len(doc.Variables)),
		Objective: doc.Objective,
	}

	for name, entry := range doc.Variables {
		spec := core.VariableSpec{
			Lower:    math.Inf(-1),
			Upper:    math.Inf(1),
			Category: core.CategoryContinuous,
		}
		if entry.Lower != nil {
			spec.Lower = *entry.Lower
		}
		if entry.Upper != nil {
			spec.Upper = *entry.Upper
		}
		if entry.Category != "" {
			spec.Category = core.Category(entry.Category)
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		out.Variables[name] = spec
	}

	// validate constraints against the declared variables so a broken
	// document is caught at load time, not at model-build time
	reg := core.NewVariableRegistry()
	if err := reg.Define(out.Variables); err != nil {
		return nil, err
	}
	for name := range doc.Objective {
		if !reg.Has(name) {
			return nil, fmt.Errorf("%w: %q in objective", core.ErrUnknownVariable, name)
		}
	}
	for i, entry := range doc.Constraints {
		cons := core.NewConstraint(entry.Expr, core.Operator(entry.Op), entry.RHS)
		if err := cons.Validate(reg); err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		out.Constraints = append(out.Constraints, cons)
	}

	return out, nil
}

// LoadFormulation reads and parses a YAML formulation file.
func LoadFormulation(path string) (*Formulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading formulation file %q: %w", path, err)
	}
	return ParseFormulation(data)
}

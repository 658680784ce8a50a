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
	"math"
)

// Sense is the optimization direction of a formulation.
type Sense string

const (
	Maximize Sense = "maximize"
	Minimize Sense = "minimize"
)

// Valid reports whether the sense is a recognized optimization direction.
func (s Sense) Valid() bool {
	return s == Maximize || s == Minimize
}

// Category is the domain type of a decision variable.
type Category string

const (
	// CategoryContinuous variables take any real value within bounds.
	CategoryContinuous Category = "continuous"

	// CategoryInteger variables take integral values within bounds.
	CategoryInteger Category = "integer"

	// CategoryBinary variables take the values 0 or 1.
	CategoryBinary Category = "binary"
)

// Valid reports whether the category is one of the recognized domains.
func (c Category) Valid() bool {
	switch c {
	case CategoryContinuous, CategoryInteger, CategoryBinary:
		return true
	}
	return false
}

// Integral reports whether the category constrains the variable to
// integral values.
func (c Category) Integral() bool {
	return c == CategoryInteger || c == CategoryBinary
}

// Operator is the relational operator of a linear constraint.
type Operator string

const (
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
	OpEqual        Operator = "="
)

// Valid reports whether the operator is one of <=, >=, =.
func (o Operator) Valid() bool {
	switch o {
	case OpLessEqual, OpGreaterEqual, OpEqual:
		return true
	}
	return false
}

// VariableSpec declares the bounds and category of a decision variable.
// Unbounded sides are expressed as math.Inf(-1) and math.Inf(1).
type VariableSpec struct {
	Lower    float64
	Upper    float64
	Category Category
}

// Continuous returns a spec for a continuous variable on [lower, upper].
func Continuous(lower, upper float64) VariableSpec {
	return VariableSpec{Lower: lower, Upper: upper, Category: CategoryContinuous}
}

// Integer returns a spec for an integer variable on [lower, upper].
func Integer(lower, upper float64) VariableSpec {
	return VariableSpec{Lower: lower, Upper: upper, Category: CategoryInteger}
}

// Binary returns a spec for a 0/1 variable.
func Binary() VariableSpec {
	return VariableSpec{Lower: 0, Upper: 1, Category: CategoryBinary}
}

// Validate checks the spec for structural defects.
func (s VariableSpec) Validate() error {
	if !s.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrMalformedEntry, s.Category)
	}
	if math.IsNaN(s.Lower) || math.IsNaN(s.Upper) {
		return fmt.Errorf("%w: bounds must not be NaN", ErrMalformedEntry)
	}
	lo, up := s.EffectiveBounds()
	if lo > up {
		return fmt.Errorf("%w: lower bound %v exceeds upper bound %v", ErrMalformedEntry, lo, up)
	}
	return nil
}

// EffectiveBounds returns the bounds actually enforced during a solve.
// Binary variables are clamped to [0, 1] regardless of the declared bounds.
func (s VariableSpec) EffectiveBounds() (lower, upper float64) {
	lower, upper = s.Lower, s.Upper
	if s.Category == CategoryBinary {
		lower = math.Max(lower, 0)
		upper = math.Min(upper, 1)
	}
	return lower, upper
}

// Variable is a declared decision variable. It is immutable once defined
// within a model's lifetime.
type Variable struct {
	Name string
	VariableSpec
}

// ConstraintSpec is a linear constraint: Expr related to RHS by Op.
// The expression maps variable names to real coefficients.
type ConstraintSpec struct {
	Expr map[string]float64
	Op   Operator
	RHS  float64
}

// NewConstraint builds a ConstraintSpec from its three elements.
func NewConstraint(expr map[string]float64, op Operator, rhs float64) ConstraintSpec {
	return ConstraintSpec{Expr: expr, Op: op, RHS: rhs}
}

// Validate checks the constraint against the registry. Every referenced
// variable must already be defined; the operator must be one of <=, >=, =;
// the right-hand side must be a finite number.
func (c ConstraintSpec) Validate(reg *VariableRegistry) error {
	if len(c.Expr) == 0 {
		return fmt.Errorf("%w: constraint expression must be a non-empty map", ErrInvalidInputType)
	}
	for name, coeff := range c.Expr {
		if !reg.Has(name) {
			return fmt.Errorf("%w: %q referenced in constraint expression", ErrUnknownVariable, name)
		}
		if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
			return fmt.Errorf("%w: coefficient for %q is not finite", ErrMalformedEntry, name)
		}
	}
	if !c.Op.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOperator, c.Op)
	}
	if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRHS, c.RHS)
	}
	return nil
}

// Clone returns a deep copy of the constraint, so that later mutation of
// the caller's expression map cannot alter an accepted constraint.
func (c ConstraintSpec) Clone() ConstraintSpec {
	expr := make(map[string]float64, len(c.Expr))
	for name, coeff := range c.Expr {
		expr[name] = coeff
	}
	return ConstraintSpec{Expr: expr, Op: c.Op, RHS: c.RHS}
}

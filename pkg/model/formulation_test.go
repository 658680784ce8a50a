package model

import (
	"context"
	"math"
	"testing"

	"github.com/ruleopt/rulesolver/pkg/config"
	"github.com/ruleopt/rulesolver/pkg/solver"
)

func TestNewFromFormulation(t *testing.T) {
	doc := `
name: allocation
sense: maximize
variables:
  x1:
    lower: 0
  x2:
    lower: 0
objective:
  x1: 1
  x2: 2
constraints:
  - expr:
      x1: 1
      x2: 1
    op: "<="
    rhs: 10
`
	f, err := config.ParseFormulation([]byte(doc))
	if err != nil {
		t.Fatalf("ParseFormulation() unexpected error: %v", err)
	}

	m, err := NewFromFormulation(f)
	if err != nil {
		t.Fatalf("NewFromFormulation() unexpected error: %v", err)
	}
	if status := m.Solve(context.Background()); status != solver.StatusOptimal {
		t.Fatalf("Solve() status = %v, want Optimal", status)
	}

	obj, ok := m.ObjectiveValue()
	if !ok {
		t.Fatal("ObjectiveValue() ok = false, want true")
	}
	if math.Abs(obj-20) > 1e-6 {
		t.Errorf("objective = %v, want 20", obj)
	}
}

func TestNewFromFormulationNil(t *testing.T) {
	if _, err := NewFromFormulation(nil); err == nil {
		t.Error("NewFromFormulation(nil) error = nil, want error")
	}
}

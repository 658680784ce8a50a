package model

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ruleopt/rulesolver/internal/logging"
	"github.com/ruleopt/rulesolver/pkg/core"
	"github.com/ruleopt/rulesolver/pkg/solver"
)

var _ = Describe("Model end to end", func() {
	var m *Model

	BeforeEach(func() {
		var err error
		m, err = New("e2e", core.Maximize, WithLogger(logging.NewTestLogger()))
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with a bounded feasible formulation", func() {
		It("should reach the optimal vertex", func() {
			values, err := m.Run(context.Background(),
				map[string]core.VariableSpec{
					"x1": core.Continuous(0, math.Inf(1)),
					"x2": core.Continuous(0, math.Inf(1)),
				},
				map[string]float64{"x1": 1, "x2": 2},
				[]core.ConstraintSpec{
					core.NewConstraint(map[string]float64{"x1": 1, "x2": 1}, core.OpLessEqual, 10),
				},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Status()).To(Equal(solver.StatusOptimal))

			obj, ok := m.ObjectiveValue()
			Expect(ok).To(BeTrue())
			Expect(obj).To(BeNumerically("~", 20, 1e-6))
			Expect(values["x1"]).To(BeNumerically("~", 0, 1e-6))
			Expect(values["x2"]).To(BeNumerically("~", 10, 1e-6))
		})

		It("should solve without constraints when bounds close the feasible region", func() {
			values, err := m.Run(context.Background(),
				map[string]core.VariableSpec{"x": core.Continuous(0, 1)},
				map[string]float64{"x": 3},
				nil,
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(values["x"]).To(BeNumerically("~", 1, 1e-6))
		})
	})

	Context("with an infeasible formulation", func() {
		It("should report the Infeasible status and no results", func() {
			Expect(m.DefineVariables(map[string]core.VariableSpec{
				"x": core.Continuous(0, math.Inf(1)),
			})).To(Succeed())
			Expect(m.SetObjective(map[string]float64{"x": 1})).To(Succeed())
			Expect(m.AddConstraints([]core.ConstraintSpec{
				core.NewConstraint(map[string]float64{"x": 1}, core.OpLessEqual, -1),
			})).To(Succeed())

			Expect(m.Solve(context.Background())).To(Equal(solver.StatusInfeasible))
			_, err := m.Results()
			Expect(err).To(MatchError(core.ErrNoSolution))
		})
	})

	Context("with an integer formulation", func() {
		It("should round down to the integer optimum", func() {
			values, err := m.Run(context.Background(),
				map[string]core.VariableSpec{"x": core.Integer(0, 10)},
				map[string]float64{"x": 1},
				[]core.ConstraintSpec{
					core.NewConstraint(map[string]float64{"x": 2}, core.OpLessEqual, 7),
				},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(values["x"]).To(BeNumerically("~", 3, 1e-6))
		})
	})

	Context("when the formulation changes after a solve", func() {
		It("should invalidate the previous snapshot", func() {
			_, err := m.Run(context.Background(),
				map[string]core.VariableSpec{"x": core.Continuous(0, 1)},
				map[string]float64{"x": 1},
				nil,
			)
			Expect(err).NotTo(HaveOccurred())

			Expect(m.AddConstraints([]core.ConstraintSpec{
				core.NewConstraint(map[string]float64{"x": 1}, core.OpLessEqual, 0.5),
			})).To(Succeed())
			Expect(m.Status()).To(Equal(solver.StatusNotSolved))

			Expect(m.Solve(context.Background())).To(Equal(solver.StatusOptimal))
			values, err := m.Results()
			Expect(err).NotTo(HaveOccurred())
			Expect(values["x"]).To(BeNumerically("~", 0.5, 1e-6))
		})
	})
})

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

package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

// boundEps guards incumbent comparisons against simplex round-off.
const boundEps = 1e-9

// solveMIP runs floor/ceil branch-and-bound over LP relaxations. Each node
// is the parent relaxation plus one branch cut; a node is pruned when its
// relaxation is infeasible, when its bound cannot beat the incumbent, and a
// node whose relaxation is already integral becomes the new incumbent.
func (s *SimplexAdapter) solveMIP(ctx context.Context, root *relaxation) (*Solution, error) {
	stack := []*relaxation{root}
	var bestX []float64
	var bestObj float64
	haveBest := false
	nodes := 0

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nodes++
		if nodes > s.config.MaxNodes {
			return nil, fmt.Errorf("branch-and-bound node budget exhausted after %d nodes", s.config.MaxNodes)
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x, obj, err := s.runSimplex(ctx, cur)
		if err != nil {
			if errors.Is(err, lp.ErrInfeasible) {
				continue
			}
			if errors.Is(err, lp.ErrUnbounded) {
				if nodes == 1 {
					// unbounded LP relaxation at the root: the integer
					// program is unbounded as well
					return &Solution{Status: StatusUnbounded}, nil
				}
				continue
			}
			return nil, err
		}

		// the relaxation value bounds everything in this subtree
		if haveBest && !improves(obj, bestObj, cur.maximize) {
			continue
		}

		branchOn := mostFractional(x, cur.intMask, s.config.IntTol)
		if branchOn < 0 {
			roundIntegral(x, cur.intMask)
			if !haveBest || improves(obj, bestObj, cur.maximize) {
				bestX = x
				bestObj = obj
				haveBest = true
			}
			continue
		}

		// left branch: x <= floor(v); right branch: x >= ceil(v), expressed
		// as -x <= -ceil(v)
		stack = append(stack,
			cur.withBound(branchOn, 1, math.Floor(x[branchOn])),
			cur.withBound(branchOn, -1, -math.Ceil(x[branchOn])),
		)
	}

	if !haveBest {
		return &Solution{Status: StatusInfeasible}, nil
	}
	return &Solution{Status: StatusOptimal, Objective: bestObj, Values: root.valuesMap(bestX)}, nil
}

// improves reports whether obj beats best in the given sense by more than
// round-off.
func improves(obj, best float64, maximize bool) bool {
	if maximize {
		return obj > best+boundEps
	}
	return obj < best-boundEps
}

// mostFractional returns the index of the integral variable farthest from an
// integer value, or -1 when the point satisfies all integrality constraints.
func mostFractional(x []float64, intMask []bool, intTol float64) int {
	best := -1
	bestDist := intTol
	for i, v := range x {
		if !intMask[i] {
			continue
		}
		dist := math.Abs(v - math.Round(v))
		if dist > bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// roundIntegral snaps near-integral relaxation values exactly onto integers.
func roundIntegral(x []float64, intMask []bool) {
	for i := range x {
		if intMask[i] {
			x[i] = math.Round(x[i])
		}
	}
}

// Variable Neighborhood Descent.
//
// VND drives the neighborhood operators in a fixed priority order:
//
//	N1 (2-opt intra) → N5 (merge) → N2 (relocate) → N3 (swap) →
//	N4 (2-opt inter) → [N6 (Or-opt), when enabled]
//
// Cheap structural moves sit first so they are exhausted before the
// expensive inter-route scans ever run: any improvement resets the
// descent to the first neighborhood. An improvement is a cost drop
// beyond the acceptance tolerance, or an equal-cost state with fewer
// routes. VND terminates when the last neighborhood fails to improve,
// at which point the result is a joint local optimum of every listed
// neighborhood (so re-running VND on its own output is a no-op).

package vns

import (
	"fmt"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// vndNeighborhood pairs an operator closure with its trace label.
type vndNeighborhood struct {
	name  string
	apply func(cvrp.Solution) cvrp.Solution
}

// Descend runs VND on the given solution and returns the locally
// optimal result. The input is never mutated. tr may be nil.
func Descend(sol cvrp.Solution, demands []int, capacity int, dist *cvrp.Matrix, eps float64, useOrOpt bool, tr *Trace) cvrp.Solution {
	neighborhoods := []vndNeighborhood{
		{"2-opt intra", func(s cvrp.Solution) cvrp.Solution {
			return TwoOptIntra(s, dist, eps)
		}},
		{"Merge routes", func(s cvrp.Solution) cvrp.Solution {
			return MergeRoutes(s, demands, capacity, dist, eps)
		}},
		{"Relocate", func(s cvrp.Solution) cvrp.Solution {
			return RelocateInter(s, demands, capacity, dist, eps)
		}},
		{"Swap", func(s cvrp.Solution) cvrp.Solution {
			return SwapInter(s, demands, capacity, dist, eps)
		}},
		{"2-opt inter", func(s cvrp.Solution) cvrp.Solution {
			return TwoOptInter(s, demands, capacity, dist, eps)
		}},
	}
	if useOrOpt {
		neighborhoods = append(neighborhoods, vndNeighborhood{
			"Or-opt", func(s cvrp.Solution) cvrp.Solution {
				return OrOpt(s, demands, capacity, dist, eps)
			},
		})
	}

	cur := sol.Clone()

	var (
		k                  int
		oldCost, newCost   float64
		oldRoutes, nRoutes int
		next               cvrp.Solution
		costImproved       bool
		routesReduced      bool
	)
	for k < len(neighborhoods) {
		oldCost = cvrp.SolutionCost(cur, dist)
		oldRoutes = len(cur)

		next = neighborhoods[k].apply(cur)
		newCost = cvrp.SolutionCost(next, dist)
		nRoutes = len(next)

		costImproved = newCost < oldCost-acceptTol
		routesReduced = abs(newCost-oldCost) < acceptTol && nRoutes < oldRoutes

		if costImproved || routesReduced {
			cur = next
			if tr != nil && costImproved {
				tr.Add(cur, newCost,
					fmt.Sprintf("VND: %s", neighborhoods[k].name),
					fmt.Sprintf("Improvement: -%.2f", oldCost-newCost))
			}
			k = 0 // restart from the cheapest neighborhood

			continue
		}
		k++
	}

	return cur
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

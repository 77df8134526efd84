// Cost model shared by construction heuristics and local search.
//
// All functions are pure and total over well-formed inputs. They do
// not re-validate indices: the caller contract (indices in [0,n)) is
// established once by ValidateInstance/ValidateSolution.

package cvrp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
// It removes tiny FP drift across platforms without affecting which
// solution is better under the solver's much coarser epsilons.
const roundScale = 1e9

// Round1e9 rounds v to 9 decimal places. Applied to externally
// reported costs; internal delta comparisons stay raw.
func Round1e9(v float64) float64 {
	return math.Round(v*roundScale) / roundScale
}

// RouteCost sums consecutive edge distances along one route.
//
// Complexity: O(len(route)).
func RouteCost(route Route, dist *Matrix) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(route); i++ {
		sum += dist.At(route[i], route[i+1])
	}

	return sum
}

// SolutionCost is the sum of all route costs. It is the single
// definition of the objective; cached costs elsewhere are derived
// from it and never drift silently.
//
// Complexity: O(total nodes).
func SolutionCost(sol Solution, dist *Matrix) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(sol); i++ {
		sum += RouteCost(sol[i], dist)
	}

	return sum
}

// RouteDemand sums the demands of the route's customers (the depot
// contributes nothing).
//
// Complexity: O(len(route)).
func RouteDemand(route Route, demands []int) int {
	var (
		total int
		i     int
		c     int
	)
	for i = 0; i < len(route); i++ {
		c = route[i]
		if c != 0 {
			total += demands[c]
		}
	}

	return total
}

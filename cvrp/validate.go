// Validation utilities shared by the solver entry points and tests.
//
// Two layers:
//  1. ValidateInstance — shape and feasibility of the raw problem
//     data, run once before any construction or search.
//  2. ValidateSolution — structural invariants of a candidate
//     solution: route shape, exact customer coverage, capacity.
//
// Both are deterministic, side-effect free, and return only sentinel
// errors from types.go.

package cvrp

// ValidateInstance verifies problem data shape and per-customer
// feasibility. It returns n (node count) on success.
//
// Contract:
//   - len(coords) == len(demands) == n, n >= 2.
//   - demands[0] == 0 (depot), demands[i] >= 0 for customers.
//   - capacity > 0 and no single demand exceeds it: a customer whose
//     demand can never fit is rejected here (ErrInfeasibleInstance)
//     instead of being silently dropped by a construction heuristic.
//
// Complexity: O(n).
func ValidateInstance(coords [][2]float64, demands []int, capacity int) (int, error) {
	n := len(coords)
	if n < 2 || len(demands) != n {
		return 0, ErrDimensionMismatch
	}
	if capacity <= 0 {
		return 0, ErrBadCapacity
	}
	if demands[0] != 0 {
		return 0, ErrDepotDemand
	}

	var i int
	for i = 1; i < n; i++ {
		if demands[i] < 0 {
			return 0, ErrNegativeDemand
		}
		if demands[i] > capacity {
			return 0, ErrInfeasibleInstance
		}
	}

	return n, nil
}

// ValidateSolution enforces the full solution invariant set:
//   - every route starts and ends at the depot and has at least one
//     customer (no degenerate [0,0] routes);
//   - the depot never appears in a route interior;
//   - the multiset of interior customers equals {1..n-1} exactly;
//   - every route demand is within capacity.
//
// Complexity: O(total nodes) time, O(n) space.
func ValidateSolution(sol Solution, n int, demands []int, capacity int) error {
	seen := make([]bool, n)

	var (
		ri, i int
		r     Route
		c     int
	)
	for ri = 0; ri < len(sol); ri++ {
		r = sol[ri]
		if len(r) < 3 || r[0] != 0 || r[len(r)-1] != 0 {
			return ErrInvalidSolution
		}
		for i = 1; i < len(r)-1; i++ {
			c = r[i]
			if c <= 0 || c >= n {
				return ErrInvalidSolution
			}
			if seen[c] {
				return ErrInvalidSolution // duplicate visit
			}
			seen[c] = true
		}
		if RouteDemand(r, demands) > capacity {
			return ErrInvalidSolution
		}
	}

	// Coverage: no customer may be omitted.
	for c = 1; c < n; c++ {
		if !seen[c] {
			return ErrInvalidSolution
		}
	}

	return nil
}

// Shaking operators.
//
// Each shake applies k independent randomized perturbations to a copy
// of the solution. An attempt whose feasibility check fails is simply
// forfeited (no retry), so the realized perturbation strength may be
// lower than k. All randomness flows through the supplied *rand.Rand.

package vns

import (
	"math/rand"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// ShakeRelocate (shake 1) moves a random customer from a random
// non-trivial route to a random position in a randomly chosen route,
// when the destination still fits it. Degenerate leftovers are
// dropped at the end.
func ShakeRelocate(sol cvrp.Solution, demands []int, capacity, k int, rng *rand.Rand) cvrp.Solution {
	out := sol.Clone()

	var (
		attempt   int
		valid     []int
		r1, r2    int
		cIdx, pos int
		customer  int
	)
	for attempt = 0; attempt < k; attempt++ {
		if len(out) < 2 {
			break
		}
		valid = nonTrivialRoutes(out)
		if len(valid) == 0 {
			break
		}

		r1 = valid[rng.Intn(len(valid))]
		cIdx = 1 + rng.Intn(len(out[r1])-2)
		customer = out[r1][cIdx]

		// Destination is drawn over all routes; it may coincide with
		// the source, in which case the load pre-check double-counts
		// the customer and may forfeit the attempt. That only weakens
		// the realized strength, which shaking tolerates.
		r2 = rng.Intn(len(out))

		if cvrp.RouteDemand(out[r2], demands)+demands[customer] <= capacity {
			out[r1] = removeAt(out[r1], cIdx)
			pos = 1 + rng.Intn(len(out[r2])-1)
			out[r2] = insertAt(out[r2], pos, customer)
		}
	}

	return dropDegenerate(out)
}

// ShakeSwap (shake 2) exchanges one random customer between two random
// distinct non-trivial routes when both resulting loads stay feasible.
func ShakeSwap(sol cvrp.Solution, demands []int, capacity, k int, rng *rand.Rand) cvrp.Solution {
	out := sol.Clone()

	var (
		attempt      int
		valid        []int
		p1, p2       int
		r1, r2       int
		i1, i2       int
		c1, c2       int
		load1, load2 int
	)
	for attempt = 0; attempt < k; attempt++ {
		if len(out) < 2 {
			break
		}
		valid = nonTrivialRoutes(out)
		if len(valid) < 2 {
			break
		}

		// Two distinct indices, uniform over ordered pairs.
		p1 = rng.Intn(len(valid))
		p2 = rng.Intn(len(valid) - 1)
		if p2 >= p1 {
			p2++
		}
		r1 = valid[p1]
		r2 = valid[p2]

		i1 = 1 + rng.Intn(len(out[r1])-2)
		i2 = 1 + rng.Intn(len(out[r2])-2)
		c1 = out[r1][i1]
		c2 = out[r2][i2]

		load1 = cvrp.RouteDemand(out[r1], demands) - demands[c1] + demands[c2]
		load2 = cvrp.RouteDemand(out[r2], demands) - demands[c2] + demands[c1]
		if load1 <= capacity && load2 <= capacity {
			out[r1][i1] = c2
			out[r2][i2] = c1
		}
	}

	return out
}

// ShakeReverse (shake 3) reverses a random internal segment of a
// random route with more than 4 nodes. A segment reversal inside a
// symmetric instance keeps the load untouched, so there is no
// feasibility check to fail.
func ShakeReverse(sol cvrp.Solution, demands []int, capacity, k int, rng *rand.Rand) cvrp.Solution {
	_ = demands
	_ = capacity
	out := sol.Clone()

	var (
		attempt int
		valid   []int
		r, i, j int
		route   cvrp.Route
	)
	for attempt = 0; attempt < k; attempt++ {
		valid = valid[:0]
		for r = 0; r < len(out); r++ {
			if len(out[r]) > 4 {
				valid = append(valid, r)
			}
		}
		if len(valid) == 0 {
			break
		}

		r = valid[rng.Intn(len(valid))]
		route = out[r]

		i = 1 + rng.Intn(len(route)-3)       // i in [1, len-3]
		j = i + 1 + rng.Intn(len(route)-2-i) // j in [i+1, len-2]
		reverseSegment(route, i, j)
	}

	return out
}

// nonTrivialRoutes returns the indices of routes carrying at least one
// customer.
func nonTrivialRoutes(sol cvrp.Solution) []int {
	var (
		out []int
		i   int
	)
	for i = 0; i < len(sol); i++ {
		if len(sol[i]) > 2 {
			out = append(out, i)
		}
	}

	return out
}

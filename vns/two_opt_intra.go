// N1 — intra-route 2-opt.
//
// For each route independently, reverse a segment [i..j] when doing so
// reduces that route's cost by more than eps. First-improvement
// policy: the scan restarts from the top after every applied move, so
// the operator returns a joint 2-opt local optimum over all routes.
//
// Δ for reversing [i..j] inside one route:
//
//	Δ = d(r[i−1], r[j]) + d(r[i], r[j+1]) − d(r[i−1], r[i]) − d(r[j], r[j+1])
//
// Complexity: O(passes · Σ len(route)²); each applied move costs
// O(j−i) for the in-place reversal.

package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// TwoOptIntra runs N1 to its local fixed point and returns a new
// Solution; the input is never mutated.
func TwoOptIntra(sol cvrp.Solution, dist *cvrp.Matrix, eps float64) cvrp.Solution {
	best := sol.Clone()

	var (
		pass     int
		improved bool
		ri, i, j int
		route    cvrp.Route
		delta    float64
	)
	for pass = 0; pass < maxPasses; pass++ {
		improved = false

	scan:
		for ri = 0; ri < len(best); ri++ {
			route = best[ri]
			if len(route) <= 3 {
				continue // nothing to reverse
			}
			for i = 1; i <= len(route)-3; i++ {
				for j = i + 1; j <= len(route)-2; j++ {
					delta = dist.At(route[i-1], route[j]) +
						dist.At(route[i], route[j+1]) -
						dist.At(route[i-1], route[i]) -
						dist.At(route[j], route[j+1])

					if delta < -eps {
						reverseSegment(route, i, j)
						improved = true

						break scan // first-improvement restart
					}
				}
			}
		}

		if !improved {
			break // local optimum under N1
		}
	}

	return best
}

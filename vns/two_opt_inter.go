// N4 — inter-route 2-opt (tail exchange).
//
// For a pair of routes, cut the first after position i and the second
// after position j, then cross-splice the tails:
//
//	r1' = r1[..i] + r2[j+1..]
//	r2' = r2[..j] + r1[i+1..]
//
// First-improvement policy (unlike N2/N3): the first feasible
// recombination that beats the pair's current cost by more than eps is
// applied and the whole scan restarts. This per-operator difference is
// part of the algorithm's contract.
//
// Complexity: O(passes · m² · len² ) with full route-cost
// re-evaluation per candidate.

package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// TwoOptInter runs N4 to its local fixed point on a fresh copy.
func TwoOptInter(sol cvrp.Solution, demands []int, capacity int, dist *cvrp.Matrix, eps float64) cvrp.Solution {
	best := sol.Clone()

	var (
		pass             int
		improved         bool
		r1, r2, i, j     int
		a, b             cvrp.Route
		newA, newB       cvrp.Route
		oldCost, newCost float64
	)
	for pass = 0; pass < maxPasses; pass++ {
		improved = false

	scan:
		for r1 = 0; r1 < len(best); r1++ {
			a = best[r1]
			if len(a) <= 2 {
				continue
			}
			for r2 = r1 + 1; r2 < len(best); r2++ {
				b = best[r2]
				if len(b) <= 2 {
					continue
				}

				for i = 1; i <= len(a)-2; i++ {
					for j = 1; j <= len(b)-2; j++ {
						newA = spliceTails(a, b, i, j)
						newB = spliceTails(b, a, j, i)

						if cvrp.RouteDemand(newA, demands) > capacity ||
							cvrp.RouteDemand(newB, demands) > capacity {
							continue
						}

						oldCost = cvrp.RouteCost(a, dist) + cvrp.RouteCost(b, dist)
						newCost = cvrp.RouteCost(newA, dist) + cvrp.RouteCost(newB, dist)

						if newCost < oldCost-eps {
							best[r1] = newA
							best[r2] = newB
							improved = true

							break scan // first-improvement restart
						}
					}
				}
			}
		}

		if !improved {
			break
		}
	}

	return best
}

// spliceTails builds head[..i] + tail[j+1..] as a fresh route.
func spliceTails(head, tail cvrp.Route, i, j int) cvrp.Route {
	out := make(cvrp.Route, 0, i+1+len(tail)-j-1)
	out = append(out, head[:i+1]...)
	out = append(out, tail[j+1:]...)

	return out
}

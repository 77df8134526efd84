// N5 — route merge.
//
// For each pair of routes whose combined demand fits one vehicle,
// evaluate the four depot-preserving concatenations
//
//	r1 + r2,  r2 + r1,  r1 + reverse(r2),  r2 + reverse(r1)
//
// and apply the single best merge across all pairs per pass
// (best-of-pass, strict <). Merging trades one depot round trip for a
// longer route, so it is also the operator that reduces route count.
//
// Complexity: O(passes · m² · len).

package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// MergeRoutes runs N5 to its local fixed point on a fresh copy.
func MergeRoutes(sol cvrp.Solution, demands []int, capacity int, dist *cvrp.Matrix, eps float64) cvrp.Solution {
	out := sol.Clone()

	var (
		pass       int
		bestDelta  float64
		bestMerged cvrp.Route
		bR1, bR2   int
		found      bool
		r1, r2, ci int
		oldCost    float64
		merged     cvrp.Route
		delta      float64
	)
	for pass = 0; pass < maxPasses; pass++ {
		bestDelta = -eps
		found = false

		for r1 = 0; r1 < len(out); r1++ {
			for r2 = r1 + 1; r2 < len(out); r2++ {
				if cvrp.RouteDemand(out[r1], demands)+cvrp.RouteDemand(out[r2], demands) > capacity {
					continue
				}

				oldCost = cvrp.RouteCost(out[r1], dist) + cvrp.RouteCost(out[r2], dist)

				for ci = 0; ci < 4; ci++ {
					merged = mergeConfig(out[r1], out[r2], ci)
					delta = cvrp.RouteCost(merged, dist) - oldCost

					if delta < bestDelta {
						bestDelta = delta
						bestMerged = merged
						bR1, bR2 = r1, r2
						found = true
					}
				}
			}
		}

		if !found {
			break
		}

		next := make(cvrp.Solution, 0, len(out)-1)
		for r1 = 0; r1 < len(out); r1++ {
			if r1 == bR1 || r1 == bR2 {
				continue
			}
			next = append(next, out[r1])
		}
		out = append(next, bestMerged)
	}

	return out
}

// mergeConfig builds one of the four concatenations of a and b.
func mergeConfig(a, b cvrp.Route, which int) cvrp.Route {
	switch which {
	case 0: // a then b
		return appendRoutes(a[:len(a)-1], b[1:])
	case 1: // b then a
		return appendRoutes(b[:len(b)-1], a[1:])
	case 2: // a then reversed b
		return appendRoutes(appendRoutes(a[:len(a)-1], reversedInterior(b)), cvrp.Route{0})
	default: // b then reversed a
		return appendRoutes(appendRoutes(b[:len(b)-1], reversedInterior(a)), cvrp.Route{0})
	}
}

// appendRoutes concatenates two pieces into a fresh route.
func appendRoutes(a, b cvrp.Route) cvrp.Route {
	out := make(cvrp.Route, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}

// reversedInterior returns the route's customers in reverse order.
func reversedInterior(r cvrp.Route) cvrp.Route {
	in := r.Interior()
	out := make(cvrp.Route, len(in))
	var i int
	for i = 0; i < len(in); i++ {
		out[i] = in[len(in)-1-i]
	}

	return out
}

// Cheapest-insertion construction with farthest-customer seeding.

package construct

import (
	"math"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// CheapestInsertionSolution seeds a route with the customer farthest
// from the depot, then repeatedly inserts the (customer, route,
// position) triple with the minimum cost increase
//
//	dist(prev,c) + dist(c,next) − dist(prev,next)
//
// subject to the destination route's capacity. When no feasible
// insertion exists, the smallest remaining customer opens its own
// route.
//
// Complexity: O(n²·m) overall for m routes; adequate for the solver's
// target sizes.
func CheapestInsertionSolution(demands []int, capacity int, dist *cvrp.Matrix) cvrp.Solution {
	n := dist.Len()

	unvisited := make(map[int]bool, n-1)
	var c int
	for c = 1; c < n; c++ {
		unvisited[c] = true
	}

	// Farthest customer seeds the first route; ties resolve to the
	// lowest index because the scan is ascending with strict >.
	var (
		farthest = -1
		farD     = math.Inf(-1)
	)
	for c = 1; c < n; c++ {
		if d := dist.At(0, c); d > farD {
			farD = d
			farthest = c
		}
	}

	routes := cvrp.Solution{{0, farthest, 0}}
	loads := []int{demands[farthest]}
	delete(unvisited, farthest)

	var (
		bestInc  float64
		bestC    int
		bestR    int
		bestPos  int
		ri, pos  int
		route    cvrp.Route
		increase float64
	)
	for len(unvisited) > 0 {
		bestInc = math.Inf(1)
		bestC = -1
		bestR = -1
		bestPos = -1

		for c = 1; c < n; c++ {
			if !unvisited[c] {
				continue
			}
			for ri = 0; ri < len(routes); ri++ {
				if loads[ri]+demands[c] > capacity {
					continue
				}
				route = routes[ri]
				for pos = 1; pos < len(route); pos++ {
					increase = dist.At(route[pos-1], c) +
						dist.At(c, route[pos]) -
						dist.At(route[pos-1], route[pos])
					if increase < bestInc {
						bestInc = increase
						bestC = c
						bestR = ri
						bestPos = pos
					}
				}
			}
		}

		if bestC < 0 {
			// No feasible insertion anywhere: open a new route for the
			// smallest remaining customer (dropped silently when even
			// an empty vehicle cannot carry it).
			c = smallestKey(unvisited)
			delete(unvisited, c)
			if demands[c] <= capacity {
				routes = append(routes, cvrp.Route{0, c, 0})
				loads = append(loads, demands[c])
			}

			continue
		}

		routes[bestR] = insertAt(routes[bestR], bestPos, bestC)
		loads[bestR] += demands[bestC]
		delete(unvisited, bestC)
	}

	return routes
}

// insertAt returns a new route with customer c inserted before
// position pos.
func insertAt(r cvrp.Route, pos, c int) cvrp.Route {
	out := make(cvrp.Route, 0, len(r)+1)
	out = append(out, r[:pos]...)
	out = append(out, c)
	out = append(out, r[pos:]...)

	return out
}

// smallestKey returns the minimum key of a non-empty set.
func smallestKey(set map[int]bool) int {
	best := -1
	for k := range set {
		if best < 0 || k < best {
			best = k
		}
	}

	return best
}

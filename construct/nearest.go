// Nearest-neighbor construction.

package construct

import (
	"math"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// NearestNeighborSolution builds routes by repeatedly extending the
// current route to the nearest unrouted customer whose demand still
// fits the remaining capacity, opening a fresh route from the depot
// whenever no feasible extension exists.
//
// Best-effort note: a customer whose demand exceeds the vehicle
// capacity can never be visited and silently stays unrouted — callers
// that care run cvrp.ValidateInstance first and never reach that case.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighborSolution(demands []int, capacity int, dist *cvrp.Matrix) cvrp.Solution {
	n := dist.Len()

	unvisited := make(map[int]bool, n-1)
	var c int
	for c = 1; c < n; c++ {
		unvisited[c] = true
	}

	var (
		routes  cvrp.Solution
		route   cvrp.Route
		current int
		load    int
		bestD   float64
		bestC   int
	)
	for len(unvisited) > 0 {
		route = cvrp.Route{0}
		current = 0
		load = 0

		for len(unvisited) > 0 {
			bestD = math.Inf(1)
			bestC = -1

			// Deterministic scan order: ascending customer index.
			for c = 1; c < n; c++ {
				if !unvisited[c] {
					continue
				}
				if load+demands[c] > capacity {
					continue
				}
				if d := dist.At(current, c); d < bestD {
					bestD = d
					bestC = c
				}
			}
			if bestC < 0 {
				break // no feasible extension; close this route
			}

			route = append(route, bestC)
			current = bestC
			load += demands[bestC]
			delete(unvisited, bestC)
		}

		if len(route) > 1 {
			route = append(route, 0)
			routes = append(routes, route)
		} else {
			// Nothing fit even into an empty vehicle: the remaining
			// customers are individually infeasible. Stop rather than
			// spin forever.
			break
		}
	}

	return routes
}

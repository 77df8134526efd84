// Random construction: shuffle, then pack in shuffled order.

package construct

import (
	"math/rand"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// RandomSolution shuffles the customers with rng and packs them
// greedily into routes in shuffled order, closing the current route
// and opening a new one whenever the next customer would overflow the
// vehicle. rng == nil falls back to the deterministic default stream.
//
// Complexity: O(n).
func RandomSolution(demands []int, capacity int, rng *rand.Rand) cvrp.Solution {
	n := len(demands)
	if rng == nil {
		rng = cvrp.NewRand(0)
	}

	customers := make([]int, 0, n-1)
	var c int
	for c = 1; c < n; c++ {
		customers = append(customers, c)
	}
	rng.Shuffle(len(customers), func(i, j int) {
		customers[i], customers[j] = customers[j], customers[i]
	})

	var (
		routes  cvrp.Solution
		route   = cvrp.Route{0}
		load    int
		k       int
		nextCap int
	)
	for k = 0; k < len(customers); k++ {
		c = customers[k]
		nextCap = load + demands[c]
		if nextCap <= capacity {
			route = append(route, c)
			load = nextCap

			continue
		}
		if len(route) > 1 {
			route = append(route, 0)
			routes = append(routes, route)
		}
		route = cvrp.Route{0, c}
		load = demands[c]
	}
	if len(route) > 1 {
		route = append(route, 0)
		routes = append(routes, route)
	}

	return routes
}

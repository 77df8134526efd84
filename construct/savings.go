// Clarke-Wright savings construction.
//
// Start from one round trip per customer, score every customer pair by
// the savings of serving them back-to-back,
//
//	s(i,j) = dist(0,i) + dist(0,j) − dist(i,j),
//
// then apply merges greedily in descending savings order. A merge is
// applied only when both customers still sit at an endpoint of their
// (distinct) routes and the combined demand fits the vehicle.
//
// Complexity: O(n²·log n) for scoring/sorting plus O(n) route lookups
// per candidate pair; fine for the instance sizes this solver targets.

package construct

import (
	"sort"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// saving is one scored customer pair.
type saving struct {
	s    float64
	i, j int
}

// SavingsSolution runs Clarke-Wright on the instance.
func SavingsSolution(demands []int, capacity int, dist *cvrp.Matrix) cvrp.Solution {
	n := len(demands)

	// One degenerate-free round trip per customer.
	routes := make(cvrp.Solution, 0, n-1)
	var c int
	for c = 1; c < n; c++ {
		routes = append(routes, cvrp.Route{0, c, 0})
	}

	// Score all pairs once.
	savings := make([]saving, 0, (n-1)*(n-2)/2)
	var i, j int
	for i = 1; i < n; i++ {
		for j = i + 1; j < n; j++ {
			savings = append(savings, saving{
				s: dist.At(0, i) + dist.At(0, j) - dist.At(i, j),
				i: i,
				j: j,
			})
		}
	}
	// Descending by score; ties broken by descending (i, j) so the
	// greedy application order is fully deterministic.
	sort.Slice(savings, func(a, b int) bool {
		if savings[a].s != savings[b].s {
			return savings[a].s > savings[b].s
		}
		if savings[a].i != savings[b].i {
			return savings[a].i > savings[b].i
		}

		return savings[a].j > savings[b].j
	})

	var (
		k              int
		ri, rj         int // route indices holding i and j
		posI, posJ     int
		lenI, lenJ     int
		merged         cvrp.Route
		rI, rJ         cvrp.Route
		iAtEnd, jAtEnd bool
	)
	for k = 0; k < len(savings); k++ {
		i = savings[k].i
		j = savings[k].j

		ri = routeOf(routes, i)
		rj = routeOf(routes, j)
		if ri < 0 || rj < 0 || ri == rj {
			continue
		}

		rI = routes[ri]
		rJ = routes[rj]
		posI = indexOf(rI, i)
		posJ = indexOf(rJ, j)
		lenI = len(rI)
		lenJ = len(rJ)

		// Both customers must be route endpoints (adjacent to a depot).
		iAtEnd = posI == 1 || posI == lenI-2
		jAtEnd = posJ == 1 || posJ == lenJ-2
		if !iAtEnd || !jAtEnd {
			continue
		}
		if cvrp.RouteDemand(rI, demands)+cvrp.RouteDemand(rJ, demands) > capacity {
			continue
		}

		// Orient the two routes so i and j become adjacent. The case
		// order matters for length-3 routes where a customer is both
		// first and last interior node.
		switch {
		case posI == lenI-2 && posJ == 1:
			merged = concat(rI[:lenI-1], rJ[1:])
		case posI == 1 && posJ == lenJ-2:
			merged = concat(rJ[:lenJ-1], rI[1:])
		case posI == lenI-2 && posJ == lenJ-2:
			merged = concat(rI[:lenI-1], reversedInterior(rJ), cvrp.Route{0})
		case posI == 1 && posJ == 1:
			merged = concat(cvrp.Route{0}, reversedInterior(rI), rJ[1:])
		default:
			continue
		}

		routes = removeTwo(routes, ri, rj)
		routes = append(routes, merged)
	}

	return routes
}

// routeOf returns the index of the first route containing customer c,
// or -1 when c is not routed.
func routeOf(sol cvrp.Solution, c int) int {
	var ri, i int
	for ri = 0; ri < len(sol); ri++ {
		for i = 1; i < len(sol[ri])-1; i++ {
			if sol[ri][i] == c {
				return ri
			}
		}
	}

	return -1
}

// indexOf returns the position of c inside r (first occurrence).
func indexOf(r cvrp.Route, c int) int {
	var i int
	for i = 0; i < len(r); i++ {
		if r[i] == c {
			return i
		}
	}

	return -1
}

// concat builds a fresh route from the given pieces.
func concat(parts ...cvrp.Route) cvrp.Route {
	var total int
	for _, p := range parts {
		total += len(p)
	}
	out := make(cvrp.Route, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

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

// removeTwo drops the routes at indices a and b, preserving the order
// of everything else.
func removeTwo(sol cvrp.Solution, a, b int) cvrp.Solution {
	out := make(cvrp.Solution, 0, len(sol)-2)
	var i int
	for i = 0; i < len(sol); i++ {
		if i == a || i == b {
			continue
		}
		out = append(out, sol[i])
	}

	return out
}

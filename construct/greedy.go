// Greedy edge-based construction.
//
// All node pairs are sorted by ascending distance; path fragments are
// grown by connecting edge endpoints, subject to
//   - degree ≤ 2 for every customer,
//   - fragment demand ≤ capacity,
//   - no premature cycle closure (two fragments only ever merge when
//     the shared edge joins their free ends).
//
// Customers still unassigned after the edge sweep become their own
// single-customer routes when capacity allows.

package construct

import (
	"sort"

	"github.com/aturakulov/cvrpvns/cvrp"
)

type edge struct {
	d    float64
	i, j int
}

// GreedyEdgeSolution runs the edge-based greedy heuristic.
//
// Complexity: O(n²·log n) for the edge sort; the sweep itself is
// near-linear in the edge count.
func GreedyEdgeSolution(demands []int, capacity int, dist *cvrp.Matrix) cvrp.Solution {
	n := dist.Len()

	edges := make([]edge, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, edge{d: dist.At(i, j), i: i, j: j})
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].d != edges[b].d {
			return edges[a].d < edges[b].d
		}
		if edges[a].i != edges[b].i {
			return edges[a].i < edges[b].i
		}

		return edges[a].j < edges[b].j
	})

	var (
		degree     = make([]int, n)       // customer degree (depot unbounded)
		fragOf     = make(map[int]int, n) // customer -> fragment index
		fragments  [][]int
		fragLoads  []int
		fi, fj     int
		hasI, hasJ bool
		e          edge
		k          int
	)

	demandOf := func(v int) int {
		if v == 0 {
			return 0
		}

		return demands[v]
	}

	for k = 0; k < len(edges); k++ {
		e = edges[k]
		if e.i != 0 && degree[e.i] >= 2 {
			continue
		}
		if e.j != 0 && degree[e.j] >= 2 {
			continue
		}

		fi, hasI = fragOf[e.i]
		fj, hasJ = fragOf[e.j]

		switch {
		case !hasI && !hasJ:
			if e.i == 0 || e.j == 0 {
				// Depot edge starts a fragment anchored at the depot.
				customer := e.j
				if e.i != 0 {
					customer = e.i
				}
				if demands[customer] <= capacity {
					fragOf[customer] = len(fragments)
					fragments = append(fragments, []int{e.i, e.j})
					fragLoads = append(fragLoads, demands[customer])
					bumpDegree(degree, e.i, e.j)
				}
			} else if demands[e.i]+demands[e.j] <= capacity {
				idx := len(fragments)
				fragOf[e.i] = idx
				fragOf[e.j] = idx
				fragments = append(fragments, []int{e.i, e.j})
				fragLoads = append(fragLoads, demands[e.i]+demands[e.j])
				bumpDegree(degree, e.i, e.j)
			}

		case hasI && !hasJ:
			attachEndpoint(fragments, fragLoads, fragOf, degree, fi, e.i, e.j, demandOf(e.j), capacity)

		case !hasI && hasJ:
			attachEndpoint(fragments, fragLoads, fragOf, degree, fj, e.j, e.i, demandOf(e.i), capacity)

		case fi != fj:
			mergeFragments(fragments, fragLoads, fragOf, degree, fi, fj, e.i, e.j, capacity)
		}
	}

	// Close fragments into depot-bracketed routes.
	var routes cvrp.Solution
	for k = 0; k < len(fragments); k++ {
		f := fragments[k]
		if len(f) == 0 {
			continue
		}
		if f[0] != 0 {
			f = append([]int{0}, f...)
		}
		if f[len(f)-1] != 0 {
			f = append(f, 0)
		}
		if len(f) > 2 {
			routes = append(routes, cvrp.Route(f))
		}
	}

	// Singleton sweep for customers the edge pass never placed.
	var c int
	for c = 1; c < n; c++ {
		if _, ok := fragOf[c]; ok {
			continue
		}
		if demands[c] <= capacity {
			routes = append(routes, cvrp.Route{0, c, 0})
		}
	}

	return routes
}

// bumpDegree increments customer degrees; the depot has no degree cap.
func bumpDegree(degree []int, i, j int) {
	if i != 0 {
		degree[i]++
	}
	if j != 0 {
		degree[j]++
	}
}

// attachEndpoint extends fragment f by node 'add' next to node 'at',
// provided 'at' sits at a fragment end and the grown load fits.
func attachEndpoint(fragments [][]int, fragLoads []int, fragOf map[int]int, degree []int, f, at, add, addDemand, capacity int) {
	frag := fragments[f]
	newLoad := fragLoads[f] + addDemand
	if newLoad > capacity {
		return
	}
	if at != frag[0] && at != frag[len(frag)-1] {
		return
	}

	if at == frag[0] {
		fragments[f] = append([]int{add}, frag...)
	} else {
		fragments[f] = append(frag, add)
	}
	if add != 0 {
		fragOf[add] = f
	}
	bumpDegree(degree, at, add)
	fragLoads[f] = newLoad
}

// mergeFragments joins two distinct fragments end-to-end across the
// edge (i∈f1, j∈f2). The merged sequence lands in f1; f2 is emptied.
func mergeFragments(fragments [][]int, fragLoads []int, fragOf map[int]int, degree []int, f1, f2, i, j, capacity int) {
	a := fragments[f1]
	b := fragments[f2]
	newLoad := fragLoads[f1] + fragLoads[f2]
	if newLoad > capacity {
		return
	}

	iAtEnd := i == a[0] || i == a[len(a)-1]
	jAtEnd := j == b[0] || j == b[len(b)-1]
	if !iAtEnd || !jAtEnd {
		return
	}

	var merged []int
	switch {
	case i == a[len(a)-1] && j == b[0]:
		merged = append(append([]int{}, a...), b...)
	case i == a[0] && j == b[len(b)-1]:
		merged = append(append([]int{}, b...), a...)
	case i == a[len(a)-1] && j == b[len(b)-1]:
		merged = append(append([]int{}, a...), reverseInts(b)...)
	case i == a[0] && j == b[0]:
		merged = append(reverseInts(a), b...)
	default:
		return
	}

	fragments[f1] = merged
	fragLoads[f1] = newLoad
	fragments[f2] = nil
	fragLoads[f2] = 0

	var k int
	for k = 0; k < len(b); k++ {
		if b[k] != 0 {
			fragOf[b[k]] = f1
		}
	}
	bumpDegree(degree, i, j)
}

// reverseInts returns a reversed copy of s.
func reverseInts(s []int) []int {
	out := make([]int, len(s))
	var i int
	for i = 0; i < len(s); i++ {
		out[i] = s[len(s)-1-i]
	}

	return out
}

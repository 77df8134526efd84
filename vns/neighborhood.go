// Small helpers shared by the neighborhood operators.

package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// dropDegenerate removes routes reduced to the bare depot pair [0,0].
// Route order of the survivors is preserved.
func dropDegenerate(sol cvrp.Solution) cvrp.Solution {
	out := sol[:0]
	var i int
	for i = 0; i < len(sol); i++ {
		if len(sol[i]) > 2 {
			out = append(out, sol[i])
		}
	}

	return out
}

// reverseSegment reverses r[i..j] in place (inclusive bounds).
func reverseSegment(r cvrp.Route, i, j int) {
	for ; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// removeAt deletes the element at index idx, shifting in place.
func removeAt(r cvrp.Route, idx int) cvrp.Route {
	return append(r[:idx], r[idx+1:]...)
}

// insertAt returns a new route with node c inserted before index pos.
func insertAt(r cvrp.Route, pos, c int) cvrp.Route {
	out := make(cvrp.Route, 0, len(r)+1)
	out = append(out, r[:pos]...)
	out = append(out, c)
	out = append(out, r[pos:]...)

	return out
}

// N6 — Or-opt (optional).
//
// Relocate a contiguous chain of 1–3 customers, either to another
// position within its own route or into a different route, choosing
// the lowest-delta move across all chains/destinations per pass
// (best-of-pass, strict <, like N2). Disabled by default: the scan is
// cubic-plus and VND reaches most of its effect through N1/N2 anyway.
//
// Complexity: O(passes · 3 · n² · positions).

package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// orOptMove records the best chain relocation found in a pass.
type orOptMove struct {
	inter     bool
	r1        int
	start     int
	chainLen  int
	r2        int // destination route (inter only)
	insertPos int
}

// OrOpt runs N6 to its local fixed point on a fresh copy.
func OrOpt(sol cvrp.Solution, demands []int, capacity int, dist *cvrp.Matrix, eps float64) cvrp.Solution {
	out := sol.Clone()

	var (
		pass      int
		bestDelta float64
		best      orOptMove
		found     bool
	)
	for pass = 0; pass < maxPasses; pass++ {
		bestDelta = -eps
		found = false

		var (
			chainLen, r1, r2   int
			start, insertPos   int
			route, src, dst    cvrp.Route
			oldCost, newCost   float64
			removal, insertion float64
			chainDemand, i     int
			delta              float64
		)
		for chainLen = 1; chainLen <= 3; chainLen++ {
			// Intra-route chain shifts.
			for r1 = 0; r1 < len(out); r1++ {
				route = out[r1]
				if len(route) <= chainLen+2 {
					continue
				}

				for start = 1; start <= len(route)-chainLen-1; start++ {
					for insertPos = 1; insertPos <= len(route)-2; insertPos++ {
						if insertPos >= start && insertPos <= start+chainLen {
							continue // no-op positions
						}

						oldCost = dist.At(route[start-1], route[start]) +
							dist.At(route[start+chainLen-1], route[start+chainLen]) +
							dist.At(route[insertPos-1], route[insertPos])
						newCost = dist.At(route[start-1], route[start+chainLen]) +
							dist.At(route[insertPos-1], route[start]) +
							dist.At(route[start+chainLen-1], route[insertPos])

						delta = newCost - oldCost
						if delta < bestDelta {
							bestDelta = delta
							best = orOptMove{r1: r1, start: start, chainLen: chainLen, insertPos: insertPos}
							found = true
						}
					}
				}
			}

			// Inter-route chain relocations.
			for r1 = 0; r1 < len(out); r1++ {
				src = out[r1]
				if len(src) <= chainLen+1 {
					continue
				}

				for start = 1; start <= len(src)-chainLen-1; start++ {
					chainDemand = 0
					for i = 0; i < chainLen; i++ {
						chainDemand += demands[src[start+i]]
					}

					for r2 = 0; r2 < len(out); r2++ {
						if r2 == r1 {
							continue
						}
						dst = out[r2]
						if cvrp.RouteDemand(dst, demands)+chainDemand > capacity {
							continue
						}

						for insertPos = 1; insertPos < len(dst); insertPos++ {
							removal = dist.At(src[start-1], src[start+chainLen]) -
								dist.At(src[start-1], src[start]) -
								dist.At(src[start+chainLen-1], src[start+chainLen])
							insertion = dist.At(dst[insertPos-1], src[start]) +
								dist.At(src[start+chainLen-1], dst[insertPos]) -
								dist.At(dst[insertPos-1], dst[insertPos])
							// The chain's internal edges survive the move,
							// so they cancel out of the delta.

							delta = removal + insertion
							if delta < bestDelta {
								bestDelta = delta
								best = orOptMove{
									inter: true, r1: r1, start: start,
									chainLen: chainLen, r2: r2, insertPos: insertPos,
								}
								found = true
							}
						}
					}
				}
			}
		}

		if !found {
			break
		}

		out = applyOrOpt(out, best)
	}

	return out
}

// applyOrOpt executes the recorded chain move on the working solution.
func applyOrOpt(sol cvrp.Solution, mv orOptMove) cvrp.Solution {
	chain := append(cvrp.Route(nil), sol[mv.r1][mv.start:mv.start+mv.chainLen]...)

	// Cut the chain out of its source route.
	src := sol[mv.r1]
	sol[mv.r1] = append(src[:mv.start], src[mv.start+mv.chainLen:]...)

	if !mv.inter {
		pos := mv.insertPos
		if pos > mv.start {
			pos -= mv.chainLen // indices shifted by the cut
		}
		sol[mv.r1] = insertChain(sol[mv.r1], pos, chain)

		return sol
	}

	sol[mv.r2] = insertChain(sol[mv.r2], mv.insertPos, chain)

	return dropDegenerate(sol)
}

// insertChain returns a new route with the chain spliced in before pos.
func insertChain(r cvrp.Route, pos int, chain cvrp.Route) cvrp.Route {
	out := make(cvrp.Route, 0, len(r)+len(chain))
	out = append(out, r[:pos]...)
	out = append(out, chain...)
	out = append(out, r[pos:]...)

	return out
}

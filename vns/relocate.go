// N2 — inter-route relocate.
//
// Move one customer from its route to the best feasible position in a
// different route. Best-of-pass policy: every pass scans all
// (customer, destination, position) triples and applies the single
// move with the lowest delta, then rescans; strict < on deltas means
// the first-found move wins ties. Routes emptied by a move are
// dropped immediately.
//
// Delta decomposition:
//
//	removal =  d(prev, next) − d(prev, c) − d(c, next)        (source)
//	insert  =  d(p, c) + d(c, q) − d(p, q)                     (dest)
//	Δ       =  removal + insert
//
// Complexity: O(passes · n² · positions).

package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// RelocateInter runs N2 to its local fixed point on a fresh copy.
func RelocateInter(sol cvrp.Solution, demands []int, capacity int, dist *cvrp.Matrix, eps float64) cvrp.Solution {
	out := sol.Clone()

	var (
		pass                   int
		bestDelta              float64
		found                  bool
		bR1, bC, bR2, bPos     int
		r1, r2, cIdx, pos      int
		customer               int
		removalDelta, insDelta float64
		src, dst               cvrp.Route
	)
	for pass = 0; pass < maxPasses; pass++ {
		bestDelta = -eps
		found = false

		for r1 = 0; r1 < len(out); r1++ {
			src = out[r1]
			if len(src) <= 2 {
				continue
			}

			for cIdx = 1; cIdx <= len(src)-2; cIdx++ {
				customer = src[cIdx]

				removalDelta = dist.At(src[cIdx-1], src[cIdx+1]) -
					dist.At(src[cIdx-1], customer) -
					dist.At(customer, src[cIdx+1])

				for r2 = 0; r2 < len(out); r2++ {
					if r2 == r1 {
						continue
					}
					dst = out[r2]
					if cvrp.RouteDemand(dst, demands)+demands[customer] > capacity {
						continue
					}

					for pos = 1; pos < len(dst); pos++ {
						insDelta = dist.At(dst[pos-1], customer) +
							dist.At(customer, dst[pos]) -
							dist.At(dst[pos-1], dst[pos])

						if removalDelta+insDelta < bestDelta {
							bestDelta = removalDelta + insDelta
							bR1, bC, bR2, bPos = r1, cIdx, r2, pos
							found = true
						}
					}
				}
			}
		}

		if !found {
			break
		}

		customer = out[bR1][bC]
		out[bR1] = removeAt(out[bR1], bC)
		out[bR2] = insertAt(out[bR2], bPos, customer)
		out = dropDegenerate(out)
	}

	return out
}

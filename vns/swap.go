// N3 — inter-route swap.
//
// Exchange one customer of route A with one customer of route B,
// choosing the globally best feasible swap per pass (best-of-pass,
// strict <). Both resulting route loads must stay within capacity.
//
// Complexity: O(passes · n² ) over customer pairs.

package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// SwapInter runs N3 to its local fixed point on a fresh copy.
func SwapInter(sol cvrp.Solution, demands []int, capacity int, dist *cvrp.Matrix, eps float64) cvrp.Solution {
	out := sol.Clone()

	var (
		pass               int
		bestDelta          float64
		found              bool
		bR1, bC1, bR2, bC2 int
		r1, r2, i1, i2     int
		c1, c2             int
		load1, load2       int
		delta              float64
		a, b               cvrp.Route
	)
	for pass = 0; pass < maxPasses; pass++ {
		bestDelta = -eps
		found = false

		for r1 = 0; r1 < len(out); r1++ {
			a = out[r1]
			if len(a) <= 2 {
				continue
			}

			for i1 = 1; i1 <= len(a)-2; i1++ {
				c1 = a[i1]

				for r2 = r1 + 1; r2 < len(out); r2++ {
					b = out[r2]
					if len(b) <= 2 {
						continue
					}

					for i2 = 1; i2 <= len(b)-2; i2++ {
						c2 = b[i2]

						load1 = cvrp.RouteDemand(a, demands) - demands[c1] + demands[c2]
						load2 = cvrp.RouteDemand(b, demands) - demands[c2] + demands[c1]
						if load1 > capacity || load2 > capacity {
							continue
						}

						delta = dist.At(a[i1-1], c2) + dist.At(c2, a[i1+1]) +
							dist.At(b[i2-1], c1) + dist.At(c1, b[i2+1]) -
							dist.At(a[i1-1], c1) - dist.At(c1, a[i1+1]) -
							dist.At(b[i2-1], c2) - dist.At(c2, b[i2+1])

						if delta < bestDelta {
							bestDelta = delta
							bR1, bC1, bR2, bC2 = r1, i1, r2, i2
							found = true
						}
					}
				}
			}
		}

		if !found {
			break
		}

		out[bR1][bC1], out[bR2][bC2] = out[bR2][bC2], out[bR1][bC1]
	}

	return out
}

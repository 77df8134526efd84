package cvrp

import (
	"sort"
	"strconv"
	"strings"
)

// Fingerprint is a canonical, order-independent key for a Solution.
// Two solutions that differ only by route ordering or by the traversal
// direction of some route collide to the same fingerprint, which is
// exactly the equivalence the tabu mechanism wants to forbid.
type Fingerprint string

// FingerprintOf renders the canonical form: each route's interior
// customers sorted ascending, each route rendered as a comma-joined
// token, and the tokens themselves sorted.
//
// Complexity: O(total·log) time, O(total) space.
func FingerprintOf(sol Solution) Fingerprint {
	keys := make([]string, 0, len(sol))

	var (
		ri  int
		in  []int
		sb  strings.Builder
		pos int
	)
	for ri = 0; ri < len(sol); ri++ {
		in = append([]int(nil), sol[ri].Interior()...)
		sort.Ints(in)

		sb.Reset()
		for pos = 0; pos < len(in); pos++ {
			if pos > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(in[pos]))
		}
		keys = append(keys, sb.String())
	}
	sort.Strings(keys)

	return Fingerprint(strings.Join(keys, "|"))
}

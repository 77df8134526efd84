package construct

import (
	"math/rand"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// Method selects a construction strategy. The zero value is
// ClarkeWright, which doubles as the fallback for unknown values.
type Method int

const (
	// ClarkeWright merges single-customer routes by descending
	// savings score dist(0,i)+dist(0,j)-dist(i,j).
	ClarkeWright Method = iota

	// NearestNeighbor extends the current route to the nearest
	// unrouted customer that still fits.
	NearestNeighbor

	// GreedyEdge grows path fragments from globally shortest edges.
	GreedyEdge

	// CheapestInsertion repeatedly inserts the cheapest
	// customer/position pair, seeded with the farthest customer.
	CheapestInsertion

	// Random shuffles customers and packs them greedily in order.
	Random
)

// String returns the human-readable label used in run logs and traces.
func (m Method) String() string {
	switch m {
	case NearestNeighbor:
		return "Nearest Neighbor"
	case GreedyEdge:
		return "Greedy Edge"
	case CheapestInsertion:
		return "Cheapest Insertion"
	case Random:
		return "Random"
	default:
		return "Clarke-Wright Savings"
	}
}

// Build dispatches to the selected strategy. Coordinates are already
// baked into dist, so builders work off demands, capacity, and the
// matrix alone. rng is consumed only by Random; deterministic
// strategies ignore it. Unknown method values fall back to
// Clarke-Wright.
func Build(m Method, demands []int, capacity int, dist *cvrp.Matrix, rng *rand.Rand) cvrp.Solution {
	switch m {
	case NearestNeighbor:
		return NearestNeighborSolution(demands, capacity, dist)
	case GreedyEdge:
		return GreedyEdgeSolution(demands, capacity, dist)
	case CheapestInsertion:
		return CheapestInsertionSolution(demands, capacity, dist)
	case Random:
		return RandomSolution(demands, capacity, rng)
	default:
		return SavingsSolution(demands, capacity, dist)
	}
}

package cvrp

import "errors"

// Sentinel errors shared by the whole module. Callers are expected to
// compare with errors.Is; no wrapped dynamic messages in hot paths.
var (
	// ErrDimensionMismatch is returned when coords/demands lengths
	// disagree or an instance is too small to route (n < 2).
	ErrDimensionMismatch = errors.New("cvrp: coords/demands dimension mismatch")

	// ErrBadCapacity is returned for a non-positive vehicle capacity.
	ErrBadCapacity = errors.New("cvrp: vehicle capacity must be positive")

	// ErrNegativeDemand is returned when any demand is negative.
	ErrNegativeDemand = errors.New("cvrp: negative customer demand")

	// ErrDepotDemand is returned when demands[0] != 0.
	ErrDepotDemand = errors.New("cvrp: depot demand must be zero")

	// ErrInfeasibleInstance is returned when a customer's demand
	// exceeds the vehicle capacity, so no feasible solution covers it.
	ErrInfeasibleInstance = errors.New("cvrp: customer demand exceeds vehicle capacity")

	// ErrInvalidSolution is returned by ValidateSolution when route
	// shape, customer coverage, or capacity invariants are violated.
	ErrInvalidSolution = errors.New("cvrp: invalid solution")
)

// Route is one vehicle tour: a sequence of node indices that begins
// and ends at the depot (index 0) and visits each interior customer
// at most once. A route of length 2 ([0,0]) is degenerate and must be
// discarded wherever it is produced.
type Route []int

// Solution is a set of routes. Route identity order is not meaningful,
// but it is kept stable so merges and splits may append/remove freely.
type Solution []Route

// Clone returns an independent copy of the route.
//
// Complexity: O(len(r)).
func (r Route) Clone() Route {
	out := make(Route, len(r))
	copy(out, r)

	return out
}

// Interior returns the customer span of the route (everything between
// the depot brackets). The returned slice aliases r; callers must not
// mutate it.
func (r Route) Interior() []int {
	if len(r) < 2 {
		return nil
	}

	return r[1 : len(r)-1]
}

// Clone returns a deep copy of the solution. Every operator in this
// module works on its own clone and returns a new Solution, so no two
// search steps ever alias the same route storage.
//
// Complexity: O(total nodes).
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))

	var i int
	for i = 0; i < len(s); i++ {
		out[i] = s[i].Clone()
	}

	return out
}

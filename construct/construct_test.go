// Package construct_test checks every construction strategy for the
// two guarantees the search relies on: feasibility (capacity and exact
// coverage) and determinism under a fixed seed.
package construct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aturakulov/cvrpvns/construct"
	"github.com/aturakulov/cvrpvns/cvrp"
)

// ring5 is a depot plus five customers on a ring around it. With unit
// demands and capacity 3 any feasible solution needs at least two
// routes.
var (
	ring5 = [][2]float64{
		{0, 0},    // depot
		{10, 0},   // 1
		{3, 9.5},  // 2
		{-8, 6},   // 3
		{-8, -6},  // 4
		{3, -9.5}, // 5
	}
	ring5Demands  = []int{0, 1, 1, 1, 1, 1}
	ring5Capacity = 3
)

// requireFeasible asserts coverage, depot brackets, and capacity via
// the shared validator.
func requireFeasible(t *testing.T, sol cvrp.Solution, n int, demands []int, capacity int) {
	t.Helper()
	require.NoError(t, cvrp.ValidateSolution(sol, n, demands, capacity))
}

func TestSavingsSolution_RingNeedsTwoRoutes(t *testing.T) {
	dist := cvrp.NewMatrix(ring5)

	sol := construct.SavingsSolution(ring5Demands, ring5Capacity, dist)
	requireFeasible(t, sol, len(ring5), ring5Demands, ring5Capacity)

	// Five unit demands under capacity 3: exactly two routes, and
	// Clarke-Wright reaches that bound on this geometry.
	require.Len(t, sol, 2)
}

func TestSavingsSolution_SingleVehicleCollapsesToOneRoute(t *testing.T) {
	dist := cvrp.NewMatrix(ring5)

	sol := construct.SavingsSolution(ring5Demands, 5, dist)
	requireFeasible(t, sol, len(ring5), ring5Demands, 5)
	require.Len(t, sol, 1)
}

func TestBuilders_FeasibleOnRing(t *testing.T) {
	dist := cvrp.NewMatrix(ring5)

	cases := []struct {
		name string
		m    construct.Method
	}{
		{"clarke-wright", construct.ClarkeWright},
		{"nearest neighbor", construct.NearestNeighbor},
		{"greedy edge", construct.GreedyEdge},
		{"cheapest insertion", construct.CheapestInsertion},
		{"random", construct.Random},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol := construct.Build(tc.m, ring5Demands, ring5Capacity, dist, cvrp.NewRand(7))
			requireFeasible(t, sol, len(ring5), ring5Demands, ring5Capacity)
		})
	}
}

func TestBuilders_TightCapacity(t *testing.T) {
	// Capacity equal to the largest demand forces many short routes.
	demands := []int{0, 3, 2, 3, 1, 2}
	const capacity = 3
	dist := cvrp.NewMatrix(ring5)

	for _, m := range []construct.Method{
		construct.ClarkeWright,
		construct.NearestNeighbor,
		construct.GreedyEdge,
		construct.CheapestInsertion,
		construct.Random,
	} {
		sol := construct.Build(m, demands, capacity, dist, cvrp.NewRand(7))
		requireFeasible(t, sol, len(ring5), demands, capacity)
	}
}

func TestRandomSolution_DeterministicPerSeed(t *testing.T) {
	a := construct.RandomSolution(ring5Demands, ring5Capacity, cvrp.NewRand(99))
	b := construct.RandomSolution(ring5Demands, ring5Capacity, cvrp.NewRand(99))
	require.Equal(t, a, b)

	// nil rng falls back to the default deterministic stream.
	c := construct.RandomSolution(ring5Demands, ring5Capacity, nil)
	d := construct.RandomSolution(ring5Demands, ring5Capacity, nil)
	require.Equal(t, c, d)
}

func TestBuild_UnknownMethodFallsBack(t *testing.T) {
	dist := cvrp.NewMatrix(ring5)

	want := construct.SavingsSolution(ring5Demands, ring5Capacity, dist)
	got := construct.Build(construct.Method(42), ring5Demands, ring5Capacity, dist, nil)
	require.Equal(t, want, got)
}

func TestMethod_String(t *testing.T) {
	require.Equal(t, "Clarke-Wright Savings", construct.ClarkeWright.String())
	require.Equal(t, "Nearest Neighbor", construct.NearestNeighbor.String())
	require.Equal(t, "Greedy Edge", construct.GreedyEdge.String())
	require.Equal(t, "Cheapest Insertion", construct.CheapestInsertion.String())
	require.Equal(t, "Random", construct.Random.String())
}

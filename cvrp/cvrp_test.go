// Package cvrp_test exercises the shared data model: distance matrix,
// cost accounting, validation layers, and solution fingerprints.
package cvrp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// square4 is a depot at the origin plus four customers on a unit
// square, small enough to check distances by hand.
var square4 = [][2]float64{
	{0, 0}, // depot
	{1, 0},
	{1, 1},
	{0, 1},
	{2, 0},
}

func TestNewMatrix_SymmetryAndDiagonal(t *testing.T) {
	m := cvrp.NewMatrix(square4)
	require.Equal(t, len(square4), m.Len())

	var i, j int
	for i = 0; i < m.Len(); i++ {
		require.Zero(t, m.At(i, i), "diagonal must be exactly zero")
		for j = 0; j < m.Len(); j++ {
			require.Equal(t, m.At(i, j), m.At(j, i), "symmetry at (%d,%d)", i, j)
		}
	}

	require.InDelta(t, 1.0, m.At(0, 1), 1e-12)
	require.InDelta(t, math.Sqrt2, m.At(0, 2), 1e-12)
	require.InDelta(t, 2.0, m.At(0, 4), 1e-12)
}

func TestRouteCost_MatchesEdgeSum(t *testing.T) {
	m := cvrp.NewMatrix(square4)
	route := cvrp.Route{0, 1, 2, 3, 0}

	// Unit square boundary: four edges of length 1.
	require.InDelta(t, 4.0, cvrp.RouteCost(route, m), 1e-12)

	// Reversal never changes a symmetric route cost.
	rev := cvrp.Route{0, 3, 2, 1, 0}
	require.InDelta(t, cvrp.RouteCost(route, m), cvrp.RouteCost(rev, m), 1e-12)
}

func TestSolutionCost_IsSumOfRoutes(t *testing.T) {
	m := cvrp.NewMatrix(square4)
	sol := cvrp.Solution{
		{0, 1, 2, 0},
		{0, 3, 0},
		{0, 4, 0},
	}

	want := cvrp.RouteCost(sol[0], m) + cvrp.RouteCost(sol[1], m) + cvrp.RouteCost(sol[2], m)
	require.InDelta(t, want, cvrp.SolutionCost(sol, m), 1e-12)
}

func TestRouteDemand_IgnoresDepot(t *testing.T) {
	demands := []int{0, 3, 5, 2, 7}
	require.Equal(t, 8, cvrp.RouteDemand(cvrp.Route{0, 1, 2, 0}, demands))
	require.Equal(t, 0, cvrp.RouteDemand(cvrp.Route{0, 0}, demands))
}

func TestClone_Independence(t *testing.T) {
	sol := cvrp.Solution{{0, 1, 2, 0}, {0, 3, 0}}
	cp := sol.Clone()

	cp[0][1] = 99
	require.Equal(t, 1, sol[0][1], "clone must not alias route storage")
}

func TestValidateInstance_Sentinels(t *testing.T) {
	coords := square4
	good := []int{0, 1, 1, 1, 1}

	n, err := cvrp.ValidateInstance(coords, good, 10)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	cases := []struct {
		name     string
		demands  []int
		capacity int
		want     error
	}{
		{"short demands", []int{0, 1}, 10, cvrp.ErrDimensionMismatch},
		{"zero capacity", good, 0, cvrp.ErrBadCapacity},
		{"depot demand", []int{2, 1, 1, 1, 1}, 10, cvrp.ErrDepotDemand},
		{"negative demand", []int{0, -1, 1, 1, 1}, 10, cvrp.ErrNegativeDemand},
		{"oversized demand", []int{0, 11, 1, 1, 1}, 10, cvrp.ErrInfeasibleInstance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cvrp.ValidateInstance(coords, tc.demands, tc.capacity)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSolution_CoverageAndCapacity(t *testing.T) {
	demands := []int{0, 3, 5, 2, 7}
	const n, capacity = 5, 10

	ok := cvrp.Solution{{0, 1, 2, 0}, {0, 3, 4, 0}}
	require.NoError(t, cvrp.ValidateSolution(ok, n, demands, capacity))

	cases := []struct {
		name string
		sol  cvrp.Solution
	}{
		{"degenerate route", cvrp.Solution{{0, 0}, {0, 1, 2, 3, 4, 0}}},
		{"missing depot bracket", cvrp.Solution{{1, 2, 0}, {0, 3, 4, 0}}},
		{"duplicate customer", cvrp.Solution{{0, 1, 2, 0}, {0, 2, 3, 4, 0}}},
		{"omitted customer", cvrp.Solution{{0, 1, 2, 0}, {0, 3, 0}}},
		{"depot in interior", cvrp.Solution{{0, 1, 0, 2, 0}, {0, 3, 4, 0}}},
		{"capacity exceeded", cvrp.Solution{{0, 1, 2, 4, 0}, {0, 3, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, cvrp.ValidateSolution(tc.sol, n, demands, capacity), cvrp.ErrInvalidSolution)
		})
	}
}

func TestFingerprint_DirectionAndOrderInvariance(t *testing.T) {
	a := cvrp.Solution{{0, 1, 2, 0}, {0, 3, 4, 0}}
	b := cvrp.Solution{{0, 4, 3, 0}, {0, 2, 1, 0}} // routes reordered, both reversed

	require.Equal(t, cvrp.FingerprintOf(a), cvrp.FingerprintOf(b))

	// Moving a customer across routes must change the fingerprint.
	c := cvrp.Solution{{0, 1, 0}, {0, 2, 3, 4, 0}}
	require.NotEqual(t, cvrp.FingerprintOf(a), cvrp.FingerprintOf(c))
}

func TestNewRand_Deterministic(t *testing.T) {
	r1 := cvrp.NewRand(42)
	r2 := cvrp.NewRand(42)
	var i int
	for i = 0; i < 16; i++ {
		require.Equal(t, r1.Int63(), r2.Int63())
	}

	// Seed zero maps onto the fixed default seed.
	require.Equal(t, cvrp.NewRand(0).Int63(), cvrp.NewRand(1).Int63())
}

func TestRound1e9(t *testing.T) {
	require.Equal(t, 1.0, cvrp.Round1e9(1.0000000001))
	require.Equal(t, 2.5, cvrp.Round1e9(2.5))
}

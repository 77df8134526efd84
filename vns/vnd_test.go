package vns_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aturakulov/cvrpvns/cvrp"
	"github.com/aturakulov/cvrpvns/vns"
)

func TestDescend_ReachesJointLocalOptimum(t *testing.T) {
	dist := cvrp.NewMatrix(shakeCoords)

	start := shakeSol.Clone()
	before := cvrp.SolutionCost(start, dist)

	got := vns.Descend(start, shakeDemands, shakeCapacity, dist, testEps, false, nil)
	after := cvrp.SolutionCost(got, dist)

	requireFeasible(t, got, len(shakeCoords), shakeDemands, shakeCapacity)
	require.LessOrEqual(t, after, before+1e-9)

	// Running VND on its own output must be a no-op.
	again := vns.Descend(got, shakeDemands, shakeCapacity, dist, testEps, false, nil)
	require.InDelta(t, after, cvrp.SolutionCost(again, dist), 1e-9)
	require.Equal(t, cvrp.FingerprintOf(got), cvrp.FingerprintOf(again))

	// Input stays untouched.
	require.Equal(t, shakeSol, start)
}

func TestDescend_UncrossesAndMerges(t *testing.T) {
	// One crossing route plus a mergeable satellite: VND must land on
	// a single clean tour.
	coords := [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {5, 11}}
	demands := []int{0, 1, 1, 1, 1}
	dist := cvrp.NewMatrix(coords)

	sol := cvrp.Solution{{0, 1, 3, 2, 0}, {0, 4, 0}}
	got := vns.Descend(sol, demands, 10, dist, testEps, false, nil)

	requireFeasible(t, got, len(coords), demands, 10)
	require.Len(t, got, 1)
	require.Less(t, cvrp.SolutionCost(got, dist), cvrp.SolutionCost(sol, dist))
}

func TestDescend_TraceLabelsNeighborhoods(t *testing.T) {
	coords := [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	demands := []int{0, 1, 1, 1}
	dist := cvrp.NewMatrix(coords)

	sol := cvrp.Solution{{0, 1, 3, 2, 0}}
	tr := vns.NewTrace(sol, cvrp.SolutionCost(sol, dist))

	_ = vns.Descend(sol, demands, 10, dist, testEps, false, tr)

	frames := tr.Frames()
	require.Greater(t, len(frames), 1, "the planted crossing must produce a frame")
	require.True(t, strings.HasPrefix(frames[1].Operation, "VND: "))

	// Costs along the trace are strictly decreasing.
	var i int
	for i = 1; i < len(frames); i++ {
		require.Less(t, frames[i].Cost, frames[i-1].Cost)
	}
}

func TestDescend_OrOptExtendsTheDescent(t *testing.T) {
	// Collinear customers scrambled inside one route. Both variants
	// must be feasible; the Or-opt variant may not be worse.
	coords := [][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	demands := []int{0, 1, 1, 1, 1}
	dist := cvrp.NewMatrix(coords)

	sol := cvrp.Solution{{0, 3, 1, 4, 2, 0}}

	plain := vns.Descend(sol, demands, 10, dist, testEps, false, nil)
	withOr := vns.Descend(sol, demands, 10, dist, testEps, true, nil)

	requireFeasible(t, plain, len(coords), demands, 10)
	requireFeasible(t, withOr, len(coords), demands, 10)
	require.LessOrEqual(t,
		cvrp.SolutionCost(withOr, dist),
		cvrp.SolutionCost(plain, dist)+1e-9)
}

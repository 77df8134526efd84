package vns_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aturakulov/cvrpvns/construct"
	"github.com/aturakulov/cvrpvns/cvrp"
	"github.com/aturakulov/cvrpvns/vns"
)

// solveFixture is a 10-customer instance: two spatial clusters plus a
// couple of strays, tight enough that the optimum needs 3+ routes.
var (
	solveCoords = [][2]float64{
		{0, 0},
		{20, 3}, {22, 5}, {19, 7}, {24, 2}, // east cluster
		{-18, -4}, {-21, -2}, {-19, -8}, // west cluster
		{2, 15}, {-3, 14}, // north strays
	}
	solveDemands  = []int{0, 4, 3, 5, 2, 6, 3, 4, 5, 2}
	solveCapacity = 15
)

func solveOpts() vns.Options {
	opts := vns.DefaultOptions()
	opts.MaxIter = 200
	opts.MaxTime = 30 * time.Second
	opts.Seed = 42

	return opts
}

func TestSolve_FeasibleAndNoWorseThanConstruction(t *testing.T) {
	res, err := vns.Solve(solveCoords, solveDemands, solveCapacity, solveOpts())
	require.NoError(t, err)

	requireFeasible(t, res.Solution, len(solveCoords), solveDemands, solveCapacity)
	require.LessOrEqual(t, res.Cost, res.InitialCost+1e-9)
	require.LessOrEqual(t, res.Iterations, 200)
	require.Positive(t, res.Elapsed)
}

func TestSolve_DeterministicPerSeed(t *testing.T) {
	a, err := vns.Solve(solveCoords, solveDemands, solveCapacity, solveOpts())
	require.NoError(t, err)
	b, err := vns.Solve(solveCoords, solveDemands, solveCapacity, solveOpts())
	require.NoError(t, err)

	require.Equal(t, a.Solution, b.Solution)
	require.Equal(t, a.Cost, b.Cost)
	require.Equal(t, a.Iterations, b.Iterations)
	require.Equal(t, a.TabuSkips, b.TabuSkips)
}

func TestSolve_AllConstructionMethods(t *testing.T) {
	methods := []construct.Method{
		construct.ClarkeWright,
		construct.NearestNeighbor,
		construct.GreedyEdge,
		construct.CheapestInsertion,
		construct.Random,
	}
	for _, m := range methods {
		t.Run(m.String(), func(t *testing.T) {
			opts := solveOpts()
			opts.MaxIter = 60
			opts.Method = m

			res, err := vns.Solve(solveCoords, solveDemands, solveCapacity, opts)
			require.NoError(t, err)
			requireFeasible(t, res.Solution, len(solveCoords), solveDemands, solveCapacity)
		})
	}
}

func TestSolve_TraceIsStrictlyImproving(t *testing.T) {
	opts := solveOpts()
	opts.RecordTrace = true

	res, err := vns.Solve(solveCoords, solveDemands, solveCapacity, opts)
	require.NoError(t, err)
	require.NotEmpty(t, res.Trace)
	require.Equal(t, "Initial solution", res.Trace[0].Operation)

	var i int
	for i = 1; i < len(res.Trace); i++ {
		require.Less(t, res.Trace[i].Cost, res.Trace[i-1].Cost)
	}

	// Last frame matches the reported best, modulo cost stabilization.
	last := res.Trace[len(res.Trace)-1]
	require.InDelta(t, res.Cost, last.Cost, 1e-6)
}

func TestSolve_NoTraceByDefault(t *testing.T) {
	res, err := vns.Solve(solveCoords, solveDemands, solveCapacity, solveOpts())
	require.NoError(t, err)
	require.Nil(t, res.Trace)
}

func TestSolve_ValidationErrors(t *testing.T) {
	opts := solveOpts()

	// Instance-level failures.
	_, err := vns.Solve(solveCoords[:2], solveDemands, solveCapacity, opts)
	require.ErrorIs(t, err, cvrp.ErrDimensionMismatch)

	oversized := append([]int(nil), solveDemands...)
	oversized[3] = solveCapacity + 1
	_, err = vns.Solve(solveCoords, oversized, solveCapacity, opts)
	require.ErrorIs(t, err, cvrp.ErrInfeasibleInstance)

	// Option-level failures.
	bad := solveOpts()
	bad.MaxIter = 0
	_, err = vns.Solve(solveCoords, solveDemands, solveCapacity, bad)
	require.ErrorIs(t, err, vns.ErrBadOptions)

	bad = solveOpts()
	bad.KMax = 0
	_, err = vns.Solve(solveCoords, solveDemands, solveCapacity, bad)
	require.ErrorIs(t, err, vns.ErrBadOptions)

	bad = solveOpts()
	bad.Eps = -0.5
	_, err = vns.Solve(solveCoords, solveDemands, solveCapacity, bad)
	require.ErrorIs(t, err, vns.ErrBadOptions)
}

func TestSolve_TimeBudgetStopsTheLoop(t *testing.T) {
	opts := solveOpts()
	opts.MaxIter = 1 << 30
	opts.MaxTime = 50 * time.Millisecond

	start := time.Now()
	res, err := vns.Solve(solveCoords, solveDemands, solveCapacity, opts)
	require.NoError(t, err)
	requireFeasible(t, res.Solution, len(solveCoords), solveDemands, solveCapacity)
	require.Less(t, time.Since(start), 10*time.Second)
}

func TestSolve_PatienceStopsAStalledSearch(t *testing.T) {
	// Two full vehicles: no move can ever improve or reduce routes, so
	// the loop must stop on patience, not on the iteration cap. With
	// n = 3 the floor is max(50, 0) = 50 and patience is 300; the
	// floor only gates the check, so with no improvement ever the
	// break fires at iteration 301 exactly.
	coords := [][2]float64{{0, 0}, {1, 0}, {0, 1}}
	demands := []int{0, 5, 5}

	opts := solveOpts()
	opts.MaxIter = 5000

	res, err := vns.Solve(coords, demands, 5, opts)
	require.NoError(t, err)
	require.Equal(t, 301, res.Iterations)
	require.Zero(t, res.TabuSkips)
}

func TestSolve_TinyInstance(t *testing.T) {
	// Two customers, one vehicle each: nothing to optimize, but the
	// pipeline must still run end to end.
	coords := [][2]float64{{0, 0}, {1, 0}, {0, 1}}
	demands := []int{0, 5, 5}
	res, err := vns.Solve(coords, demands, 5, solveOpts())
	require.NoError(t, err)

	requireFeasible(t, res.Solution, len(coords), demands, 5)
	require.Len(t, res.Solution, 2)
}

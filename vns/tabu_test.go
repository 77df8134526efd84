package vns_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aturakulov/cvrpvns/cvrp"
	"github.com/aturakulov/cvrpvns/vns"
)

func TestTabuList_FIFOEviction(t *testing.T) {
	tl := vns.NewTabuList(2)

	tl.Insert("a")
	tl.Insert("b")
	require.True(t, tl.Contains("a"))
	require.True(t, tl.Contains("b"))
	require.Equal(t, 2, tl.Len())

	// Third insert evicts the oldest entry, not the least recent hit.
	tl.Insert("c")
	require.False(t, tl.Contains("a"))
	require.True(t, tl.Contains("b"))
	require.True(t, tl.Contains("c"))
	require.Equal(t, 2, tl.Len())
}

func TestTabuList_DuplicatesSurviveSingleEviction(t *testing.T) {
	tl := vns.NewTabuList(2)

	tl.Insert("a")
	tl.Insert("a")
	tl.Insert("b") // evicts one queued "a"

	require.True(t, tl.Contains("a"), "second occurrence still queued")
	tl.Insert("c") // evicts the remaining "a"
	require.False(t, tl.Contains("a"))
}

func TestNewTabuList_ClampsTenure(t *testing.T) {
	tl := vns.NewTabuList(0)
	require.Equal(t, 1, tl.Tenure())

	tl.Insert("a")
	tl.Insert("b")
	require.Equal(t, 1, tl.Len())
	require.False(t, tl.Contains("a"))
}

func TestTrace_RecordsOnlyStrictImprovements(t *testing.T) {
	init := cvrp.Solution{{0, 1, 2, 0}}
	tr := vns.NewTrace(init, 100)

	better := cvrp.Solution{{0, 2, 1, 0}}
	tr.Add(better, 90, "step", "down")
	tr.Add(better, 90, "step", "same cost, must be dropped")
	tr.Add(better, 95, "step", "regression, must be dropped")
	tr.Add(better, 80, "step", "down again")

	frames := tr.Frames()
	require.Len(t, frames, 3)
	require.Equal(t, "Initial solution", frames[0].Operation)
	require.Equal(t, 100.0, frames[0].Cost)
	require.Equal(t, 90.0, frames[1].Cost)
	require.Equal(t, 80.0, frames[2].Cost)
}

func TestTrace_SnapshotsAreImmune(t *testing.T) {
	sol := cvrp.Solution{{0, 1, 2, 0}}
	tr := vns.NewTrace(sol, 10)

	sol[0][1] = 99
	require.Equal(t, 1, tr.Frames()[0].Solution[0][1])
}

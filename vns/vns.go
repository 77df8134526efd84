// VNS orchestrator: the top-level state machine over construction,
// descent, shaking, tabu gating, acceptance, and termination.

package vns

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aturakulov/cvrpvns/construct"
	"github.com/aturakulov/cvrpvns/cvrp"
)

// Result carries the outcome of a Solve run.
type Result struct {
	// Solution is the best solution found; Cost its stabilized cost.
	Solution cvrp.Solution
	Cost     float64

	// InitialCost is the objective right after construction, before
	// any descent; useful for reporting search gain.
	InitialCost float64

	// Iterations is the number of searching-loop iterations executed
	// (tabu-skipped iterations included). TabuSkips counts how many of
	// them were abandoned at the tabu gate without running VND.
	Iterations int
	TabuSkips  int

	// Elapsed is the wall-clock search duration.
	Elapsed time.Duration

	// Trace is the improvement history (nil unless RecordTrace).
	Trace []Frame
}

// Solve runs the full Variable Neighborhood Search on one instance.
//
// Pipeline: validate → construct → initial VND → searching loop.
// Per searching iteration:
//  1. pick the shake operator by (k−1) mod 3 and shake the current
//     best with strength k;
//  2. if the shaken fingerprint is tabu, count a skip, advance
//     k = k mod kMax + 1, and move on without descending;
//  3. otherwise descend (VND) and accept the result when it beats the
//     best cost beyond tolerance, or ties it with fewer routes;
//  4. on acceptance: reset k to 1, remember the fingerprint, reset the
//     patience clock; on rejection: advance k.
//
// Stop conditions, polled each iteration: the iteration cap, the
// wall-clock cap, and patience (no improvement for more than
// clamp(n/5, PatienceMin, PatienceMax) iterations once past the
// max(50, n/10) floor).
//
// The search never fails after validation: whatever best solution
// exists when a stop condition fires is returned, even if no shaken
// candidate was ever accepted.
//
// Errors: cvrp.ErrDimensionMismatch / ErrBadCapacity / ErrDepotDemand
// / ErrNegativeDemand / ErrInfeasibleInstance from instance
// validation, ErrBadOptions from option validation. An infeasible
// customer is rejected here, up front, rather than silently dropped by
// a construction heuristic.
func Solve(coords [][2]float64, demands []int, capacity int, opts Options) (Result, error) {
	n, err := cvrp.ValidateInstance(coords, demands, capacity)
	if err != nil {
		return Result{}, err
	}
	if err = validateOptions(opts); err != nil {
		return Result{}, err
	}

	dist := cvrp.NewMatrix(coords)
	rng := cvrp.NewRand(opts.Seed)
	start := time.Now()

	// Construction. Unknown methods fall back to Clarke-Wright inside
	// Build; the enum makes that a configuration-time concern.
	s := construct.Build(opts.Method, demands, capacity, dist, rng)
	initCost := cvrp.SolutionCost(s, dist)

	var tr *Trace
	if opts.RecordTrace {
		tr = NewTrace(s, initCost)
	}

	// Initial descent establishes the first incumbent.
	s = Descend(s, demands, capacity, dist, opts.Eps, opts.UseOrOpt, tr)
	best := s.Clone()
	bestCost := cvrp.SolutionCost(best, dist)

	tabu := NewTabuList(clamp(n/20, TabuTenureMin, TabuTenureMax))

	var (
		kMax            = opts.KMax
		k               = 1
		iteration       = 0
		lastImprovement = 0
		tabuSkips       = 0
		patience        = clamp(n/5, PatienceMin, PatienceMax)
		minIterations   = maxInt(50, n/10)

		shaken, local cvrp.Solution
		costLocal     float64
		accept        bool
		improvement   float64
	)
	for iteration < opts.MaxIter && time.Since(start) < opts.MaxTime {
		// Shaking always perturbs the incumbent, not the last reject.
		shaken = applyShake(k, best, demands, capacity, rng)

		if tabu.Contains(cvrp.FingerprintOf(shaken)) {
			tabuSkips++
			k = k%kMax + 1
			iteration++

			continue
		}

		local = Descend(shaken, demands, capacity, dist, opts.Eps, opts.UseOrOpt, tr)
		costLocal = cvrp.SolutionCost(local, dist)

		accept = false
		improvement = 0
		if costLocal < bestCost-acceptTol {
			accept = true
			improvement = bestCost - costLocal
		} else if abs(costLocal-bestCost) < acceptTol && len(local) < len(best) {
			accept = true
		}

		if accept {
			best = local.Clone()
			bestCost = costLocal
			lastImprovement = iteration
			k = 1
			tabu.Insert(cvrp.FingerprintOf(local))

			if tr != nil && improvement > 0 {
				tr.Add(best, bestCost,
					fmt.Sprintf("VNS improvement (iter %d)", iteration),
					fmt.Sprintf("Delta cost: -%.2f", improvement))
			}
		} else {
			k = k%kMax + 1 // wrap through 1..kMax
		}

		iteration++

		if iteration > minIterations && iteration-lastImprovement > patience {
			break // patience exhausted
		}
	}

	res := Result{
		Solution:    best,
		Cost:        cvrp.Round1e9(bestCost),
		InitialCost: cvrp.Round1e9(initCost),
		Iterations:  iteration,
		TabuSkips:   tabuSkips,
		Elapsed:     time.Since(start),
	}
	if tr != nil {
		res.Trace = tr.Frames()
	}

	return res, nil
}

// applyShake dispatches to the shake operator selected by strength k:
// relocate, swap, reverse, cycling as k grows.
func applyShake(k int, sol cvrp.Solution, demands []int, capacity int, rng *rand.Rand) cvrp.Solution {
	switch (k - 1) % 3 {
	case 0:
		return ShakeRelocate(sol, demands, capacity, k, rng)
	case 1:
		return ShakeSwap(sol, demands, capacity, k, rng)
	default:
		return ShakeReverse(sol, demands, capacity, k, rng)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

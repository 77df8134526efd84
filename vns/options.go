package vns

import (
	"errors"
	"time"

	"github.com/aturakulov/cvrpvns/construct"
)

// Tuning constants. Tenure and patience are derived from instance
// size at solve time and clamped to these bounds.
const (
	// DefaultKMax is the maximum shaking strength.
	DefaultKMax = 5

	// DefaultMaxIter bounds the number of VNS iterations.
	DefaultMaxIter = 1000

	// DefaultMaxTime bounds wall-clock search time.
	DefaultMaxTime = 600 * time.Second

	// TabuTenureMin/Max clamp the derived tabu tenure n/20.
	TabuTenureMin = 10
	TabuTenureMax = 20

	// PatienceMin/Max clamp the derived early-stop patience n/5.
	PatienceMin = 300
	PatienceMax = 300

	// ImprovementThreshold is the default operator-level epsilon: a
	// move must beat the incumbent by more than this to be applied.
	ImprovementThreshold = 0.001

	// acceptTol is the fixed tolerance for VND/VNS acceptance and
	// trace recording. It is deliberately finer than the operator
	// epsilon: operators filter churn, acceptance detects real change.
	acceptTol = 1e-6

	// maxPasses bounds every operator's improve-until-fixed-point
	// loop. Each pass strictly improves cost by more than eps, so the
	// bound never fires on sane inputs; it guarantees termination
	// under degenerate ones.
	maxPasses = 100000
)

// ErrBadOptions is returned by Solve for internally inconsistent
// Options (negative limits, non-positive k_max, negative epsilon).
var ErrBadOptions = errors.New("vns: invalid options")

// Options configures a VNS run.
type Options struct {
	// MaxIter is the iteration cap (> 0).
	MaxIter int

	// MaxTime is the wall-clock cap (> 0). Polled at loop boundaries;
	// a caller wanting earlier abort injects a smaller budget.
	MaxTime time.Duration

	// Method selects the initial-solution builder.
	Method construct.Method

	// UseOrOpt enables the N6 Or-opt neighborhood in VND. Off by
	// default: its cost grows faster than cubic.
	UseOrOpt bool

	// Eps is the operator improvement threshold (>= 0).
	Eps float64

	// Seed drives all randomness (Random construction and shaking).
	// Zero selects the fixed default stream (see cvrp.NewRand).
	Seed int64

	// KMax is the maximum shaking strength (>= 1).
	KMax int

	// RecordTrace keeps the strictly-improving solution sequence in
	// Result.Trace for downstream rendering.
	RecordTrace bool
}

// DefaultOptions mirrors the solver's reference configuration.
func DefaultOptions() Options {
	return Options{
		MaxIter: DefaultMaxIter,
		MaxTime: DefaultMaxTime,
		Method:  construct.ClarkeWright,
		Eps:     ImprovementThreshold,
		KMax:    DefaultKMax,
	}
}

// validateOptions rejects configurations that would invert acceptance
// logic or prevent the loop from terminating.
func validateOptions(o Options) error {
	if o.MaxIter <= 0 || o.MaxTime <= 0 {
		return ErrBadOptions
	}
	if o.Eps < 0 {
		return ErrBadOptions
	}
	if o.KMax < 1 {
		return ErrBadOptions
	}

	return nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// Frame is one recorded search state: the solution snapshot, its cost,
// the operation that produced it, and a free-text detail line. The
// snapshot is a deep copy, immune to later search mutation.
type Frame struct {
	Solution  cvrp.Solution
	Cost      float64
	Operation string
	Details   string
}

// Trace collects the improvement history of a run for downstream
// rendering: the initial solution plus every strictly-improving
// accepted state, in order. It is a finite, append-only sequence, not
// a restartable stream.
type Trace struct {
	frames []Frame
}

// NewTrace starts a trace with a forced initial frame.
func NewTrace(initial cvrp.Solution, cost float64) *Trace {
	t := &Trace{}
	t.add(initial, cost, "Initial solution", "", true)

	return t
}

// Add records a frame only when it improves on the last stored cost by
// more than the acceptance tolerance, keeping the sequence strictly
// decreasing in cost.
func (t *Trace) Add(sol cvrp.Solution, cost float64, operation, details string) {
	t.add(sol, cost, operation, details, false)
}

func (t *Trace) add(sol cvrp.Solution, cost float64, operation, details string, force bool) {
	if !force && len(t.frames) > 0 && cost >= t.frames[len(t.frames)-1].Cost-acceptTol {
		return
	}

	t.frames = append(t.frames, Frame{
		Solution:  sol.Clone(),
		Cost:      cost,
		Operation: operation,
		Details:   details,
	})
}

// Frames returns the recorded sequence. The slice is shared; callers
// treat it as read-only.
func (t *Trace) Frames() []Frame { return t.frames }

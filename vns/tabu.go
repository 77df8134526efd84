package vns

import "github.com/aturakulov/cvrpvns/cvrp"

// TabuList is a bounded FIFO set of recently accepted solution
// fingerprints. It gates shaken candidates before any local-search
// effort is spent on them: a candidate whose fingerprint is still in
// the list is a recent revisit and gets skipped.
//
// Eviction is strictly FIFO by insertion order (not recency of use);
// the list never holds more than tenure entries.
type TabuList struct {
	tenure int
	order  []cvrp.Fingerprint
	count  map[cvrp.Fingerprint]int
}

// NewTabuList creates a list bounded to the given tenure (>= 1).
func NewTabuList(tenure int) *TabuList {
	if tenure < 1 {
		tenure = 1
	}

	return &TabuList{
		tenure: tenure,
		order:  make([]cvrp.Fingerprint, 0, tenure),
		count:  make(map[cvrp.Fingerprint]int, tenure),
	}
}

// Contains reports whether fp is currently tabu.
func (t *TabuList) Contains(fp cvrp.Fingerprint) bool {
	return t.count[fp] > 0
}

// Insert appends fp, evicting the oldest entry once the list exceeds
// its tenure. Duplicate fingerprints are counted, so membership
// survives until every queued occurrence is evicted.
func (t *TabuList) Insert(fp cvrp.Fingerprint) {
	t.order = append(t.order, fp)
	t.count[fp]++

	if len(t.order) > t.tenure {
		oldest := t.order[0]
		t.order = t.order[1:]
		t.count[oldest]--
		if t.count[oldest] == 0 {
			delete(t.count, oldest)
		}
	}
}

// Len returns the number of fingerprints currently held.
func (t *TabuList) Len() int { return len(t.order) }

// Tenure returns the configured bound.
func (t *TabuList) Tenure() int { return t.tenure }

// Package vns implements the Variable Neighborhood Search engine for
// the CVRP: six local-search neighborhood operators, three randomized
// shaking operators, the Variable Neighborhood Descent (VND) driver,
// a FIFO tabu list over canonical solution fingerprints, and the
// top-level orchestration loop.
//
// Search shape:
//
//	construct → VND → repeat{ shake(k) → tabu gate → VND →
//	                          accept/reject → adapt k } → best
//
// Operator discipline, shared by every neighborhood:
//   - clone-on-entry: operators never mutate their input Solution;
//   - a move is applied only when it is capacity-feasible and reduces
//     cost by strictly more than the improvement threshold eps;
//   - each operator runs its own improve-until-fixed-point loop,
//     bounded by a pass-count ceiling as a termination safety net;
//   - per-operator tie-break policy (first-improvement for N1/N4,
//     best-of-pass for N2/N3/N5/N6) is a documented contract; the
//     policies intentionally differ and must not be unified.
//
// The engine is single-threaded and synchronous. Randomness comes
// exclusively from the injected *rand.Rand, so a fixed seed reproduces
// a run exactly.
package vns

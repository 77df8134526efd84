// Package vrpio reads and writes the plain-text formats the solver
// interoperates with: TSPLIB-style .vrp instance files and the
// conventional .sol route listing.
//
// Only the subset of TSPLIB the CVRP solver needs is supported:
// DIMENSION, CAPACITY, NODE_COORD_SECTION, DEMAND_SECTION,
// DEPOT_SECTION, EOF. Node IDs are 1-based on disk and normalized to
// 0-based in memory (node 0 is the depot).
//
// This package sits at the I/O boundary, so unlike the core packages
// it wraps parse failures with file/line context via %w.
package vrpio

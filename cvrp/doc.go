// Package cvrp holds the shared data model of the Capacitated Vehicle
// Routing Problem solver: the dense Euclidean distance matrix, the
// Route/Solution representation, the cost model, instance/solution
// validation, the canonical solution fingerprint used by the tabu
// mechanism, and the deterministic RNG factory.
//
// Conventions used across the module:
//   - Node 0 is always the depot; customers are 1..n-1.
//   - A Route is a depot-bracketed index sequence: route[0] == 0 and
//     route[len-1] == 0, with each interior customer appearing once.
//   - A Solution is a set of such routes whose interior customers
//     cover {1..n-1} exactly once.
//   - Costs are Euclidean, symmetric, and stabilized to 1e-9 to avoid
//     cross-platform floating-point drift.
//
// All functions here are pure and side-effect free; none of them log
// or panic on user input — invalid shapes surface as sentinel errors.
package cvrp

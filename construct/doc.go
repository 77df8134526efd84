// Package construct provides the initial-solution builders for the
// CVRP solver: Clarke-Wright savings, nearest neighbor, greedy
// edge-based, cheapest insertion, and random packing.
//
// All builders share one contract:
//
//	Build(method, demands, capacity, dist, rng) -> Solution
//
// The result is feasible under capacity by construction. Builders are
// deterministic except Random, which consumes the provided RNG; the
// caller owns seeding (see cvrp.NewRand).
//
// Strategies are a closed enum resolved at configuration time, not a
// name→function lookup: an out-of-range Method value falls back to
// Clarke-Wright, which is the documented local recovery for unknown
// methods.
//
// Builders assume the instance passed cvrp.ValidateInstance. When
// invoked directly on an instance with a customer whose demand
// exceeds capacity, each heuristic keeps its own best-effort
// behavior (documented per builder) rather than erroring.
package construct

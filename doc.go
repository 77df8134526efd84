// Package cvrpvns solves the Capacitated Vehicle Routing Problem with
// a Variable Neighborhood Search metaheuristic.
//
// 🚚 What is cvrpvns?
//
//	A deterministic, dependency-light CVRP solver that brings together:
//		• Construction: Clarke-Wright savings, nearest neighbor,
//		  greedy edge, cheapest insertion, random
//		• Local search: 2-opt (intra & inter), relocate, swap,
//		  route merge, optional Or-opt
//		• Metaheuristic: VND descent inside a shaking VNS loop with a
//		  fingerprint tabu list
//		• I/O: TSPLIB-subset .vrp instances and .sol listings
//
// ✨ Why choose cvrpvns?
//
//   - Reproducible – every run is a pure function of (instance, Options.Seed)
//   - Predictable – explicit iteration, wall-clock and patience budgets
//   - Pure Go – no cgo, no solver binaries to install
//
// Everything is organized under four subpackages plus one command:
//
//	cvrp/      — shared data model: routes, solutions, distance matrix,
//	             validation, fingerprints, RNG policy
//	construct/ — initial-solution heuristics behind one Method enum
//	vns/       — neighborhoods, shaking, tabu, VND and the Solve loop
//	vrpio/     — .vrp / .sol parsing and writing
//	cmd/cvrpsolve — YAML-driven batch runner with gap reporting
//
// Quick start:
//
//	inst, err := vrpio.ReadInstance("data/instances/eil23.vrp")
//	if err != nil { ... }
//	res, err := vns.Solve(inst.Coords, inst.Demands, inst.Capacity, vns.DefaultOptions())
//	if err != nil { ... }
//	fmt.Printf("%d routes, cost %.2f\n", len(res.Solution), res.Cost)
package cvrpvns

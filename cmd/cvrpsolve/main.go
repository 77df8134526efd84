// Command cvrpsolve runs the VNS solver over a batch of TSPLIB-style
// CVRP instances described by a YAML run file, writes the resulting
// .sol files, and prints a summary table with gaps against best-known
// solutions when those are available.
//
// Usage:
//
//	cvrpsolve -config runs.yaml
//
// Example run file:
//
//	instances_dir: data/instances
//	solutions_dir: data/solutions
//	results_dir:   results
//	construction:  clarke_wright
//	use_or_opt:    false
//	seed:          1
//	runs:
//	  - name: eil23
//	    max_iter: 1000
//	    max_time_seconds: 600
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aturakulov/cvrpvns/construct"
	"github.com/aturakulov/cvrpvns/vns"
	"github.com/aturakulov/cvrpvns/vrpio"
)

type runSpec struct {
	Name    string  `yaml:"name"`
	MaxIter int     `yaml:"max_iter"`
	MaxTime float64 `yaml:"max_time_seconds"`
}

type config struct {
	InstancesDir string    `yaml:"instances_dir"`
	SolutionsDir string    `yaml:"solutions_dir"`
	ResultsDir   string    `yaml:"results_dir"`
	Construction string    `yaml:"construction"`
	UseOrOpt     bool      `yaml:"use_or_opt"`
	Seed         int64     `yaml:"seed"`
	Runs         []runSpec `yaml:"runs"`
}

// outcome is one finished run for the summary table.
type outcome struct {
	name      string
	cost      float64
	bestKnown float64 // <= 0 when unknown
	routes    int
}

func main() {
	configPath := flag.String("config", "cvrpsolve.yaml", "YAML run configuration")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cvrpsolve: %v\n", err)
		os.Exit(1)
	}

	if err = os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "cvrpsolve: results dir: %v\n", err)
		os.Exit(1)
	}

	method := parseMethod(cfg.Construction)

	var (
		results    []outcome
		totalStart = time.Now()
	)
	for _, run := range cfg.Runs {
		res, ok := runInstance(cfg, method, run)
		if ok {
			results = append(results, res)
		}
	}

	printSummary(results, time.Since(totalStart))
}

func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := config{
		InstancesDir: filepath.Join("data", "instances"),
		SolutionsDir: filepath.Join("data", "solutions"),
		ResultsDir:   "results",
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Runs) == 0 {
		return config{}, fmt.Errorf("config %s lists no runs", path)
	}

	return cfg, nil
}

// parseMethod maps the config string onto the closed Method enum.
// Unrecognized names fall back to Clarke-Wright with a warning, the
// same local recovery the solver documents.
func parseMethod(name string) construct.Method {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "", "clarke_wright":
		return construct.ClarkeWright
	case "nearest_neighbor":
		return construct.NearestNeighbor
	case "greedy":
		return construct.GreedyEdge
	case "cheapest_insertion":
		return construct.CheapestInsertion
	case "random":
		return construct.Random
	default:
		fmt.Printf("Unknown construction method %q, falling back to Clarke-Wright.\n", name)

		return construct.ClarkeWright
	}
}

func runInstance(cfg config, method construct.Method, run runSpec) (outcome, bool) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 70))
	fmt.Printf("Instance: %s\n", run.Name)
	fmt.Printf("%s\n", strings.Repeat("=", 70))

	inst, err := vrpio.ReadInstance(filepath.Join(cfg.InstancesDir, run.Name+".vrp"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return outcome{}, false
	}

	// Best-known solution is optional; missing files only degrade gap
	// reporting.
	bestKnown := -1.0
	solPath := filepath.Join(cfg.SolutionsDir, run.Name+".sol")
	if bk, bkErr := vrpio.ReadSolution(solPath); bkErr == nil {
		bestKnown = bk.Cost
	} else {
		fmt.Printf("Warning: %s not readable, gap will not be reported.\n", solPath)
	}

	opts := vns.DefaultOptions()
	opts.Method = method
	opts.UseOrOpt = cfg.UseOrOpt
	opts.Seed = cfg.Seed
	if run.MaxIter > 0 {
		opts.MaxIter = run.MaxIter
	}
	if run.MaxTime > 0 {
		opts.MaxTime = time.Duration(run.MaxTime * float64(time.Second))
	}

	fmt.Printf("Nodes: %d, capacity: %d\n", len(inst.Coords), inst.Capacity)
	fmt.Printf("Construction method: %s\n", method)
	fmt.Printf("Or-opt enabled: %v\n", cfg.UseOrOpt)

	res, err := vns.Solve(inst.Coords, inst.Demands, inst.Capacity, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return outcome{}, false
	}

	fmt.Printf("Initial cost: %.2f\n", res.InitialCost)
	fmt.Printf("Final solution: %d routes, cost = %.2f\n", len(res.Solution), res.Cost)
	fmt.Printf("Iterations: %d (tabu skips: %d), time: %.1fs\n",
		res.Iterations, res.TabuSkips, res.Elapsed.Seconds())

	outPath := filepath.Join(cfg.ResultsDir, run.Name+"_output.sol")
	if err = vrpio.SaveSolution(outPath, res.Solution, res.Cost); err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Printf("Solution saved to %s\n", outPath)
	}

	if bestKnown > 0 {
		gap := (res.Cost - bestKnown) / bestKnown * 100
		fmt.Printf("Best-known cost: %.2f, gap: %.2f%%\n", bestKnown, gap)
	}

	return outcome{name: run.Name, cost: res.Cost, bestKnown: bestKnown, routes: len(res.Solution)}, true
}

func printSummary(results []outcome, total time.Duration) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 70))
	fmt.Println("FINAL SUMMARY")
	fmt.Printf("%s\n", strings.Repeat("=", 70))
	fmt.Printf("%-20s %-15s %-15s %-8s %-10s\n", "Instance", "Best-Known", "VNS", "Routes", "Gap %")
	fmt.Printf("%s\n", strings.Repeat("-", 70))

	var gaps []float64
	for _, r := range results {
		if r.bestKnown > 0 {
			gap := (r.cost - r.bestKnown) / r.bestKnown * 100
			gaps = append(gaps, gap)
			fmt.Printf("%-20s %-15.2f %-15.2f %-8d %-10.2f\n", r.name, r.bestKnown, r.cost, r.routes, gap)
		} else {
			fmt.Printf("%-20s %-15s %-15.2f %-8d %-10s\n", r.name, "N/A", r.cost, r.routes, "N/A")
		}
	}

	fmt.Printf("%s\n", strings.Repeat("=", 70))
	if len(gaps) > 0 {
		var sum, best, worst float64
		best = gaps[0]
		worst = gaps[0]
		for _, g := range gaps {
			sum += g
			if g < best {
				best = g
			}
			if g > worst {
				worst = g
			}
		}
		fmt.Printf("Average gap: %.2f%%\n", sum/float64(len(gaps)))
		fmt.Printf("Best gap:    %.2f%%\n", best)
		fmt.Printf("Worst gap:   %.2f%%\n", worst)
	}
	fmt.Printf("Total runtime: %.1f minutes\n", total.Minutes())
}

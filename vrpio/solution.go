package vrpio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aturakulov/cvrpvns/cvrp"
)

// ErrMalformedSolution is wrapped into solution parse failures.
var ErrMalformedSolution = errors.New("vrpio: malformed solution")

// BestKnown holds a reference solution used for gap reporting only; it
// never influences the search.
type BestKnown struct {
	Routes [][]int // interior customers per route, 0-based
	Cost   float64
}

// ReadSolution loads a .sol file:
//
//	Route #1: 4 7 2
//	Route #2: 5 1 3 6
//	Cost 375
//
// Customer IDs are 1-based on disk.
func ReadSolution(path string) (BestKnown, error) {
	f, err := os.Open(path)
	if err != nil {
		return BestKnown{}, fmt.Errorf("vrpio: open solution: %w", err)
	}
	defer f.Close()

	bk, err := ParseSolution(f)
	if err != nil {
		return BestKnown{}, fmt.Errorf("%s: %w", path, err)
	}

	return bk, nil
}

// ParseSolution reads the route/cost listing from r.
func ParseSolution(r io.Reader) (BestKnown, error) {
	var (
		bk      BestKnown
		hasCost bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "cost"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return BestKnown{}, fmt.Errorf("cost line %q: %w", line, ErrMalformedSolution)
			}
			v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
			if err != nil {
				return BestKnown{}, fmt.Errorf("cost line %q: %w", line, ErrMalformedSolution)
			}
			bk.Cost = v
			hasCost = true

		case strings.HasPrefix(lower, "route"):
			body := line
			if i := strings.IndexByte(line, ':'); i >= 0 {
				body = line[i+1:]
			} else {
				body = ""
			}
			var route []int
			for _, tok := range strings.Fields(body) {
				id, err := strconv.Atoi(tok)
				if err != nil || id < 1 {
					return BestKnown{}, fmt.Errorf("route line %q: %w", line, ErrMalformedSolution)
				}
				route = append(route, id-1)
			}
			if len(route) > 0 {
				bk.Routes = append(bk.Routes, route)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return BestKnown{}, fmt.Errorf("vrpio: read solution: %w", err)
	}

	if !hasCost && len(bk.Routes) == 0 {
		return BestKnown{}, ErrMalformedSolution
	}

	return bk, nil
}

// WriteSolution writes sol in the same listing ParseSolution reads.
// The cost is rounded to the nearest integer, matching the common
// convention of published best-known files.
func WriteSolution(w io.Writer, sol cvrp.Solution, cost float64) error {
	bw := bufio.NewWriter(w)

	var (
		i, j int
		r    cvrp.Route
	)
	for i = 0; i < len(sol); i++ {
		r = sol[i]
		if _, err := fmt.Fprintf(bw, "Route #%d:", i+1); err != nil {
			return fmt.Errorf("vrpio: write solution: %w", err)
		}
		for j = 1; j < len(r)-1; j++ {
			if _, err := fmt.Fprintf(bw, " %d", r[j]+1); err != nil {
				return fmt.Errorf("vrpio: write solution: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("vrpio: write solution: %w", err)
		}
	}
	if _, err := fmt.Fprintf(bw, "Cost %d\n", int(math.Round(cost))); err != nil {
		return fmt.Errorf("vrpio: write solution: %w", err)
	}

	return bw.Flush()
}

// SaveSolution writes the listing to a file, creating or truncating it.
func SaveSolution(path string, sol cvrp.Solution, cost float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vrpio: create solution file: %w", err)
	}

	if err = WriteSolution(f, sol, cost); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

package vrpio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedInstance is wrapped into every instance parse failure.
var ErrMalformedInstance = errors.New("vrpio: malformed instance")

// Instance is one parsed CVRP problem: coords[0]/demands[0] belong to
// the depot.
type Instance struct {
	Name     string
	Coords   [][2]float64
	Demands  []int
	Capacity int
}

// ReadInstance loads a .vrp file from disk.
func ReadInstance(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("vrpio: open instance: %w", err)
	}
	defer f.Close()

	inst, err := ParseInstance(f)
	if err != nil {
		return Instance{}, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// ParseInstance reads the TSPLIB subset from r.
func ParseInstance(r io.Reader) (Instance, error) {
	var (
		inst      Instance
		dimension int
		section   string
		lineNo    int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "NAME"):
			inst.Name = headerValue(line)

			continue
		case strings.HasPrefix(line, "DIMENSION"):
			v, err := strconv.Atoi(headerValue(line))
			if err != nil {
				return Instance{}, fmt.Errorf("line %d: DIMENSION: %w", lineNo, ErrMalformedInstance)
			}
			dimension = v

			continue
		case strings.HasPrefix(line, "CAPACITY"):
			v, err := strconv.Atoi(headerValue(line))
			if err != nil {
				return Instance{}, fmt.Errorf("line %d: CAPACITY: %w", lineNo, ErrMalformedInstance)
			}
			inst.Capacity = v

			continue
		case line == "NODE_COORD_SECTION":
			section = "coords"

			continue
		case line == "DEMAND_SECTION":
			section = "demands"

			continue
		case line == "DEPOT_SECTION":
			section = "depot"

			continue
		case line == "EOF":
			section = ""

			continue
		case strings.Contains(line, ":"):
			// Unhandled header (TYPE, COMMENT, EDGE_WEIGHT_TYPE, ...).
			continue
		}

		switch section {
		case "coords":
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return Instance{}, fmt.Errorf("line %d: coord row: %w", lineNo, ErrMalformedInstance)
			}
			idx, err1 := strconv.Atoi(fields[0])
			x, err2 := strconv.ParseFloat(fields[1], 64)
			y, err3 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil || err3 != nil || idx < 1 {
				return Instance{}, fmt.Errorf("line %d: coord row: %w", lineNo, ErrMalformedInstance)
			}
			inst.Coords = growCoords(inst.Coords, idx)
			inst.Coords[idx-1] = [2]float64{x, y}

		case "demands":
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return Instance{}, fmt.Errorf("line %d: demand row: %w", lineNo, ErrMalformedInstance)
			}
			idx, err1 := strconv.Atoi(fields[0])
			d, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil || idx < 1 {
				return Instance{}, fmt.Errorf("line %d: demand row: %w", lineNo, ErrMalformedInstance)
			}
			inst.Demands = growDemands(inst.Demands, idx)
			inst.Demands[idx-1] = d

		case "depot", "":
			// Depot rows and trailing text are ignored: node 1 is the
			// depot by convention in the supported subset.
		}
	}
	if err := sc.Err(); err != nil {
		return Instance{}, fmt.Errorf("vrpio: read instance: %w", err)
	}

	if dimension > 0 && (len(inst.Coords) != dimension || len(inst.Demands) != dimension) {
		return Instance{}, fmt.Errorf("DIMENSION %d vs %d coords / %d demands: %w",
			dimension, len(inst.Coords), len(inst.Demands), ErrMalformedInstance)
	}
	if len(inst.Coords) == 0 {
		return Instance{}, fmt.Errorf("no NODE_COORD_SECTION: %w", ErrMalformedInstance)
	}

	return inst, nil
}

// headerValue returns the text after the first ':' in a header line.
func headerValue(line string) string {
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}

	return ""
}

func growCoords(s [][2]float64, idx int) [][2]float64 {
	for len(s) < idx {
		s = append(s, [2]float64{})
	}

	return s
}

func growDemands(s []int, idx int) []int {
	for len(s) < idx {
		s = append(s, 0)
	}

	return s
}

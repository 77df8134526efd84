// Dense Euclidean distance matrix.
//
// The matrix is computed once per problem instance from 2D coordinates
// and is immutable for the lifetime of a run. Storage is a linearized
// 1D buffer w[i*n+j] so hot local-search loops read distances without
// interface indirection or bounds gymnastics.
//
// Contract: At(i,j) requires 0 <= i,j < Len(). Out-of-range indices
// are a caller bug, not a runtime condition; the cost-model functions
// share the same index contract.

package cvrp

import "math"

// Matrix is a symmetric n×n Euclidean distance matrix.
type Matrix struct {
	n int
	w []float64 // linearized: w[i*n+j]
}

// NewMatrix builds the full distance matrix from node coordinates.
// coords[0] is the depot. Symmetry holds by construction; the diagonal
// is exactly zero.
//
// Complexity: O(n²) time, O(n²) space.
func NewMatrix(coords [][2]float64) *Matrix {
	n := len(coords)
	m := &Matrix{n: n, w: make([]float64, n*n)}

	var (
		i, j   int
		dx, dy float64
		d      float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = coords[i][0] - coords[j][0]
			dy = coords[i][1] - coords[j][1]
			d = math.Hypot(dx, dy)
			m.w[i*n+j] = d
			m.w[j*n+i] = d
		}
	}

	return m
}

// Len returns the matrix order n (node count, depot included).
func (m *Matrix) Len() int { return m.n }

// At returns the distance between nodes i and j.
//
// Complexity: O(1), no allocations.
func (m *Matrix) At(i, j int) float64 { return m.w[i*m.n+j] }

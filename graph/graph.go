// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Sentinel errors for graph construction and comparison.
var (
	// ErrNotSquare indicates that a row of the input matrix has the wrong length.
	ErrNotSquare = errors.New("graph: matrix is not square")

	// ErrNegativeWeight indicates a negative edge multiplicity in the input.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNotExtension indicates that a graph is not an additive extension of
	// the given base (smaller size, or some cell decreased).
	ErrNotExtension = errors.New("graph: not an extension of base")
)

// Internal panic messages for programmer errors.
const (
	panicNegativeSize   = "graph: New: negative vertex count"
	panicShrink         = "graph: Extend: target size smaller than source"
	panicNegativeAmount = "graph: AddEdge: negative amount"
)

// Graph is a dense directed multigraph over vertices 0..n-1.
// cells holds the n×n multiplicity matrix in row-major order;
// outDeg[i] caches the sum of row i.
type Graph struct {
	n      int
	cells  []int
	outDeg []int
}

// New returns a graph with n vertices and no edges.
// Complexity: O(n²) time and memory.
func New(n int) *Graph {
	if n < 0 {
		panic(panicNegativeSize)
	}

	return &Graph{
		n:      n,
		cells:  make([]int, n*n),
		outDeg: make([]int, n),
	}
}

// FromRows builds a graph from a square matrix of non-negative multiplicities.
// The rows are copied; the caller keeps ownership of rows.
//
// Errors: ErrNotSquare, ErrNegativeWeight (wrapped with the offending cell).
func FromRows(rows [][]int) (*Graph, error) {
	g := New(len(rows))
	var i, j int
	for i = range rows {
		if len(rows[i]) != g.n {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rows[i]), g.n, ErrNotSquare)
		}
		for j = range rows[i] {
			if rows[i][j] < 0 {
				return nil, fmt.Errorf("FromRows: cell (%d,%d)=%d: %w", i, j, rows[i][j], ErrNegativeWeight)
			}
			g.cells[i*g.n+j] = rows[i][j]
			g.outDeg[i] += rows[i][j]
		}
	}

	return g, nil
}

// Clone returns an independent deep copy of g.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	return &Graph{
		n:      g.n,
		cells:  append([]int(nil), g.cells...),
		outDeg: append([]int(nil), g.outDeg...),
	}
}

// Extend returns a new graph of n ≥ g.Size() vertices whose top-left block
// equals g; all new cells are zero. g itself is never modified.
// Complexity: O(n²).
func (g *Graph) Extend(n int) *Graph {
	if n < g.n {
		panic(panicShrink)
	}
	out := New(n)
	var i int
	for i = 0; i < g.n; i++ {
		copy(out.cells[i*n:i*n+g.n], g.cells[i*g.n:(i+1)*g.n])
	}
	copy(out.outDeg, g.outDeg)

	return out
}

// Size returns the number of vertices.
func (g *Graph) Size() int { return g.n }

// Edge returns the multiplicity of from→to.
func (g *Graph) Edge(from, to int) int {
	g.check(from, to)

	return g.cells[from*g.n+to]
}

// OutDegree returns the cached sum of row v.
func (g *Graph) OutDegree(v int) int { return g.outDeg[v] }

// AddEdge adds amount parallel edges from→to. amount must be ≥ 0; the graph
// never loses edges.
func (g *Graph) AddEdge(from, to, amount int) {
	if amount < 0 {
		panic(panicNegativeAmount)
	}
	g.check(from, to)
	g.cells[from*g.n+to] += amount
	g.outDeg[from] += amount
}

// OutgoingNeighbors returns the vertices v with Edge(u,v) ≠ 0 in ascending
// order. The sequence reads the matrix while it is consumed, so g must not be
// mutated mid-iteration; ranging it again starts over.
func (g *Graph) OutgoingNeighbors(u int) iter.Seq[int] {
	g.check(u, 0)

	return func(yield func(int) bool) {
		row := g.cells[u*g.n : (u+1)*g.n]
		for v, w := range row {
			if w != 0 && !yield(v) {
				return
			}
		}
	}
}

// TotalWeight returns the sum of all multiplicities.
func (g *Graph) TotalWeight() int {
	var sum int
	for _, d := range g.outDeg {
		sum += d
	}

	return sum
}

// Rows returns a deep copy of the matrix as a slice of rows.
func (g *Graph) Rows() [][]int {
	out := make([][]int, g.n)
	var i int
	for i = 0; i < g.n; i++ {
		out[i] = append([]int(nil), g.cells[i*g.n:(i+1)*g.n]...)
	}

	return out
}

// Equal reports whether g and other have the same size and cells.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Additions returns the cell-wise difference g − base, where base is padded
// with zeros up to g.Size(). The result is itself a Graph so it can be
// rendered and summed like any other.
//
// Errors: ErrNotExtension if base is larger than g or any cell of g is below
// the corresponding base cell.
func (g *Graph) Additions(base *Graph) (*Graph, error) {
	if base.n > g.n {
		return nil, fmt.Errorf("Additions: base size %d > %d: %w", base.n, g.n, ErrNotExtension)
	}
	diff := g.Clone()
	var i, j, w int
	for i = 0; i < base.n; i++ {
		for j = 0; j < base.n; j++ {
			w = base.cells[i*base.n+j]
			if diff.cells[i*g.n+j] < w {
				return nil, fmt.Errorf("Additions: cell (%d,%d) decreased: %w", i, j, ErrNotExtension)
			}
			diff.cells[i*g.n+j] -= w
			diff.outDeg[i] -= w
		}
	}

	return diff, nil
}

// String renders the matrix preceded by the vertex count, one row per line,
// which is also the input file layout.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", g.n)
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", g.cells[i*g.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// check panics with a descriptive message on out-of-range indices; the flat
// layout would otherwise silently alias a neighbouring row.
func (g *Graph) check(from, to int) {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		panic(fmt.Sprintf("graph: index (%d,%d) out of range [0,%d)", from, to, g.n))
	}
}

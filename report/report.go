// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/kembed/embed"
	"github.com/katalvlaran/kembed/graph"
	"gonum.org/v1/gonum/mat"
)

// ErrNilGraph indicates a nil graph argument.
var ErrNilGraph = errors.New("report: nil graph")

// emptyMatrix is printed for graphs without vertices.
const emptyMatrix = "(no vertices)"

// Matrix writes the vertex count and the adjacency matrix of g using gonum's
// bracketed layout.
func Matrix(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return fmt.Errorf("Matrix: %w", ErrNilGraph)
	}
	var err error
	if g.Size() == 0 {
		_, err = fmt.Fprintf(w, "0\n%s\n", emptyMatrix)
	} else {
		_, err = fmt.Fprintf(w, "%d\n%v\n", g.Size(), mat.Formatted(g.Dense(), mat.Squeeze()))
	}
	if err != nil {
		return fmt.Errorf("Matrix: %w", err)
	}

	return nil
}

// Diff writes one row per vertex of result: "+n" where result exceeds base
// by n, "." where the cell is unchanged. Vertices appended during extension
// compare against zero.
func Diff(w io.Writer, result, base *graph.Graph) error {
	if result == nil || base == nil {
		return fmt.Errorf("Diff: %w", ErrNilGraph)
	}
	add, err := result.Additions(base)
	if err != nil {
		return fmt.Errorf("Diff: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	cells := make([]string, add.Size())
	for i, row := range add.Rows() {
		for j, d := range row {
			if d == 0 {
				cells[j] = "."
			} else {
				cells[j] = fmt.Sprintf("+%d", d)
			}
		}
		if _, err = fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("Diff: row %d: %w", i, err)
		}
	}
	if err = tw.Flush(); err != nil {
		return fmt.Errorf("Diff: %w", err)
	}

	return nil
}

// Subgraph writes the vertex assignment of one copy of h in g, followed by
// every edge of h next to the weight of its image in g.
func Subgraph(w io.Writer, g, h *graph.Graph, mapping []int) error {
	if g == nil || h == nil {
		return fmt.Errorf("Subgraph: %w", ErrNilGraph)
	}
	if len(mapping) != h.Size() {
		return fmt.Errorf("Subgraph: len=%d, |H|=%d: %w", len(mapping), h.Size(), embed.ErrMappingLength)
	}
	for u, x := range mapping {
		if x < 0 || x >= g.Size() {
			return fmt.Errorf("Subgraph: φ(%d)=%d not in [0,%d): %w", u, x, g.Size(), embed.ErrMappingOutOfRange)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "H\tG")
	for u, x := range mapping {
		fmt.Fprintf(tw, "%d\t%d\n", u, x)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("Subgraph: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("Subgraph: %w", err)
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "H edge\tweight\tG edge\tweight")
	for u := 0; u < h.Size(); u++ {
		for v := range h.OutgoingNeighbors(u) {
			fmt.Fprintf(tw, "%d→%d\t%d\t%d→%d\t%d\n",
				u, v, h.Edge(u, v), mapping[u], mapping[v], g.Edge(mapping[u], mapping[v]))
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("Subgraph: %w", err)
	}

	return nil
}

// Summary is everything the full report shows.
type Summary struct {
	G, H   *graph.Graph
	K      int
	Result embed.Result

	// Pretty renders matrices with Matrix instead of the input layout.
	Pretty bool
}

// Write renders the full report: both inputs, k, the extended host with its
// edit count, the difference against G and every copy numbered from 1.
func Write(w io.Writer, s Summary) error {
	if s.G == nil || s.H == nil || s.Result.Graph == nil {
		return fmt.Errorf("Write: %w", ErrNilGraph)
	}
	var b strings.Builder
	matrix := func(g *graph.Graph) error {
		if s.Pretty {
			return Matrix(&b, g)
		}
		_, err := b.WriteString(g.String())

		return err
	}

	b.WriteString("Graphs are displayed as adjacency matrices preceded by a number of vertices.\n")
	b.WriteString("'m[i][j] = x' means there are 'x' edges from vertex 'i' to vertex 'j'\n\n")
	b.WriteString("Given the graph G:\n")
	if err := matrix(s.G); err != nil {
		return fmt.Errorf("Write: G: %w", err)
	}
	b.WriteString("\nGiven the graph H to find in the extended G:\n")
	if err := matrix(s.H); err != nil {
		return fmt.Errorf("Write: H: %w", err)
	}
	fmt.Fprintf(&b, "\nAnd given the number of copies to find k is %d\n\n", s.K)
	fmt.Fprintf(&b, "Solution (the extended G) found with %d edits (%d vertices, %d edges):\n",
		s.Result.Cost, s.Result.MissingVertices, s.Result.EdgeAdditions())
	if err := matrix(s.Result.Graph); err != nil {
		return fmt.Errorf("Write: result: %w", err)
	}
	b.WriteString("\nThe difference between the base graph G and the solution is:\n")
	if err := Diff(&b, s.Result.Graph, s.G); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	b.WriteString("\nCopies of H found in the extended G are as follows:\n")
	for i, phi := range s.Result.Mapping {
		fmt.Fprintf(&b, "\nNr %d:\n", i+1)
		if err := Subgraph(&b, s.Result.Graph, s.H, phi); err != nil {
			return fmt.Errorf("Write: copy %d: %w", i+1, err)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

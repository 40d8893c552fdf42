// SPDX-License-Identifier: MIT

package embed_test

import (
	"testing"

	"github.com/katalvlaran/kembed/embed"
	"github.com/katalvlaran/kembed/graph"
	"github.com/stretchr/testify/require"
)

// mustRows builds a graph from literal rows or fails the test.
func mustRows(t testing.TB, rows ...[]int) *graph.Graph {
	t.Helper()
	g, err := graph.FromRows(rows)
	require.NoError(t, err)

	return g
}

// requireSound checks the structural guarantees every Result must satisfy:
// k verified copies, the extension size, and a cost that matches the edge
// increments actually present in Result.Graph.
func requireSound(t *testing.T, g, h *graph.Graph, k int, res embed.Result) {
	t.Helper()
	require.NotNil(t, res.Graph)
	require.NoError(t, embed.VerifyResult(h, res, k))
	require.Equal(t, g.Size()+res.MissingVertices, res.Graph.Size())

	diff, err := res.Graph.Additions(g)
	require.NoError(t, err)
	require.Equal(t, res.EdgeAdditions(), diff.TotalWeight())
	require.GreaterOrEqual(t, res.EdgeAdditions(), 0)
}

// solvers lists the two concrete solvers by name.
func solvers() map[string]embed.Solver {
	return map[string]embed.Solver{
		"exact":       embed.NewExactSolver(),
		"approximate": embed.NewApproximateSolver(),
	}
}

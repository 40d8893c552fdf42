// SPDX-License-Identifier: MIT

package embed_test

import (
	"testing"

	"github.com/katalvlaran/kembed/embed"
	"github.com/katalvlaran/kembed/graph"
	"github.com/stretchr/testify/require"
)

func TestApprox_DegreeAlignment(t *testing.T) {
	// Host vertex 1 has the largest out-degree, so the heaviest pattern
	// vertex lands on it; its partner is vertex 0 (ties keep index order),
	// which misses the existing 1→2 edge.
	g := mustRows(t,
		[]int{0, 0, 0},
		[]int{0, 0, 1},
		[]int{0, 0, 0},
	)
	h := mustRows(t, []int{0, 1}, []int{0, 0})
	res, err := embed.NewApproximateSolver().Solve(g, h, 1)
	require.NoError(t, err)
	require.Equal(t, 1, res.Cost)
	require.Equal(t, [][]int{{1, 0}}, res.Mapping)
	require.Equal(t, 1, res.Graph.Edge(1, 0))
	require.Equal(t, embed.Stats{Candidates: 1}, res.Stats)
	requireSound(t, g, h, 1, res)

	exact, err := embed.NewExactSolver().Solve(g, h, 1)
	require.NoError(t, err)
	require.Less(t, exact.Cost, res.Cost)
}

func TestApprox_FirstCombinations(t *testing.T) {
	g := graph.New(3)
	h := mustRows(t, []int{0, 1}, []int{0, 0})
	res, err := embed.NewApproximateSolver().Solve(g, h, 2)
	require.NoError(t, err)
	require.Equal(t, 2, res.Cost)
	require.Equal(t, [][]int{{0, 1}, {0, 2}}, res.Mapping)
	requireSound(t, g, h, 2, res)
}

func TestApprox_SelfLoopsOnExtension(t *testing.T) {
	// Three single-vertex copies need three host vertices; each gets a loop.
	g := graph.New(2)
	h := mustRows(t, []int{1})
	res, err := embed.NewApproximateSolver().Solve(g, h, 3)
	require.NoError(t, err)
	require.Equal(t, 1, res.MissingVertices)
	require.Equal(t, 1+3, res.Cost)
	requireSound(t, g, h, 3, res)
}

func TestApprox_AlreadyEmbedded(t *testing.T) {
	g := mustRows(t, []int{1, 2}, []int{2, 1})
	h := mustRows(t, []int{1, 1}, []int{1, 1})
	res, err := embed.NewApproximateSolver().Solve(g, h, 1)
	require.NoError(t, err)
	require.Zero(t, res.Cost)
	require.True(t, res.Graph.Equal(g))
	requireSound(t, g, h, 1, res)
}

func TestApprox_DoesNotMutateInputs(t *testing.T) {
	g := mustRows(t, []int{0, 3}, []int{0, 0})
	h := mustRows(t, []int{0, 1}, []int{2, 0})
	gBefore, hBefore := g.Clone(), h.Clone()
	res, err := embed.NewApproximateSolver().Solve(g, h, 3)
	require.NoError(t, err)
	require.True(t, g.Equal(gBefore))
	require.True(t, h.Equal(hBefore))
	requireSound(t, g, h, 3, res)
}

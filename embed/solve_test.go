// SPDX-License-Identifier: MIT

package embed_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/kembed/embed"
	"github.com/katalvlaran/kembed/graph"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSolve_InvalidInputs(t *testing.T) {
	g, h := graph.New(2), graph.New(1)
	for name, s := range solvers() {
		_, err := s.Solve(nil, h, 1)
		require.ErrorIs(t, err, embed.ErrNilGraph, name)

		_, err = s.Solve(g, nil, 1)
		require.ErrorIs(t, err, embed.ErrNilGraph, name)

		_, err = s.Solve(g, graph.New(0), 1)
		require.ErrorIs(t, err, embed.ErrEmptyPattern, name)

		_, err = s.Solve(g, h, 0)
		require.ErrorIs(t, err, embed.ErrInvalidCopies, name)
	}
}

func TestSolve_Dispatch(t *testing.T) {
	g := mustRows(t,
		[]int{0, 0, 0},
		[]int{0, 0, 1},
		[]int{0, 0, 0},
	)
	h := mustRows(t, []int{0, 1}, []int{0, 0})

	res, err := embed.Solve(g, h, 1)
	require.NoError(t, err)
	require.Zero(t, res.Cost, "default is exact")

	res, err = embed.Solve(g, h, 1, embed.WithAlgorithm(embed.Approximate))
	require.NoError(t, err)
	require.Equal(t, 1, res.Cost)

	_, err = embed.Solve(g, h, 1, embed.WithAlgorithm(embed.Algorithm(42)))
	require.ErrorIs(t, err, embed.ErrUnsupportedAlgorithm)
}

func TestNewSolver_Types(t *testing.T) {
	s, err := embed.NewSolver()
	require.NoError(t, err)
	require.IsType(t, &embed.ExactSolver{}, s)

	s, err = embed.NewSolver(embed.WithAlgorithm(embed.Approximate))
	require.NoError(t, err)
	require.IsType(t, &embed.ApproximateSolver{}, s)

	require.Panics(t, func() { _, _ = embed.NewSolver(nil) })
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]embed.Algorithm{
		"exact":       embed.Exact,
		"EXACT":       embed.Exact,
		"approximate": embed.Approximate,
		" approx ":    embed.Approximate,
	} {
		got, err := embed.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := embed.ParseAlgorithm("greedy")
	require.ErrorIs(t, err, embed.ErrUnsupportedAlgorithm)

	require.Equal(t, "exact", embed.Exact.String())
	require.Equal(t, "approximate", embed.Approximate.String())
	require.Equal(t, "Algorithm(7)", embed.Algorithm(7).String())
}

func TestSolve_LogsDebugEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := graph.New(2)
	h := mustRows(t, []int{0, 1}, []int{0, 0})

	_, err := embed.Solve(g, h, 1, embed.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"message":"exact search prepared"`)
	require.Contains(t, buf.String(), `"message":"exact search finished"`)

	buf.Reset()
	_, err = embed.Solve(g, h, 1, embed.WithLogger(logger), embed.WithAlgorithm(embed.Approximate))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"message":"greedy pass finished"`)

	buf.Reset()
	_, err = embed.Solve(g, h, 1, embed.WithLogger(logger.Level(zerolog.InfoLevel)))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

// SPDX-License-Identifier: MIT

package embed_test

import (
	"testing"

	"github.com/katalvlaran/kembed/embed"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	g := mustRows(t,
		[]int{1, 2, 0},
		[]int{0, 0, 0},
		[]int{0, 1, 0},
	)
	h := mustRows(t, []int{1, 2}, []int{0, 0})

	require.NoError(t, embed.Verify(g, h, []int{0, 1}))

	cases := map[string]struct {
		mapping []int
		want    error
	}{
		"short":      {[]int{0}, embed.ErrMappingLength},
		"long":       {[]int{0, 1, 2}, embed.ErrMappingLength},
		"negative":   {[]int{-1, 1}, embed.ErrMappingOutOfRange},
		"too large":  {[]int{0, 3}, embed.ErrMappingOutOfRange},
		"not 1-1":    {[]int{1, 1}, embed.ErrNotInjective},
		"no loop":    {[]int{2, 1}, embed.ErrWeightDeficit},
		"light edge": {[]int{0, 2}, embed.ErrWeightDeficit},
		"reversed":   {[]int{1, 0}, embed.ErrWeightDeficit},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, embed.Verify(g, h, tc.mapping), tc.want)
		})
	}

	require.ErrorIs(t, embed.Verify(nil, h, []int{0, 1}), embed.ErrNilGraph)
	require.ErrorIs(t, embed.Verify(g, nil, nil), embed.ErrNilGraph)
}

func TestVerifyResult_CopyCount(t *testing.T) {
	g := mustRows(t, []int{0, 1}, []int{0, 0})
	h := mustRows(t, []int{0, 1}, []int{0, 0})
	res := embed.Result{Graph: g, Mapping: [][]int{{0, 1}}}

	require.NoError(t, embed.VerifyResult(h, res, 1))
	require.ErrorIs(t, embed.VerifyResult(h, res, 2), embed.ErrMappingLength)

	res.Mapping = [][]int{{0, 1}, {1, 0}}
	require.ErrorIs(t, embed.VerifyResult(h, res, 2), embed.ErrWeightDeficit)
}

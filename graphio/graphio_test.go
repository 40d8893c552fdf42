// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/kembed/graph"
	"github.com/katalvlaran/kembed/graphio"
	"github.com/stretchr/testify/require"
)

const sample = `3
0 1 0
0 0 2
1 0 0
2
0 1
1 0
2
`

func TestRead_Sample(t *testing.T) {
	in, err := graphio.Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 0}, {0, 0, 2}, {1, 0, 0}}, in.G.Rows())
	require.Equal(t, [][]int{{0, 1}, {1, 0}}, in.H.Rows())
	require.Equal(t, 2, in.K)
	require.Equal(t, 2, in.G.OutDegree(1))
}

func TestRead_Lenient(t *testing.T) {
	cases := map[string]string{
		"default k":        "1\n0\n1\n1\n",
		"no final newline": "1\n0\n1\n1",
		"crlf and tabs":    "1\r\n0\r\n1\r\n\t1 \r\n",
		"trailing blanks":  "1\n0\n1\n1\n\n\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			in, err := graphio.Read(strings.NewReader(src))
			require.NoError(t, err)
			require.Equal(t, 1, in.G.Size())
			require.Equal(t, 1, in.H.Edge(0, 0))
			require.Equal(t, graphio.DefaultCopies, in.K)
		})
	}
}

func TestRead_EmptyGraphs(t *testing.T) {
	in, err := graphio.Read(strings.NewReader("0\n0\n"))
	require.NoError(t, err)
	require.Zero(t, in.G.Size())
	require.Zero(t, in.H.Size())
}

func TestRead_Malformed(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"empty":          {"", graphio.ErrMissingCount},
		"no H":           {"1\n0\n", graphio.ErrMissingCount},
		"count has two":  {"1 2\n0\n", graphio.ErrMissingCount},
		"negative count": {"-1\n", graphio.ErrMissingCount},
		"short row":      {"2\n0 1\n0\n1\n0\n", graphio.ErrRowLength},
		"long row":       {"1\n0 0\n1\n0\n", graphio.ErrRowLength},
		"blank row":      {"2\n0 1\n\n1\n0\n", graphio.ErrRowLength},
		"truncated":      {"3\n0 0 0\n", graphio.ErrMissingRows},
		"huge count":     {"1000000000000000\n", graphio.ErrMissingRows},
		"negative cell":  {"1\n-2\n1\n0\n", graphio.ErrNegativeWeight},
		"k twice":        {"1\n0\n1\n0\n2\n3\n", graphio.ErrTrailingData},
		"k pair":         {"1\n0\n1\n0\n2 3\n", graphio.ErrTrailingData},
		"k zero":         {"1\n0\n1\n0\n0\n", graphio.ErrTrailingData},
		"letters":        {"1\nx\n1\n0\n", graphio.ErrMalformed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, graphio.ErrMalformed)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := graph.FromRows([][]int{{0, 3}, {1, 1}})
	require.NoError(t, err)
	in := graphio.Input{G: g, H: graph.New(1), K: 4}

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, in))
	require.Equal(t, "2\n0 3\n1 1\n1\n0\n4\n", buf.String())

	out, err := graphio.Read(&buf)
	require.NoError(t, err)
	require.True(t, out.G.Equal(in.G))
	require.True(t, out.H.Equal(in.H))
	require.Equal(t, in.K, out.K)

	require.ErrorIs(t, graphio.Write(&buf, graphio.Input{G: g}), graphio.ErrNilGraph)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	in, err := graphio.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, in.K)

	_, err = graphio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

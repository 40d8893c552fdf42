// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeInput stores body in a temp file and returns its path.
func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_Stdout(t *testing.T) {
	src := writeInput(t, "2\n0 0\n0 0\n2\n0 1\n0 0\n")
	var out, errOut bytes.Buffer
	require.Equal(t, exitOK, run([]string{src}, &out, &errOut))
	require.Contains(t, out.String(), "found with 1 edits")
	require.Contains(t, out.String(), "Nr 1:")
}

func TestRun_ApproximateToFile(t *testing.T) {
	src := writeInput(t, "3\n0 0 0\n0 0 1\n0 0 0\n2\n0 1\n0 0\n")
	dst := filepath.Join(t.TempDir(), "out.txt")
	var out, errOut bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-a", src, dst}, &out, &errOut))
	require.Empty(t, out.String())

	body, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(body), "found with 1 edits")
}

func TestRun_UsageErrors(t *testing.T) {
	good := writeInput(t, "1\n0\n1\n0\n")
	cases := map[string][]string{
		"no args":      {},
		"too many":     {good, "a", "b"},
		"missing src":  {filepath.Join(t.TempDir(), "nope.txt")},
		"bad dst dir":  {good, filepath.Join(t.TempDir(), "no", "such", "out.txt")},
		"bad flag":     {"-z", good},
		"empty H":      {writeInput(t, "1\n0\n0\n")},
		"malformed":    {writeInput(t, "2\n0 0\n")},
		"bad algo env": {good},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if name == "bad algo env" {
				t.Setenv("KEMBED_SOLVER_ALGORITHM", "quantum")
			}
			var out, errOut bytes.Buffer
			require.Equal(t, exitUsage, run(args, &out, &errOut))
			require.Empty(t, out.String())
			require.NotEmpty(t, errOut.String())
		})
	}
}

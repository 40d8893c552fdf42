// SPDX-License-Identifier: MIT

// Package report renders graphs and solve results for humans.
//
// Matrix prints a gonum-formatted adjacency matrix. Diff marks every cell
// the solver increased with "+n". Subgraph tabulates one copy of the
// pattern: which host vertex hosts each pattern vertex and how the weights
// of mapped edges compare. Write assembles all of it into the full run
// report printed by cmd/kembed.
//
// Renderers only read their arguments and return the first write error.
package report

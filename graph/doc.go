// SPDX-License-Identifier: MIT

// Package graph provides the dense weighted multigraph used by the kembed
// solvers: an n×n matrix of non-negative edge multiplicities with a cached
// out-degree per row.
//
// 🚀 What is a Graph here?
//
//	Vertices are the integers 0..n-1. Edge(u,v) is the number of parallel
//	directed edges u→v; self-loops are ordinary diagonal cells. The graph only
//	ever grows:
//	  • AddEdge increments a cell (never decrements)
//	  • Extend returns a NEW, larger graph whose top-left block equals the source
//	  • Clone returns an independent deep copy
//
// ✨ Invariants:
//   - OutDegree(i) == Σⱼ Edge(i,j) at all times; maintained incrementally.
//   - Values returned by Clone/Extend/Rows never share storage with the receiver.
//   - OutgoingNeighbors is a fresh lazy sequence on every call, not a live view.
//
// Index arguments outside [0,Size()) are a caller contract violation and panic
// like any out-of-range slice access. Errors are reserved for untrusted input
// (FromRows) and for comparing graphs (Additions).
//
// ⚙️ Usage:
//
//	g := graph.New(3)
//	g.AddEdge(0, 1, 2)
//	big := g.Extend(5)   // g is untouched
//	for v := range big.OutgoingNeighbors(0) {
//	  fmt.Println(v)     // 1
//	}
//
// Graph is not safe for concurrent mutation; solvers give every candidate its
// own Clone.
package graph

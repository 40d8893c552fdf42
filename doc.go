// SPDX-License-Identifier: MIT

// Package kembed finds the cheapest way to grow a weighted directed
// multigraph G so that it hosts k copies of a smaller pattern H.
//
// 🚀 What is kembed?
//
//	A small, deterministic toolkit for the minimum-edit embedding problem:
//		• graph/     dense n×n multiplicity matrix with cached out-degrees
//		• combinat/  lazy combinations, permutations and mixed-radix words; binomials
//		• embed/     exact search with pruning, degree-aligned greedy, verification
//		• graphio/   the plain-text problem format (read & write)
//		• report/    matrix dump, "+n" difference view, per-copy tables
//		• builder/   seeded instance generators (chain, clique, grid, dense, sparse, multi)
//		• config/    viper settings and zerolog loggers for the commands
//
// ✨ The problem in one picture:
//
//	G:  0 ──► 1      H:  a ──► b      k = 2
//	    2
//
//	One copy is free (a→0, b→1). The second needs a different vertex pair,
//	so one edge is added (for example 0→2): total cost 1.
//
// An edit is one appended vertex or one unit increment of one edge weight.
// Copies may overlap; they only need distinct vertex sets.
//
// Commands:
//
//	go run ./cmd/kembed [-a] src [dst]   solve an instance file
//	go run ./cmd/kgen [flags] [dst]      generate an instance file
//
// Exact search is combinatorial in |G|, |H| and k and meant for small
// instances; the greedy solver scales to large hosts.
package kembed

// SPDX-License-Identifier: MIT

package combinat

import (
	"iter"
	"slices"
)

// Combinations yields every strictly increasing r-tuple over [0,n) in
// lexicographic order.
//
// Successor rule: find the rightmost index i with c[i] < n-r+i, increment it,
// and reset c[i+1:] to consecutive values. r == 0 yields one empty tuple;
// r > n or negative arguments yield nothing.
//
// Complexity: O(r) amortized per tuple plus the copy.
func Combinations(r, n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if r < 0 || n < 0 || r > n {
			return
		}
		c := make([]int, r)
		var i, j int
		for i = range c {
			c[i] = i
		}
		for {
			if !yield(slices.Clone(c)) {
				return
			}
			i = r - 1
			for i >= 0 && c[i] == n-r+i {
				i--
			}
			if i < 0 {
				return
			}
			c[i]++
			for j = i + 1; j < r; j++ {
				c[j] = c[j-1] + 1
			}
		}
	}
}

// Permutations yields all m! permutations of [0,m) using the iterative form
// of Heap's algorithm: the identity comes first and each following tuple
// differs from its predecessor by exactly one transposition.
// m == 0 yields one empty tuple; m < 0 yields nothing.
func Permutations(m int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if m < 0 {
			return
		}
		p := make([]int, m)
		for i := range p {
			p[i] = i
		}
		if !yield(slices.Clone(p)) {
			return
		}
		// c is the per-level swap counter of the recursive formulation.
		c := make([]int, m)
		i := 1
		for i < m {
			if c[i] < i {
				if i%2 == 0 {
					p[0], p[i] = p[i], p[0]
				} else {
					p[c[i]], p[i] = p[i], p[c[i]]
				}
				if !yield(slices.Clone(p)) {
					return
				}
				c[i]++
				i = 1
				continue
			}
			c[i] = 0
			i++
		}
	}
}

// Words yields every tuple of the given length over [0,base) in odometer
// order: index 0 is the least-significant digit and carries propagate toward
// higher indices. The all-zero word comes first.
// length == 0 yields one empty tuple; base == 0 with length > 0, or negative
// arguments, yield nothing.
func Words(length, base int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if length < 0 || base < 0 || (base == 0 && length > 0) {
			return
		}
		w := make([]int, length)
		var i int
		for {
			if !yield(slices.Clone(w)) {
				return
			}
			for i = 0; i < length && w[i] == base-1; i++ {
				w[i] = 0
			}
			if i == length {
				return
			}
			w[i]++
		}
	}
}

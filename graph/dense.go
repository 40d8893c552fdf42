// SPDX-License-Identifier: MIT

package graph

import "gonum.org/v1/gonum/mat"

// Dense returns a gonum copy of the multiplicity matrix, or nil for the
// empty graph (gonum rejects zero-sized matrices).
// Complexity: O(n²).
func (g *Graph) Dense() *mat.Dense {
	if g.n == 0 {
		return nil
	}
	data := make([]float64, len(g.cells))
	for i, w := range g.cells {
		data[i] = float64(w)
	}

	return mat.NewDense(g.n, g.n, data)
}

// SPDX-License-Identifier: MIT

package combinat

import (
	"math"
	"math/big"
)

// Binomial returns C(n,k), or 0 when k < 0 or k > n.
//
// The descending product n·(n-1)·…·(n-k'+1) / k'! (k' = min(k, n-k)) is
// evaluated in arbitrary precision and the quotient is clamped into
// [0, math.MaxInt]. The function is therefore total and monotone in n for a
// fixed k, which is all the feasibility search needs; values above MaxInt are
// not exact.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if n-k < k {
		k = n - k
	}
	num := new(big.Int).MulRange(int64(n-k+1), int64(n))
	den := new(big.Int).MulRange(1, int64(k))

	return clamp(num.Quo(num, den))
}

// Factorial returns n! clamped into [0, math.MaxInt], or 0 for n < 0.
func Factorial(n int) int {
	if n < 0 {
		return 0
	}

	return clamp(new(big.Int).MulRange(1, int64(n)))
}

// clamp converts x to int, saturating at the bounds of [0, math.MaxInt].
func clamp(x *big.Int) int {
	if x.Sign() < 0 {
		return 0
	}
	if !x.IsInt64() || x.Int64() > math.MaxInt {
		return math.MaxInt
	}

	return int(x.Int64())
}

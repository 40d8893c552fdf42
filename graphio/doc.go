// SPDX-License-Identifier: MIT

// Package graphio reads and writes the plain-text problem format:
//
//	n            vertex count of G
//	r₀ … rₙ₋₁    n rows of n space-separated multiplicities
//	m            vertex count of H
//	…            m rows of m multiplicities
//	k            optional number of copies (default 1)
//
// Tokens are integers separated by spaces or tabs; lines end with LF or CRLF.
// Blank lines after the last record are ignored, blank lines inside it are
// not. Every rejection wraps ErrMalformed, so callers can branch once with
// errors.Is and still reach the specific cause.
package graphio

// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points: the Zeros/Identity
//     factories, ScalarMultiply with the scalar on the left, and comparisons.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.

package matrix

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// Zeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Errors: ErrInvalidDimensions when rows < 1 or cols < 1.
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// Errors: ErrInvalidDimensions when n < 1.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ScalarMultiply returns alpha · m, the scalar on the left.
// Equivalent to Scale(m, alpha); provided so call sites read like the math.
func ScalarMultiply(alpha float64, m Matrix) (*Dense, error) { return Scale(m, alpha) }

// ---------- Comparisons ----------

// Equal reports exact element-wise equality of two same-shaped matrices.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Equal(a, b Matrix) (bool, error) { return ewEqual(a, b) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ApproxEqual is AllClose with rtol=0 and atol taken from WithEpsilon
// (DefaultEpsilon when not given).
func ApproxEqual(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, 0, o.eps)
}

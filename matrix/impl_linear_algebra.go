// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels behind the Dense methods:
// element-wise addition and subtraction, negation, scalar scaling, transpose,
// matrix multiplication, trace, and the closed-form determinant and inverse
// for 1×1 and 2×2 matrices. All kernels perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Accept any Matrix operand, gather it into a *Dense once, then run flat loops.
//   - Never mutate operands; every result is a freshly allocated *Dense.
//
// Notes:
//   - Sizes above MaxClosedFormSize are rejected by Determinant/Inverse with
//     ErrUnsupported; there is no LU fallback.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product and diagonal accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opNegate        = "Negate"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opScale         = "Scale"
	opTrace         = "Trace"
	opDeterminant   = "Determinant"
	opInverse       = "Inverse"
	opInvertInPlace = "InvertInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity: Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At in i→j order. Callers validate m as non-nil beforehand.
//
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: gather both operands and run a single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//   - ErrNaNInf when a sum overflows and the left operand carries the finite-only policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newResult(da, da.r, da.c)
	var v float64
	for idx := range res.data { // deterministic 0..n-1
		v = da.data[idx] + sign*db.data[idx]
		if res.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, matrixErrorf(opTag, denseErrorf(opTag, idx/res.c, idx%res.c, ErrNaNInf))
		}
		res.data[idx] = v
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B.
// Shapes are checked exactly like Add.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Negate returns −m, the unary element-wise negation. Always defined for a non-nil m.
func Negate(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	res := dm.Copy()
	if err = res.Apply(func(_, _ int, v float64) float64 { return -v }); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Behavior highlights:
//   - No shape constraint; alpha = 0 yields an explicit zero matrix with the same shape.
//   - NaN/±Inf alpha is rejected with ErrNaNInf when m carries the finite-only policy.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := dm.Copy()
	if err = res.Apply(func(_, _ int, v float64) float64 { return alpha * v }); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// out(i, j) = m(j, i) for i in [0, Cols), j in [0, Rows). The original is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := newResult(dm, cols, rows) // dims flipped
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Materialize Bᵀ so that both operands are walked row by row.
//   - Stage 3: C[i,j] = Σ_k A[i,k]·Bᵀ[j,k], accumulated for k = 0..n-1.
//
// Behavior highlights:
//   - The accumulation order matches the direct triple sum, so results are
//     bit-identical to Σ_k A[i,k]·B[k,j] evaluated left to right.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//   - ErrNaNInf when a dot product overflows under the finite-only policy of A.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) (result plus Bᵀ).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := da.r, da.c, bt.r
	res := newResult(da, aRows, bCols)
	var (
		i, j, k          int
		rowA, rowB, rowR int
		sum              float64
	)
	for i = 0; i < aRows; i++ {
		rowA = i * inner
		rowR = i * bCols
		for j = 0; j < bCols; j++ {
			rowB = j * inner
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += da.data[rowA+k] * bt.data[rowB+k]
			}
			if res.validateNaNInf && (math.IsNaN(sum) || math.IsInf(sum, 0)) {
				return nil, matrixErrorf(opMul, denseErrorf(opMul, i, j, ErrNaNInf))
			}
			res.data[rowR+j] = sum
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] over the diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	for i := 0; i < dm.c; i++ {
		sum = dm.data[i*dm.c+i] + sum
	}

	return sum, nil
}

// Determinant returns det(m) for 1×1 and 2×2 matrices.
//
// Behavior highlights:
//   - 1×1: the single cell a00 (a scalar; use Row(0) for the row itself).
//   - 2×2: a00·a11 − a01·a10.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupported (n > 2).
//
// Complexity: O(1).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateClosedForm(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	d := dm.data
	if dm.r == 1 {
		return d[0], nil
	}

	return d[0]*d[3] - d[1]*d[2], nil
}

// Inverse returns m⁻¹ for 1×1 and 2×2 matrices as a fresh Dense; m is untouched.
//
// Implementation:
//   - 1×1: [[1 / a00]].
//   - 2×2: (1/det) · (trace·I₂ − A), the Cayley–Hamilton closed form.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupported (n > 2).
//   - ErrDivisionByZero when a00 == 0 (1×1) or det == 0 (2×2). No pivoting or
//     conditioning is attempted; nearly singular inputs yield large entries.
//
// Complexity: O(1).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateClosedForm(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	if dm.r == 1 {
		if dm.data[0] == 0 {
			return nil, matrixErrorf(opInverse, ErrDivisionByZero)
		}
		res := newResult(dm, 1, 1)
		res.data[0] = 1 / dm.data[0]

		return res, nil
	}

	det, err := Determinant(dm)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrDivisionByZero)
	}
	tr, err := Trace(dm)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	id, err := Identity(dm.r)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id.validateNaNInf = dm.validateNaNInf
	scaled, err := Scale(id, tr)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	adj, err := Sub(scaled, dm)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	res, err := Scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

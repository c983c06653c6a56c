// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (possibly wrapped with an
// operation tag via %w) and tests check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with fmt.Errorf("Op: %w", ErrX)
// through matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> non-square -> unsupported size
// -> division by zero. Determinant and Inverse report a non-square input as
// both ErrUnsupported and ErrNonSquare.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that a source grid is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged indicates a source grid whose rows do not all share the same width.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupported marks a square size for which Determinant/Inverse are
	// intentionally not implemented (anything above 2×2).
	ErrUnsupported = errors.New("matrix: operation not supported for this size")

	// ErrDivisionByZero is returned by Inverse when the 1×1 cell or the 2×2
	// determinant is exactly zero.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

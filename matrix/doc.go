// Package matrix implements a small dense matrix value type over float64.
//
// The package provides:
//
//   - Dense, a row-major grid built with NewDense, NewFromRows, Zeros or Identity.
//   - Bounds-checked access (At, Set, Row) that returns ErrOutOfRange instead of panicking.
//   - Element-wise Add, Sub, Negate and Scale / ScalarMultiply.
//   - Transpose (alias T) and matrix multiplication (Mul).
//   - Trace for any square matrix; Determinant and Inverse for 1×1 and 2×2 only.
//   - Conversions to and from gonum's mat package for everything beyond that.
//
// Every operation returns a fresh *Dense and leaves its operands untouched.
// InvertInPlace is the one method that writes into its receiver.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNonSquare,
// ErrUnsupported, ErrDivisionByZero, ...) wrapped with the operation name;
// match them with errors.Is.
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	det, _ := a.Determinant() // -2
//	inv, _ := a.Inverse()     // [[-2 1] [1.5 -0.5]]
package matrix

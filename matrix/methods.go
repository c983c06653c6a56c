// SPDX-License-Identifier: MIT

// Package matrix - method surface of *Dense.
//
// Every method delegates to the package-level kernel of the same name, so
// validation, error tags and loop orders are shared. Methods never mutate the
// receiver, with the single explicit exception of InvertInPlace.
package matrix

// Add returns m + b. See Add.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m − b. See Sub.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Negate returns −m.
func (m *Dense) Negate() (*Dense, error) { return Negate(m) }

// Mul returns the matrix product m × b. See Mul.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// Scale returns alpha · m.
func (m *Dense) Scale(alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Transpose returns mᵀ as a new Dense.
func (m *Dense) Transpose() (*Dense, error) { return Transpose(m) }

// T is shorthand for Transpose.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }

// Trace returns the sum of the diagonal; m must be square.
func (m *Dense) Trace() (float64, error) { return Trace(m) }

// Determinant returns det(m) for 1×1 and 2×2 matrices.
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// Inverse returns m⁻¹ for 1×1 and 2×2 matrices; m is left untouched.
func (m *Dense) Inverse() (*Dense, error) { return Inverse(m) }

// InvertInPlace overwrites m with its inverse and leaves m unchanged on error.
// Same size and zero-divisor contract as Inverse.
//
// Complexity: O(1).
func (m *Dense) InvertInPlace() error {
	inv, err := Inverse(m)
	if err != nil {
		return matrixErrorf(opInvertInPlace, err)
	}
	copy(m.data, inv.data)

	return nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise comparison kernels (ew*) shared by
//     the public Equal/AllClose/ApproxEqual facades in api.go.
//   - Keep loops deterministic and flat over the row-major buffer.
//
// Determinism & Performance:
//   - Flat 0..n-1 walk after gathering operands into *Dense; early exit on first violation.

package matrix

import "math"

const opAllClose = "AllClose"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN never compares close; +Inf equals +Inf and -Inf equals -Inf.
// Time: O(r*c). Space: O(1) for *Dense operands.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	// Negative tolerances are accepted but abs-ed.
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if av == bv { // covers matching infinities
			continue
		}
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// ewEqual is ewAllClose with zero tolerances, i.e. exact element-wise equality.
func ewEqual(a, b Matrix) (bool, error) {
	return ewAllClose(a, b, 0, 0)
}

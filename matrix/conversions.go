// SPDX-License-Identifier: MIT

// Package matrix - conversions to and from gonum's mat package.
//
// Purpose:
//   - Let callers hand a *Dense to gonum routines (decompositions, norms) that
//     this package deliberately does not implement, and bring results back.
//   - Copies in both directions; neither side aliases the other's buffer.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const ctxGonum = "FromGonum"

// ToGonum returns a *mat.Dense holding a copy of m's row-major data.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrInvalidDimensions for an empty (0×0, r×0, 0×c) source.
//   - ErrNaNInf for a non-finite cell under the default policy, with coordinates.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxGonum, r, c, err)
	}
	out.validateNaNInf = o.validateNaNInf

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if out.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxGonum, i, j, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

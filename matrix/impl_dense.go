// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense/NewFromRows: O(r*c); At/Set: O(1); Row: O(c); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxRows  = "NewFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSuffix = " "  // every value is followed by one space
	_fmtSep        = " "  // values are joined by one space
	_fmtRowClose   = "\n" // every row, including the last, ends with a newline
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Shape: "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (height, width).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
//
// A Dense is not safe for concurrent mutation; concurrent reads are fine.
type Dense struct {
	r, c           int       // row and column counts (always > 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and set the default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewFromRows builds a Dense by deep-copying a rectangular grid.
//
// Implementation:
//   - Stage 1: resolve options; reject empty grid or empty first row.
//   - Stage 2: check every row against len(grid[0]).
//   - Stage 3: copy row by row, enforcing the NaN/Inf policy per cell.
//
// Behavior highlights:
//   - The caller's slices are never aliased; later writes to grid do not leak in.
//
// Errors:
//   - ErrInvalidDimensions (empty grid or zero-width first row).
//   - ErrRagged (row i has a different width), wrapped with the row index.
//   - ErrNaNInf (non-finite cell under the default policy), wrapped with coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(grid [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}

	rows, cols := len(grid), len(grid[0])
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}
	m.validateNaNInf = o.validateNaNInf

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(grid[i]), cols, ErrRagged)
		}
		for j = 0; j < cols; j++ {
			v = grid[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxRows, i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// newResult allocates an r×c result that inherits the numeric policy of src.
// Dimensions come from already-validated operands, so the constructor cannot fail.
func newResult(src *Dense, rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: src.validateNaNInf,
	}
}

// Rows returns the row count (height). Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (width). Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns a bare ErrOutOfRange; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i, ordered by column.
// Writes to the returned slice do not affect m; use Set for that.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRows exports the grid as freshly allocated [][]float64 (row-major).
// Complexity: O(r*c).
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy).
// The returned dynamic type is *Dense; use Copy for the concrete type.
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy is Clone with a concrete return type.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders one line per row. Every value is formatted by FormatValue,
// followed by a space, and values are joined by a space; each row ends with "\n".
// [[1,2],[3,4]] renders as "1  2 \n3  4 \n".
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(FormatValue(m.data[base+j]))
			b.WriteString(_fmtCellSuffix)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Plain decimal notation is used for magnitudes in [_fmtPlainMin, _fmtPlainMax)
// and for zero; anything else switches to exponent form.
const (
	_fmtPlainMin = 1e-4
	_fmtPlainMax = 1e16
)

// FormatValue returns the shortest round-tripping text for v, as used by String.
// 1e6 prints as "1000000" and 1e-4 as "0.0001"; 1e16 prints as "1e+16" and
// 1e-5 as "1e-05". NaN and ±Inf use strconv's spelling.
func FormatValue(v float64) string {
	a := math.Abs(v)
	if a == 0 || (a >= _fmtPlainMin && a < _fmtPlainMax) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only, no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Notes:
//   - For all-or-nothing semantics, transform a Copy and swap on success.
//
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

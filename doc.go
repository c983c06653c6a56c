// Package minimat is a teaching-scale dense matrix toolkit.
//
// Under the hood, everything is organized under a few packages:
//
//	matrix/                : Dense value type: construction, access, Add/Sub/Negate,
//	                          Mul/Scale, Transpose, Trace, 1×1/2×2 Determinant & Inverse
//	cmd/matcalc/           : command-line calculator over YAML operand files
//	internal/cli/          : cobra commands behind matcalc
//	internal/infra/yamlgrid: operand file loader (gopkg.in/yaml.v3)
//	internal/infra/logger  : slog JSON logger used by the CLI
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
//	p, _ := a.Mul(b) // [[19 22] [43 50]]
//
// General N×N inversion and decompositions are out of scope; convert with
// (*matrix.Dense).ToGonum and use gonum.org/v1/gonum/mat for those.
package minimat

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minimat/internal/infra/logger"
	"github.com/katalvlaran/minimat/internal/infra/yamlgrid"
	"github.com/katalvlaran/minimat/matrix"
)

// result is either a matrix or a scalar.
type result struct {
	m      *matrix.Dense
	scalar float64
}

func (r result) String() string {
	if r.m != nil {
		return r.m.String()
	}
	return matrix.FormatValue(r.scalar) + "\n"
}

type opSpec struct {
	use   string
	short string
	run   func(ops yamlgrid.Operands) (result, error)
}

var opSpecs = []opSpec{
	{"show", "Print operand a", unary(func(a *matrix.Dense) (*matrix.Dense, error) { return a.Copy(), nil })},
	{"add", "Print a + b", binary((*matrix.Dense).Add)},
	{"sub", "Print a - b", binary((*matrix.Dense).Sub)},
	{"mul", "Print the matrix product a × b", binary((*matrix.Dense).Mul)},
	{"neg", "Print -a", unary((*matrix.Dense).Negate)},
	{"transpose", "Print the transpose of a", unary((*matrix.Dense).Transpose)},
	{"inv", "Print the inverse of a (1×1 or 2×2)", unary((*matrix.Dense).Inverse)},
	{"trace", "Print the trace of a", scalar((*matrix.Dense).Trace)},
	{"det", "Print the determinant of a (1×1 or 2×2)", scalar((*matrix.Dense).Determinant)},
	{"scale", "Print scalar · a", scaled},
}

func unary(f func(*matrix.Dense) (*matrix.Dense, error)) func(yamlgrid.Operands) (result, error) {
	return func(ops yamlgrid.Operands) (result, error) {
		a, err := ops.RequireA()
		if err != nil {
			return result{}, err
		}
		m, err := f(a)
		return result{m: m}, err
	}
}

func binary(f func(*matrix.Dense, matrix.Matrix) (*matrix.Dense, error)) func(yamlgrid.Operands) (result, error) {
	return func(ops yamlgrid.Operands) (result, error) {
		a, err := ops.RequireA()
		if err != nil {
			return result{}, err
		}
		b, err := ops.RequireB()
		if err != nil {
			return result{}, err
		}
		m, err := f(a, b)
		return result{m: m}, err
	}
}

func scalar(f func(*matrix.Dense) (float64, error)) func(yamlgrid.Operands) (result, error) {
	return func(ops yamlgrid.Operands) (result, error) {
		a, err := ops.RequireA()
		if err != nil {
			return result{}, err
		}
		v, err := f(a)
		return result{scalar: v}, err
	}
}

func scaled(ops yamlgrid.Operands) (result, error) {
	a, err := ops.RequireA()
	if err != nil {
		return result{}, err
	}
	s, err := ops.RequireScalar()
	if err != nil {
		return result{}, err
	}
	m, err := matrix.ScalarMultiply(s, a)
	return result{m: m}, err
}

func opCmd(a *app, spec opSpec) *cobra.Command {
	return &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.file == "" {
				return fmt.Errorf("%s: --file is required", spec.use)
			}
			log := logger.L().With("op", spec.use, "file", a.file)

			ops, err := yamlgrid.Load(a.file, a.stdin)
			if err != nil {
				log.Error("op.load_failed", "err", err)
				return err
			}

			start := time.Now()
			res, err := spec.run(ops)
			if err != nil {
				log.Error("op.failed", "err", err)
				return fmt.Errorf("%s: %w", spec.use, err)
			}
			log.Info("op.done", "elapsed", time.Since(start))

			_, err = fmt.Fprint(cmd.OutOrStdout(), res)
			return err
		},
	}
}

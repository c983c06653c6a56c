// Package yamlgrid loads matcalc operand files.
//
// An operand file is a YAML mapping with up to two grids and a scalar:
//
//	a:
//	  - [1, 2]
//	  - [3, 4]
//	b: [[5, 6], [7, 8]]
//	scalar: 2
package yamlgrid

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minimat/matrix"
)

// StdinPath makes Load read the document from the supplied reader.
const StdinPath = "-"

// ErrMissingOperand is returned by the Require* accessors.
var ErrMissingOperand = errors.New("yamlgrid: operand missing")

// LoadError records which load stage failed for which file.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

type operandsDTO struct {
	A      [][]float64 `yaml:"a"`
	B      [][]float64 `yaml:"b"`
	Scalar *float64    `yaml:"scalar"`
}

// Operands is a decoded operand file. A and B are nil when absent.
type Operands struct {
	Path   string
	A      *matrix.Dense
	B      *matrix.Dense
	scalar *float64
}

// Load reads path (or stdin when path is StdinPath) and builds the operands.
func Load(path string, stdin io.Reader) (Operands, error) {
	var (
		b   []byte
		err error
	)
	if path == StdinPath {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return Operands{}, &LoadError{Op: "yamlgrid.read", Path: path, Err: err}
	}

	return Parse(path, b)
}

// Parse decodes an operand document. path is used for error reporting only.
func Parse(path string, doc []byte) (Operands, error) {
	var dto operandsDTO
	if err := yaml.Unmarshal(doc, &dto); err != nil {
		return Operands{}, &LoadError{Op: "yamlgrid.decode", Path: path, Err: err}
	}

	ops := Operands{Path: path, scalar: dto.Scalar}
	var err error
	if dto.A != nil {
		if ops.A, err = matrix.NewFromRows(dto.A); err != nil {
			return Operands{}, &LoadError{Op: "yamlgrid.a", Path: path, Err: err}
		}
	}
	if dto.B != nil {
		if ops.B, err = matrix.NewFromRows(dto.B); err != nil {
			return Operands{}, &LoadError{Op: "yamlgrid.b", Path: path, Err: err}
		}
	}

	return ops, nil
}

// RequireA returns operand a or ErrMissingOperand.
func (o Operands) RequireA() (*matrix.Dense, error) {
	if o.A == nil {
		return nil, &LoadError{Op: "yamlgrid.a", Path: o.Path, Err: ErrMissingOperand}
	}
	return o.A, nil
}

// RequireB returns operand b or ErrMissingOperand.
func (o Operands) RequireB() (*matrix.Dense, error) {
	if o.B == nil {
		return nil, &LoadError{Op: "yamlgrid.b", Path: o.Path, Err: ErrMissingOperand}
	}
	return o.B, nil
}

// RequireScalar returns the scalar or ErrMissingOperand.
func (o Operands) RequireScalar() (float64, error) {
	if o.scalar == nil {
		return 0, &LoadError{Op: "yamlgrid.scalar", Path: o.Path, Err: ErrMissingOperand}
	}
	return *o.scalar, nil
}

// Package kernel implements quantum kernels: similarity matrices whose
// entries are state overlaps of feature-mapped samples rather than
// classical inner products.
package kernel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

// Kernel evaluates kernel matrices between sample sets.
type Kernel interface {
	// Evaluate returns the (rows(X) x rows(Y)) kernel matrix between two
	// sample sets.
	Evaluate(X, Y mat.Matrix) (*mat.Dense, error)
	// EvaluateSymmetric returns the (rows(X) x rows(X)) kernel matrix of
	// one sample set against itself.
	EvaluateSymmetric(X mat.Matrix) (*mat.Dense, error)
}

// DuplicatePolicy controls which kernel entries are computed by circuit
// evaluation and which are filled in as exactly 1.
type DuplicatePolicy string

const (
	// DuplicatesAll evaluates every entry, including trivial ones.
	DuplicatesAll DuplicatePolicy = "all"
	// DuplicatesOffDiagonal skips the diagonal of a symmetric matrix.
	// This is the default.
	DuplicatesOffDiagonal DuplicatePolicy = "off_diagonal"
	// DuplicatesNone additionally skips any pair of identical feature
	// vectors.
	DuplicatesNone DuplicatePolicy = "none"
)

// PrecomputedKernel serves a fixed, already evaluated kernel matrix through
// the Kernel interface, so classical kernels and test fixtures can stand in
// wherever a quantum kernel is expected.
type PrecomputedKernel struct {
	gram *mat.Dense
}

// NewPrecomputedKernel wraps an explicit kernel matrix.
func NewPrecomputedKernel(gram mat.Matrix) (*PrecomputedKernel, error) {
	if gram == nil {
		return nil, errors.NewValidationError("gram", "must not be nil", nil)
	}
	r, c := gram.Dims()
	if r == 0 || c == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	g := mat.NewDense(r, c, nil)
	g.Copy(gram)
	return &PrecomputedKernel{gram: g}, nil
}

// Evaluate implements Kernel. The stored matrix must already have shape
// (rows(X), rows(Y)).
func (k *PrecomputedKernel) Evaluate(X, Y mat.Matrix) (*mat.Dense, error) {
	xr, _ := X.Dims()
	yr, _ := Y.Dims()
	gr, gc := k.gram.Dims()
	if xr != gr {
		return nil, errors.NewDimensionError("PrecomputedKernel.Evaluate", gr, xr, 0)
	}
	if yr != gc {
		return nil, errors.NewDimensionError("PrecomputedKernel.Evaluate", gc, yr, 1)
	}
	out := mat.NewDense(gr, gc, nil)
	out.Copy(k.gram)
	return out, nil
}

// EvaluateSymmetric implements Kernel. The stored matrix must be square
// with rows(X) rows.
func (k *PrecomputedKernel) EvaluateSymmetric(X mat.Matrix) (*mat.Dense, error) {
	gr, gc := k.gram.Dims()
	if gr != gc {
		return nil, errors.NewValueError("PrecomputedKernel.EvaluateSymmetric", "stored kernel matrix is not square")
	}
	xr, _ := X.Dims()
	if xr != gr {
		return nil, errors.NewDimensionError("PrecomputedKernel.EvaluateSymmetric", gr, xr, 0)
	}
	out := mat.NewDense(gr, gc, nil)
	out.Copy(k.gram)
	return out, nil
}

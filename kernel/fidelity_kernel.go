package kernel

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/featuremap"
	"github.com/ShivaniRajput11/qiskit-machine-learning/fidelity"
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/log"
	"github.com/ShivaniRajput11/qiskit-machine-learning/quantum"
)

// psdTolerance is how negative an eigenvalue may be before the matrix is
// considered non-PSD and projected.
const psdTolerance = 1e-10

// FidelityQuantumKernel computes kernel entries as the fidelity between
// feature-mapped states: K(x, y) = |<phi(y)|phi(x)>|^2.
type FidelityQuantumKernel struct {
	fm         featuremap.FeatureMap
	fid        fidelity.StateFidelity
	enforcePSD bool
	duplicates DuplicatePolicy
	logger     log.Logger
}

// KernelOption configures a FidelityQuantumKernel.
type KernelOption func(*FidelityQuantumKernel)

// WithEnforcePSD controls whether symmetric kernel matrices are projected
// onto the PSD cone after evaluation. Enabled by default; shot noise can
// otherwise produce slightly indefinite matrices.
func WithEnforcePSD(enforce bool) KernelOption {
	return func(k *FidelityQuantumKernel) { k.enforcePSD = enforce }
}

// WithEvaluateDuplicates sets the duplicate policy. The default is
// DuplicatesOffDiagonal.
func WithEvaluateDuplicates(policy DuplicatePolicy) KernelOption {
	return func(k *FidelityQuantumKernel) { k.duplicates = policy }
}

// NewFidelityQuantumKernel creates a fidelity kernel over the given feature
// map. A nil fidelity primitive defaults to exact compute-uncompute.
func NewFidelityQuantumKernel(fm featuremap.FeatureMap, fid fidelity.StateFidelity, opts ...KernelOption) (*FidelityQuantumKernel, error) {
	if fm == nil {
		return nil, errors.NewValidationError("featureMap", "must not be nil", nil)
	}
	if fid == nil {
		var err error
		fid, err = fidelity.NewComputeUncompute()
		if err != nil {
			return nil, err
		}
	}
	k := &FidelityQuantumKernel{
		fm:         fm,
		fid:        fid,
		enforcePSD: true,
		duplicates: DuplicatesOffDiagonal,
		logger:     log.GetLoggerWithName("kernel"),
	}
	for _, opt := range opts {
		opt(k)
	}
	switch k.duplicates {
	case DuplicatesAll, DuplicatesOffDiagonal, DuplicatesNone:
	default:
		return nil, errors.NewValidationError("evaluateDuplicates", "unknown policy", string(k.duplicates))
	}
	return k, nil
}

// FeatureMap returns the kernel's feature map.
func (k *FidelityQuantumKernel) FeatureMap() featuremap.FeatureMap { return k.fm }

// Evaluate implements Kernel for two sample sets.
func (k *FidelityQuantumKernel) Evaluate(X, Y mat.Matrix) (*mat.Dense, error) {
	start := time.Now()
	xc, err := k.circuits(X, "X")
	if err != nil {
		return nil, err
	}
	yc, err := k.circuits(Y, "Y")
	if err != nil {
		return nil, err
	}

	m, n := len(xc), len(yc)
	out := mat.NewDense(m, n, nil)

	var pairs []fidelity.Pair
	var slots [][2]int
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if k.duplicates == DuplicatesNone && sameRow(X, i, Y, j) {
				out.Set(i, j, 1)
				continue
			}
			pairs = append(pairs, fidelity.Pair{A: xc[i], B: yc[j]})
			slots = append(slots, [2]int{i, j})
		}
	}
	if err := k.fill(out, pairs, slots, false); err != nil {
		return nil, err
	}

	k.logger.Debug("kernel matrix evaluated",
		log.OperationKey, log.OperationEvaluate,
		log.QubitsKey, k.fm.NumQubits(),
		log.KernelEntriesKey, len(pairs),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// EvaluateSymmetric implements Kernel for one sample set against itself.
// Only the upper triangle is computed; the rest is mirrored, and the result
// is projected onto the PSD cone unless disabled.
func (k *FidelityQuantumKernel) EvaluateSymmetric(X mat.Matrix) (*mat.Dense, error) {
	start := time.Now()
	xc, err := k.circuits(X, "X")
	if err != nil {
		return nil, err
	}

	n := len(xc)
	out := mat.NewDense(n, n, nil)

	var pairs []fidelity.Pair
	var slots [][2]int
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			switch {
			case i == j && k.duplicates != DuplicatesAll:
				out.Set(i, i, 1)
			case k.duplicates == DuplicatesNone && sameRow(X, i, X, j):
				out.Set(i, j, 1)
			default:
				pairs = append(pairs, fidelity.Pair{A: xc[i], B: xc[j]})
				slots = append(slots, [2]int{i, j})
			}
		}
	}
	if err := k.fill(out, pairs, slots, true); err != nil {
		return nil, err
	}

	if k.duplicates == DuplicatesAll {
		warnDiagonalNoise(out)
	}

	if k.enforcePSD {
		if err := projectPSD(out); err != nil {
			return nil, err
		}
	}

	k.logger.Debug("symmetric kernel matrix evaluated",
		log.OperationKey, log.OperationEvaluate,
		log.QubitsKey, k.fm.NumQubits(),
		log.KernelEntriesKey, len(pairs),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// circuits maps every row of X through the feature map.
func (k *FidelityQuantumKernel) circuits(X mat.Matrix, arg string) ([]*quantum.Circuit, error) {
	if X == nil {
		return nil, errors.NewValidationError(arg, "must not be nil", nil)
	}
	rows, cols := X.Dims()
	if rows == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	if cols != k.fm.NumFeatures() {
		return nil, errors.NewDimensionError("FidelityQuantumKernel.Evaluate", k.fm.NumFeatures(), cols, 1)
	}

	out := make([]*quantum.Circuit, rows)
	for i := 0; i < rows; i++ {
		// Fresh slice per row; FeatureMap implementations may retain
		// their argument.
		x := make([]float64, cols)
		for j := 0; j < cols; j++ {
			x[j] = X.At(i, j)
		}
		// NaN or Inf features would silently poison every fidelity the
		// sample participates in.
		if err := errors.CheckNumericalStability("FidelityQuantumKernel.Evaluate", x, i); err != nil {
			return nil, err
		}
		// User-supplied data map functions run inside Map; keep their
		// panics contained.
		c, err := errors.SafeExecuteWithResult("feature map binding", func() (*quantum.Circuit, error) {
			return k.fm.Map(x)
		})
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// fill evaluates the batched pairs and writes them into their slots,
// mirroring across the diagonal for symmetric matrices.
func (k *FidelityQuantumKernel) fill(out *mat.Dense, pairs []fidelity.Pair, slots [][2]int, symmetric bool) error {
	if len(pairs) == 0 {
		return nil
	}
	values, err := k.fid.EvaluateBatch(pairs)
	if err != nil {
		return err
	}
	for idx, v := range values {
		i, j := slots[idx][0], slots[idx][1]
		out.Set(i, j, v)
		if symmetric && i != j {
			out.Set(j, i, v)
		}
	}
	return nil
}

// samplingTolerance is how far an explicitly evaluated diagonal entry may
// sit from its exact value of 1 before it is attributed to shot noise.
const samplingTolerance = 1e-9

// warnDiagonalNoise checks the evaluated diagonal of a symmetric kernel
// matrix. Self-fidelities are exactly 1; deviations mean the fidelity was
// estimated from a finite number of shots.
func warnDiagonalNoise(K *mat.Dense) {
	n, _ := K.Dims()
	entries := 0
	maxDev := 0.0
	for i := 0; i < n; i++ {
		dev := K.At(i, i) - 1
		if dev < 0 {
			dev = -dev
		}
		if dev > samplingTolerance {
			entries++
			if dev > maxDev {
				maxDev = dev
			}
		}
	}
	if entries > 0 {
		errors.Warn(errors.NewSamplingNoiseWarning("FidelityQuantumKernel.EvaluateSymmetric", entries, maxDev))
	}
}

// sameRow reports whether row i of A equals row j of B exactly.
func sameRow(A mat.Matrix, i int, B mat.Matrix, j int) bool {
	_, ac := A.Dims()
	_, bc := B.Dims()
	if ac != bc {
		return false
	}
	for c := 0; c < ac; c++ {
		if A.At(i, c) != B.At(j, c) {
			return false
		}
	}
	return true
}

// projectPSD clips negative eigenvalues of a symmetric matrix in place and
// emits a PSDProjectionWarning when clipping changed anything.
func projectPSD(K *mat.Dense) error {
	n, _ := K.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			// Average out any asymmetry left by rounding.
			sym.SetSym(i, j, 0.5*(K.At(i, j)+K.At(j, i)))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return errors.NewValueError("kernel.projectPSD", "eigendecomposition failed")
	}
	vals := eig.Values(nil)

	minEig := vals[0]
	clipped := 0
	for i, v := range vals {
		if v < minEig {
			minEig = v
		}
		if v < 0 {
			vals[i] = 0
			clipped++
		}
	}
	if minEig >= -psdTolerance {
		// Numerically PSD already; leave the matrix untouched.
		return nil
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// K = V * diag(clipped values) * V^T
	scaled := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			scaled.Set(i, j, vecs.At(i, j)*vals[j])
		}
	}
	K.Mul(scaled, vecs.T())

	errors.Warn(errors.NewPSDProjectionWarning("FidelityQuantumKernel.EvaluateSymmetric", n, clipped, minEig))
	return nil
}

package kernel

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/featuremap"
	"github.com/ShivaniRajput11/qiskit-machine-learning/fidelity"
	qmlerrors "github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
	"github.com/ShivaniRajput11/qiskit-machine-learning/quantum"
)

func newKernel(t testing.TB, opts ...KernelOption) *FidelityQuantumKernel {
	t.Helper()
	fm, err := featuremap.NewZZFeatureMap(2, featuremap.WithReps(1))
	if err != nil {
		t.Fatal(err)
	}
	k, err := NewFidelityQuantumKernel(fm, nil, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func TestEvaluateSymmetricBasics(t *testing.T) {
	k := newKernel(t)
	X := mat.NewDense(3, 2, []float64{
		0.1, 0.9,
		1.2, 0.4,
		2.5, 1.7,
	})

	K, err := k.EvaluateSymmetric(X)
	if err != nil {
		t.Fatalf("EvaluateSymmetric() error = %v", err)
	}
	r, c := K.Dims()
	if r != 3 || c != 3 {
		t.Fatalf("dims = (%d, %d), want (3, 3)", r, c)
	}
	for i := 0; i < 3; i++ {
		if math.Abs(K.At(i, i)-1) > 1e-9 {
			t.Errorf("K[%d,%d] = %v, want 1", i, i, K.At(i, i))
		}
		for j := 0; j < 3; j++ {
			v := K.At(i, j)
			if v < -1e-9 || v > 1+1e-9 {
				t.Errorf("K[%d,%d] = %v outside [0, 1]", i, j, v)
			}
			if math.Abs(v-K.At(j, i)) > 1e-9 {
				t.Errorf("K not symmetric at (%d, %d): %v vs %v", i, j, v, K.At(j, i))
			}
		}
	}
}

func TestEvaluateMatchesSymmetric(t *testing.T) {
	k := newKernel(t, WithEvaluateDuplicates(DuplicatesAll), WithEnforcePSD(false))
	X := mat.NewDense(2, 2, []float64{
		0.3, 1.1,
		2.0, 0.7,
	})

	sym, err := k.EvaluateSymmetric(X)
	if err != nil {
		t.Fatal(err)
	}
	rect, err := k.Evaluate(X, X)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(sym.At(i, j)-rect.At(i, j)) > 1e-9 {
				t.Errorf("entry (%d, %d): symmetric %v vs rectangular %v",
					i, j, sym.At(i, j), rect.At(i, j))
			}
		}
	}
}

func TestEvaluateRectangularShape(t *testing.T) {
	k := newKernel(t)
	X := mat.NewDense(3, 2, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})
	Y := mat.NewDense(2, 2, []float64{1.0, 1.1, 1.2, 1.3})

	K, err := k.Evaluate(X, Y)
	if err != nil {
		t.Fatal(err)
	}
	r, c := K.Dims()
	if r != 3 || c != 2 {
		t.Errorf("dims = (%d, %d), want (3, 2)", r, c)
	}
}

func TestEvaluateValidation(t *testing.T) {
	k := newKernel(t)

	t.Run("feature dimension mismatch", func(t *testing.T) {
		X := mat.NewDense(2, 3, nil)
		_, err := k.EvaluateSymmetric(X)
		var dimErr *qmlerrors.DimensionError
		if !qmlerrors.As(err, &dimErr) {
			t.Fatalf("error = %v, want DimensionError", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if _, err := k.EvaluateSymmetric(&mat.Dense{}); err == nil {
			t.Fatal("empty input should fail")
		}
	})

	t.Run("nil feature map", func(t *testing.T) {
		if _, err := NewFidelityQuantumKernel(nil, nil); err == nil {
			t.Fatal("nil feature map should fail")
		}
	})

	t.Run("non-finite feature value", func(t *testing.T) {
		X := mat.NewDense(2, 2, []float64{0.1, math.NaN(), 0.3, 0.4})
		var instErr *qmlerrors.NumericalInstabilityError
		if _, err := k.EvaluateSymmetric(X); !qmlerrors.As(err, &instErr) {
			t.Fatalf("error = %v, want NumericalInstabilityError", err)
		}
	})

	t.Run("unknown duplicate policy", func(t *testing.T) {
		fm, _ := featuremap.NewZFeatureMap(2)
		if _, err := NewFidelityQuantumKernel(fm, nil, WithEvaluateDuplicates("some")); err == nil {
			t.Fatal("unknown duplicate policy should fail")
		}
	})
}

func TestDuplicatePolicyNone(t *testing.T) {
	// Rows 0 and 2 are identical; under DuplicatesNone their entry must be
	// exactly 1 without evaluation, even in shot-based mode where an
	// estimated value would fluctuate.
	fm, err := featuremap.NewZZFeatureMap(2, featuremap.WithReps(1))
	if err != nil {
		t.Fatal(err)
	}
	fid, err := fidelity.NewComputeUncompute(fidelity.WithShots(16), fidelity.WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	k, err := NewFidelityQuantumKernel(fm, fid,
		WithEvaluateDuplicates(DuplicatesNone), WithEnforcePSD(false))
	if err != nil {
		t.Fatal(err)
	}

	X := mat.NewDense(3, 2, []float64{
		0.5, 1.5,
		2.0, 0.1,
		0.5, 1.5,
	})
	K, err := k.EvaluateSymmetric(X)
	if err != nil {
		t.Fatal(err)
	}
	if K.At(0, 2) != 1 || K.At(2, 0) != 1 {
		t.Errorf("duplicate rows should map to exactly 1, got %v and %v", K.At(0, 2), K.At(2, 0))
	}
	if K.At(1, 1) != 1 {
		t.Errorf("diagonal should map to exactly 1, got %v", K.At(1, 1))
	}
}

// noisyFidelity is a stub returning a fixed value for every pair, standing
// in for a heavily undersampled shot-based estimate.
type noisyFidelity struct{ value float64 }

func (n noisyFidelity) Evaluate(a, b *quantum.Circuit) (float64, error) { return n.value, nil }

func (n noisyFidelity) EvaluateBatch(pairs []fidelity.Pair) ([]float64, error) {
	out := make([]float64, len(pairs))
	for i := range out {
		out[i] = n.value
	}
	return out, nil
}

// retainingFeatureMap keeps every slice handed to Map, modeling a user
// implementation that holds on to its argument.
type retainingFeatureMap struct {
	seen [][]float64
}

func (m *retainingFeatureMap) NumFeatures() int                { return 2 }
func (m *retainingFeatureMap) NumQubits() int                  { return 2 }
func (m *retainingFeatureMap) Parameters() []quantum.Parameter { return nil }
func (m *retainingFeatureMap) Name() string                    { return "retaining" }
func (m *retainingFeatureMap) Map(x []float64) (*quantum.Circuit, error) {
	m.seen = append(m.seen, x)
	return quantum.NewCircuit(2)
}

func TestMapArgumentsStayStableAcrossRows(t *testing.T) {
	fm := &retainingFeatureMap{}
	k, err := NewFidelityQuantumKernel(fm, nil)
	if err != nil {
		t.Fatal(err)
	}

	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	if _, err := k.circuits(X, "X"); err != nil {
		t.Fatal(err)
	}

	if len(fm.seen) != 3 {
		t.Fatalf("Map called %d times, want 3", len(fm.seen))
	}
	for i, row := range fm.seen {
		for j := range row {
			if row[j] != X.At(i, j) {
				t.Errorf("retained slice %d[%d] = %v, want %v", i, j, row[j], X.At(i, j))
			}
		}
	}
}

func TestSamplingNoiseWarningOnDiagonal(t *testing.T) {
	var captured []error
	qmlerrors.SetZerologWarnFunc(nil)
	qmlerrors.SetWarningHandler(func(w error) { captured = append(captured, w) })
	defer qmlerrors.SetWarningHandler(nil)

	fm, err := featuremap.NewZFeatureMap(2, featuremap.WithReps(1))
	if err != nil {
		t.Fatal(err)
	}
	k, err := NewFidelityQuantumKernel(fm, noisyFidelity{value: 0.93},
		WithEvaluateDuplicates(DuplicatesAll), WithEnforcePSD(false))
	if err != nil {
		t.Fatal(err)
	}

	X := mat.NewDense(2, 2, []float64{0.1, 0.2, 0.3, 0.4})
	if _, err := k.EvaluateSymmetric(X); err != nil {
		t.Fatal(err)
	}

	if len(captured) != 1 {
		t.Fatalf("got %d warnings, want 1", len(captured))
	}
	var noiseWarn *qmlerrors.SamplingNoiseWarning
	if !qmlerrors.As(captured[0], &noiseWarn) {
		t.Fatalf("warning = %v, want SamplingNoiseWarning", captured[0])
	}
	if noiseWarn.Entries != 2 {
		t.Errorf("Entries = %d, want 2", noiseWarn.Entries)
	}
	if math.Abs(noiseWarn.MaxDeviation-0.07) > 1e-9 {
		t.Errorf("MaxDeviation = %v, want 0.07", noiseWarn.MaxDeviation)
	}
}

func TestProjectPSD(t *testing.T) {
	var captured []error
	qmlerrors.SetZerologWarnFunc(nil)
	qmlerrors.SetWarningHandler(func(w error) { captured = append(captured, w) })
	defer qmlerrors.SetWarningHandler(nil)

	// Symmetric but indefinite: eigenvalues 3 and -1.
	K := mat.NewDense(2, 2, []float64{1, 2, 2, 1})
	if err := projectPSD(K); err != nil {
		t.Fatalf("projectPSD() error = %v", err)
	}

	var eig mat.EigenSym
	sym := mat.NewSymDense(2, []float64{K.At(0, 0), K.At(0, 1), K.At(0, 1), K.At(1, 1)})
	if !eig.Factorize(sym, false) {
		t.Fatal("eigendecomposition failed")
	}
	for _, v := range eig.Values(nil) {
		if v < -1e-9 {
			t.Errorf("eigenvalue %v still negative after projection", v)
		}
	}

	if len(captured) != 1 {
		t.Fatalf("got %d warnings, want 1", len(captured))
	}
	var psdWarn *qmlerrors.PSDProjectionWarning
	if !qmlerrors.As(captured[0], &psdWarn) {
		t.Fatalf("warning = %v, want PSDProjectionWarning", captured[0])
	}
	if psdWarn.Clipped != 1 {
		t.Errorf("Clipped = %d, want 1", psdWarn.Clipped)
	}
}

func TestProjectPSDLeavesPSDMatrixAlone(t *testing.T) {
	qmlerrors.SetZerologWarnFunc(nil)
	qmlerrors.SetWarningHandler(func(w error) { t.Errorf("unexpected warning: %v", w) })
	defer qmlerrors.SetWarningHandler(nil)

	K := mat.NewDense(2, 2, []float64{1, 0.5, 0.5, 1})
	want := mat.DenseCopyOf(K)
	if err := projectPSD(K); err != nil {
		t.Fatal(err)
	}
	if !mat.EqualApprox(K, want, 1e-12) {
		t.Error("projectPSD modified an already PSD matrix")
	}
}

func TestPrecomputedKernel(t *testing.T) {
	gram := mat.NewDense(2, 2, []float64{1, 0.25, 0.25, 1})
	pk, err := NewPrecomputedKernel(gram)
	if err != nil {
		t.Fatal(err)
	}

	X := mat.NewDense(2, 4, nil)
	K, err := pk.EvaluateSymmetric(X)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.EqualApprox(K, gram, 1e-12) {
		t.Error("EvaluateSymmetric should return the stored matrix")
	}

	// Returned matrix is a copy.
	K.Set(0, 1, 99)
	K2, err := pk.EvaluateSymmetric(X)
	if err != nil {
		t.Fatal(err)
	}
	if K2.At(0, 1) != 0.25 {
		t.Error("mutating the returned matrix should not affect the stored kernel")
	}

	badX := mat.NewDense(3, 4, nil)
	if _, err := pk.EvaluateSymmetric(badX); err == nil {
		t.Error("row-count mismatch should fail")
	}
	if _, err := NewPrecomputedKernel(nil); err == nil {
		t.Error("nil gram matrix should fail")
	}
}

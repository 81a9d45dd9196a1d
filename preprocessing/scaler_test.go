package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	qmlerrors "github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

func TestMinMaxScalerDefaultRange(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		0, 10,
		5, 20,
		10, 30,
	})
	scaler := NewMinMaxScalerDefault()
	got, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	want := mat.NewDense(3, 2, []float64{
		0, 0,
		0.5, 0.5,
		1, 1,
	})
	if !mat.EqualApprox(got, want, 1e-12) {
		t.Errorf("transformed = %v, want %v", mat.Formatted(got), mat.Formatted(want))
	}
}

func TestMinMaxScalerCustomRange(t *testing.T) {
	// Feature-map preprocessing: scale into [0, pi].
	X := mat.NewDense(2, 1, []float64{-1, 1})
	scaler, err := NewMinMaxScaler([2]float64{0, math.Pi})
	if err != nil {
		t.Fatal(err)
	}
	got, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.At(0, 0)) > 1e-12 || math.Abs(got.At(1, 0)-math.Pi) > 1e-12 {
		t.Errorf("range ends = (%v, %v), want (0, pi)", got.At(0, 0), got.At(1, 0))
	}
}

func TestMinMaxScalerConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		7, 1,
		7, 2,
		7, 3,
	})
	scaler, err := NewMinMaxScaler([2]float64{2, 4})
	if err != nil {
		t.Fatal(err)
	}
	got, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatal(err)
	}
	// Constant features map to the range minimum.
	for i := 0; i < 3; i++ {
		if got.At(i, 0) != 2 {
			t.Errorf("constant feature row %d = %v, want range minimum 2", i, got.At(i, 0))
		}
	}

	inv, err := scaler.InverseTransform(got)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.EqualApprox(inv, X, 1e-12) {
		t.Errorf("inverse = %v, want original %v", mat.Formatted(inv), mat.Formatted(X))
	}
}

func TestMinMaxScalerInverseRoundTrip(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0.3, -2,
		1.8, 4,
		-0.7, 0.5,
		2.2, 1,
	})
	scaler, err := NewMinMaxScaler([2]float64{0, math.Pi})
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatal(err)
	}
	back, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.EqualApprox(back, X, 1e-10) {
		t.Error("InverseTransform(Transform(X)) should reproduce X")
	}
}

func TestMinMaxScalerErrors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		scaler := NewMinMaxScalerDefault()
		_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
		var nfErr *qmlerrors.NotFittedError
		if !qmlerrors.As(err, &nfErr) {
			t.Fatalf("Transform() before Fit error = %v, want NotFittedError", err)
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		scaler := NewMinMaxScalerDefault()
		if err := scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err != nil {
			t.Fatal(err)
		}
		_, err := scaler.Transform(mat.NewDense(1, 3, nil))
		var dimErr *qmlerrors.DimensionError
		if !qmlerrors.As(err, &dimErr) {
			t.Fatalf("Transform() error = %v, want DimensionError", err)
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		if _, err := NewMinMaxScaler([2]float64{1, 1}); err == nil {
			t.Error("degenerate feature range should fail")
		}
	})

	t.Run("empty data", func(t *testing.T) {
		scaler := NewMinMaxScalerDefault()
		if err := scaler.Fit(&mat.Dense{}); err == nil {
			t.Error("empty fit should fail")
		}
	})
}

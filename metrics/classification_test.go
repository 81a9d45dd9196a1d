package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	qmlerrors "github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

func vec(values ...float64) *mat.VecDense {
	return mat.NewVecDense(len(values), values)
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{name: "all correct", yTrue: []float64{0, 1, 1, 0}, yPred: []float64{0, 1, 1, 0}, want: 1},
		{name: "all wrong", yTrue: []float64{0, 1}, yPred: []float64{1, 0}, want: 0},
		{name: "three quarters", yTrue: []float64{0, 1, 1, 0}, yPred: []float64{0, 1, 0, 0}, want: 0.75},
		{name: "length mismatch", yTrue: []float64{0, 1}, yPred: []float64{0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(vec(tt.yTrue...), vec(tt.yPred...))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := Accuracy(nil, vec(1)); err == nil {
		t.Error("nil input should fail")
	}
}

func TestConfusionMatrix(t *testing.T) {
	yTrue := vec(0, 0, 1, 1, 1)
	yPred := vec(0, 1, 1, 1, 0)

	cm, labels, err := ConfusionMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("ConfusionMatrix() error = %v", err)
	}
	if len(labels) != 2 || labels[0] != 0 || labels[1] != 1 {
		t.Fatalf("labels = %v, want [0 1]", labels)
	}
	want := mat.NewDense(2, 2, []float64{
		1, 1, // true 0: one as 0, one as 1
		1, 2, // true 1: one as 0, two as 1
	})
	if !mat.EqualApprox(cm, want, 1e-12) {
		t.Errorf("confusion matrix = %v, want %v", mat.Formatted(cm), mat.Formatted(want))
	}
}

func TestPrecisionRecallF1(t *testing.T) {
	yTrue := vec(1, 1, 0, 0, 1)
	yPred := vec(1, 0, 1, 0, 1)
	// tp=2, fp=1, fn=1

	prec, err := Precision(yTrue, yPred, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(prec-2.0/3.0) > 1e-12 {
		t.Errorf("Precision = %v, want 2/3", prec)
	}

	rec, err := Recall(yTrue, yPred, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rec-2.0/3.0) > 1e-12 {
		t.Errorf("Recall = %v, want 2/3", rec)
	}

	f1, err := F1(yTrue, yPred, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f1-2.0/3.0) > 1e-12 {
		t.Errorf("F1 = %v, want 2/3", f1)
	}
}

func TestIllDefinedMetricsWarn(t *testing.T) {
	var warnings []error
	qmlerrors.SetZerologWarnFunc(nil)
	qmlerrors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer qmlerrors.SetWarningHandler(nil)

	// No positive predictions at all.
	yTrue := vec(1, 1)
	yPred := vec(0, 0)

	prec, err := Precision(yTrue, yPred, 1)
	if err != nil {
		t.Fatal(err)
	}
	if prec != 0 {
		t.Errorf("ill-defined Precision = %v, want 0", prec)
	}

	// No true positives either way.
	rec, err := Recall(vec(0, 0), vec(0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	if rec != 0 {
		t.Errorf("ill-defined Recall = %v, want 0", rec)
	}

	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2", len(warnings))
	}
	var umw *qmlerrors.UndefinedMetricWarning
	if !qmlerrors.As(warnings[0], &umw) {
		t.Errorf("warning = %v, want UndefinedMetricWarning", warnings[0])
	}
}

func TestAUC(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yScore  []float64
		want    float64
		wantErr bool
	}{
		{
			name:   "perfect classifier",
			yTrue:  []float64{0, 0, 0, 1, 1, 1},
			yScore: []float64{0.1, 0.2, 0.3, 0.7, 0.8, 0.9},
			want:   1.0,
		},
		{
			name:   "worst classifier",
			yTrue:  []float64{0, 0, 0, 1, 1, 1},
			yScore: []float64{0.9, 0.8, 0.7, 0.3, 0.2, 0.1},
			want:   0.0,
		},
		{
			name:   "all scores tied",
			yTrue:  []float64{0, 1, 0, 1},
			yScore: []float64{0.5, 0.5, 0.5, 0.5},
			want:   0.5,
		},
		{
			name:   "typical case",
			yTrue:  []float64{0, 0, 1, 1},
			yScore: []float64{0.1, 0.4, 0.35, 0.8},
			want:   0.75,
		},
		{
			name:    "non-binary labels",
			yTrue:   []float64{0, 0.5, 1},
			yScore:  []float64{0.1, 0.5, 0.9},
			wantErr: true,
		},
		{
			name:    "length mismatch",
			yTrue:   []float64{0, 1},
			yScore:  []float64{0.5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AUC(vec(tt.yTrue...), vec(tt.yScore...))
			if (err != nil) != tt.wantErr {
				t.Fatalf("AUC() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("AUC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAUCSingleClass(t *testing.T) {
	qmlerrors.SetZerologWarnFunc(nil)
	var warned bool
	qmlerrors.SetWarningHandler(func(w error) { warned = true })
	defer qmlerrors.SetWarningHandler(nil)

	got, err := AUC(vec(1, 1, 1), vec(0.2, 0.5, 0.9))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("single-class AUC = %v, want 0.5", got)
	}
	if !warned {
		t.Error("single-class AUC should emit a warning")
	}
}

func TestMatrixInputUsesFirstColumn(t *testing.T) {
	yTrue := mat.NewDense(4, 2, []float64{0, 9, 0, 9, 1, 9, 1, 9})
	yPred := mat.NewDense(4, 2, []float64{0, 7, 1, 7, 1, 7, 1, 7})
	got, err := Accuracy(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Accuracy() = %v, want 0.75", got)
	}
}

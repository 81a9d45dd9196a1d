// Package metrics provides model evaluation metrics on gonum matrices.
//
// All classification metrics accept column vectors (or the first column of
// wider matrices) of true and predicted labels and validate that both sides
// have the same length. Ill-defined cases emit an UndefinedMetricWarning
// through the library's warning hook instead of failing.
package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

// column extracts the first column of a matrix as a slice, validating that
// the input is non-nil and non-empty.
func column(name string, m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, errors.NewValidationError(name, "must not be nil", nil)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = m.At(i, 0)
	}
	return out, nil
}

func labelPair(yTrue, yPred mat.Matrix) ([]float64, []float64, error) {
	t, err := column("yTrue", yTrue)
	if err != nil {
		return nil, nil, err
	}
	p, err := column("yPred", yPred)
	if err != nil {
		return nil, nil, err
	}
	if len(t) != len(p) {
		return nil, nil, errors.NewDimensionError("metrics", len(t), len(p), 0)
	}
	return t, p, nil
}

// Accuracy returns the fraction of predictions matching the true labels.
func Accuracy(yTrue, yPred mat.Matrix) (float64, error) {
	t, p, err := labelPair(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i := range t {
		if t[i] == p[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(t)), nil
}

// ConfusionMatrix returns the confusion matrix over the union of labels
// seen in yTrue and yPred, along with the ascending label order indexing
// its rows (true labels) and columns (predictions).
func ConfusionMatrix(yTrue, yPred mat.Matrix) (*mat.Dense, []float64, error) {
	t, p, err := labelPair(yTrue, yPred)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[float64]struct{})
	for i := range t {
		seen[t[i]] = struct{}{}
		seen[p[i]] = struct{}{}
	}
	labels := make([]float64, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Float64s(labels)
	index := make(map[float64]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	cm := mat.NewDense(len(labels), len(labels), nil)
	for i := range t {
		r, c := index[t[i]], index[p[i]]
		cm.Set(r, c, cm.At(r, c)+1)
	}
	return cm, labels, nil
}

// binaryCounts tallies true/false positives/negatives against posLabel.
func binaryCounts(t, p []float64, posLabel float64) (tp, fp, fn int) {
	for i := range t {
		predPos := p[i] == posLabel
		truePos := t[i] == posLabel
		switch {
		case predPos && truePos:
			tp++
		case predPos && !truePos:
			fp++
		case !predPos && truePos:
			fn++
		}
	}
	return tp, fp, fn
}

// Precision returns tp / (tp + fp) for the given positive label. When no
// positive predictions exist the metric is ill-defined; 0 is returned and
// an UndefinedMetricWarning is emitted.
func Precision(yTrue, yPred mat.Matrix, posLabel float64) (float64, error) {
	t, p, err := labelPair(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	tp, fp, _ := binaryCounts(t, p, posLabel)
	if tp+fp == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("precision", "no predicted positive samples", 0))
		return 0, nil
	}
	return float64(tp) / float64(tp+fp), nil
}

// Recall returns tp / (tp + fn) for the given positive label. When no true
// positive samples exist the metric is ill-defined; 0 is returned and an
// UndefinedMetricWarning is emitted.
func Recall(yTrue, yPred mat.Matrix, posLabel float64) (float64, error) {
	t, p, err := labelPair(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	tp, _, fn := binaryCounts(t, p, posLabel)
	if tp+fn == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("recall", "no true positive samples", 0))
		return 0, nil
	}
	return float64(tp) / float64(tp+fn), nil
}

// F1 returns the harmonic mean of precision and recall for the given
// positive label, or 0 (with a warning) when both are zero.
func F1(yTrue, yPred mat.Matrix, posLabel float64) (float64, error) {
	t, p, err := labelPair(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	tp, fp, fn := binaryCounts(t, p, posLabel)
	if 2*tp+fp+fn == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("f1", "no positive samples in labels or predictions", 0))
		return 0, nil
	}
	return 2 * float64(tp) / float64(2*tp+fp+fn), nil
}

// AUC returns the area under the ROC curve for binary labels {0, 1} and
// real-valued scores. Ties in the scores contribute half their weight. When
// only one class is present the metric is ill-defined and 0.5 is returned
// with a warning.
func AUC(yTrue, yScore mat.Matrix) (float64, error) {
	t, s, err := labelPair(yTrue, yScore)
	if err != nil {
		return 0, err
	}

	var nPos, nNeg int
	for _, v := range t {
		switch v {
		case 1:
			nPos++
		case 0:
			nNeg++
		default:
			return 0, errors.NewValueError("metrics.AUC", "labels must be binary 0/1")
		}
	}
	if nPos == 0 || nNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("auc", "only one class present", 0.5))
		return 0.5, nil
	}

	// Rank-sum (Mann-Whitney) formulation with midranks for ties.
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return s[idx[a]] < s[idx[b]] })

	ranks := make([]float64, len(s))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && s[idx[j+1]] == s[idx[i]] {
			j++
		}
		// Midrank for the tie group [i, j].
		r := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = r
		}
		i = j + 1
	}

	var rankSum float64
	for i, v := range t {
		if v == 1 {
			rankSum += ranks[i]
		}
	}
	u := rankSum - float64(nPos)*float64(nPos+1)/2
	return u / (float64(nPos) * float64(nNeg)), nil
}

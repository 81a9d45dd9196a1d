// Package svm implements the Pegasos quantum support vector classifier: a
// kernelized sub-gradient SVM solver (Shalev-Shwartz et al., "Pegasos:
// Primal Estimated sub-GrAdient SOlver for SVM") driven by a quantum kernel
// and exposing the conventional Fit/Predict/Score estimator contract.
package svm

import (
	"math/rand/v2"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/core/model"
	"github.com/ShivaniRajput11/qiskit-machine-learning/kernel"
	"github.com/ShivaniRajput11/qiskit-machine-learning/metrics"
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/log"
)

// FitStatus reports whether a classifier has been trained.
type FitStatus int

const (
	// StatusUnfitted marks an untrained classifier.
	StatusUnfitted FitStatus = iota
	// StatusFitted marks a trained classifier.
	StatusFitted
)

// StepInfo describes one Pegasos training step for callbacks.
type StepInfo struct {
	// Step is the 1-based step number.
	Step int
	// Index is the sampled training index.
	Index int
	// Margin is the step's margin value y_i * (C/t) * f(x_i); the step
	// bumps alpha when it is below 1.
	Margin float64
	// Updated reports whether alpha was bumped at Index.
	Updated bool
}

// Callback observes training steps. Returning false stops training early.
type Callback func(info StepInfo) bool

// PegasosQSVC is a binary classifier trained with the kernelized Pegasos
// algorithm. In kernel mode Fit receives feature vectors and evaluates the
// quantum kernel itself; in precomputed mode Fit receives the training Gram
// matrix directly.
//
// Learned state uses scikit-learn style trailing-underscore names and is
// gob-serializable via core/model.SaveModel. The kernel itself is not
// serialized; re-attach it with SetKernel after loading when predictions in
// kernel mode are needed.
type PegasosQSVC struct {
	model.BaseEstimator

	kern        kernel.Kernel
	c           float64
	numSteps    int
	precomputed bool
	seed        uint64
	callback    Callback
	logger      log.Logger

	// Alphas_ holds the sparse per-sample update counts after fitting.
	Alphas_ map[int]int
	// SupportIndices_ lists the training indices with nonzero alpha in
	// ascending order.
	SupportIndices_ []int
	// ClassLabels_ holds the two original labels in ascending order; the
	// first maps to +1 internally.
	ClassLabels_ []float64
	// NSamples_ is the training set size.
	NSamples_ int
	// NFeaturesIn_ is the feature count seen during fit (kernel mode only).
	NFeaturesIn_ int
	// FitStatus_ reports training state.
	FitStatus_ FitStatus

	// support set in insertion order, kept for deterministic decision sums
	supportOrder  []int
	supportY      []float64  // +-1 labels of the support set
	supportCounts []float64  // alpha counts of the support set
	supportX      *mat.Dense // support feature rows (kernel mode)
}

// NewPegasosQSVC creates a Pegasos quantum support vector classifier.
// Kernel mode requires WithKernel; precomputed mode forbids it.
func NewPegasosQSVC(opts ...Option) (*PegasosQSVC, error) {
	p := &PegasosQSVC{
		c:        1000,
		numSteps: 1000,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.c <= 0 {
		return nil, errors.NewValidationError("C", "must be positive", p.c)
	}
	if p.numSteps <= 0 {
		return nil, errors.NewValidationError("numSteps", "must be positive", p.numSteps)
	}
	if p.precomputed && p.kern != nil {
		return nil, errors.NewValueError("NewPegasosQSVC", "a kernel must not be set in precomputed mode")
	}
	if !p.precomputed && p.kern == nil {
		return nil, errors.NewValueError("NewPegasosQSVC", "a kernel is required unless precomputed mode is enabled")
	}

	p.logger = log.GetLoggerWithName("svm").With(
		log.ModelNameKey, "PegasosQSVC",
		log.EstimatorIDKey, p.EstimatorID(),
	)
	return p, nil
}

// SetKernel attaches a kernel, e.g. after loading a persisted model.
func (p *PegasosQSVC) SetKernel(k kernel.Kernel) { p.kern = k }

// C returns the regularization parameter.
func (p *PegasosQSVC) C() float64 { return p.c }

// NumSteps returns the configured step count.
func (p *PegasosQSVC) NumSteps() int { return p.numSteps }

// offset returns the kernel offset: the implicit bias term added to every
// kernel value in kernel mode, absent in precomputed mode.
func (p *PegasosQSVC) offset() float64 {
	if p.precomputed {
		return 0
	}
	return 1
}

// Fit trains the classifier. In kernel mode X is (n x d) feature rows; in
// precomputed mode X is the (n x n) training Gram matrix. y must be a
// column of exactly two distinct label values. Any prior fit state is
// discarded.
func (p *PegasosQSVC) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "PegasosQSVC.Fit")
	start := time.Now()

	if X == nil || y == nil {
		return errors.NewValidationError("X/y", "must not be nil", nil)
	}
	n, d := X.Dims()
	yr, _ := y.Dims()
	if n == 0 {
		return errors.NewModelError("PegasosQSVC.Fit", "empty data", errors.ErrEmptyData)
	}
	if yr != n {
		return errors.NewDimensionError("PegasosQSVC.Fit", n, yr, 0)
	}
	if p.precomputed && d != n {
		return errors.NewValueError("PegasosQSVC.Fit", "precomputed mode requires a square Gram matrix")
	}

	labels := make([]float64, n)
	for i := 0; i < n; i++ {
		labels[i] = y.At(i, 0)
	}
	classLabels, err := twoClasses(labels)
	if err != nil {
		return err
	}
	// Ascending-first label maps to +1.
	ypm := make([]float64, n)
	for i, l := range labels {
		if l == classLabels[0] {
			ypm[i] = 1
		} else {
			ypm[i] = -1
		}
	}

	// No warm start: every Fit rebuilds the state from scratch.
	p.resetState()

	var gram *mat.Dense
	if p.precomputed {
		gram = mat.NewDense(n, n, nil)
		gram.Copy(X)
	} else {
		gram, err = p.kern.EvaluateSymmetric(X)
		if err != nil {
			return errors.Wrap(err, "training kernel evaluation failed")
		}
	}

	alphas := make(map[int]int)
	var order []int
	offset := p.offset()
	rng := rand.New(rand.NewPCG(p.seed, p.seed^0x1f123bb5159a55e5))

	steps := 0
	for t := 1; t <= p.numSteps; t++ {
		steps = t
		i := rng.IntN(n)

		var v float64
		for _, j := range order {
			v += float64(alphas[j]) * ypm[j] * (gram.At(j, i) + offset)
		}
		margin := ypm[i] * (p.c / float64(t)) * v
		updated := margin < 1
		if updated {
			if alphas[i] == 0 {
				order = append(order, i)
			}
			alphas[i]++
		}

		if p.callback != nil {
			info := StepInfo{Step: t, Index: i, Margin: margin, Updated: updated}
			cont := true
			if cbErr := errors.SafeExecute("PegasosQSVC callback", func() error {
				cont = p.callback(info)
				return nil
			}); cbErr != nil {
				return cbErr
			}
			if !cont {
				break
			}
		}
	}

	p.Alphas_ = alphas
	p.supportOrder = order
	p.SupportIndices_ = make([]int, len(order))
	copy(p.SupportIndices_, order)
	sort.Ints(p.SupportIndices_)
	p.ClassLabels_ = classLabels
	p.NSamples_ = n
	if !p.precomputed {
		p.NFeaturesIn_ = d
	}

	p.supportY = make([]float64, len(order))
	p.supportCounts = make([]float64, len(order))
	for k, j := range order {
		p.supportY[k] = ypm[j]
		p.supportCounts[k] = float64(alphas[j])
	}
	if !p.precomputed {
		p.supportX = mat.NewDense(len(order), d, nil)
		for k, j := range order {
			for c := 0; c < d; c++ {
				p.supportX.Set(k, c, X.At(j, c))
			}
		}
	}

	p.FitStatus_ = StatusFitted
	p.SetFitted()

	p.logger.Debug("training finished",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, n,
		log.FeaturesKey, d,
		log.NumStepsKey, steps,
		log.RegularizationKey, p.c,
		"support_vectors", len(order),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// resetState clears all learned attributes.
func (p *PegasosQSVC) resetState() {
	p.Alphas_ = nil
	p.SupportIndices_ = nil
	p.ClassLabels_ = nil
	p.NSamples_ = 0
	p.NFeaturesIn_ = 0
	p.FitStatus_ = StatusUnfitted
	p.supportOrder = nil
	p.supportY = nil
	p.supportCounts = nil
	p.supportX = nil
	p.Reset()
}

// DecisionFunction returns the unthresholded decision values
// (C/numSteps) * sum_j alpha_j * y_j * (K(x, x_j) + offset) as an (m x 1)
// matrix. In precomputed mode X must hold kernel values against the
// training set, one column per training sample.
func (p *PegasosQSVC) DecisionFunction(X mat.Matrix) (*mat.Dense, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PegasosQSVC", "DecisionFunction")
	}
	if X == nil {
		return nil, errors.NewValidationError("X", "must not be nil", nil)
	}
	m, d := X.Dims()
	if m == 0 {
		return nil, errors.NewModelError("PegasosQSVC.DecisionFunction", "empty data", errors.ErrEmptyData)
	}

	scale := p.c / float64(p.numSteps)
	out := mat.NewDense(m, 1, nil)

	if p.precomputed {
		if d != p.NSamples_ {
			return nil, errors.NewDimensionError("PegasosQSVC.DecisionFunction", p.NSamples_, d, 1)
		}
		for r := 0; r < m; r++ {
			var v float64
			for k, j := range p.supportOrder {
				v += p.supportCounts[k] * p.supportY[k] * X.At(r, j)
			}
			out.Set(r, 0, scale*v)
		}
		return out, nil
	}

	if d != p.NFeaturesIn_ {
		return nil, errors.NewDimensionError("PegasosQSVC.DecisionFunction", p.NFeaturesIn_, d, 1)
	}
	if p.kern == nil {
		return nil, errors.NewValueError("PegasosQSVC.DecisionFunction", "no kernel attached; call SetKernel after loading a persisted model")
	}
	if len(p.supportOrder) == 0 {
		// No margin violations during training: the decision value is 0
		// everywhere.
		return out, nil
	}

	start := time.Now()
	K, err := p.kern.Evaluate(X, p.supportX)
	if err != nil {
		return nil, errors.Wrap(err, "prediction kernel evaluation failed")
	}
	for r := 0; r < m; r++ {
		var v float64
		for k := range p.supportOrder {
			v += p.supportCounts[k] * p.supportY[k] * (K.At(r, k) + 1)
		}
		out.Set(r, 0, scale*v)
	}

	p.logger.Debug("decision function evaluated",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, m,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Predict thresholds the decision function at zero and restores the
// original labels: non-negative values map to the ascending-first class.
func (p *PegasosQSVC) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PegasosQSVC", "Predict")
	}
	dec, err := p.DecisionFunction(X)
	if err != nil {
		return nil, err
	}
	m, _ := dec.Dims()
	out := mat.NewDense(m, 1, nil)
	for r := 0; r < m; r++ {
		if dec.At(r, 0) >= 0 {
			out.Set(r, 0, p.ClassLabels_[0])
		} else {
			out.Set(r, 0, p.ClassLabels_[1])
		}
	}
	return out, nil
}

// Score returns the prediction accuracy on the given data.
func (p *PegasosQSVC) Score(X, y mat.Matrix) (float64, error) {
	pred, err := p.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, pred)
}

// Classes returns the class labels seen during fit, ascending.
func (p *PegasosQSVC) Classes() []float64 {
	out := make([]float64, len(p.ClassLabels_))
	copy(out, p.ClassLabels_)
	return out
}

// twoClasses returns the ascending unique labels, requiring exactly two.
func twoClasses(labels []float64) ([]float64, error) {
	seen := make(map[float64]struct{})
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	if len(seen) != 2 {
		return nil, errors.NewValueError("PegasosQSVC.Fit", "exactly two distinct labels are required")
	}
	out := make([]float64, 0, 2)
	for l := range seen {
		out = append(out, l)
	}
	sort.Float64s(out)
	return out, nil
}

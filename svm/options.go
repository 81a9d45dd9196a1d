package svm

import "github.com/ShivaniRajput11/qiskit-machine-learning/kernel"

// Option configures a PegasosQSVC.
type Option func(*PegasosQSVC)

// WithKernel sets the quantum kernel used to compare samples. Required
// unless the classifier runs in precomputed mode.
func WithKernel(k kernel.Kernel) Option {
	return func(p *PegasosQSVC) { p.kern = k }
}

// WithC sets the regularization parameter. Larger values penalize margin
// violations harder. The default is 1000.
func WithC(c float64) Option {
	return func(p *PegasosQSVC) { p.c = c }
}

// WithNumSteps sets the number of Pegasos sub-gradient steps. The default
// is 1000.
func WithNumSteps(n int) Option {
	return func(p *PegasosQSVC) { p.numSteps = n }
}

// WithPrecomputed switches the classifier to precomputed mode: Fit receives
// the training Gram matrix instead of feature vectors, and prediction
// inputs are kernel values against the training set. A kernel must not be
// set in this mode.
func WithPrecomputed(precomputed bool) Option {
	return func(p *PegasosQSVC) { p.precomputed = precomputed }
}

// WithSeed seeds the index sampling of the training loop, making Fit
// deterministic for fixed data and kernel.
func WithSeed(seed uint64) Option {
	return func(p *PegasosQSVC) { p.seed = seed }
}

// WithCallback registers a per-step callback. Returning false stops
// training early.
func WithCallback(cb Callback) Option {
	return func(p *PegasosQSVC) { p.callback = cb }
}

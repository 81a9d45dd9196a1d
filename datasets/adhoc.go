package datasets

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/featuremap"
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
	"github.com/ShivaniRajput11/qiskit-machine-learning/quantum"
)

type adHocConfig struct {
	dimension int
	reps      int
	seed      uint64
}

// AdHocOption configures AdHoc.
type AdHocOption func(*adHocConfig)

// WithAdHocDimension sets the feature dimension. The default is 2.
func WithAdHocDimension(d int) AdHocOption {
	return func(c *adHocConfig) { c.dimension = d }
}

// WithAdHocReps sets the feature map repetitions used for labeling. The
// default is 2.
func WithAdHocReps(reps int) AdHocOption {
	return func(c *adHocConfig) { c.reps = reps }
}

// WithAdHocSeed seeds the generator.
func WithAdHocSeed(seed uint64) AdHocOption {
	return func(c *adHocConfig) { c.seed = seed }
}

// maxAdHocAttempts bounds rejection sampling per requested sample; large
// gaps reject most candidates.
const maxAdHocAttempts = 10000

// AdHoc generates the quantum-labeled "ad hoc" dataset: feature vectors
// drawn uniformly from [0, 2*pi)^d, labeled 0 or 1 by the sign of the
// all-Z expectation of their ZZ-feature-mapped state. Points whose
// expectation magnitude is below gap are discarded, leaving a margin
// between classes; the classes are balanced.
func AdHoc(nSamples int, gap float64, opts ...AdHocOption) (*mat.Dense, []int, error) {
	if nSamples <= 0 {
		return nil, nil, errors.NewValidationError("nSamples", "must be positive", nSamples)
	}
	if gap < 0 || gap >= 1 {
		return nil, nil, errors.NewValidationError("gap", "must be in [0, 1)", gap)
	}
	cfg := adHocConfig{dimension: 2, reps: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dimension <= 0 {
		return nil, nil, errors.NewValidationError("dimension", "must be positive", cfg.dimension)
	}

	fm, err := featuremap.NewZZFeatureMap(cfg.dimension, featuremap.WithReps(cfg.reps))
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0xa0761d6478bd642f))
	wantPerClass := [2]int{(nSamples + 1) / 2, nSamples / 2}
	gotPerClass := [2]int{}

	X := mat.NewDense(nSamples, cfg.dimension, nil)
	y := make([]int, nSamples)
	row := 0
	x := make([]float64, cfg.dimension)

	for attempts := 0; row < nSamples; attempts++ {
		if attempts >= maxAdHocAttempts*nSamples {
			return nil, nil, errors.NewValueError("datasets.AdHoc", "rejection sampling exhausted; lower the gap")
		}
		for j := range x {
			x[j] = rng.Float64() * 2 * math.Pi
		}
		circuit, err := fm.Map(x)
		if err != nil {
			return nil, nil, err
		}
		sv, err := quantum.Evolve(circuit)
		if err != nil {
			return nil, nil, err
		}
		exp := sv.ExpectationZ()
		if math.Abs(exp) < gap {
			continue
		}
		label := 0
		if exp < 0 {
			label = 1
		}
		if gotPerClass[label] >= wantPerClass[label] {
			continue
		}
		for j := range x {
			X.Set(row, j, x[j])
		}
		y[row] = label
		gotPerClass[label]++
		row++
	}
	return X, y, nil
}

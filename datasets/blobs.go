// Package datasets generates the synthetic datasets used by the examples
// and tests: Gaussian blobs, the quantum-labeled ad hoc dataset, and a
// train/test splitting helper.
package datasets

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

type blobsConfig struct {
	numFeatures int
	clusterStd  float64
	boxMin      float64
	boxMax      float64
	seed        uint64
	shuffle     bool
}

// BlobsOption configures MakeBlobs.
type BlobsOption func(*blobsConfig)

// WithBlobsFeatures sets the feature count. The default is 2.
func WithBlobsFeatures(d int) BlobsOption {
	return func(c *blobsConfig) { c.numFeatures = d }
}

// WithClusterStd sets the standard deviation of each cluster. The default
// is 1.
func WithClusterStd(std float64) BlobsOption {
	return func(c *blobsConfig) { c.clusterStd = std }
}

// WithCenterBox sets the bounding box the cluster centers are drawn from.
// The default is [-10, 10].
func WithCenterBox(min, max float64) BlobsOption {
	return func(c *blobsConfig) { c.boxMin, c.boxMax = min, max }
}

// WithBlobsSeed seeds the generator.
func WithBlobsSeed(seed uint64) BlobsOption {
	return func(c *blobsConfig) { c.seed = seed }
}

// WithBlobsShuffle controls whether samples are shuffled rather than
// grouped by cluster. Enabled by default.
func WithBlobsShuffle(shuffle bool) BlobsOption {
	return func(c *blobsConfig) { c.shuffle = shuffle }
}

// MakeBlobs generates isotropic Gaussian clusters: nSamples points spread
// as evenly as possible over the requested number of centers. It returns
// the (nSamples x numFeatures) data matrix and the integer cluster label of
// each row.
func MakeBlobs(nSamples, centers int, opts ...BlobsOption) (*mat.Dense, []int, error) {
	if nSamples <= 0 {
		return nil, nil, errors.NewValidationError("nSamples", "must be positive", nSamples)
	}
	if centers <= 0 {
		return nil, nil, errors.NewValidationError("centers", "must be positive", centers)
	}
	cfg := blobsConfig{
		numFeatures: 2,
		clusterStd:  1,
		boxMin:      -10,
		boxMax:      10,
		shuffle:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.numFeatures <= 0 {
		return nil, nil, errors.NewValidationError("numFeatures", "must be positive", cfg.numFeatures)
	}
	if cfg.clusterStd <= 0 {
		return nil, nil, errors.NewValidationError("clusterStd", "must be positive", cfg.clusterStd)
	}
	if cfg.boxMax <= cfg.boxMin {
		return nil, nil, errors.NewValidationError("centerBox", "max must exceed min", [2]float64{cfg.boxMin, cfg.boxMax})
	}

	src := rand.NewPCG(cfg.seed, cfg.seed^0xda3e39cb94b95bdb)
	rng := rand.New(src)
	noise := distuv.Normal{Mu: 0, Sigma: cfg.clusterStd, Src: src}

	centerPoints := make([][]float64, centers)
	for c := range centerPoints {
		centerPoints[c] = make([]float64, cfg.numFeatures)
		for j := range centerPoints[c] {
			centerPoints[c][j] = cfg.boxMin + rng.Float64()*(cfg.boxMax-cfg.boxMin)
		}
	}

	X := mat.NewDense(nSamples, cfg.numFeatures, nil)
	y := make([]int, nSamples)
	for i := 0; i < nSamples; i++ {
		c := i % centers
		y[i] = c
		for j := 0; j < cfg.numFeatures; j++ {
			X.Set(i, j, centerPoints[c][j]+noise.Rand())
		}
	}

	if cfg.shuffle {
		perm := rng.Perm(nSamples)
		shuffledX := mat.NewDense(nSamples, cfg.numFeatures, nil)
		shuffledY := make([]int, nSamples)
		for to, from := range perm {
			for j := 0; j < cfg.numFeatures; j++ {
				shuffledX.Set(to, j, X.At(from, j))
			}
			shuffledY[to] = y[from]
		}
		return shuffledX, shuffledY, nil
	}
	return X, y, nil
}

// LabelColumn converts integer labels to the (n x 1) float matrix the
// estimator contract expects.
func LabelColumn(y []int) *mat.Dense {
	out := mat.NewDense(len(y), 1, nil)
	for i, l := range y {
		out.Set(i, 0, float64(l))
	}
	return out
}

package datasets

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

type splitConfig struct {
	shuffle bool
	seed    uint64
}

// SplitOption configures TrainTestSplit.
type SplitOption func(*splitConfig)

// WithSplitShuffle enables seeded shuffling before the split. The default
// is an ordered split.
func WithSplitShuffle(seed uint64) SplitOption {
	return func(c *splitConfig) {
		c.shuffle = true
		c.seed = seed
	}
}

// TrainTestSplit splits X and y into train and test partitions. trainSize
// is the fraction of rows assigned to the training set, and must leave at
// least one row on each side.
func TrainTestSplit(X, y mat.Matrix, trainSize float64, opts ...SplitOption) (XTrain, XTest, yTrain, yTest *mat.Dense, err error) {
	if X == nil || y == nil {
		return nil, nil, nil, nil, errors.NewValidationError("X/y", "must not be nil", nil)
	}
	n, d := X.Dims()
	yr, yc := y.Dims()
	if yr != n {
		return nil, nil, nil, nil, errors.NewDimensionError("datasets.TrainTestSplit", n, yr, 0)
	}
	if trainSize <= 0 || trainSize >= 1 {
		return nil, nil, nil, nil, errors.NewValidationError("trainSize", "must be in (0, 1)", trainSize)
	}
	nTrain := int(math.Round(trainSize * float64(n)))
	if nTrain < 1 || nTrain >= n {
		return nil, nil, nil, nil, errors.NewValueError("datasets.TrainTestSplit", "split leaves an empty partition")
	}

	cfg := splitConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if cfg.shuffle {
		rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0xe7037ed1a0b428db))
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	XTrain = mat.NewDense(nTrain, d, nil)
	yTrain = mat.NewDense(nTrain, yc, nil)
	XTest = mat.NewDense(n-nTrain, d, nil)
	yTest = mat.NewDense(n-nTrain, yc, nil)

	for pos, idx := range order {
		dstX, dstY := XTest, yTest
		row := pos - nTrain
		if pos < nTrain {
			dstX, dstY = XTrain, yTrain
			row = pos
		}
		for j := 0; j < d; j++ {
			dstX.Set(row, j, X.At(idx, j))
		}
		for j := 0; j < yc; j++ {
			dstY.Set(row, j, y.At(idx, j))
		}
	}
	return XTrain, XTest, yTrain, yTest, nil
}

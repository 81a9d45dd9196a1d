// Package model provides additional interfaces and types for machine learning models.
// This file complements the existing interfaces in estimator.go and transformer.go
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the mean accuracy of the prediction.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// DecisionScorer is the interface for classifiers that expose a real-valued
// decision function. The sign of each value selects the predicted class.
type DecisionScorer interface {
	// DecisionFunction returns one decision value per sample in X.
	DecisionFunction(X mat.Matrix) (*mat.Dense, error)
}

// Classifier combines interfaces for classification models.
type Classifier interface {
	Fitter
	Predictor
	Scorer
	DecisionScorer

	// Classes returns the unique classes seen during fitting.
	Classes() []float64
}

// Persistable is the interface for models that can be saved and loaded.
type Persistable interface {
	// Save saves the model to a file.
	Save(path string) error

	// Load loads the model from a file.
	Load(path string) error
}

// Package featuremap provides the data-encoding circuits that map classical
// feature vectors onto quantum states. A feature map is the first half of
// every fidelity evaluation: two samples are considered similar when their
// encoded states overlap.
package featuremap

import (
	"math"

	"github.com/ShivaniRajput11/qiskit-machine-learning/quantum"
)

// FeatureMap encodes classical feature vectors into quantum circuits.
type FeatureMap interface {
	// NumFeatures returns the expected feature vector length.
	NumFeatures() int
	// NumQubits returns the width of the produced circuits.
	NumQubits() int
	// Parameters returns the symbolic feature parameters, one per feature.
	Parameters() []quantum.Parameter
	// Map binds the feature values and returns the encoding circuit.
	Map(x []float64) (*quantum.Circuit, error)
	// Name returns a short identifier for logging.
	Name() string
}

// Entanglement selects which qubit tuples a multi-qubit Pauli term is
// applied to.
type Entanglement string

const (
	// EntanglementLinear connects consecutive qubits: (0,1), (1,2), ...
	EntanglementLinear Entanglement = "linear"
	// EntanglementCircular is linear plus the wrap-around tuple.
	EntanglementCircular Entanglement = "circular"
	// EntanglementFull connects every qubit combination.
	EntanglementFull Entanglement = "full"
)

// DataMapFunc computes the rotation angle phi_S(x) for one Pauli term from
// the feature values of the qubits the term acts on.
type DataMapFunc func(xs []float64) float64

// DefaultDataMap is the conventional Pauli-expansion data map:
// phi(x_i) = x_i for single-qubit terms and prod(pi - x_i) otherwise.
func DefaultDataMap(xs []float64) float64 {
	if len(xs) == 1 {
		return xs[0]
	}
	prod := 1.0
	for _, x := range xs {
		prod *= math.Pi - x
	}
	return prod
}

type config struct {
	reps         int
	entanglement Entanglement
	dataMap      DataMapFunc
	prefix       string
}

// Option configures a feature map.
type Option func(*config)

// WithReps sets the number of repetitions of the encoding block.
// The default is 2.
func WithReps(n int) Option {
	return func(c *config) { c.reps = n }
}

// WithEntanglement sets the entanglement pattern for multi-qubit Pauli
// terms. The default is full entanglement.
func WithEntanglement(e Entanglement) Option {
	return func(c *config) { c.entanglement = e }
}

// WithDataMap replaces the default data map.
func WithDataMap(f DataMapFunc) Option {
	return func(c *config) { c.dataMap = f }
}

// WithParameterPrefix sets the name prefix of the symbolic feature
// parameters. The default is "x".
func WithParameterPrefix(prefix string) Option {
	return func(c *config) { c.prefix = prefix }
}

func defaultConfig() config {
	return config{
		reps:         2,
		entanglement: EntanglementFull,
		dataMap:      DefaultDataMap,
		prefix:       "x",
	}
}

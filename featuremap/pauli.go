package featuremap

import (
	"math"

	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
	"github.com/ShivaniRajput11/qiskit-machine-learning/quantum"
)

// PauliFeatureMap is the general Pauli-expansion encoder. Per repetition it
// applies a Hadamard layer and then, for every Pauli string and every qubit
// tuple selected by the entanglement pattern, the evolution
// exp(-i * phi_S(x) * P_S) realized as a basis change, a CX chain, a phase
// rotation by 2*phi_S(x) on the last qubit of the tuple, and the un-chain
// and un-basis-change.
type PauliFeatureMap struct {
	name      string
	numQubits int
	paulis    []string
	cfg       config
	params    []quantum.Parameter
}

// NewPauliFeatureMap creates a Pauli-expansion feature map over the given
// Pauli strings, e.g. []string{"Z", "ZZ"} or []string{"ZY"}. Supported
// Pauli characters are X, Y and Z.
func NewPauliFeatureMap(numQubits int, paulis []string, opts ...Option) (*PauliFeatureMap, error) {
	return newPauliMap("PauliFeatureMap", numQubits, paulis, opts...)
}

// NewZFeatureMap creates the first-order Z-expansion encoder: a product
// state with no entangling gates, one phase rotation per feature.
func NewZFeatureMap(numQubits int, opts ...Option) (*PauliFeatureMap, error) {
	return newPauliMap("ZFeatureMap", numQubits, []string{"Z"}, opts...)
}

// NewZZFeatureMap creates the second-order Z-expansion encoder with ZZ
// interactions over the configured entanglement pattern. On fewer than two
// qubits no pairs exist and the map degenerates to a ZFeatureMap.
func NewZZFeatureMap(numQubits int, opts ...Option) (*PauliFeatureMap, error) {
	return newPauliMap("ZZFeatureMap", numQubits, []string{"Z", "ZZ"}, opts...)
}

func newPauliMap(name string, numQubits int, paulis []string, opts ...Option) (*PauliFeatureMap, error) {
	if numQubits < 1 {
		return nil, errors.NewValidationError("numQubits", "must be positive", numQubits)
	}
	if len(paulis) == 0 {
		return nil, errors.NewValidationError("paulis", "must not be empty", paulis)
	}
	for _, s := range paulis {
		if len(s) == 0 {
			return nil, errors.NewValidationError("paulis", "empty Pauli string", s)
		}
		if len(s) > numQubits {
			return nil, errors.NewValidationError("paulis", "Pauli string longer than the register", s)
		}
		for _, ch := range s {
			if ch != 'X' && ch != 'Y' && ch != 'Z' {
				return nil, errors.NewValidationError("paulis", "unsupported Pauli character", string(ch))
			}
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.reps < 1 {
		return nil, errors.NewValidationError("reps", "must be positive", cfg.reps)
	}
	switch cfg.entanglement {
	case EntanglementLinear, EntanglementCircular, EntanglementFull:
	default:
		return nil, errors.NewValidationError("entanglement", "unknown pattern", string(cfg.entanglement))
	}

	return &PauliFeatureMap{
		name:      name,
		numQubits: numQubits,
		paulis:    paulis,
		cfg:       cfg,
		params:    quantum.ParameterVector(cfg.prefix, numQubits),
	}, nil
}

// Name returns the feature map's identifier.
func (m *PauliFeatureMap) Name() string { return m.name }

// NumFeatures returns the expected feature vector length. For Pauli maps
// the data dimension equals the register width.
func (m *PauliFeatureMap) NumFeatures() int { return m.numQubits }

// NumQubits returns the circuit width.
func (m *PauliFeatureMap) NumQubits() int { return m.numQubits }

// Reps returns the number of encoding repetitions.
func (m *PauliFeatureMap) Reps() int { return m.cfg.reps }

// Parameters returns the symbolic feature parameters.
func (m *PauliFeatureMap) Parameters() []quantum.Parameter {
	out := make([]quantum.Parameter, len(m.params))
	copy(out, m.params)
	return out
}

// Map encodes one feature vector into a bound circuit.
func (m *PauliFeatureMap) Map(x []float64) (*quantum.Circuit, error) {
	if len(x) != m.numQubits {
		return nil, errors.NewDimensionError("PauliFeatureMap.Map", m.numQubits, len(x), 1)
	}

	c, err := quantum.NewCircuit(m.numQubits)
	if err != nil {
		return nil, err
	}
	for rep := 0; rep < m.cfg.reps; rep++ {
		for q := 0; q < m.numQubits; q++ {
			c.H(q)
		}
		for _, pauli := range m.paulis {
			for _, tuple := range m.tuples(len(pauli)) {
				m.evolvePauli(c, pauli, tuple, x)
			}
		}
	}
	return c, nil
}

// evolvePauli appends exp(-i * phi(x_tuple) * P) for one Pauli string on
// one qubit tuple.
func (m *PauliFeatureMap) evolvePauli(c *quantum.Circuit, pauli string, tuple []int, x []float64) {
	xs := make([]float64, len(tuple))
	for i, q := range tuple {
		xs[i] = x[q]
	}
	angle := 2 * m.cfg.dataMap(xs)

	// Basis change into the Z eigenbasis.
	for i, q := range tuple {
		switch pauli[i] {
		case 'X':
			c.H(q)
		case 'Y':
			c.RX(math.Pi/2, q)
		}
	}
	for i := 0; i < len(tuple)-1; i++ {
		c.CX(tuple[i], tuple[i+1])
	}
	c.P(angle, tuple[len(tuple)-1])
	for i := len(tuple) - 2; i >= 0; i-- {
		c.CX(tuple[i], tuple[i+1])
	}
	for i, q := range tuple {
		switch pauli[i] {
		case 'X':
			c.H(q)
		case 'Y':
			c.RX(-math.Pi/2, q)
		}
	}
}

// tuples enumerates the qubit tuples of the given size for the configured
// entanglement pattern. Size-1 tuples are always every qubit; patterns only
// differ for multi-qubit terms.
func (m *PauliFeatureMap) tuples(size int) [][]int {
	n := m.numQubits
	if size == 1 {
		out := make([][]int, n)
		for q := 0; q < n; q++ {
			out[q] = []int{q}
		}
		return out
	}
	if size > n {
		return nil
	}

	switch m.cfg.entanglement {
	case EntanglementLinear, EntanglementCircular:
		var out [][]int
		for start := 0; start+size <= n; start++ {
			tuple := make([]int, size)
			for i := range tuple {
				tuple[i] = start + i
			}
			out = append(out, tuple)
		}
		if m.cfg.entanglement == EntanglementCircular && n > size {
			// Wrap-around tuple closing the ring.
			tuple := make([]int, size)
			for i := range tuple {
				tuple[i] = (n - size + 1 + i) % n
			}
			out = append(out, tuple)
		}
		return out
	default: // EntanglementFull
		return combinations(n, size)
	}
}

// combinations returns all ascending k-subsets of {0, ..., n-1}.
func combinations(n, k int) [][]int {
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		tuple := make([]int, k)
		copy(tuple, idx)
		out = append(out, tuple)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

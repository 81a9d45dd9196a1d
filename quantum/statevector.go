package quantum

import (
	"math"
	"math/bits"
	"math/cmplx"
	"math/rand/v2"

	"github.com/ShivaniRajput11/qiskit-machine-learning/core/parallel"
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

// parallelThreshold is the amplitude count below which gate application
// stays sequential. Small registers are cheaper than goroutine startup.
const parallelThreshold = 1 << 12

// Statevector holds the 2^n complex amplitudes of an n-qubit register in
// little-endian order: qubit 0 is the least significant bit of a basis
// state index.
type Statevector struct {
	numQubits int
	amps      []complex128
}

// NewStatevector returns the |0...0> state over numQubits qubits.
func NewStatevector(numQubits int) (*Statevector, error) {
	if numQubits <= 0 {
		return nil, errors.NewValidationError("numQubits", "must be positive", numQubits)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &Statevector{numQubits: numQubits, amps: amps}, nil
}

// Evolve applies every gate of the circuit to |0...0> and returns the
// resulting state. The circuit must be fully bound and address only qubits
// inside its register.
func Evolve(c *Circuit) (*Statevector, error) {
	if err := c.validate("quantum.Evolve"); err != nil {
		return nil, err
	}
	sv, err := NewStatevector(c.numQubits)
	if err != nil {
		return nil, err
	}
	for _, g := range c.gates {
		sv.apply(g)
	}
	return sv, nil
}

// NumQubits returns the register width.
func (s *Statevector) NumQubits() int { return s.numQubits }

// Amplitudes returns a copy of the state's amplitudes.
func (s *Statevector) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// apply dispatches one validated gate.
func (s *Statevector) apply(g Gate) {
	switch g.Kind {
	case GateH:
		s.applyPairs(g.Target, func(a, b complex128) (complex128, complex128) {
			const invSqrt2 = 1 / math.Sqrt2
			return (a + b) * complex(invSqrt2, 0), (a - b) * complex(invSqrt2, 0)
		})
	case GateX:
		s.applyPairs(g.Target, func(a, b complex128) (complex128, complex128) {
			return b, a
		})
	case GateRX:
		cos := complex(math.Cos(g.Theta/2), 0)
		nisin := complex(0, -math.Sin(g.Theta/2))
		s.applyPairs(g.Target, func(a, b complex128) (complex128, complex128) {
			return cos*a + nisin*b, nisin*a + cos*b
		})
	case GateP:
		phase := cmplx.Exp(complex(0, g.Theta))
		bit := 1 << g.Target
		parallel.ParallelizeWithThreshold(len(s.amps), parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				if i&bit != 0 {
					s.amps[i] *= phase
				}
			}
		})
	case GateCX:
		ctrlBit := 1 << g.Control
		tgtBit := 1 << g.Target
		parallel.ParallelizeWithThreshold(len(s.amps), parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				if i&ctrlBit != 0 && i&tgtBit == 0 {
					j := i | tgtBit
					s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
				}
			}
		})
	}
}

// applyPairs applies a 2x2 transform to every (|...0_q...>, |...1_q...>)
// amplitude pair of qubit q. The pairs are disjoint, so the loop chunks
// safely across workers.
func (s *Statevector) applyPairs(q int, f func(a, b complex128) (complex128, complex128)) {
	bit := 1 << q
	low := bit - 1
	half := len(s.amps) / 2
	parallel.ParallelizeWithThreshold(half, parallelThreshold/2, func(start, end int) {
		for k := start; k < end; k++ {
			i0 := (k&^low)<<1 | k&low
			i1 := i0 | bit
			s.amps[i0], s.amps[i1] = f(s.amps[i0], s.amps[i1])
		}
	})
}

// InnerProduct returns <a|b>, conjugating a.
func InnerProduct(a, b *Statevector) (complex128, error) {
	if a.numQubits != b.numQubits {
		return 0, errors.NewQubitCountError("quantum.InnerProduct", a.numQubits, b.numQubits)
	}
	var sum complex128
	for i := range a.amps {
		sum += cmplx.Conj(a.amps[i]) * b.amps[i]
	}
	return sum, nil
}

// Probabilities returns the measurement probability of every computational
// basis state.
func (s *Statevector) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

// Probability returns the measurement probability of a single basis state,
// given as its little-endian integer index.
func (s *Statevector) Probability(basisState int) (float64, error) {
	if basisState < 0 || basisState >= len(s.amps) {
		return 0, errors.NewValidationError("basisState", "outside the register's basis", basisState)
	}
	a := s.amps[basisState]
	return real(a)*real(a) + imag(a)*imag(a), nil
}

// ExpectationZ returns <Z x ... x Z>: each basis state contributes its
// probability weighted by the parity of its set bits.
func (s *Statevector) ExpectationZ() float64 {
	var exp float64
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if bits.OnesCount(uint(i))%2 == 0 {
			exp += p
		} else {
			exp -= p
		}
	}
	return exp
}

// Sample draws measurement outcomes in the computational basis. Outcomes
// are basis-state indices; the draw sequence is deterministic for a seeded
// source.
func (s *Statevector) Sample(shots int, rng *rand.Rand) ([]int, error) {
	if shots <= 0 {
		return nil, errors.NewValidationError("shots", "must be positive", shots)
	}
	if rng == nil {
		return nil, errors.NewValidationError("rng", "must not be nil", nil)
	}

	// Cumulative distribution over basis states.
	cdf := make([]float64, len(s.amps))
	var acc float64
	for i, a := range s.amps {
		acc += real(a)*real(a) + imag(a)*imag(a)
		cdf[i] = acc
	}

	outcomes := make([]int, shots)
	for t := 0; t < shots; t++ {
		r := rng.Float64() * acc
		lo, hi := 0, len(cdf)-1
		for lo < hi {
			mid := (lo + hi) / 2
			if cdf[mid] < r {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		outcomes[t] = lo
	}
	return outcomes, nil
}

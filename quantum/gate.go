package quantum

// GateKind identifies one of the supported gate types.
type GateKind int

// Supported gates. The set is intentionally small: it is exactly what the
// Pauli feature maps and the compute-uncompute fidelity circuit need.
const (
	// GateH is the Hadamard gate.
	GateH GateKind = iota
	// GateX is the Pauli-X (NOT) gate.
	GateX
	// GateRX is a rotation around the X axis by an angle theta.
	GateRX
	// GateP is the phase gate diag(1, e^{i*theta}).
	GateP
	// GateCX is the controlled-X gate.
	GateCX
)

// String returns the conventional short name of the gate kind.
func (k GateKind) String() string {
	switch k {
	case GateH:
		return "h"
	case GateX:
		return "x"
	case GateRX:
		return "rx"
	case GateP:
		return "p"
	case GateCX:
		return "cx"
	default:
		return "unknown"
	}
}

// Gate is a single circuit instruction. For rotation gates the angle is
// either the bound constant Theta, or Coeff multiplied by the eventual
// value of Param when Symbolic is set. Control is only meaningful for CX.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int // -1 unless Kind == GateCX

	Theta    float64
	Symbolic bool
	Param    Parameter
	Coeff    float64
}

// parameterized reports whether the gate kind carries an angle at all.
func (g Gate) parameterized() bool {
	return g.Kind == GateRX || g.Kind == GateP
}

// inverse returns the gate that undoes g. H, X and CX are self-inverse;
// rotations invert by negating the angle (or its coefficient when the
// angle is still symbolic).
func (g Gate) inverse() Gate {
	inv := g
	if g.parameterized() {
		if g.Symbolic {
			inv.Coeff = -g.Coeff
		} else {
			inv.Theta = -g.Theta
		}
	}
	return inv
}

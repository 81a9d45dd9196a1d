package quantum

import (
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

// Circuit is an ordered list of gates over a fixed number of qubits.
//
// Builder methods append gates and return the receiver for chaining; qubit
// indices are validated when the circuit is evolved, so construction itself
// never fails. A circuit may reference unbound parameters; Bind produces a
// fully bound copy and never mutates the template.
type Circuit struct {
	numQubits int
	gates     []Gate
	// insertion-ordered unbound parameters
	params    []Parameter
	paramSeen map[Parameter]struct{}
}

// NewCircuit creates an empty circuit over numQubits qubits.
func NewCircuit(numQubits int) (*Circuit, error) {
	if numQubits <= 0 {
		return nil, errors.NewValidationError("numQubits", "must be positive", numQubits)
	}
	return &Circuit{
		numQubits: numQubits,
		paramSeen: make(map[Parameter]struct{}),
	}, nil
}

// NumQubits returns the circuit width.
func (c *Circuit) NumQubits() int { return c.numQubits }

// NumGates returns the number of gates in the circuit.
func (c *Circuit) NumGates() int { return len(c.gates) }

// Gates returns a copy of the circuit's gate list.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// Parameters returns the circuit's unbound parameters in first-use order.
func (c *Circuit) Parameters() []Parameter {
	out := make([]Parameter, len(c.params))
	copy(out, c.params)
	return out
}

func (c *Circuit) noteParam(p Parameter) {
	if _, ok := c.paramSeen[p]; ok {
		return
	}
	c.paramSeen[p] = struct{}{}
	c.params = append(c.params, p)
}

func (c *Circuit) append(g Gate) *Circuit {
	if g.Symbolic {
		c.noteParam(g.Param)
	}
	c.gates = append(c.gates, g)
	return c
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) *Circuit {
	return c.append(Gate{Kind: GateH, Target: q, Control: -1})
}

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) *Circuit {
	return c.append(Gate{Kind: GateX, Target: q, Control: -1})
}

// RX appends an X-rotation by theta radians on qubit q.
func (c *Circuit) RX(theta float64, q int) *Circuit {
	return c.append(Gate{Kind: GateRX, Target: q, Control: -1, Theta: theta})
}

// P appends a phase gate with angle theta on qubit q.
func (c *Circuit) P(theta float64, q int) *Circuit {
	return c.append(Gate{Kind: GateP, Target: q, Control: -1, Theta: theta})
}

// CX appends a controlled-X gate with the given control and target qubits.
func (c *Circuit) CX(ctrl, tgt int) *Circuit {
	return c.append(Gate{Kind: GateCX, Target: tgt, Control: ctrl})
}

// RXParam appends an X-rotation by coeff*param on qubit q, leaving param
// unbound.
func (c *Circuit) RXParam(coeff float64, param Parameter, q int) *Circuit {
	return c.append(Gate{Kind: GateRX, Target: q, Control: -1, Symbolic: true, Param: param, Coeff: coeff})
}

// PParam appends a phase gate with angle coeff*param on qubit q, leaving
// param unbound.
func (c *Circuit) PParam(coeff float64, param Parameter, q int) *Circuit {
	return c.append(Gate{Kind: GateP, Target: q, Control: -1, Symbolic: true, Param: param, Coeff: coeff})
}

// Compose returns a new circuit that applies c first and then other. Both
// circuits must have the same width.
func (c *Circuit) Compose(other *Circuit) (*Circuit, error) {
	if other.numQubits != c.numQubits {
		return nil, errors.NewQubitCountError("Circuit.Compose", c.numQubits, other.numQubits)
	}
	out, _ := NewCircuit(c.numQubits)
	for _, g := range c.gates {
		out.append(g)
	}
	for _, g := range other.gates {
		out.append(g)
	}
	return out, nil
}

// Inverse returns the circuit that undoes c: the gate order is reversed and
// every rotation angle is negated.
func (c *Circuit) Inverse() *Circuit {
	out, _ := NewCircuit(c.numQubits)
	for i := len(c.gates) - 1; i >= 0; i-- {
		out.append(c.gates[i].inverse())
	}
	return out
}

// Bind substitutes concrete values for the circuit's unbound parameters and
// returns the bound copy. Every unbound parameter must be assigned, and no
// value may refer to a parameter the circuit does not use.
func (c *Circuit) Bind(values map[Parameter]float64) (*Circuit, error) {
	missing := make(map[Parameter]struct{})
	for _, p := range c.params {
		if _, ok := values[p]; !ok {
			missing[p] = struct{}{}
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewUnboundParameterError("Circuit.Bind", sortedNames(missing))
	}
	for p := range values {
		if _, ok := c.paramSeen[p]; !ok {
			return nil, errors.NewValidationError("values", "value bound for unknown parameter", p.Name())
		}
	}

	out, _ := NewCircuit(c.numQubits)
	for _, g := range c.gates {
		if g.Symbolic {
			bound := g
			bound.Symbolic = false
			bound.Theta = g.Coeff * values[g.Param]
			bound.Param = Parameter{}
			bound.Coeff = 0
			out.append(bound)
			continue
		}
		out.append(g)
	}
	return out, nil
}

// BindValues binds the circuit's parameters positionally, in the order
// reported by Parameters.
func (c *Circuit) BindValues(values []float64) (*Circuit, error) {
	if len(values) != len(c.params) {
		return nil, errors.NewDimensionError("Circuit.BindValues", len(c.params), len(values), 1)
	}
	m := make(map[Parameter]float64, len(values))
	for i, p := range c.params {
		m[p] = values[i]
	}
	return c.Bind(m)
}

// validate checks that every gate addresses qubits inside the register and
// that no unbound parameters remain.
func (c *Circuit) validate(op string) error {
	if len(c.params) > 0 {
		unbound := make(map[Parameter]struct{}, len(c.params))
		for _, p := range c.params {
			unbound[p] = struct{}{}
		}
		return errors.NewUnboundParameterError(op, sortedNames(unbound))
	}
	for _, g := range c.gates {
		if g.Target < 0 || g.Target >= c.numQubits {
			return errors.NewValidationError("target", "qubit index out of range", g.Target)
		}
		if g.Kind == GateCX {
			if g.Control < 0 || g.Control >= c.numQubits {
				return errors.NewValidationError("control", "qubit index out of range", g.Control)
			}
			if g.Control == g.Target {
				return errors.NewValidationError("control", "control and target must differ", g.Control)
			}
		}
	}
	return nil
}

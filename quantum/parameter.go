// Package quantum implements the circuit construction and statevector
// simulation core that the feature maps, fidelity primitive, and quantum
// kernel are built on.
//
// Circuits are gate lists over n qubits in little-endian order (qubit 0 is
// the least significant bit of a basis-state index). Gates may carry either
// a bound angle or a symbolic Parameter with a scalar coefficient, so that
// data-encoding templates can be constructed once and bound per sample.
package quantum

import (
	"fmt"
	"sort"
)

// Parameter is a named symbolic circuit parameter. Parameters are compared
// by name, so two Parameter values with the same name refer to the same
// binding slot and a Parameter can be used directly as a map key.
type Parameter struct {
	name string
}

// NewParameter creates a parameter with the given name.
func NewParameter(name string) Parameter {
	return Parameter{name: name}
}

// Name returns the parameter's name.
func (p Parameter) Name() string { return p.name }

// String implements fmt.Stringer.
func (p Parameter) String() string { return p.name }

// ParameterVector creates n parameters named name[0] .. name[n-1].
func ParameterVector(name string, n int) []Parameter {
	params := make([]Parameter, n)
	for i := range params {
		params[i] = Parameter{name: fmt.Sprintf("%s[%d]", name, i)}
	}
	return params
}

// sortedNames returns the names of the given parameter set in ascending
// order. Used for stable error messages.
func sortedNames(params map[Parameter]struct{}) []string {
	names := make([]string, 0, len(params))
	for p := range params {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}

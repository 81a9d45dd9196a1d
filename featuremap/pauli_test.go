package featuremap

import (
	"math"
	"testing"

	"github.com/ShivaniRajput11/qiskit-machine-learning/quantum"
)

func TestDefaultDataMap(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{name: "singleton is identity", xs: []float64{0.7}, want: 0.7},
		{name: "pair product", xs: []float64{1, 2}, want: (math.Pi - 1) * (math.Pi - 2)},
		{name: "triple product", xs: []float64{0, 0, 0}, want: math.Pi * math.Pi * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultDataMap(tt.xs); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DefaultDataMap(%v) = %v, want %v", tt.xs, got, tt.want)
			}
		})
	}
}

func TestConstructorValidation(t *testing.T) {
	if _, err := NewZFeatureMap(0); err == nil {
		t.Error("NewZFeatureMap(0) should fail")
	}
	if _, err := NewPauliFeatureMap(2, nil); err == nil {
		t.Error("empty Pauli list should fail")
	}
	if _, err := NewPauliFeatureMap(2, []string{"ZQ"}); err == nil {
		t.Error("unsupported Pauli character should fail")
	}
	if _, err := NewPauliFeatureMap(1, []string{"ZZ"}); err == nil {
		t.Error("Pauli string wider than the register should fail")
	}
	if _, err := NewZFeatureMap(2, WithReps(0)); err == nil {
		t.Error("zero reps should fail")
	}
	if _, err := NewZZFeatureMap(2, WithEntanglement("ring")); err == nil {
		t.Error("unknown entanglement pattern should fail")
	}
}

func TestZFeatureMapStructure(t *testing.T) {
	fm, err := NewZFeatureMap(3, WithReps(1))
	if err != nil {
		t.Fatal(err)
	}
	if fm.NumFeatures() != 3 || fm.NumQubits() != 3 {
		t.Fatalf("dims = (%d, %d), want (3, 3)", fm.NumFeatures(), fm.NumQubits())
	}

	c, err := fm.Map([]float64{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatal(err)
	}
	// One repetition: H per qubit plus P per qubit, no entanglers.
	var hCount, pCount, cxCount int
	for _, g := range c.Gates() {
		switch g.Kind {
		case quantum.GateH:
			hCount++
		case quantum.GateP:
			pCount++
		case quantum.GateCX:
			cxCount++
		}
	}
	if hCount != 3 || pCount != 3 || cxCount != 0 {
		t.Errorf("gate counts (h=%d p=%d cx=%d), want (3, 3, 0)", hCount, pCount, cxCount)
	}
}

func TestZFeatureMapAngles(t *testing.T) {
	fm, err := NewZFeatureMap(2, WithReps(1))
	if err != nil {
		t.Fatal(err)
	}
	x := []float64{0.4, -1.2}
	c, err := fm.Map(x)
	if err != nil {
		t.Fatal(err)
	}
	var angles []float64
	for _, g := range c.Gates() {
		if g.Kind == quantum.GateP {
			angles = append(angles, g.Theta)
		}
	}
	if len(angles) != 2 {
		t.Fatalf("got %d phase gates, want 2", len(angles))
	}
	for i, x := range x {
		if math.Abs(angles[i]-2*x) > 1e-12 {
			t.Errorf("angle[%d] = %v, want 2*%v", i, angles[i], x)
		}
	}
}

func TestZZFeatureMapEntanglement(t *testing.T) {
	// CX pairs per repetition: each ZZ term contributes chain + un-chain.
	tests := []struct {
		name    string
		qubits  int
		pattern Entanglement
		wantCX  int
	}{
		{name: "full on 3 qubits", qubits: 3, pattern: EntanglementFull, wantCX: 3 * 2},
		{name: "linear on 3 qubits", qubits: 3, pattern: EntanglementLinear, wantCX: 2 * 2},
		{name: "circular on 3 qubits", qubits: 3, pattern: EntanglementCircular, wantCX: 3 * 2},
		{name: "full on 4 qubits", qubits: 4, pattern: EntanglementFull, wantCX: 6 * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, err := NewZZFeatureMap(tt.qubits, WithReps(1), WithEntanglement(tt.pattern))
			if err != nil {
				t.Fatal(err)
			}
			x := make([]float64, tt.qubits)
			for i := range x {
				x[i] = 0.1 * float64(i+1)
			}
			c, err := fm.Map(x)
			if err != nil {
				t.Fatal(err)
			}
			var cxCount int
			for _, g := range c.Gates() {
				if g.Kind == quantum.GateCX {
					cxCount++
				}
			}
			if cxCount != tt.wantCX {
				t.Errorf("cx count = %d, want %d", cxCount, tt.wantCX)
			}
		})
	}
}

func TestZZFeatureMapDegeneratesOnOneQubit(t *testing.T) {
	zz, err := NewZZFeatureMap(1, WithReps(1))
	if err != nil {
		t.Fatal(err)
	}
	z, err := NewZFeatureMap(1, WithReps(1))
	if err != nil {
		t.Fatal(err)
	}
	x := []float64{0.9}
	czz, err := zz.Map(x)
	if err != nil {
		t.Fatal(err)
	}
	cz, err := z.Map(x)
	if err != nil {
		t.Fatal(err)
	}
	if czz.NumGates() != cz.NumGates() {
		t.Errorf("single-qubit ZZ map has %d gates, Z map has %d; they should coincide",
			czz.NumGates(), cz.NumGates())
	}
}

func TestMapDimensionCheck(t *testing.T) {
	fm, err := NewZZFeatureMap(2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fm.Map([]float64{1, 2, 3}); err == nil {
		t.Error("Map with the wrong feature count should fail")
	}
}

func TestRepsMultiplyGateCount(t *testing.T) {
	one, _ := NewZZFeatureMap(2, WithReps(1))
	two, _ := NewZZFeatureMap(2, WithReps(2))
	x := []float64{0.3, 0.6}
	c1, err := one.Map(x)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := two.Map(x)
	if err != nil {
		t.Fatal(err)
	}
	if c2.NumGates() != 2*c1.NumGates() {
		t.Errorf("2-rep map has %d gates, want %d", c2.NumGates(), 2*c1.NumGates())
	}
}

func TestCustomDataMap(t *testing.T) {
	fm, err := NewZFeatureMap(1, WithReps(1), WithDataMap(func(xs []float64) float64 {
		return 3 * xs[0]
	}))
	if err != nil {
		t.Fatal(err)
	}
	c, err := fm.Map([]float64{0.5})
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range c.Gates() {
		if g.Kind == quantum.GateP && math.Abs(g.Theta-2*1.5) > 1e-12 {
			t.Errorf("angle = %v, want 3", g.Theta)
		}
	}
}

func TestPauliBasisChange(t *testing.T) {
	// An X term wraps its phase rotation in Hadamards; a Y term in RX(+-pi/2).
	fm, err := NewPauliFeatureMap(2, []string{"XY"}, WithReps(1))
	if err != nil {
		t.Fatal(err)
	}
	c, err := fm.Map([]float64{0.2, 0.4})
	if err != nil {
		t.Fatal(err)
	}
	var rxAngles []float64
	for _, g := range c.Gates() {
		if g.Kind == quantum.GateRX {
			rxAngles = append(rxAngles, g.Theta)
		}
	}
	if len(rxAngles) != 2 {
		t.Fatalf("got %d RX gates, want 2 (Y basis change and back)", len(rxAngles))
	}
	if math.Abs(rxAngles[0]-math.Pi/2) > 1e-12 || math.Abs(rxAngles[1]+math.Pi/2) > 1e-12 {
		t.Errorf("RX angles = %v, want [pi/2, -pi/2]", rxAngles)
	}
	// Evolution must still be valid and norm-preserving.
	sv, err := quantum.Evolve(c)
	if err != nil {
		t.Fatal(err)
	}
	var norm float64
	for _, p := range sv.Probabilities() {
		norm += p
	}
	if math.Abs(norm-1) > 1e-10 {
		t.Errorf("norm = %v, want 1", norm)
	}
}

func TestParametersAndPrefix(t *testing.T) {
	fm, err := NewZFeatureMap(2, WithParameterPrefix("data"))
	if err != nil {
		t.Fatal(err)
	}
	params := fm.Parameters()
	if len(params) != 2 {
		t.Fatalf("got %d parameters, want 2", len(params))
	}
	if params[0].Name() != "data[0]" || params[1].Name() != "data[1]" {
		t.Errorf("parameter names = [%s %s], want [data[0] data[1]]", params[0].Name(), params[1].Name())
	}
}

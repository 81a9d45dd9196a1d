package svm

import (
	"bytes"
	"encoding/gob"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/log"
)

// pegasosState is the plain-slice snapshot of a PegasosQSVC used for gob
// serialization. The kernel is deliberately excluded; callers re-attach it
// with SetKernel after loading.
type pegasosState struct {
	C           float64
	NumSteps    int
	Precomputed bool
	Seed        uint64

	Fitted       bool
	ClassLabels  []float64
	NSamples     int
	NFeaturesIn  int
	SupportOrder []int
	SupportY     []float64
	SupportCount []float64

	SupportRows int
	SupportCols int
	SupportData []float64
}

// GobEncode implements gob.GobEncoder.
func (p *PegasosQSVC) GobEncode() ([]byte, error) {
	state := pegasosState{
		C:            p.c,
		NumSteps:     p.numSteps,
		Precomputed:  p.precomputed,
		Seed:         p.seed,
		Fitted:       p.IsFitted(),
		ClassLabels:  p.ClassLabels_,
		NSamples:     p.NSamples_,
		NFeaturesIn:  p.NFeaturesIn_,
		SupportOrder: p.supportOrder,
		SupportY:     p.supportY,
		SupportCount: p.supportCounts,
	}
	if p.supportX != nil {
		r, c := p.supportX.Dims()
		state.SupportRows = r
		state.SupportCols = c
		state.SupportData = make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			state.SupportData = append(state.SupportData, p.supportX.RawRowView(i)...)
		}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, errors.Wrap(err, "failed to encode PegasosQSVC state")
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (p *PegasosQSVC) GobDecode(data []byte) error {
	var state pegasosState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return errors.Wrap(err, "failed to decode PegasosQSVC state")
	}

	p.c = state.C
	p.numSteps = state.NumSteps
	p.precomputed = state.Precomputed
	p.seed = state.Seed
	p.ClassLabels_ = state.ClassLabels
	p.NSamples_ = state.NSamples
	p.NFeaturesIn_ = state.NFeaturesIn
	p.supportOrder = state.SupportOrder
	p.supportY = state.SupportY
	p.supportCounts = state.SupportCount

	p.SupportIndices_ = nil
	p.Alphas_ = nil
	if len(state.SupportOrder) > 0 {
		p.Alphas_ = make(map[int]int, len(state.SupportOrder))
		p.SupportIndices_ = make([]int, len(state.SupportOrder))
		copy(p.SupportIndices_, state.SupportOrder)
		for k, j := range state.SupportOrder {
			p.Alphas_[j] = int(state.SupportCount[k])
		}
		sort.Ints(p.SupportIndices_)
	}

	p.supportX = nil
	if state.SupportRows > 0 {
		p.supportX = mat.NewDense(state.SupportRows, state.SupportCols, state.SupportData)
	}

	if state.Fitted {
		p.FitStatus_ = StatusFitted
		p.SetFitted()
	} else {
		p.FitStatus_ = StatusUnfitted
		p.Reset()
	}

	if p.logger == nil {
		p.logger = log.GetLoggerWithName("svm").With(
			log.ModelNameKey, "PegasosQSVC",
			log.EstimatorIDKey, p.EstimatorID(),
		)
	}
	return nil
}

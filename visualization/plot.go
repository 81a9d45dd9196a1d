// Package visualization renders datasets and classifier decision functions
// with gonum/plot: per-class scatter plots, decision-boundary heat maps,
// and image export.
package visualization

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ShivaniRajput11/qiskit-machine-learning/pkg/errors"
)

// classSeries is one scatter series per class label, in first-seen order.
type classSeries struct {
	label   int
	scatter *plotter.Scatter
}

func buildClassSeries(X mat.Matrix, y []int) ([]classSeries, error) {
	if X == nil {
		return nil, errors.NewValidationError("X", "must not be nil", nil)
	}
	rows, cols := X.Dims()
	if rows == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	if cols < 2 {
		return nil, errors.NewDimensionError("visualization.buildClassSeries", 2, cols, 1)
	}
	if len(y) != rows {
		return nil, errors.NewDimensionError("visualization.buildClassSeries", rows, len(y), 0)
	}

	byClass := make(map[int]plotter.XYs)
	var order []int
	for i := 0; i < rows; i++ {
		if _, ok := byClass[y[i]]; !ok {
			order = append(order, y[i])
		}
		byClass[y[i]] = append(byClass[y[i]], plotter.XY{X: X.At(i, 0), Y: X.At(i, 1)})
	}

	series := make([]classSeries, 0, len(order))
	for k, label := range order {
		s, err := plotter.NewScatter(byClass[label])
		if err != nil {
			return nil, errors.Wrap(err, "failed to build scatter series")
		}
		s.GlyphStyle.Color = plotutil.Color(k)
		s.GlyphStyle.Shape = plotutil.Shape(k)
		series = append(series, classSeries{label: label, scatter: s})
	}
	return series, nil
}

func addClassSeries(p *plot.Plot, series []classSeries) {
	for _, cs := range series {
		p.Add(cs.scatter)
		p.Legend.Add(fmt.Sprintf("class %d", cs.label), cs.scatter)
	}
}

// ScatterClasses plots the first two feature columns of X as one scatter
// series per class label, with automatic per-class styling and a legend.
func ScatterClasses(X mat.Matrix, y []int) (*plot.Plot, error) {
	series, err := buildClassSeries(X, y)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.X.Label.Text = "feature 0"
	p.Y.Label.Text = "feature 1"
	addClassSeries(p, series)
	return p, nil
}

// Bounds describes the rectangle a decision boundary is rendered over.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// decisionGrid adapts sampled decision values to plotter.GridXYZ.
type decisionGrid struct {
	bounds Bounds
	n      int
	values []float64
}

func (g *decisionGrid) Dims() (int, int) { return g.n, g.n }

func (g *decisionGrid) Z(c, r int) float64 { return g.values[r*g.n+c] }

func (g *decisionGrid) X(c int) float64 {
	return g.bounds.XMin + (g.bounds.XMax-g.bounds.XMin)*float64(c)/float64(g.n-1)
}

func (g *decisionGrid) Y(r int) float64 {
	return g.bounds.YMin + (g.bounds.YMax-g.bounds.YMin)*float64(r)/float64(g.n-1)
}

// DecisionBoundary renders a heat map of a two-dimensional decision
// function sampled on a resolution x resolution grid. When X is non-nil
// the dataset is drawn on top of the heat map. The decision function
// receives one (x, y) point at a time.
func DecisionBoundary(b Bounds, resolution int, decision func(x, y float64) (float64, error), X mat.Matrix, y []int) (*plot.Plot, error) {
	if resolution < 2 {
		return nil, errors.NewValidationError("resolution", "must be at least 2", resolution)
	}
	if b.XMax <= b.XMin || b.YMax <= b.YMin {
		return nil, errors.NewValidationError("bounds", "max must exceed min on both axes", b)
	}
	if decision == nil {
		return nil, errors.NewValidationError("decision", "must not be nil", nil)
	}

	grid := &decisionGrid{bounds: b, n: resolution, values: make([]float64, resolution*resolution)}
	for r := 0; r < resolution; r++ {
		for c := 0; c < resolution; c++ {
			v, err := decision(grid.X(c), grid.Y(r))
			if err != nil {
				return nil, errors.Wrap(err, "decision function failed on the grid")
			}
			grid.values[r*resolution+c] = v
		}
	}

	p := plot.New()
	p.X.Label.Text = "feature 0"
	p.Y.Label.Text = "feature 1"
	p.Add(plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255)))

	if X != nil {
		series, err := buildClassSeries(X, y)
		if err != nil {
			return nil, err
		}
		addClassSeries(p, series)
	}
	return p, nil
}

// SavePlot writes the plot as PNG, SVG, or PDF, selected by the file
// extension, at the given size in inches.
func SavePlot(p *plot.Plot, widthInches, heightInches float64, path string) error {
	if p == nil {
		return errors.NewValidationError("plot", "must not be nil", nil)
	}
	if widthInches <= 0 || heightInches <= 0 {
		return errors.NewValidationError("size", "must be positive", [2]float64{widthInches, heightInches})
	}
	if err := p.Save(vg.Length(widthInches)*vg.Inch, vg.Length(heightInches)*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save plot")
	}
	return nil
}

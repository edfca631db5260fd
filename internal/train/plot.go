package train

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot draws the error of the accepted steps over the iterations into the given file.
// The file extension defines the format e.g. png or svg.
func Plot(title string, improvements []Improvement, file string) error {
	if len(improvements) == 0 {
		return fmt.Errorf("no improvements to plot")
	}

	points := make(plotter.XYs, 0, len(improvements))
	for _, imp := range improvements {
		points = append(points, plotter.XY{X: float64(imp.Iteration), Y: imp.Error})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "mse"

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("could not create line: %w", err)
	}
	line.StepStyle = plotter.PostStep
	p.Add(line)

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("could not create scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Length(2)
	p.Add(scatter)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, file); err != nil {
		return fmt.Errorf("could not save plot '%s': %w", file, err)
	}
	return nil
}

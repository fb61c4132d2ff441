// Package chartgen renders per-athlete load-velocity diagnostic charts.
package chartgen

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/strengthlab/velomax/schema"
)

// Fixed chart dimensions and resolution. Every artifact is the same size so
// they can be tiled in a review doc without rescaling.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
	chartDPI    = 150
)

// rangeExtension stretches the drawn regression line 10% past the greater
// of the max observed weight and the predicted max.
const rangeExtension = 1.10

// Options configures a single chart render.
type Options struct {
	Threshold   float64 // maximal-effort velocity cutoff, drawn as a rule
	PeriodLabel string  // collection-period subtitle under the athlete name
	Path        string  // destination PNG path
}

// RenderAthleteChart draws the observed sets, the fitted regression line,
// the threshold rule and the predicted-max annotation for one athlete, and
// writes the figure to opts.Path as a PNG.
//
// The model is fit weight-on-velocity, but the figure puts weight on the X
// axis, so the line is drawn by inverting the linear relation:
// v = (w - intercept) / slope.
func RenderAthleteChart(group schema.AthleteGroup, pred schema.Prediction, opts Options) error {
	if len(group.Records) == 0 {
		return fmt.Errorf("athlete %s: no records to chart", pred.Athlete)
	}
	if pred.Slope == 0 {
		// Cannot invert a flat fit; callers filter degenerate groups before
		// charting, so this only guards a malformed Prediction.
		return fmt.Errorf("athlete %s: fitted slope is zero, cannot draw inverted line", pred.Athlete)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s\n%s", pred.Athlete, opts.PeriodLabel)
	p.X.Label.Text = "Weight (lbs)"
	p.Y.Label.Text = "Avg Velocity (m/s)"

	observed := make(plotter.XYs, len(group.Records))
	minWeight := math.Inf(1)
	maxWeight := math.Inf(-1)
	for i, r := range group.Records {
		observed[i].X = r.Weight
		observed[i].Y = r.AvgVelocity
		minWeight = math.Min(minWeight, r.Weight)
		maxWeight = math.Max(maxWeight, r.Weight)
	}

	scatter, err := plotter.NewScatter(observed)
	if err != nil {
		return fmt.Errorf("athlete %s: cannot plot sets: %w", pred.Athlete, err)
	}
	scatter.GlyphStyle.Color = color.RGBA{B: 180, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(4)

	// Regression line across the observed range, extended past the larger
	// of max observed weight and the predicted max.
	endWeight := rangeExtension * math.Max(maxWeight, pred.PredictedMax)
	fitted := plotter.XYs{
		{X: minWeight, Y: (minWeight - pred.Intercept) / pred.Slope},
		{X: endWeight, Y: (endWeight - pred.Intercept) / pred.Slope},
	}
	line, err := plotter.NewLine(fitted)
	if err != nil {
		return fmt.Errorf("athlete %s: cannot plot fit line: %w", pred.Athlete, err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 200, A: 255}

	// Horizontal rule marking the maximal-effort velocity threshold.
	rule, err := plotter.NewLine(plotter.XYs{
		{X: minWeight, Y: opts.Threshold},
		{X: endWeight, Y: opts.Threshold},
	})
	if err != nil {
		return fmt.Errorf("athlete %s: cannot plot threshold: %w", pred.Athlete, err)
	}
	rule.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	rule.LineStyle.Color = color.RGBA{R: 90, G: 90, B: 90, A: 255}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: pred.PredictedMax, Y: opts.Threshold}},
		Labels: []string{fmt.Sprintf("est. max %.1f lbs", pred.PredictedMax)},
	})
	if err != nil {
		return fmt.Errorf("athlete %s: cannot annotate predicted max: %w", pred.Athlete, err)
	}

	p.Add(plotter.NewGrid(), scatter, line, rule, labels)
	p.Legend.Add("observed sets", scatter)
	p.Legend.Add("fitted profile", line)
	p.Legend.Top = true

	return writePNG(p, opts.Path)
}

// writePNG renders the plot onto a fixed-size, fixed-DPI canvas and writes
// it to path.
func writePNG(p *plot.Plot, path string) error {
	canvas := vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(chartDPI),
	)
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create chart file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("cannot write chart file %s: %w", path, err)
	}
	return nil
}

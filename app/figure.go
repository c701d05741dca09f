package app

import (
	"fmt"
	"image/color"
	"io"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/lisa/entity"
	"github.com/AnkushinDaniil/lisa/entity/duration"
	"github.com/AnkushinDaniil/lisa/entity/mode"
	"github.com/AnkushinDaniil/lisa/entity/parameters"
)

var figureColors = map[duration.Duration]color.RGBA{
	duration.SixMonths: {R: 255, G: 127, B: 80, A: 255},
	duration.OneYear:   {R: 135, G: 206, B: 235, A: 255},
	duration.TwoYears:  {R: 60, G: 179, B: 113, A: 255},
	duration.FourYears: {R: 147, G: 112, B: 219, A: 255},
}

func writeFigure(w io.Writer, curves []*entity.Sensitivity, params *parameters.Parameters) error {
	p, err := createFigure(curves, params.Mode)
	if err != nil {
		return err
	}
	width, height := params.Width, params.Height
	if width <= 0 || height <= 0 {
		width, height = parameters.DefaultWidth, parameters.DefaultHeight
	}
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, params.Format.String())
	if err != nil {
		return fmt.Errorf("failed to render figure: %w", err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return err
	}
	log.WithField("bytes", n).Debug("Figure rendered")
	return nil
}

// createFigure builds the static log-log figure. Axis bounds are fixed after
// the plotters are added because Add widens them to the data range.
func createFigure(curves []*entity.Sensitivity, m mode.Mode) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title(curves)
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Vertical.Width = vg.Points(0.5)
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Width = vg.Points(0.5)
	p.Add(grid)

	for _, c := range curves {
		col := figureColors[c.Duration()]
		frequencies, strain := c.Data()
		l, err := plotter.NewLine(xys(frequencies, strain))
		if err != nil {
			return nil, fmt.Errorf("failed to create line: %w", err)
		}
		l.LineStyle.Color = col
		p.Add(l)
		p.Legend.Add(c.Name(), l)

		if m != mode.Components {
			continue
		}
		for _, component := range []struct {
			name   string
			psd    []float64
			dashes []vg.Length
		}{
			{"Instrument noise", c.Instrumental(), []vg.Length{vg.Points(6), vg.Points(3)}},
			{"Galactic confusion noise", c.Confusion(), []vg.Length{vg.Points(1), vg.Points(2)}},
		} {
			l, err := plotter.NewLine(positiveXYs(frequencies, component.psd))
			if err != nil {
				return nil, fmt.Errorf("failed to create line: %w", err)
			}
			l.LineStyle.Color = col
			l.LineStyle.Dashes = component.dashes
			p.Add(l)
			p.Legend.Add(fmt.Sprintf("%s (%s)", component.name, c.Duration()), l)
		}
	}

	p.X.Min, p.X.Max = XMin, XMax
	p.Y.Min, p.Y.Max = YMin, YMax
	return p, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	return pts
}

func positiveXYs(x, psd []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if psd[i] > 0 {
			pts = append(pts, plotter.XY{X: x[i], Y: math.Sqrt(psd[i])})
		}
	}
	return pts
}

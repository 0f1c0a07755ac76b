package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/c-m0th/star-audio-visualization/energy"
)

// maxBeatTicks caps the number of beat markers drawn; longer tracks get a
// thinned grid instead of an unreadable one.
const maxBeatTicks = 256

// WriteEnergyPlot writes a PNG chart of the track's energy envelope with a
// bpm beat grid overlaid. A non-positive bpm skips the grid.
func WriteEnergyPlot(tr *energy.Track, bpm float64, path string) error {
	if tr.Len() == 0 {
		return fmt.Errorf("report: refusing to chart an empty track")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("vocal-band energy, %.1f BPM grid", bpm)
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "normalized energy"
	p.Y.Min = 0
	p.Y.Max = 1.05

	pts := make(plotter.XYs, tr.Len())
	dt := tr.Duration / float64(tr.Len())
	for i, s := range tr.Samples {
		pts[i].X = float64(i) * dt
		pts[i].Y = s
	}
	envLine, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: energy line: %w", err)
	}
	envLine.Color = color.RGBA{B: 180, A: 255}
	envLine.Width = vg.Points(1)
	p.Add(plotter.NewGrid(), envLine)

	if bpm > 0 {
		if err := addBeatGrid(p, tr.Duration, bpm); err != nil {
			return err
		}
	}

	if err := p.Save(12*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save chart: %w", err)
	}
	return nil
}

// addBeatGrid draws a thin vertical marker on every beat, thinned to at
// most maxBeatTicks markers.
func addBeatGrid(p *plot.Plot, duration, bpm float64) error {
	beatDur := 60 / bpm
	n := int(duration / beatDur)
	stride := 1
	if n > maxBeatTicks {
		stride = n/maxBeatTicks + 1
	}
	for b := 0; b <= n; b += stride {
		x := float64(b) * beatDur
		tick, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: 1.05}})
		if err != nil {
			return fmt.Errorf("report: beat marker: %w", err)
		}
		tick.Color = color.RGBA{R: 220, G: 80, B: 80, A: 255}
		tick.Width = vg.Points(0.5)
		p.Add(tick)
	}
	return nil
}

package render

import (
	"math"

	"github.com/c-m0th/star-audio-visualization/energy"
	"github.com/c-m0th/star-audio-visualization/starfield"
)

// Style carries the visual constants of a render: the palette and the star
// radius response.
type Style struct {
	Background RGB
	StarColor  RGB
	MinRadius  float64
	MaxRadius  float64
	PulseGain  float64 // scales energy before it shifts a star's pulse phase
}

// StarRadius returns the radius of a star with the given pulse phase at
// the given energy. The radius breathes between MinRadius and MaxRadius on
// a sine whose phase the energy pushes forward, so loud frames make the
// whole field shimmer. At zero energy the radius depends on the star's own
// phase alone.
func (s Style) StarRadius(phase, energy float64) float64 {
	pulse := 0.5 + 0.5*math.Sin(phase+energy*s.PulseGain)
	return s.MinRadius + (s.MaxRadius-s.MinRadius)*pulse
}

// Renderer draws a simulation against an energy track. Every FrameAt call
// advances the simulation by one frame and rasterizes the result, so
// frames must be requested in forward order.
type Renderer struct {
	sim   *starfield.Simulation
	track *energy.Track
	style Style
	frame *Frame
}

// NewRenderer builds a renderer sized to the simulation's canvas. A nil
// track renders as silence.
func NewRenderer(sim *starfield.Simulation, track *energy.Track, style Style) *Renderer {
	p := sim.Params()
	return &Renderer{sim: sim, track: track, style: style, frame: NewFrame(p.Width, p.Height)}
}

// FrameAt advances the simulation to time t and returns the rendered RGB24
// buffer. The buffer is reused between calls; consume it before requesting
// the next frame.
func (r *Renderer) FrameAt(t float64) []byte {
	var e float64
	if r.track != nil {
		e = r.track.SampleAt(t)
	}
	r.sim.Advance(t, e)
	r.draw(e)
	return r.frame.Pix
}

// draw clears the canvas and paints each group: stars first, then that
// group's connection lines over them.
func (r *Renderer) draw(energy float64) {
	r.frame.Fill(r.style.Background)
	for _, g := range r.sim.Groups {
		for i := range g.Stars {
			x, y := g.StarPosition(i)
			radius := r.style.StarRadius(g.Stars[i].PulsePhase, energy)
			FillCircle(r.frame, x, y, radius, r.style.StarColor)
		}
		for _, c := range g.Connections {
			if c.Opacity <= 0 {
				continue
			}
			x0, y0 := g.StarPosition(c.A)
			x1, y1 := g.StarPosition(c.B)
			BlendLine(r.frame, x0, y0, x1, y1, r.style.StarColor, int(c.Opacity))
		}
	}
}

package starfield

import (
	"math"

	"github.com/c-m0th/star-audio-visualization/beat"
)

// Params fixes the geometry and motion constants shared by every group of
// a simulation.
type Params struct {
	Width  int // canvas width in pixels
	Height int // canvas height in pixels

	StarsPerGroup int     // stars rolled on every reset
	ConnectProb   float64 // chance an unordered star pair gets a connection

	BaseSpeed float64 // outward speed at the canvas center, px per frame
	MaxSpeed  float64 // outward speed at one full diagonal out, px per frame

	ResetDistance float64 // upper bound of the randomized spawn distance
	Margin        float64 // off-canvas slack before a group resets

	Clock       beat.Clock // beat parity source for connection toggling
	OpacityStep float64    // per-frame connection fade delta
}

// Diagonal returns the canvas diagonal, the distance scale of the speed
// curve.
func (p *Params) Diagonal() float64 {
	return math.Hypot(float64(p.Width), float64(p.Height))
}

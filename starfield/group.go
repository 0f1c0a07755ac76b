package starfield

import (
	"math"
	"math/rand"
)

// Group is an independent cluster of stars travelling outward from the
// canvas center along a fixed heading.
type Group struct {
	ID       int
	Heading  float64 // radians
	Distance float64 // px from the canvas center
	Speed    float64 // px per frame, recomputed every update

	Stars       []Star
	Connections []Connection

	params *Params
	rng    *rand.Rand
}

// NewGroup creates a group and immediately rolls its first layout.
func NewGroup(id int, params *Params, rng *rand.Rand) *Group {
	g := &Group{ID: id, params: params, rng: rng}
	g.Reset()
	return g
}

// Reset re-randomizes the group in place: a fresh heading, a spawn
// distance near the center, a new star layout and a new connection set.
// Every unordered star pair connects with probability ConnectProb, and all
// connections start inactive and fully transparent.
func (g *Group) Reset() {
	g.Heading = g.rng.Float64() * 2 * math.Pi
	g.Distance = g.rng.Float64() * g.params.ResetDistance
	g.Speed = g.params.BaseSpeed

	g.Stars = g.Stars[:0]
	for i := 0; i < g.params.StarsPerGroup; i++ {
		g.Stars = append(g.Stars, Star{
			AngleOffset: g.rng.Float64()*2 - 1,
			DistScale:   1 + g.rng.Float64(),
			PulsePhase:  g.rng.Float64() * 2 * math.Pi,
		})
	}

	g.Connections = g.Connections[:0]
	for i := 0; i < len(g.Stars); i++ {
		for j := i + 1; j < len(g.Stars); j++ {
			if g.rng.Float64() < g.params.ConnectProb {
				g.Connections = append(g.Connections, Connection{A: i, B: j})
			}
		}
	}
}

// Update advances the group one frame to time t: speed follows the cubic
// distance curve, the group drifts outward, and connection fades follow the
// beat parity at t. A group that has left the canvas (plus margin) resets
// instead and skips the rest of the frame.
//
// The energy argument is accepted for symmetry with the renderer but does
// not influence motion or connection timing; energy only modulates star
// radii at draw time.
func (g *Group) Update(t, energy float64) {
	ratio := g.Distance / g.params.Diagonal()
	g.Speed = g.params.BaseSpeed + (g.params.MaxSpeed-g.params.BaseSpeed)*ratio*ratio*ratio
	g.Distance += g.Speed

	if x, y := g.Center(); g.offCanvas(x, y) {
		g.Reset()
		return
	}

	even := g.params.Clock.EvenBeat(t)
	for i := range g.Connections {
		c := &g.Connections[i]
		if even && !c.Active {
			c.Active = true
			c.Opacity = 0
		} else if !even && c.Active {
			c.Active = false
		}
		if c.Active {
			c.Opacity = math.Min(255, c.Opacity+g.params.OpacityStep)
		} else {
			c.Opacity = math.Max(0, c.Opacity-g.params.OpacityStep)
		}
	}
}

// Center returns the group's position: the canvas center displaced by
// Distance along Heading.
func (g *Group) Center() (x, y float64) {
	x = float64(g.params.Width)/2 + math.Cos(g.Heading)*g.Distance
	y = float64(g.params.Height)/2 + math.Sin(g.Heading)*g.Distance
	return x, y
}

// StarPosition returns the canvas position of the i-th star: the group
// center displaced by the star's own angular and distance offsets.
func (g *Group) StarPosition(i int) (x, y float64) {
	s := g.Stars[i]
	angle := g.Heading + s.AngleOffset
	dist := g.Distance * s.DistScale
	cx, cy := g.Center()
	return cx + math.Cos(angle)*dist, cy + math.Sin(angle)*dist
}

// offCanvas reports whether the point lies beyond the canvas plus margin.
func (g *Group) offCanvas(x, y float64) bool {
	m := g.params.Margin
	return x < -m || x > float64(g.params.Width)+m ||
		y < -m || y > float64(g.params.Height)+m
}

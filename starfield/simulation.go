package starfield

import "math/rand"

// Simulation owns a fixed set of groups and advances them together. The
// group count never changes after construction; groups that leave the
// canvas are re-rolled in place rather than removed.
type Simulation struct {
	Groups []*Group

	params Params
}

// NewSimulation builds count groups with layouts drawn from rng. The rng
// is retained for every later reset, so a seeded source makes whole runs
// reproducible. Panics on a non-positive canvas; that is a programming
// error, not an input condition.
func NewSimulation(count int, params Params, rng *rand.Rand) *Simulation {
	if params.Width <= 0 || params.Height <= 0 {
		panic("starfield: canvas must be positive")
	}
	sim := &Simulation{params: params, Groups: make([]*Group, count)}
	for i := range sim.Groups {
		sim.Groups[i] = NewGroup(i, &sim.params, rng)
	}
	return sim
}

// Advance steps every group one frame to time t. The energy argument is
// passed through to the groups, which accept and ignore it.
func (sim *Simulation) Advance(t, energy float64) {
	for _, g := range sim.Groups {
		g.Update(t, energy)
	}
}

// Params returns the shared simulation parameters.
func (sim *Simulation) Params() Params { return sim.params }

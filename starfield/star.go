package starfield

// Star is one point of a group, placed relative to the group's heading and
// distance. Its fields are rolled at reset and never change between resets.
type Star struct {
	AngleOffset float64 // radians around the group heading, in [-1,1]
	DistScale   float64 // multiplier on the group distance, in [1,2]
	PulsePhase  float64 // individual phase of the breathing effect, in [0,2π)
}

// Connection links two stars of a group by index, with A < B. Which pairs
// are linked is fixed at reset; Active and Opacity carry the beat-keyed
// fade state from frame to frame.
type Connection struct {
	A, B    int
	Opacity float64 // current line alpha, clamped to [0,255]
	Active  bool
}

package beat

import "fmt"

// Clock derives the timing quantities the animation consumes from a tempo
// in beats per minute. The zero Clock is invalid; use NewClock.
type Clock struct {
	BPM float64
}

// NewClock returns a Clock for the given tempo.
func NewClock(bpm float64) (Clock, error) {
	if bpm <= 0 {
		return Clock{}, fmt.Errorf("beat: bpm must be positive, got %g", bpm)
	}
	return Clock{BPM: bpm}, nil
}

// Duration returns the length of one beat in seconds.
func (c Clock) Duration() float64 { return 60 / c.BPM }

// Index returns how many whole beats have elapsed at time t. Times at or
// before zero clamp to beat zero.
func (c Clock) Index(t float64) int {
	if t <= 0 {
		return 0
	}
	return int(t / c.Duration())
}

// EvenBeat reports whether t falls on an even beat index. Connections
// engage on even beats and release on odd ones, globally in lockstep.
func (c Clock) EvenBeat(t float64) bool { return c.Index(t)%2 == 0 }

// OpacityStep returns the per-frame opacity change that walks the full
// 0-255 range in exactly one beat at the given frame rate.
func (c Clock) OpacityStep(fps int) float64 {
	return 255 * c.BPM / (60 * float64(fps))
}

package energy

// Track is a normalized energy sequence sampled evenly across an audio
// track. Samples lie in [0,1] and Duration is the audio length in seconds.
// A Track is read-only after construction and safe for concurrent lookups.
type Track struct {
	Samples  []float64
	Duration float64
}

// Len returns the number of energy samples.
func (tr *Track) Len() int { return len(tr.Samples) }

// Rate returns the envelope sampling rate in samples per second, or 0 for
// an empty track.
func (tr *Track) Rate() float64 {
	if len(tr.Samples) == 0 || tr.Duration <= 0 {
		return 0
	}
	return float64(len(tr.Samples)) / tr.Duration
}

// SampleAt returns the energy at time t in seconds. The timestamp maps to
// sample floor(t*N/D) clamped to [0, N-1], so any real t is answered: times
// before the start read the first sample, times past the end the last.
// An empty track always yields 0.
func (tr *Track) SampleAt(t float64) float64 {
	n := len(tr.Samples)
	if n == 0 || tr.Duration <= 0 {
		return 0
	}
	// Clamp before the int conversion: converting a float64 beyond the
	// int range is implementation-defined.
	pos := t * float64(n) / tr.Duration
	if !(pos >= 0) {
		return tr.Samples[0]
	}
	if pos >= float64(n) {
		return tr.Samples[n-1]
	}
	return tr.Samples[int(pos)]
}

package beat

import (
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/c-m0th/star-audio-visualization/energy"
)

// Tempo search window. Lags outside 60-180 BPM are ignored, which covers
// the material this renderer targets and keeps octave errors down.
const (
	MinBPM = 60.0
	MaxBPM = 180.0
)

// minEnvelopeLen is the shortest envelope worth voting on. Below this the
// autocorrelation has too few periods to separate tempo from noise.
const minEnvelopeLen = 64

// Estimate guesses the tempo of a track from the periodicity of its energy
// envelope: rises in band energy mark onsets, and the strongest repeat
// interval of the onset signal inside the search window wins. It returns
// ok=false when the envelope is too short or too flat to vote; callers
// should then keep their configured BPM.
func Estimate(tr *energy.Track) (bpm float64, ok bool) {
	n := tr.Len()
	if n < minEnvelopeLen || tr.Duration <= 0 {
		return 0, false
	}
	rate := tr.Rate()

	// Rectified first difference of the envelope.
	onset := make([]float64, n-1)
	for i := 1; i < n; i++ {
		if d := tr.Samples[i] - tr.Samples[i-1]; d > 0 {
			onset[i-1] = d
		}
	}
	if floats.Max(onset) == 0 {
		return 0, false
	}
	center(onset)

	ac := autocorrelate(onset)

	minLag := int(rate * 60 / MaxBPM)
	maxLag := int(rate * 60 / MinBPM)
	if minLag < 1 {
		minLag = 1
	}
	if maxLag >= len(ac) {
		maxLag = len(ac) - 1
	}
	if minLag >= maxLag {
		return 0, false
	}

	best := minLag
	for lag := minLag + 1; lag <= maxLag; lag++ {
		if ac[lag] > ac[best] {
			best = lag
		}
	}
	if ac[best] <= 0 {
		return 0, false
	}
	return 60 * rate / float64(best), true
}

// center removes the mean so the autocorrelation is not dominated by the
// DC offset of the onset signal.
func center(x []float64) {
	mean := floats.Sum(x) / float64(len(x))
	for i := range x {
		x[i] -= mean
	}
}

// autocorrelate computes the autocorrelation of x via the FFT, zero-padded
// to avoid circular wrap-around.
func autocorrelate(x []float64) []float64 {
	size := nextPow2(2 * len(x))
	padded := make([]float64, size)
	copy(padded, x)

	spectrum := fft.FFTReal(padded)
	for i, v := range spectrum {
		re, im := real(v), imag(v)
		spectrum[i] = complex(re*re+im*im, 0)
	}
	corr := fft.IFFT(spectrum)

	out := make([]float64, len(x))
	for i := range out {
		out[i] = real(corr[i])
	}
	return out
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}

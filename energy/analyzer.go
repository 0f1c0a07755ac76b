package energy

import (
	"fmt"
	"math"

	"github.com/r9y9/gossp/stft"
	"gonum.org/v1/gonum/floats"
)

// Default analysis parameters. The hop fixes the envelope resolution
// (sampleRate/512 frames per second), the band brackets the vocal range.
const (
	DefaultHop      = 512
	DefaultFFTSize  = 2048
	DefaultBandLow  = 300.0
	DefaultBandHigh = 3000.0
)

// Analyzer measures the band-limited spectral energy of a waveform.
type Analyzer struct {
	Hop      int     // samples between successive frames
	FFTSize  int     // window and FFT length per frame
	BandLow  float64 // lower band edge in Hz
	BandHigh float64 // upper band edge in Hz
}

// NewAnalyzer returns an Analyzer with the default vocal-band parameters.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Hop:      DefaultHop,
		FFTSize:  DefaultFFTSize,
		BandLow:  DefaultBandLow,
		BandHigh: DefaultBandHigh,
	}
}

// Analyze computes the normalized band-energy envelope of samples recorded
// at sampleRate. The waveform is expected mono in [-1,1]. Empty input
// yields an empty track; a silent waveform yields an all-zero envelope.
func (a *Analyzer) Analyze(samples []float64, sampleRate int) (*Track, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("energy: sample rate must be positive, got %d", sampleRate)
	}
	if a.Hop <= 0 || a.FFTSize <= 0 {
		return nil, fmt.Errorf("energy: analysis sizes must be positive, got hop=%d fft=%d", a.Hop, a.FFTSize)
	}
	if a.BandLow < 0 || a.BandHigh < a.BandLow {
		return nil, fmt.Errorf("energy: invalid band %g-%g Hz", a.BandLow, a.BandHigh)
	}
	if len(samples) == 0 {
		return &Track{}, nil
	}

	duration := float64(len(samples)) / float64(sampleRate)

	// The STFT needs at least one full window.
	buf := samples
	if len(buf) < a.FFTSize {
		buf = make([]float64, a.FFTSize)
		copy(buf, samples)
	}

	s := stft.New(a.Hop, a.FFTSize)
	spectrum := s.STFT(buf)

	lo, hi := a.bandBins(sampleRate)
	env := make([]float64, len(spectrum))
	for i, frame := range spectrum {
		var e float64
		for k := lo; k <= hi && k < len(frame); k++ {
			re, im := real(frame[k]), imag(frame[k])
			e += re*re + im*im
		}
		env[i] = e
	}
	normalize(env)

	return &Track{Samples: env, Duration: duration}, nil
}

// bandBins converts the band edges to an inclusive FFT bin range.
func (a *Analyzer) bandBins(sampleRate int) (lo, hi int) {
	binHz := float64(sampleRate) / float64(a.FFTSize)
	lo = int(math.Ceil(a.BandLow / binHz))
	hi = int(math.Floor(a.BandHigh / binHz))
	if nyquist := a.FFTSize / 2; hi > nyquist {
		hi = nyquist
	}
	if lo < 0 {
		lo = 0
	}
	return lo, hi
}

// normalize scales env so its loudest frame is exactly 1. A silent
// envelope is left all-zero rather than divided by zero. Division, not
// reciprocal multiplication, keeps every sample inside [0,1].
func normalize(env []float64) {
	if len(env) == 0 {
		return
	}
	peak := floats.Max(env)
	if peak <= 0 {
		return
	}
	for i := range env {
		env[i] /= peak
	}
}

package beat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-m0th/star-audio-visualization/energy"
)

// clickTrack builds an envelope with a full-scale spike every period
// samples at the given envelope rate.
func clickTrack(n, period int, rate float64) *energy.Track {
	samples := make([]float64, n)
	for i := 0; i < n; i += period {
		samples[i] = 1
	}
	return &energy.Track{Samples: samples, Duration: float64(n) / rate}
}

func TestEstimateClickTrack(t *testing.T) {
	t.Parallel()

	// 86 envelope samples per second, a click every 43 samples: 120 BPM.
	tr := clickTrack(1024, 43, 86)

	bpm, ok := Estimate(tr)
	require.True(t, ok)
	assert.InDelta(t, 120.0, bpm, 2.0)
}

func TestEstimateSlowClickTrack(t *testing.T) {
	t.Parallel()

	// A click every second at 86 samples per second: 60 BPM, the edge of
	// the search window.
	tr := clickTrack(2048, 86, 86)

	bpm, ok := Estimate(tr)
	require.True(t, ok)
	assert.InDelta(t, 60.0, bpm, 2.0)
}

func TestEstimateRejectsFlatEnvelopes(t *testing.T) {
	t.Parallel()

	t.Run("silence", func(t *testing.T) {
		tr := &energy.Track{Samples: make([]float64, 512), Duration: 6}
		_, ok := Estimate(tr)
		assert.False(t, ok)
	})

	t.Run("constant level", func(t *testing.T) {
		samples := make([]float64, 512)
		for i := range samples {
			samples[i] = 0.5
		}
		tr := &energy.Track{Samples: samples, Duration: 6}
		_, ok := Estimate(tr)
		assert.False(t, ok)
	})
}

func TestEstimateRejectsShortEnvelopes(t *testing.T) {
	t.Parallel()

	tr := clickTrack(32, 8, 86)
	_, ok := Estimate(tr)
	assert.False(t, ok)

	_, ok = Estimate(&energy.Track{})
	assert.False(t, ok)
}

func TestEstimateRejectsZeroDuration(t *testing.T) {
	t.Parallel()

	tr := clickTrack(1024, 43, 86)
	tr.Duration = 0
	_, ok := Estimate(tr)
	assert.False(t, ok)
}

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameFillAndSet(t *testing.T) {
	t.Parallel()

	f := NewFrame(4, 3)
	require.Len(t, f.Pix, 4*3*3)

	bg := RGB{R: 10, G: 20, B: 30}
	f.Fill(bg)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			assert.Equal(t, bg, f.At(x, y))
		}
	}

	white := RGB{255, 255, 255}
	f.Set(1, 2, white)
	assert.Equal(t, white, f.At(1, 2))
	assert.Equal(t, bg, f.At(2, 1), "neighbors untouched")

	// Row-major packing: pixel (1,2) starts at (2*4+1)*3.
	i := (2*4 + 1) * 3
	assert.Equal(t, []byte{255, 255, 255}, f.Pix[i:i+3])
}

func TestFrameSetDropsOutOfBounds(t *testing.T) {
	t.Parallel()

	f := NewFrame(2, 2)
	white := RGB{255, 255, 255}

	f.Set(-1, 0, white)
	f.Set(0, -1, white)
	f.Set(2, 0, white)
	f.Set(0, 2, white)

	for _, b := range f.Pix {
		assert.Zero(t, b)
	}
}

func TestFrameBlend(t *testing.T) {
	t.Parallel()

	white := RGB{255, 255, 255}

	t.Run("full alpha replaces", func(t *testing.T) {
		f := NewFrame(2, 2)
		f.Blend(0, 0, white, 255)
		assert.Equal(t, white, f.At(0, 0))
	})

	t.Run("zero alpha is a no-op", func(t *testing.T) {
		f := NewFrame(2, 2)
		f.Blend(0, 0, white, 0)
		assert.Equal(t, RGB{}, f.At(0, 0))
	})

	t.Run("half alpha lands midway", func(t *testing.T) {
		f := NewFrame(2, 2)
		f.Blend(0, 0, white, 128)
		got := f.At(0, 0)
		assert.InDelta(t, 128, int(got.R), 1)
		assert.InDelta(t, 128, int(got.G), 1)
		assert.InDelta(t, 128, int(got.B), 1)
	})

	t.Run("alpha above 255 clamps", func(t *testing.T) {
		f := NewFrame(2, 2)
		f.Blend(0, 0, white, 400)
		assert.Equal(t, white, f.At(0, 0))
	})

	t.Run("out of bounds is dropped", func(t *testing.T) {
		f := NewFrame(2, 2)
		f.Blend(-1, 5, white, 255)
		for _, b := range f.Pix {
			assert.Zero(t, b)
		}
	})
}

func TestNewFrameRejectsBadSize(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewFrame(0, 10) })
	assert.Panics(t, func() { NewFrame(10, -1) })
}

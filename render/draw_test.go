package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillCircleCoverage(t *testing.T) {
	t.Parallel()

	f := NewFrame(21, 21)
	white := RGB{255, 255, 255}
	FillCircle(f, 10, 10, 3, white)

	assert.Equal(t, white, f.At(10, 10), "center")
	assert.Equal(t, white, f.At(13, 10), "on the radius")
	assert.Equal(t, white, f.At(12, 12), "inside, off-axis")
	assert.Equal(t, RGB{}, f.At(14, 10), "just outside")
	assert.Equal(t, RGB{}, f.At(13, 13), "outside the corner")
}

func TestFillCircleZeroRadius(t *testing.T) {
	t.Parallel()

	f := NewFrame(5, 5)
	FillCircle(f, 2.9, 2.1, 0.8, RGB{255, 0, 0})

	assert.Equal(t, RGB{255, 0, 0}, f.At(2, 2), "truncated center pixel")
	count := 0
	for i := 0; i < len(f.Pix); i += 3 {
		if f.Pix[i] != 0 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestFillCircleClipsOffCanvas(t *testing.T) {
	t.Parallel()

	f := NewFrame(8, 8)
	assert.NotPanics(t, func() {
		FillCircle(f, -20, -20, 5, RGB{255, 255, 255})
		FillCircle(f, 100, 4, 5, RGB{255, 255, 255})
	})
	for _, b := range f.Pix {
		assert.Zero(t, b)
	}
}

func TestFillCircleOverhangsEdge(t *testing.T) {
	t.Parallel()

	f := NewFrame(8, 8)
	FillCircle(f, 0, 4, 3, RGB{255, 255, 255})

	assert.Equal(t, RGB{255, 255, 255}, f.At(0, 4), "on-canvas part drawn")
	assert.Equal(t, RGB{255, 255, 255}, f.At(2, 4))
}

func TestBlendLineHorizontal(t *testing.T) {
	t.Parallel()

	f := NewFrame(12, 12)
	white := RGB{255, 255, 255}
	BlendLine(f, 2.4, 5.7, 8.9, 5.2, white, 255)

	for x := 2; x <= 8; x++ {
		assert.Equal(t, white, f.At(x, 5), "x=%d", x)
	}
	assert.Equal(t, RGB{}, f.At(1, 5))
	assert.Equal(t, RGB{}, f.At(9, 5))
	assert.Equal(t, RGB{}, f.At(4, 4))
}

func TestBlendLineDiagonal(t *testing.T) {
	t.Parallel()

	f := NewFrame(10, 10)
	white := RGB{255, 255, 255}
	BlendLine(f, 0, 0, 7, 7, white, 255)

	for i := 0; i <= 7; i++ {
		assert.Equal(t, white, f.At(i, i), "pixel (%d,%d)", i, i)
	}
}

func TestBlendLineAccumulates(t *testing.T) {
	t.Parallel()

	f := NewFrame(10, 10)
	white := RGB{255, 255, 255}

	BlendLine(f, 0, 3, 9, 3, white, 100)
	once := f.At(5, 3).R
	BlendLine(f, 0, 3, 9, 3, white, 100)
	twice := f.At(5, 3).R

	assert.Greater(t, twice, once, "repeated blending brightens")
	assert.Less(t, twice, uint8(255))
}

func TestBlendLineOffCanvasEndpoints(t *testing.T) {
	t.Parallel()

	f := NewFrame(6, 6)
	assert.NotPanics(t, func() {
		BlendLine(f, -10, 3, 15, 3, RGB{255, 255, 255}, 200)
	})
	assert.NotZero(t, f.At(3, 3).R, "the on-canvas stretch is drawn")
}

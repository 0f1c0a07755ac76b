package energy

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// WriteStripPNG renders the track as a grayscale strip, one column per
// sample. Column height and brightness both follow the energy, so loud
// passages read as tall bright blocks. Meant for eyeballing an envelope
// before committing to a long render.
func (tr *Track) WriteStripPNG(path string, height int) error {
	if height <= 0 {
		return fmt.Errorf("energy: strip height must be positive, got %d", height)
	}
	n := len(tr.Samples)
	if n == 0 {
		return fmt.Errorf("energy: refusing to draw an empty track")
	}

	img := image.NewGray(image.Rect(0, 0, n, height))
	for x, s := range tr.Samples {
		bar := int(s * float64(height))
		// Keep quiet frames visible with a brightness floor.
		level := color.Gray{Y: uint8(55 + 200*s)}
		for y := height - 1; y >= height-bar; y-- {
			img.SetGray(x, y, level)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("energy: create strip image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("energy: encode strip image: %w", err)
	}
	return f.Close()
}

package energy

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStripPNG(t *testing.T) {
	t.Parallel()

	tr := &Track{Samples: []float64{0, 0.25, 0.5, 0.75, 1}, Duration: 5}
	path := filepath.Join(t.TempDir(), "strip.png")
	require.NoError(t, tr.WriteStripPNG(path, 64))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, tr.Len(), bounds.Dx(), "one column per sample")
	assert.Equal(t, 64, bounds.Dy())
}

func TestWriteStripPNGValidation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tr := &Track{Samples: []float64{0.5}, Duration: 1}
	assert.Error(t, tr.WriteStripPNG(filepath.Join(dir, "bad.png"), 0))

	var empty Track
	assert.Error(t, empty.WriteStripPNG(filepath.Join(dir, "empty.png"), 32))
}

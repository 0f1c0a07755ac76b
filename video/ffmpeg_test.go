package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderArgs(t *testing.T) {
	t.Parallel()

	e := &Encoder{
		Width:     1920,
		Height:    1080,
		FPS:       30,
		Bitrate:   "8000k",
		AudioPath: "song.wav",
	}
	args := e.Args("out.mp4")

	want := []string{
		"-hide_banner",
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", "1920x1080",
		"-framerate", "30",
		"-i", "-",
		"-i", "song.wav",
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-b:v", "8000k",
		"-c:a", "aac",
		"-shortest",
		"out.mp4",
	}
	assert.Equal(t, want, args)
}

func TestEncoderFrameBytes(t *testing.T) {
	t.Parallel()

	e := &Encoder{Width: 64, Height: 48}
	assert.Equal(t, 64*48*3, e.FrameBytes())
}

type fakeSource struct{ size int }

func (s fakeSource) FrameAt(float64) []byte { return make([]byte, s.size) }

func TestEncodeValidation(t *testing.T) {
	t.Parallel()

	src := fakeSource{size: 12}

	t.Run("bad geometry", func(t *testing.T) {
		e := &Encoder{Width: 0, Height: 1080, FPS: 30, Bitrate: "8000k"}
		err := e.Encode(src, 10, "out.mp4")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "geometry")
	})

	t.Run("bad fps", func(t *testing.T) {
		e := &Encoder{Width: 2, Height: 2, FPS: 0, Bitrate: "8000k"}
		assert.Error(t, e.Encode(src, 10, "out.mp4"))
	})

	t.Run("bad duration", func(t *testing.T) {
		e := &Encoder{Width: 2, Height: 2, FPS: 30, Bitrate: "8000k"}
		assert.Error(t, e.Encode(src, 0, "out.mp4"))
		assert.Error(t, e.Encode(src, -3, "out.mp4"))
	})

	t.Run("missing binary", func(t *testing.T) {
		e := &Encoder{
			FFmpegPath: "definitely-not-an-encoder-binary",
			Width:      2, Height: 2, FPS: 30, Bitrate: "8000k",
		}
		err := e.Encode(src, 0.1, "out.mp4")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start")
	})
}

func TestLastLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"single", "single"},
		{"first\nsecond\nthird\n", "third"},
		{"first\n  padded last  \n\n", "padded last"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lastLine([]byte(tc.in)), "input %q", tc.in)
	}
}

func TestFrameTotals(t *testing.T) {
	t.Parallel()

	// 2.5 s at 30 fps is 75 frames; the last one is sampled strictly
	// before the end of the audio.
	e := &Encoder{Width: 2, Height: 2, FPS: 30, Bitrate: "8000k"}
	total := int(2.5 * float64(e.FPS))
	assert.Equal(t, 75, total)
	assert.Less(t, float64(total-1)/float64(e.FPS), 2.5)
}

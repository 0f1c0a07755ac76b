package video

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
)

// FrameSource supplies one RGB24 pixel buffer per requested timestamp.
// Implementations may reuse the returned slice between calls; the encoder
// writes it out before asking for the next frame.
type FrameSource interface {
	FrameAt(t float64) []byte
}

// Encoder drives an external ffmpeg process: raw frames go in on stdin,
// the source audio is muxed in as a second input, and an H.264/AAC file
// comes out. The output ends with whichever stream is shorter.
type Encoder struct {
	FFmpegPath string // binary to run; "ffmpeg" when empty
	Width      int
	Height     int
	FPS        int
	Bitrate    string // target video bitrate, e.g. "8000k"
	AudioPath  string // audio file muxed into the output

	// Progress, when set, is called after each frame is handed to ffmpeg.
	Progress func(done, total int)
}

// Args returns the ffmpeg argument list for writing to outPath. Split out
// of Encode so the command line is testable without spawning anything.
func (e *Encoder) Args(outPath string) []string {
	return []string{
		"-hide_banner",
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", e.Width, e.Height),
		"-framerate", strconv.Itoa(e.FPS),
		"-i", "-",
		"-i", e.AudioPath,
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-b:v", e.Bitrate,
		"-c:a", "aac",
		"-shortest",
		outPath,
	}
}

// FrameBytes returns the size every frame buffer must have.
func (e *Encoder) FrameBytes() int { return e.Width * e.Height * 3 }

// Encode pulls duration*FPS frames from src at their timestamps and feeds
// them to ffmpeg, blocking until the file is fully written.
func (e *Encoder) Encode(src FrameSource, duration float64, outPath string) error {
	if e.Width <= 0 || e.Height <= 0 || e.FPS <= 0 {
		return fmt.Errorf("video: bad geometry %dx%d at %d fps", e.Width, e.Height, e.FPS)
	}
	if duration <= 0 {
		return fmt.Errorf("video: duration must be positive, got %g", duration)
	}
	total := int(duration * float64(e.FPS))
	if total < 1 {
		total = 1
	}

	bin := e.FFmpegPath
	if bin == "" {
		bin = "ffmpeg"
	}
	cmd := exec.Command(bin, e.Args(outPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("video: stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("video: start %s: %w", bin, err)
	}

	feedErr := func() error {
		defer stdin.Close()
		want := e.FrameBytes()
		for i := 0; i < total; i++ {
			frame := src.FrameAt(float64(i) / float64(e.FPS))
			if len(frame) != want {
				return fmt.Errorf("video: frame %d is %d bytes, want %d", i, len(frame), want)
			}
			if _, err := stdin.Write(frame); err != nil {
				return fmt.Errorf("video: feed frame %d/%d: %w", i, total, err)
			}
			if e.Progress != nil {
				e.Progress(i+1, total)
			}
		}
		return nil
	}()

	// Wait before touching stderr; ffmpeg owns the buffer until it exits.
	waitErr := cmd.Wait()

	if feedErr != nil {
		if waitErr != nil {
			return fmt.Errorf("%w (ffmpeg: %s)", feedErr, lastLine(stderr.Bytes()))
		}
		return feedErr
	}
	if waitErr != nil {
		return fmt.Errorf("video: ffmpeg: %w (%s)", waitErr, lastLine(stderr.Bytes()))
	}
	return nil
}

// lastLine trims process output to its final non-empty line, which is
// where ffmpeg states what went wrong.
func lastLine(b []byte) string {
	lines := bytes.Split(bytes.TrimSpace(b), []byte("\n"))
	return string(bytes.TrimSpace(lines[len(lines)-1]))
}

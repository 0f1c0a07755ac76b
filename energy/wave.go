package energy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
)

// ErrUnsupportedFormat is returned by LoadAudio for file extensions other
// than .wav and .flac.
var ErrUnsupportedFormat = errors.New("energy: unsupported audio format")

// LoadAudio reads an audio file as a mono waveform in [-1,1] and reports
// its sample rate. The decoder is picked by file extension.
func LoadAudio(path string) (samples []float64, sampleRate int, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return LoadWav(path)
	case ".flac":
		return LoadFlac(path)
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadWav decodes a wav file, mixing stereo down to mono.
func LoadWav(path string) ([]float64, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("energy: open wav: %w", err)
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, fmt.Errorf("energy: decode wav %s: %w", path, err)
	}
	defer stream.Close()

	out := make([]float64, 0, stream.Len())
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, 0.5*(buf[i][0]+buf[i][1]))
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("energy: read wav %s: %w", path, err)
	}
	return out, int(format.SampleRate), nil
}

// LoadFlac decodes a flac file, mixing all channels down to mono.
func LoadFlac(path string) ([]float64, int, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("energy: decode flac %s: %w", path, err)
	}
	defer stream.Close()

	info := stream.Info
	nch := int(info.NChannels)
	if nch < 1 {
		return nil, 0, fmt.Errorf("energy: flac %s reports no channels", path)
	}
	scale := 1.0 / float64(int64(1)<<(info.BitsPerSample-1))

	out := make([]float64, 0, info.NSamples)
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("energy: read flac %s: %w", path, err)
		}
		n := len(frame.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			var mix float64
			for ch := 0; ch < nch; ch++ {
				mix += float64(frame.Subframes[ch].Samples[i]) * scale
			}
			out = append(out, mix/float64(nch))
		}
	}
	return out, int(info.SampleRate), nil
}

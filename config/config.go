// Package config loads the renderer's JSON settings file. Absent keys keep
// their defaults, so a settings file only has to name what it changes.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/c-m0th/star-audio-visualization/beat"
	"github.com/c-m0th/star-audio-visualization/energy"
	"github.com/c-m0th/star-audio-visualization/render"
	"github.com/c-m0th/star-audio-visualization/starfield"
	"github.com/c-m0th/star-audio-visualization/video"
)

// Config collects every tunable of the pipeline.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	FPS    int `json:"fps"`

	BPM float64 `json:"bpm"`

	StarGroups    int     `json:"starGroups"`
	StarsPerGroup int     `json:"starsPerGroup"`
	ConnectProb   float64 `json:"connectProb"`

	MinStarRadius float64 `json:"minStarRadius"`
	MaxStarRadius float64 `json:"maxStarRadius"`
	PulseGain     float64 `json:"pulseGain"`

	BaseSpeed     float64 `json:"baseSpeed"`
	MaxSpeed      float64 `json:"maxSpeed"`
	ResetDistance float64 `json:"resetDistance"`
	Margin        float64 `json:"margin"`

	StarColor       [3]uint8 `json:"starColor"`
	BackgroundColor [3]uint8 `json:"backgroundColor"`

	Bitrate string `json:"bitrate"`
	FFmpeg  string `json:"ffmpeg"`

	AnalysisHop int     `json:"analysisHop"`
	AnalysisFFT int     `json:"analysisFFT"`
	BandLowHz   float64 `json:"bandLowHz"`
	BandHighHz  float64 `json:"bandHighHz"`
}

// Default returns the configuration the animation was designed around:
// 1080p at 30 fps, 85 BPM, 80 groups of 7 stars, white on black.
func Default() Config {
	return Config{
		Width:           1920,
		Height:          1080,
		FPS:             30,
		BPM:             85,
		StarGroups:      80,
		StarsPerGroup:   7,
		ConnectProb:     0.35,
		MinStarRadius:   1,
		MaxStarRadius:   5,
		PulseGain:       15,
		BaseSpeed:       3,
		MaxSpeed:        8,
		ResetDistance:   200,
		Margin:          100,
		StarColor:       [3]uint8{255, 255, 255},
		BackgroundColor: [3]uint8{0, 0, 0},
		Bitrate:         "8000k",
		FFmpeg:          "ffmpeg",
		AnalysisHop:     energy.DefaultHop,
		AnalysisFFT:     energy.DefaultFFTSize,
		BandLowHz:       energy.DefaultBandLow,
		BandHighHz:      energy.DefaultBandHigh,
	}
}

// Load reads a JSON settings file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first nonsensical setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("canvas must be positive, got %dx%d", c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.BPM <= 0:
		return fmt.Errorf("bpm must be positive, got %g", c.BPM)
	case c.StarGroups <= 0:
		return fmt.Errorf("starGroups must be positive, got %d", c.StarGroups)
	case c.StarsPerGroup <= 0:
		return fmt.Errorf("starsPerGroup must be positive, got %d", c.StarsPerGroup)
	case c.ConnectProb < 0 || c.ConnectProb > 1:
		return fmt.Errorf("connectProb must be in [0,1], got %g", c.ConnectProb)
	case c.MinStarRadius <= 0 || c.MaxStarRadius < c.MinStarRadius:
		return fmt.Errorf("star radii must satisfy 0 < min <= max, got %g..%g", c.MinStarRadius, c.MaxStarRadius)
	case c.BaseSpeed < 0 || c.MaxSpeed < c.BaseSpeed:
		return fmt.Errorf("speeds must satisfy 0 <= base <= max, got %g..%g", c.BaseSpeed, c.MaxSpeed)
	case c.ResetDistance < 0:
		return fmt.Errorf("resetDistance must be non-negative, got %g", c.ResetDistance)
	case c.Margin < 0:
		return fmt.Errorf("margin must be non-negative, got %g", c.Margin)
	case c.Bitrate == "":
		return fmt.Errorf("bitrate must be set")
	case c.AnalysisHop <= 0 || c.AnalysisFFT <= 0:
		return fmt.Errorf("analysis sizes must be positive, got hop=%d fft=%d", c.AnalysisHop, c.AnalysisFFT)
	case c.BandLowHz < 0 || c.BandHighHz <= c.BandLowHz:
		return fmt.Errorf("analysis band must satisfy 0 <= low < high, got %g..%g Hz", c.BandLowHz, c.BandHighHz)
	}
	return nil
}

// Analyzer returns the spectral analyzer these settings describe.
func (c Config) Analyzer() *energy.Analyzer {
	return &energy.Analyzer{
		Hop:      c.AnalysisHop,
		FFTSize:  c.AnalysisFFT,
		BandLow:  c.BandLowHz,
		BandHigh: c.BandHighHz,
	}
}

// Params returns the simulation parameters for the given beat clock.
func (c Config) Params(clock beat.Clock) starfield.Params {
	return starfield.Params{
		Width:         c.Width,
		Height:        c.Height,
		StarsPerGroup: c.StarsPerGroup,
		ConnectProb:   c.ConnectProb,
		BaseSpeed:     c.BaseSpeed,
		MaxSpeed:      c.MaxSpeed,
		ResetDistance: c.ResetDistance,
		Margin:        c.Margin,
		Clock:         clock,
		OpacityStep:   clock.OpacityStep(c.FPS),
	}
}

// Style returns the renderer's visual constants.
func (c Config) Style() render.Style {
	return render.Style{
		Background: render.RGB{R: c.BackgroundColor[0], G: c.BackgroundColor[1], B: c.BackgroundColor[2]},
		StarColor:  render.RGB{R: c.StarColor[0], G: c.StarColor[1], B: c.StarColor[2]},
		MinRadius:  c.MinStarRadius,
		MaxRadius:  c.MaxStarRadius,
		PulseGain:  c.PulseGain,
	}
}

// Encoder returns a video encoder that muxes audioPath into its output.
func (c Config) Encoder(audioPath string) *video.Encoder {
	return &video.Encoder{
		FFmpegPath: c.FFmpeg,
		Width:      c.Width,
		Height:     c.Height,
		FPS:        c.FPS,
		Bitrate:    c.Bitrate,
		AudioPath:  audioPath,
	}
}

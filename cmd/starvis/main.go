package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/c-m0th/star-audio-visualization/beat"
	"github.com/c-m0th/star-audio-visualization/config"
	"github.com/c-m0th/star-audio-visualization/energy"
	"github.com/c-m0th/star-audio-visualization/render"
	"github.com/c-m0th/star-audio-visualization/starfield"
)

var (
	cfgPath     = flag.String("config", "", "JSON settings file (empty = built-in defaults)")
	seed        = flag.Int64("seed", 0, "random seed for the star layout (0 = time-based)")
	bpmOverride = flag.Float64("bpm", 0, "override the configured BPM")
	detectTempo = flag.Bool("detect-tempo", false, "drive the beat grid from the estimated tempo")
	trackPath   = flag.String("track", "", "precomputed .vet energy track (skips analysis)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("starvis: ")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	audioPath, outPath := flag.Arg(0), flag.Arg(1)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *bpmOverride > 0 {
		cfg.BPM = *bpmOverride
	}

	log.Printf("loading %s", audioPath)
	samples, sampleRate, err := energy.LoadAudio(audioPath)
	if err != nil {
		log.Fatal(err)
	}
	duration := float64(len(samples)) / float64(sampleRate)

	var track *energy.Track
	if *trackPath != "" {
		track, err = energy.ReadFile(*trackPath)
	} else {
		track, err = cfg.Analyzer().Analyze(samples, sampleRate)
	}
	if err != nil {
		log.Fatal(err)
	}

	bpm := cfg.BPM
	if est, ok := beat.Estimate(track); ok {
		log.Printf("estimated tempo %.1f BPM (configured %.1f)", est, cfg.BPM)
		if *detectTempo {
			bpm = est
		}
	} else if *detectTempo {
		log.Printf("tempo estimate unreliable, keeping configured %.1f BPM", cfg.BPM)
	}
	clock, err := beat.NewClock(bpm)
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	sim := starfield.NewSimulation(cfg.StarGroups, cfg.Params(clock), rng)
	renderer := render.NewRenderer(sim, track, cfg.Style())

	enc := cfg.Encoder(audioPath)
	lastPct := -1
	enc.Progress = func(done, total int) {
		if pct := done * 100 / total; pct != lastPct && pct%5 == 0 {
			lastPct = pct
			fmt.Printf("[render] %3d%% (%d/%d frames)\n", pct, done, total)
		}
	}

	log.Printf("rendering %.1fs at %dx%d, %d fps, %.1f BPM, seed %d",
		duration, cfg.Width, cfg.Height, cfg.FPS, bpm, s)
	if err := enc.Encode(renderer, duration, outPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", outPath)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: starvis [flags] <audio file (.wav|.flac)> <output video>\n\nFlags:\n")
	flag.PrintDefaults()
}

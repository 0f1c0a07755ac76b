package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/c-m0th/star-audio-visualization/beat"
	"github.com/c-m0th/star-audio-visualization/config"
	"github.com/c-m0th/star-audio-visualization/energy"
	"github.com/c-m0th/star-audio-visualization/report"
)

var (
	cfgPath   = flag.String("config", "", "JSON settings file (empty = built-in defaults)")
	dumpStrip = flag.Bool("png", false, "also write an envelope strip image next to the track")
	dumpPlot  = flag.Bool("plot", false, "also write an envelope/beat chart next to the track")
	stripH    = flag.Int("strip-height", 128, "height of the strip image in pixels")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("energytrack: ")
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

	samples, sampleRate, err := energy.LoadAudio(audioPath)
	if err != nil {
		log.Fatal(err)
	}

	track, err := cfg.Analyzer().Analyze(samples, sampleRate)
	if err != nil {
		log.Fatal(err)
	}
	if err := track.WriteFile(outPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s: %d samples over %.2fs (%.1f/s)",
		outPath, track.Len(), track.Duration, track.Rate())

	if *dumpStrip {
		strip := outPath + ".png"
		if err := track.WriteStripPNG(strip, *stripH); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", strip)
	}

	if *dumpPlot {
		bpm := cfg.BPM
		if est, ok := beat.Estimate(track); ok {
			bpm = est
			log.Printf("estimated tempo %.1f BPM", est)
		}
		chart := outPath + ".plot.png"
		if err := report.WriteEnergyPlot(track, bpm, chart); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", chart)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: energytrack [flags] <audio file (.wav|.flac)> <track output (.vet)>\n\nFlags:\n")
	flag.PrintDefaults()
}

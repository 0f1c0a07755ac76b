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
	cfgPath  = flag.String("config", "", "JSON settings file (empty = built-in defaults)")
	nBeats   = flag.Int("beats", 8, "number of beat timestamps to print")
	plotPath = flag.String("plot", "", "write an energy/beat-grid chart PNG to this path")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("beatprobe: ")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	audioPath := flag.Arg(0)

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
	fmt.Printf("%s: %.2fs, %d envelope samples\n", audioPath, track.Duration, track.Len())

	bpm, ok := beat.Estimate(track)
	if ok {
		fmt.Printf("estimated tempo: %.1f BPM\n", bpm)
	} else {
		bpm = cfg.BPM
		fmt.Printf("no reliable tempo estimate, falling back to configured %.1f BPM\n", bpm)
	}

	clock, err := beat.NewClock(bpm)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("beat duration: %.4fs\n", clock.Duration())
	for i := 0; i < *nBeats; i++ {
		t := float64(i) * clock.Duration()
		if t > track.Duration {
			break
		}
		fmt.Printf("  beat %2d at %6.2fs  energy %.3f\n", i, t, track.SampleAt(t))
	}

	if *plotPath != "" {
		if err := report.WriteEnergyPlot(track, bpm, *plotPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *plotPath)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: beatprobe [flags] <audio file (.wav|.flac)>\n\nFlags:\n")
	flag.PrintDefaults()
}

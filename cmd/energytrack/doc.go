// Command energytrack extracts the vocal-band energy envelope of an audio
// file and saves it as a .vet track.
//
// A saved track feeds starvis -track, letting one analysis drive many
// renders. The command can also dump inspection artifacts next to the
// track: a grayscale strip image of the envelope and a chart of the
// envelope against the beat grid.
//
// Usage:
//
//	energytrack [flags] <audio file> <track output>
//
// With -png the strip image is written to <track output>.png; with -plot
// the chart goes to <track output>.plot.png.
//
// Supported input formats: .wav, .flac
package main

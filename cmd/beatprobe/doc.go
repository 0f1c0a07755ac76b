// Command beatprobe estimates the tempo of an audio file from its
// vocal-band energy envelope and prints the beat grid it implies.
//
// Use it to decide whether a track needs a manual BPM before rendering:
// a confident estimate close to the real tempo means starvis -detect-tempo
// will lock on, a rejected estimate means the configured BPM stays in
// charge.
//
// Usage:
//
//	beatprobe [flags] <audio file>
//
// The -plot flag additionally writes the energy envelope with the beat
// grid overlaid as a PNG chart, which makes misdetected tempos obvious
// at a glance.
//
// Supported input formats: .wav, .flac
package main

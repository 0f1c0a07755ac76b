// Command starvis renders an audio-reactive star-field video from an audio
// track.
//
// The track's vocal-band energy drives the pulsation of the stars while a
// beat clock toggles the constellation lines, so the animation visibly
// follows the music. Frames are piped to ffmpeg and muxed with the source
// audio into an H.264/AAC file.
//
// Usage:
//
//	starvis [flags] <audio file> <output video>
//
// The audio file may be .wav or .flac. Flags select a JSON settings file,
// a fixed random seed for reproducible layouts, a BPM override, automatic
// tempo detection, and a precomputed .vet energy track.
//
// ffmpeg must be installed and reachable.
package main

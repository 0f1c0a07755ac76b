// Package energy extracts and stores the vocal-band energy envelope of an
// audio track.
//
// The analyzer runs a short-time Fourier transform over the mono waveform,
// sums the squared bin magnitudes inside the 300-3000 Hz band per frame and
// scales the result so the loudest frame is 1. The resulting Track maps any
// timestamp to the energy measured there, clamping out-of-range times to
// the first or last frame.
//
// Tracks can be serialized to a compact .vet file (half-precision samples)
// and dumped as a grayscale strip image for quick inspection.
package energy

// Package beat keeps the animation's musical time: a Clock that converts a
// tempo into beat indices and fade rates, and an envelope-based tempo
// estimator for material whose BPM is not known up front.
package beat

// Package render rasterizes a star-field simulation into packed RGB24
// frames ready for a raw video pipe.
//
// The Renderer ties a simulation to an energy track: each requested frame
// advances the simulation one step, then draws every star as a filled
// circle whose radius breathes with the track's energy, and every engaged
// connection as an alpha-blended line. Geometry that overhangs the canvas
// is clipped pixel by pixel.
package render

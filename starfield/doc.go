// Package starfield simulates clusters of stars streaming outward from the
// center of a canvas.
//
// A Simulation owns a fixed number of Groups. Each group travels along a
// random heading, accelerating as it approaches the edge, and re-rolls
// itself near the center once it leaves the canvas. Stars within a group
// hold fixed offsets from the group's position; connections between star
// pairs fade in on even beats and out on odd ones, so the whole field
// blinks in lockstep with the music.
//
// The simulation is purely positional. Drawing, including the energy-driven
// pulsation of star radii, lives in the render package.
package starfield

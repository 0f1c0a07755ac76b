// Package report renders diagnostic charts of an analysis: the energy
// envelope over time with the beat grid overlaid. Useful for checking that
// the envelope and tempo line up with the music before spending minutes on
// a full video render.
package report

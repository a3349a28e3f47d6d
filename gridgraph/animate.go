package gridgraph

import (
	"io"

	"github.com/katalvlaran/statespace/core"
)

var _ core.ProgressDisplayer[Cell] = (*Animator)(nil)

// Animator is a GridGraph that draws a frame to W each time a search closes a
// state: the endpoints as S and E and the current frontier as #.
type Animator struct {
	*GridGraph

	// W receives the frames.
	W io.Writer
	// Styler decorates glyphs; nil draws plain text.
	Styler Styler
	// Every draws only one frame in Every; values below 2 draw all frames.
	Every int
	// Separator is written before each frame, e.g. an ANSI clear-screen sequence.
	Separator string

	frames int
	err    error
}

// NewAnimator returns an Animator drawing every frame of gg to w.
func NewAnimator(gg *GridGraph, w io.Writer, styler Styler) *Animator {
	return &Animator{GridGraph: gg, W: w, Styler: styler}
}

// DisplayProgress implements core.ProgressDisplayer. After the first write
// error no further frames are drawn; see Err.
func (a *Animator) DisplayProgress(init, goal Cell, open []Cell) {
	a.frames++
	if a.err != nil || (a.Every > 1 && a.frames%a.Every != 0) {
		return
	}
	frame := a.Separator + a.Render([]Cell{init, goal}, open, a.Styler) + "\n"
	_, a.err = io.WriteString(a.W, frame)
}

// Frames returns the number of progress notifications received.
func (a *Animator) Frames() int { return a.frames }

// Err returns the first error returned by W.
func (a *Animator) Err() error { return a.err }

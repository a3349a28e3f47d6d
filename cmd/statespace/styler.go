package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/statespace/gridgraph"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Maze palette: the route in red and the frontier in green.
var (
	colorPath  = lipgloss.Color("1")
	colorOpen  = lipgloss.Color("2")
	colorEnds  = lipgloss.Color("3")
	colorWalls = lipgloss.Color("8")
)

// lipglossStyler colors maze glyphs with lipgloss styles.
type lipglossStyler struct {
	styles map[gridgraph.Glyph]lipgloss.Style
}

func newLipglossStyler(r *lipgloss.Renderer) lipglossStyler {
	return lipglossStyler{styles: map[gridgraph.Glyph]lipgloss.Style{
		gridgraph.GlyphWall:  r.NewStyle().Foreground(colorWalls),
		gridgraph.GlyphStart: r.NewStyle().Bold(true).Foreground(colorEnds),
		gridgraph.GlyphEnd:   r.NewStyle().Bold(true).Foreground(colorEnds),
		gridgraph.GlyphPath:  r.NewStyle().Foreground(colorPath),
		gridgraph.GlyphOpen:  r.NewStyle().Foreground(colorOpen),
	}}
}

func (s lipglossStyler) Style(g gridgraph.Glyph, text string) string {
	if st, ok := s.styles[g]; ok {
		return st.Render(text)
	}
	return text
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newStyler picks a Styler for mode: auto colors only when w is a terminal.
func newStyler(mode string, w io.Writer) (gridgraph.Styler, error) {
	switch mode {
	case colorNever:
		return gridgraph.PlainStyler{}, nil
	case colorAuto:
		if !isTerminal(w) {
			return gridgraph.PlainStyler{}, nil
		}
		return newLipglossStyler(lipgloss.NewRenderer(w)), nil
	case colorAlways:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		return newLipglossStyler(r), nil
	}

	return nil, fmt.Errorf("invalid color mode %q: want %s, %s or %s", mode, colorAuto, colorAlways, colorNever)
}

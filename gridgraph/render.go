package gridgraph

import "strings"

// Glyph identifies what a rendered cell shows.
type Glyph int

// Glyphs in ascending drawing precedence, walls excepted.
const (
	GlyphGround Glyph = iota
	GlyphWall
	GlyphStart
	GlyphEnd
	GlyphPath
	GlyphOpen
)

var glyphRunes = [...]string{
	GlyphGround: " ",
	GlyphWall:   "X",
	GlyphStart:  "S",
	GlyphEnd:    "E",
	GlyphPath:   "o",
	GlyphOpen:   "#",
}

// String returns the single-character text drawn for g.
func (g Glyph) String() string {
	if g < 0 || int(g) >= len(glyphRunes) {
		return "?"
	}

	return glyphRunes[g]
}

// Styler decorates the text of a glyph, for example with terminal colors.
type Styler interface {
	Style(g Glyph, text string) string
}

// PlainStyler leaves every glyph undecorated.
type PlainStyler struct{}

// Style returns text unchanged.
func (PlainStyler) Style(_ Glyph, text string) string { return text }

// Render draws the grid one line per row, each terminated by '\n'.
// Blocked cells are drawn as walls; the first and last cells of path as
// S and E; the rest of path as o; cells of open as #. Walls take
// precedence, then start, end, path and open. A nil styler draws plain text.
func (gg *GridGraph) Render(path, open []Cell, styler Styler) string {
	if styler == nil {
		styler = PlainStyler{}
	}

	glyphs := make([]Glyph, gg.Width*gg.Height)
	for _, c := range open {
		if gg.InBounds(c.X, c.Y) {
			glyphs[gg.index(c.X, c.Y)] = GlyphOpen
		}
	}
	for _, c := range path {
		if gg.InBounds(c.X, c.Y) {
			glyphs[gg.index(c.X, c.Y)] = GlyphPath
		}
	}
	if n := len(path); n > 0 {
		if last := path[n-1]; gg.InBounds(last.X, last.Y) {
			glyphs[gg.index(last.X, last.Y)] = GlyphEnd
		}
		if first := path[0]; gg.InBounds(first.X, first.Y) {
			glyphs[gg.index(first.X, first.Y)] = GlyphStart
		}
	}

	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			g := glyphs[gg.index(x, y)]
			if !gg.Walkable(Cell{X: x, Y: y}) {
				g = GlyphWall
			}
			sb.WriteString(styler.Style(g, g.String()))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

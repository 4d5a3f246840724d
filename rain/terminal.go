//go:build !js

package rain

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// minLevel is the brightness below which a faded cell is cleared.
const minLevel = 0.03

type termCell struct {
	r     rune
	level float64
	color colorful.Color
}

// TermSurface paints the rain on a terminal, one glyph per cell. Fading is
// emulated with a per-cell brightness that decays on every Fade. Use it
// with a GlyphSize of 1.
type TermSurface struct {
	screen tcell.Screen
	width  int
	height int
	cells  []termCell
	colors map[string]colorful.Color
}

var _ Surface = (*TermSurface)(nil)

// NewTermSurface wraps an initialized screen.
func NewTermSurface(screen tcell.Screen) *TermSurface {
	t := &TermSurface{screen: screen, colors: make(map[string]colorful.Color)}
	t.Fit()
	return t
}

// Fit reallocates the cell buffer for the current screen size.
func (t *TermSurface) Fit() {
	t.width, t.height = t.screen.Size()
	t.cells = make([]termCell, t.width*t.height)
}

// Size implements Surface.
func (t *TermSurface) Size() (width, height int) {
	return t.width, t.height
}

// Fade implements Surface.
func (t *TermSurface) Fade(alpha float64) {
	keep := 1 - alpha
	for i := range t.cells {
		c := &t.cells[i]
		if c.level == 0 {
			continue
		}
		c.level *= keep
		if c.level < minLevel {
			*c = termCell{}
		}
	}
}

// DrawGlyph implements Surface. y is the glyph baseline, so the glyph
// occupies the row above it.
func (t *TermSurface) DrawGlyph(r rune, x, y int, color string, size int) {
	if size < 1 {
		size = 1
	}
	col, row := x/size, y/size-1
	if col < 0 || row < 0 || col >= t.width || row >= t.height {
		return
	}
	t.cells[row*t.width+col] = termCell{r: r, level: 1, color: t.parse(color)}
}

func (t *TermSurface) parse(hex string) colorful.Color {
	if c, ok := t.colors[hex]; ok {
		return c
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{G: 1}
	}
	t.colors[hex] = c
	return c
}

// Level returns the brightness of the cell at (col, row).
func (t *TermSurface) Level(col, row int) float64 {
	if col < 0 || row < 0 || col >= t.width || row >= t.height {
		return 0
	}
	return t.cells[row*t.width+col].level
}

// Show flushes the cell buffer to the screen.
func (t *TermSurface) Show() {
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}
	for row := 0; row < t.height; row++ {
		for col := 0; col < t.width; col++ {
			c := t.cells[row*t.width+col]
			if c.level == 0 {
				t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			shade := c.color.BlendRgb(black, 1-c.level)
			if c.level == 1 {
				shade = c.color.BlendRgb(white, 0.6)
			}
			r, g, b := shade.RGB255()
			fg := tcell.NewRGBColor(int32(r), int32(g), int32(b))
			t.screen.SetContent(col, row, c.r, nil, tcell.StyleDefault.Foreground(fg))
		}
	}
	t.screen.Show()
}

//go:build !js

package rain

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/voidpage/common"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	return s
}

func TestTermSurface_DrawAndFade(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	defer screen.Fini()
	surface := NewTermSurface(screen)

	if w, h := surface.Size(); w != 10 || h != 5 {
		t.Fatalf("Expected 10x5, got %dx%d", w, h)
	}

	surface.DrawGlyph('A', 2, 1, "#00FF41", 1)
	if surface.Level(2, 0) != 1 {
		t.Errorf("Expected the glyph on the row above its baseline, level %f", surface.Level(2, 0))
	}

	surface.Fade(0.5)
	if surface.Level(2, 0) != 0.5 {
		t.Errorf("Expected level 0.5 after one fade, got %f", surface.Level(2, 0))
	}
	for i := 0; i < 10; i++ {
		surface.Fade(0.5)
	}
	if surface.Level(2, 0) != 0 {
		t.Errorf("Expected the cell cleared, got %f", surface.Level(2, 0))
	}

	// Out of bounds draws are dropped.
	surface.DrawGlyph('B', 100, 100, "#00FF41", 1)
	surface.DrawGlyph('B', 0, 0, "#00FF41", 1)
}

func TestTermSurface_Show(t *testing.T) {
	screen := newSimScreen(t, 4, 4)
	defer screen.Fini()
	surface := NewTermSurface(screen)

	surface.DrawGlyph('Z', 1, 2, "#00FF41", 1)
	surface.Show()

	r, _, style, _ := screen.GetContent(1, 1)
	if r != 'Z' {
		t.Errorf("Expected 'Z' at (1,1), got %q", r)
	}
	fg, _, _ := style.Decompose()
	if fg == tcell.ColorDefault {
		t.Error("Expected a colored glyph")
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected an empty cell, got %q", r)
	}
}

func TestTermSurface_DrivesRenderer(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	defer screen.Fini()
	surface := NewTermSurface(screen)

	r := NewRenderer(Config{Color: "#00FF41", GlyphSize: 1, Speed: 0}, common.NewSeededRNG(3))
	r.Start(common.NewFrameQueue(), surface)
	if r.Columns() != 20 {
		t.Fatalf("Expected one column per cell, got %d", r.Columns())
	}
	for i := 0; i < 3; i++ {
		r.Advance()
	}
	for col := 0; col < 20; col++ {
		if surface.Level(col, 2) != 1 {
			t.Fatalf("Expected the head of column %d on row 2", col)
		}
		if surface.Level(col, 0) >= 1 || surface.Level(col, 0) == 0 {
			t.Fatalf("Expected a fading trail at the top of column %d, got %f", col, surface.Level(col, 0))
		}
	}
	r.Stop()
}

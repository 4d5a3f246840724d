//go:build js

package rain

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
)

// CanvasSurface paints the rain on a 2D canvas sized to its layout box.
type CanvasSurface struct {
	canvas *js.Object
	ctx    *js.Object
	font   string
}

var _ Surface = (*CanvasSurface)(nil)

// NewCanvasSurface acquires the 2D context of canvas.
func NewCanvasSurface(canvas *js.Object) (*CanvasSurface, error) {
	if canvas == nil || canvas == js.Undefined {
		return nil, ErrNoSurface
	}
	ctx := canvas.Call("getContext", "2d")
	if ctx == nil || ctx == js.Undefined {
		return nil, errors.Wrap(ErrNoSurface, "2d context")
	}
	s := &CanvasSurface{canvas: canvas, ctx: ctx}
	s.Fit()
	return s, nil
}

// Fit matches the backing store to the canvas layout size.
func (s *CanvasSurface) Fit() {
	s.canvas.Set("width", s.canvas.Get("offsetWidth").Int())
	s.canvas.Set("height", s.canvas.Get("offsetHeight").Int())
	s.font = ""
}

// Size implements Surface.
func (s *CanvasSurface) Size() (width, height int) {
	return s.canvas.Get("width").Int(), s.canvas.Get("height").Int()
}

// Fade implements Surface.
func (s *CanvasSurface) Fade(alpha float64) {
	w, h := s.Size()
	s.ctx.Set("fillStyle", "rgba(0, 0, 0, "+strconv.FormatFloat(alpha, 'f', 2, 64)+")")
	s.ctx.Call("fillRect", 0, 0, w, h)
}

// DrawGlyph implements Surface.
func (s *CanvasSurface) DrawGlyph(r rune, x, y int, color string, size int) {
	font := strconv.Itoa(size) + "px monospace"
	if font != s.font {
		// Resizing a canvas resets its state, so the font is re-applied lazily.
		s.ctx.Set("font", font)
		s.font = font
	}
	s.ctx.Set("fillStyle", color)
	s.ctx.Call("fillText", string(r), x, y)
}

// Mount starts a renderer on canvas that follows window resizes. The
// returned stop function is idempotent.
func Mount(canvas *js.Object, cfg Config, sched common.Scheduler, rng common.RNG) (*Renderer, func()) {
	r := NewRenderer(cfg, rng)
	surface, err := NewCanvasSurface(canvas)
	if err != nil {
		common.DebugWarn("rain:", err.Error())
		return r, func() {}
	}
	r.Start(sched, surface)

	onResize := func() {
		surface.Fit()
		r.Resize(surface.Size())
	}
	js.Global.Call("addEventListener", "resize", onResize)

	stopped := false
	return r, func() {
		if stopped {
			return
		}
		stopped = true
		js.Global.Call("removeEventListener", "resize", onResize)
		r.Stop()
	}
}

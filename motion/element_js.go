//go:build js

package motion

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/voidpage/common"
)

// detachKey is the element property holding the active binding's detach
// function, so attaching twice replaces the first binding.
const detachKey = "__voidMotionDetach"

// Binding connects a Layer to a DOM element. The outer element follows the
// magnetic translation, the inner element carries the tilt and the glare.
type Binding struct {
	layer *Layer
	outer *js.Object
	inner *js.Object
	glare *js.Object
	task  *common.Task

	lastX, lastY float64
	onMove       func(*js.Object)
	onLeave      func(*js.Object)
	detached     bool
}

// Attach binds a new layer to outer and inner. A nil inner skips the tilt.
// Attaching an element that is already bound detaches the previous binding
// first.
func Attach(outer, inner *js.Object, cfg Config, sched common.Scheduler) *Binding {
	if outer == nil || outer == js.Undefined {
		return nil
	}
	if prev := outer.Get(detachKey); prev != js.Undefined && prev != nil {
		prev.Invoke()
	}
	if inner == js.Undefined {
		inner = nil
	}

	b := &Binding{
		layer: NewLayer(cfg),
		outer: outer,
		inner: inner,
	}
	if inner != nil {
		inner.Get("style").Set("transformStyle", "preserve-3d")
		if cfg.Tilt.Glare {
			b.glare = newGlare(inner)
		}
	}

	b.onMove = func(e *js.Object) {
		r := outer.Call("getBoundingClientRect")
		b.layer.SetRect(Rect{
			Left:   r.Get("left").Float(),
			Top:    r.Get("top").Float(),
			Width:  r.Get("width").Float(),
			Height: r.Get("height").Float(),
		})
		b.layer.PointerMove(e.Get("clientX").Float(), e.Get("clientY").Float())
		b.renderTilt(false)
	}
	b.onLeave = func(e *js.Object) {
		b.layer.PointerLeave()
		b.renderTilt(true)
	}
	outer.Call("addEventListener", "pointermove", b.onMove)
	outer.Call("addEventListener", "pointerleave", b.onLeave)

	b.task = common.NewTask(sched, b.tick)
	b.task.Start()

	outer.Set(detachKey, b.Detach)
	return b
}

func (b *Binding) tick(now float64) {
	b.layer.Tick(now)
	x, y := b.layer.Translation()
	if math.Abs(x-b.lastX) < 0.001 && math.Abs(y-b.lastY) < 0.001 {
		return
	}
	b.lastX, b.lastY = x, y
	b.outer.Get("style").Set("transform", fmt.Sprintf("translate3d(%.3fpx, %.3fpx, 0)", x, y))
}

func (b *Binding) renderTilt(leaving bool) {
	if b.inner == nil {
		return
	}
	cfg := b.layer.Config().Tilt
	t := b.layer.Tilt()
	style := b.inner.Get("style")
	if leaving {
		style.Set("transition", "transform "+strconv.Itoa(int(cfg.Speed))+"ms cubic-bezier(.03,.98,.52,.99)")
	} else {
		style.Set("transition", "")
	}
	style.Set("transform", t.Transform(cfg.Perspective))
	if b.glare != nil {
		gs := b.glare.Get("style")
		gs.Set("transform", t.GlareTransform())
		gs.Set("opacity", strconv.FormatFloat(t.GlareOpacity, 'f', 3, 64))
	}
}

func newGlare(inner *js.Object) *js.Object {
	doc := js.Global.Get("document")
	wrap := doc.Call("createElement", "div")
	wrap.Set("className", "js-tilt-glare")
	ws := wrap.Get("style")
	ws.Set("position", "absolute")
	ws.Set("top", "0")
	ws.Set("left", "0")
	ws.Set("width", "100%")
	ws.Set("height", "100%")
	ws.Set("overflow", "hidden")
	ws.Set("pointerEvents", "none")
	ws.Set("borderRadius", "inherit")

	glare := doc.Call("createElement", "div")
	glare.Set("className", "js-tilt-glare-inner")
	gs := glare.Get("style")
	gs.Set("position", "absolute")
	gs.Set("top", "50%")
	gs.Set("left", "50%")
	gs.Set("width", "200%")
	gs.Set("height", "200%")
	gs.Set("pointerEvents", "none")
	gs.Set("backgroundImage", "linear-gradient(0deg, rgba(255,255,255,0) 0%, rgba(255,255,255,1) 100%)")
	gs.Set("transformOrigin", "0% 0%")
	gs.Set("transform", "rotate(180deg) translate(-50%, -50%)")
	gs.Set("opacity", "0")

	wrap.Call("appendChild", glare)
	inner.Call("appendChild", wrap)
	return glare
}

// Layer returns the bound layer.
func (b *Binding) Layer() *Layer {
	return b.layer
}

// Detach removes the listeners, stops the spring task and resets the
// element transforms. Safe to call more than once.
func (b *Binding) Detach() {
	if b == nil || b.detached {
		return
	}
	b.detached = true
	b.task.Stop()
	b.outer.Call("removeEventListener", "pointermove", b.onMove)
	b.outer.Call("removeEventListener", "pointerleave", b.onLeave)
	b.outer.Get("style").Set("transform", "")
	if b.inner != nil {
		b.inner.Get("style").Set("transform", "")
	}
	if b.glare != nil {
		wrap := b.glare.Get("parentNode")
		if wrap != nil && wrap != js.Undefined {
			wrap.Call("remove")
		}
	}
	b.outer.Delete(detachKey)
}

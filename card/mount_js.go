//go:build js

package card

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/voidpage/common"
	"github.com/simukka/voidpage/motion"
	"github.com/simukka/voidpage/rain"
)

const arrowSVG = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" ` +
	`stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M5 12h14M12 5l7 7-7 7"/></svg>`

// Card is a mounted link card.
type Card struct {
	Link       Link
	Appearance Appearance

	slot    *js.Object // Reveal wrapper
	anchor  *js.Object // Magnetic translation
	binding *motion.Binding

	onEnter  func()
	onLeave  func()
	stopRain func()
	stopped  bool
}

// Mount builds the card for l inside container, starts its reveal and
// attaches the motion layer. Matrix cards also start a rain backdrop.
func Mount(container *js.Object, l Link, sched common.Scheduler, rng common.RNG) *Card {
	if container == nil || container == js.Undefined {
		return nil
	}
	doc := js.Global.Get("document")
	a := AppearanceFor(l)
	c := &Card{Link: l, Appearance: a}

	c.slot = doc.Call("createElement", "div")
	c.slot.Set("className", "link-card-slot")
	if a.FullWidth {
		c.slot.Get("style").Set("gridColumn", "1 / -1")
	}

	c.anchor = doc.Call("createElement", "a")
	c.anchor.Set("className", strings.Join(a.Classes, " "))
	c.anchor.Set("href", l.URL)
	c.anchor.Set("target", "_blank")
	c.anchor.Set("rel", "noopener noreferrer")
	style := c.anchor.Get("style")
	style.Set("borderColor", a.Border)
	style.Set("transition", "border-color 0.3s, box-shadow 0.3s")

	inner := doc.Call("createElement", "div")
	inner.Set("className", "link-card__tilt")

	var canvas *js.Object
	if a.Rain != nil {
		canvas = doc.Call("createElement", "canvas")
		canvas.Set("className", "link-card__rain")
		canvasStyle := canvas.Get("style")
		for _, prop := range a.RainStyle {
			canvasStyle.Set(prop.Name, prop.Value)
		}
		inner.Get("style").Set("position", "relative")
		inner.Call("appendChild", canvas)
	}
	body := c.body(doc)
	if canvas != nil {
		body.Get("style").Set("position", "relative")
	}
	inner.Call("appendChild", body)
	if a.Badge != "" {
		badge := doc.Call("createElement", "div")
		badge.Set("className", "link-card__badge")
		badge.Set("textContent", a.Badge)
		inner.Call("appendChild", badge)
	}

	c.anchor.Call("appendChild", inner)
	c.slot.Call("appendChild", c.anchor)
	container.Call("appendChild", c.slot)

	c.onEnter = func() {
		style.Set("borderColor", a.HoverBorder)
		style.Set("boxShadow", a.HoverGlow)
	}
	c.onLeave = func() {
		style.Set("borderColor", a.Border)
		style.Set("boxShadow", "")
	}
	c.anchor.Call("addEventListener", "pointerenter", c.onEnter)
	c.anchor.Call("addEventListener", "pointerleave", c.onLeave)

	c.reveal()
	c.binding = motion.Attach(c.anchor, inner, a.Motion, sched)
	if canvas != nil {
		_, c.stopRain = rain.Mount(canvas, *a.Rain, sched, rng)
	}
	common.Debug("card: mounted", l.Variant.String(), l.URL)
	return c
}

func (c *Card) body(doc *js.Object) *js.Object {
	body := doc.Call("createElement", "div")
	body.Set("className", "link-card__body")

	if c.Link.Image != "" {
		thumb := doc.Call("createElement", "div")
		thumb.Set("className", "link-card__thumb")
		img := doc.Call("createElement", "img")
		img.Set("src", c.Link.Image)
		img.Set("alt", c.Link.Title)
		thumb.Call("appendChild", img)
		body.Call("appendChild", thumb)
	}

	text := doc.Call("createElement", "div")
	text.Set("className", "link-card__text")
	title := doc.Call("createElement", "h3")
	title.Set("textContent", c.Link.Title)
	if c.Link.Priority {
		title.Set("className", "glitch")
	}
	subtitle := doc.Call("createElement", "p")
	subtitle.Set("textContent", c.Link.Subtitle)
	text.Call("appendChild", title)
	text.Call("appendChild", subtitle)
	body.Call("appendChild", text)

	arrow := doc.Call("createElement", "div")
	arrow.Set("className", "link-card__arrow")
	arrow.Set("innerHTML", arrowSVG)
	body.Call("appendChild", arrow)
	return body
}

func (c *Card) reveal() {
	r := c.Appearance.Reveal
	style := c.slot.Get("style")
	style.Set("opacity", "0")
	style.Set("transform", r.TransformAt(0))
	// Reading layout commits the initial state so the transition runs.
	c.slot.Get("offsetHeight")
	style.Set("transition", r.Transition())
	style.Set("opacity", "1")
	style.Set("transform", r.TransformAt(r.Delay+r.Duration))
}

// Stop detaches the motion layer, stops the rain and removes the card.
// Safe to call more than once.
func (c *Card) Stop() {
	if c == nil || c.stopped {
		return
	}
	c.stopped = true
	c.binding.Detach()
	if c.stopRain != nil {
		c.stopRain()
	}
	c.anchor.Call("removeEventListener", "pointerenter", c.onEnter)
	c.anchor.Call("removeEventListener", "pointerleave", c.onLeave)
	c.slot.Call("remove")
}

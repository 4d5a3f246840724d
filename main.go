//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/voidpage/audio"
	"github.com/simukka/voidpage/card"
	"github.com/simukka/voidpage/common"
	"github.com/simukka/voidpage/particles"
)

// RNG streams, one per component.
const (
	streamParticles = iota
	streamAudio
	streamRain
)

// page holds everything mounted on the document so unload can tear it down.
type page struct {
	stopField func()
	cards     []*card.Card
	engine    *audio.Engine
	muteBtn   *js.Object
	onMute    func()
	closed    bool
}

func main() {
	doc := js.Global.Get("document")
	seed := common.PageSeed()
	sched := common.AnimationFrames{}
	p := &page{}

	doc.Get("body").Get("style").Set("background", card.Theme.Void)

	// Particle void behind everything else.
	canvas := doc.Call("getElementById", "void")
	if canvas == nil || canvas == js.Undefined {
		common.DebugWarn("page: #void canvas not found")
	}
	_, p.stopField = particles.Mount(canvas, particles.DefaultConfig(), sched,
		common.NewSeededRNG(common.StreamSeed(seed, streamParticles)))

	// Link grid.
	grid := doc.Call("getElementById", "links")
	if grid == nil || grid == js.Undefined {
		common.DebugWarn("page: #links container not found")
	} else {
		rainRNG := common.NewSeededRNG(common.StreamSeed(seed, streamRain))
		for _, l := range card.DefaultLinks {
			if c := card.Mount(grid, l, sched, rainRNG); c != nil {
				p.cards = append(p.cards, c)
			}
		}
	}

	// Ambient audio, armed on the first gesture.
	p.engine = audio.NewEngine(audio.AmbientConfig, audio.WebAudio{}, common.WindowTimers{},
		common.NewSeededRNG(common.StreamSeed(seed, streamAudio)))
	p.engine.Arm(audio.DocumentGestures{})
	p.mountMuteButton(doc)

	js.Global.Set("VoidPage", map[string]interface{}{
		"toggleAudio": func() bool {
			return p.engine.Toggle()
		},
		"isMuted": func() bool {
			return p.engine.Muted()
		},
		"audioState": func() string {
			return p.engine.State().String()
		},
		"setDebug": func(on bool) {
			common.EnableDebug = on
		},
		"teardown": func() {
			p.teardown()
		},
	})

	// Release GL and audio resources when the page goes away.
	js.Global.Call("addEventListener", "beforeunload", func() {
		p.teardown()
	})

	select {}
}

func (p *page) mountMuteButton(doc *js.Object) {
	btn := doc.Call("createElement", "button")
	btn.Set("className", "mute-toggle")
	style := btn.Get("style")
	style.Set("position", "fixed")
	style.Set("right", "24px")
	style.Set("bottom", "24px")
	style.Set("zIndex", "50")
	p.muteBtn = btn
	p.renderMute(p.engine.Muted())

	p.engine.OnMuteChange = p.renderMute
	p.onMute = func() {
		p.engine.Toggle()
	}
	btn.Call("addEventListener", "click", p.onMute)
	doc.Get("body").Call("appendChild", btn)
}

func (p *page) renderMute(muted bool) {
	label, icon := "Mute", "\U0001F50A"
	if muted {
		label, icon = "Unmute", "\U0001F507"
	}
	p.muteBtn.Call("setAttribute", "aria-label", label)
	p.muteBtn.Set("textContent", icon)
}

func (p *page) teardown() {
	if p.closed {
		return
	}
	p.closed = true
	p.stopField()
	for _, c := range p.cards {
		c.Stop()
	}
	p.engine.Close()
	if p.muteBtn != nil {
		p.muteBtn.Call("removeEventListener", "click", p.onMute)
	}
	common.Debug("page: torn down")
}

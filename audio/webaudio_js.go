//go:build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
)

// WebAudio opens graphs on the browser's AudioContext.
type WebAudio struct{}

var _ Backend = WebAudio{}

// Open implements Backend.
func (WebAudio) Open() (Graph, error) {
	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		return nil, ErrUnavailable
	}

	var g *webGraph
	err := catch(func() {
		ctx := ctor.New()
		master := ctx.Call("createGain")
		master.Get("gain").Set("value", 0)
		master.Call("connect", ctx.Get("destination"))
		g = &webGraph{ctx: ctx, master: master}
	})
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	return g, nil
}

// catch converts a thrown JavaScript exception into an error.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(*js.Error); ok {
				err = errors.New(jsErr.Error())
				return
			}
			err = errors.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

type webGraph struct {
	ctx    *js.Object
	master *js.Object
	source *js.Object
	filter *js.Object
	closed bool
}

type webParam struct {
	p *js.Object
}

func (w webParam) CancelScheduledValues(t float64) { w.p.Call("cancelScheduledValues", t) }

func (w webParam) SetValueAtTime(v, t float64) { w.p.Call("setValueAtTime", v, t) }

func (w webParam) LinearRampToValueAtTime(v, t float64) { w.p.Call("linearRampToValueAtTime", v, t) }

func (g *webGraph) CurrentTime() float64 { return g.ctx.Get("currentTime").Float() }

func (g *webGraph) SampleRate() float64 { return g.ctx.Get("sampleRate").Float() }

func (g *webGraph) Master() Param { return webParam{g.master.Get("gain")} }

func (g *webGraph) StartDrone(samples []float32, cutoff, q float64) {
	if g.closed || g.source != nil {
		return
	}
	rate := g.ctx.Get("sampleRate").Int()
	buffer := g.ctx.Call("createBuffer", 1, len(samples), rate)
	data := buffer.Call("getChannelData", 0)
	for i, v := range samples {
		data.SetIndex(i, v)
	}

	g.source = g.ctx.Call("createBufferSource")
	g.source.Set("buffer", buffer)
	g.source.Set("loop", true)

	g.filter = g.ctx.Call("createBiquadFilter")
	g.filter.Set("type", "lowpass")
	g.filter.Get("frequency").Set("value", cutoff)

	g.source.Call("connect", g.filter)
	g.filter.Call("connect", g.master)
	g.source.Call("start", 0)
}

func (g *webGraph) Crackle(freq, gain, duration float64) {
	if g.closed {
		return
	}
	osc := g.ctx.Call("createOscillator")
	oscGain := g.ctx.Call("createGain")
	osc.Set("type", "square")
	osc.Get("frequency").Set("value", freq)
	oscGain.Get("gain").Set("value", gain)

	osc.Call("connect", oscGain)
	oscGain.Call("connect", g.master)
	osc.Set("onended", func() {
		osc.Call("disconnect")
		oscGain.Call("disconnect")
	})
	osc.Call("start")
	osc.Call("stop", g.CurrentTime()+duration)
}

// Resume resumes the context if the browser created it suspended.
func (g *webGraph) Resume() {
	if g.closed {
		return
	}
	if g.ctx.Get("state").String() == "suspended" {
		g.ctx.Call("resume")
		common.Debug("audio: context resumed")
	}
}

func (g *webGraph) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.source != nil {
		g.source.Call("stop")
		g.source.Call("disconnect")
	}
	if g.filter != nil {
		g.filter.Call("disconnect")
	}
	g.master.Call("disconnect")
	g.ctx.Call("close")
	common.Debug("audio: context closed")
}

// DocumentGestures reports the first pointerdown or touchstart on the
// document.
type DocumentGestures struct{}

var _ GestureSource = DocumentGestures{}

// Once implements GestureSource. Both listeners are removed on the first
// gesture or on cancel.
func (DocumentGestures) Once(fn func()) func() {
	doc := js.Global.Get("document")
	done := false
	var handler func()
	remove := func() {
		doc.Call("removeEventListener", "pointerdown", handler)
		doc.Call("removeEventListener", "touchstart", handler)
	}
	handler = func() {
		if done {
			return
		}
		done = true
		remove()
		fn()
	}
	doc.Call("addEventListener", "pointerdown", handler)
	doc.Call("addEventListener", "touchstart", handler)
	return func() {
		if done {
			return
		}
		done = true
		remove()
	}
}

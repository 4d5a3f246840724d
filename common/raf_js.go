//go:build js

package common

import (
	"github.com/gopherjs/gopherjs/js"
)

// AnimationFrames schedules onto the browser's requestAnimationFrame.
type AnimationFrames struct{}

var _ Scheduler = AnimationFrames{}

// RequestFrame implements Scheduler.
func (AnimationFrames) RequestFrame(fn func(now float64)) int {
	return js.Global.Call("requestAnimationFrame", func(now float64) {
		fn(now)
	}).Int()
}

// CancelFrame implements Scheduler.
func (AnimationFrames) CancelFrame(handle int) {
	js.Global.Call("cancelAnimationFrame", handle)
}

// WindowTimers wraps setInterval/clearInterval.
type WindowTimers struct{}

// SetInterval runs fn every ms milliseconds and returns the interval id.
func (WindowTimers) SetInterval(fn func(), ms int) int {
	return js.Global.Call("setInterval", fn, ms).Int()
}

// ClearInterval cancels an interval created by SetInterval.
func (WindowTimers) ClearInterval(id int) {
	js.Global.Call("clearInterval", id)
}

// Now returns performance.now() in milliseconds.
func Now() float64 {
	perf := js.Global.Get("performance")
	if perf == nil || perf == js.Undefined {
		return js.Global.Get("Date").Call("now").Float()
	}
	return perf.Call("now").Float()
}

// PageSeed returns a seed derived from the wall clock.
func PageSeed() uint32 {
	return uint32(js.Global.Get("Date").Call("now").Int64())
}

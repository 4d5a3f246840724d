//go:build js

package particles

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/voidpage/common"
)

// Mount acquires a WebGL surface on canvas and starts a simulator that
// follows window resizes. The returned stop function tears everything down
// and may be called repeatedly. If the surface is unavailable the
// simulator stays inert.
func Mount(canvas *js.Object, cfg Config, sched common.Scheduler, rng common.RNG) (*Simulator, func()) {
	sim := NewSimulator(cfg, sched, rng)

	surface, err := NewWebGLSurface(canvas, cfg.Count, cfg.Color)
	if err != nil {
		common.DebugWarn("particles:", err.Error())
		return sim, func() {}
	}
	sim.Start(surface)

	onResize := func() {
		w, h, ratio := surface.Size()
		sim.Resize(w, h, ratio)
	}
	js.Global.Call("addEventListener", "resize", onResize)

	stopped := false
	return sim, func() {
		if stopped {
			return
		}
		stopped = true
		js.Global.Call("removeEventListener", "resize", onResize)
		sim.Stop()
	}
}

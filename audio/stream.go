//go:build !js

package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DroneStreamer loops a mono noise buffer through a lowpass filter.
type DroneStreamer struct {
	samples []float32
	pos     int
	filter  *Biquad
}

// NewDroneStreamer creates a looping, filtered drone.
func NewDroneStreamer(samples []float32, cutoff, q float64, rate beep.SampleRate) *DroneStreamer {
	return &DroneStreamer{
		samples: samples,
		filter:  NewLowpass(cutoff, q, float64(rate)),
	}
}

func (d *DroneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if len(d.samples) == 0 {
		return 0, false
	}
	for i := range samples {
		v := d.filter.Process(float64(d.samples[d.pos]))
		samples[i][0] = v
		samples[i][1] = v
		d.pos++
		if d.pos == len(d.samples) {
			d.pos = 0
		}
	}
	return len(samples), true
}

func (d *DroneStreamer) Err() error { return nil }

// CrackleStreamer is an endless square wave. Wrap it in beep.Take to bound it.
type CrackleStreamer struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

// NewCrackleStreamer creates a square wave at freq Hz.
func NewCrackleStreamer(freq float64, rate beep.SampleRate) *CrackleStreamer {
	return &CrackleStreamer{freq: freq, rate: rate}
}

func (c *CrackleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := -1.0
		if c.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val
		c.phase += c.freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
	}
	return len(samples), true
}

func (c *CrackleStreamer) Err() error { return nil }

// BeepBackend renders graphs as beep streamers handed to Play, usually
// speaker.Play after speaker.Init.
type BeepBackend struct {
	Rate beep.SampleRate
	Play func(beep.Streamer)
}

var _ Backend = (*BeepBackend)(nil)

// Open implements Backend.
func (b *BeepBackend) Open() (Graph, error) {
	if b == nil || b.Play == nil || b.Rate <= 0 {
		return nil, ErrUnavailable
	}
	g := &BeepGraph{
		rate:   b.Rate,
		mixer:  &beep.Mixer{},
		master: NewAutomation(0),
	}
	b.Play(g)
	return g, nil
}

// BeepGraph mixes the drone and the crackles and applies the master gain
// automation per sample. It is safe to drive from the speaker goroutine.
type BeepGraph struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	pos    int
	mixer  *beep.Mixer
	master *Automation
	drone  bool
	closed bool
}

var (
	_ Graph         = (*BeepGraph)(nil)
	_ beep.Streamer = (*BeepGraph)(nil)
)

func (g *BeepGraph) Stream(samples [][2]float64) (n int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, false
	}
	n, _ = g.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	for i := range samples {
		v := g.master.ValueAt(float64(g.pos+i) / float64(g.rate))
		samples[i][0] *= v
		samples[i][1] *= v
	}
	g.pos += len(samples)
	return len(samples), true
}

func (g *BeepGraph) Err() error { return nil }

// CurrentTime implements Graph.
func (g *BeepGraph) CurrentTime() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return float64(g.pos) / float64(g.rate)
}

// SampleRate implements Graph.
func (g *BeepGraph) SampleRate() float64 {
	return float64(g.rate)
}

// Master implements Graph.
func (g *BeepGraph) Master() Param {
	return lockedParam{g}
}

// StartDrone implements Graph.
func (g *BeepGraph) StartDrone(samples []float32, cutoff, q float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.drone {
		return
	}
	g.drone = true
	g.mixer.Add(NewDroneStreamer(samples, cutoff, q, g.rate))
}

// Crackle implements Graph.
func (g *BeepGraph) Crackle(freq, gain, duration float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || gain <= 0 {
		return
	}
	n := g.rate.N(time.Duration(duration * float64(time.Second)))
	s := beep.Take(n, NewCrackleStreamer(freq, g.rate))
	g.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)})
}

// Resume implements Graph. The speaker never suspends.
func (g *BeepGraph) Resume() {}

// Voices returns the number of streamers in the mix.
func (g *BeepGraph) Voices() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mixer.Len()
}

// Close implements Graph. The graph drains and the speaker drops it.
func (g *BeepGraph) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	g.mixer.Clear()
}

type lockedParam struct {
	g *BeepGraph
}

func (p lockedParam) CancelScheduledValues(t float64) {
	p.g.mu.Lock()
	p.g.master.CancelScheduledValues(t)
	p.g.mu.Unlock()
}

func (p lockedParam) SetValueAtTime(v, t float64) {
	p.g.mu.Lock()
	p.g.master.SetValueAtTime(v, t)
	p.g.mu.Unlock()
}

func (p lockedParam) LinearRampToValueAtTime(v, t float64) {
	p.g.mu.Lock()
	p.g.master.LinearRampToValueAtTime(v, t)
	p.g.mu.Unlock()
}

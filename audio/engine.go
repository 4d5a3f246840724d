package audio

import (
	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
)

// State is the engine lifecycle.
type State int

const (
	Uninitialized State = iota
	Initializing
	Ready
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Initializing:
		return "Initializing"
	case Ready:
		return "Ready"
	case Closed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Engine plays the ambient drone and crackles. No audio resources exist
// until Init, which Arm defers to the first user gesture.
type Engine struct {
	cfg     Config
	backend Backend
	timers  common.Timers
	rng     common.RNG

	state State
	graph Graph
	muted bool
	gain  Ramp // Mirror of the master gain automation

	crackleID     int
	crackles      int
	cancelGesture func()

	// OnMuteChange is called after every effective Toggle.
	OnMuteChange func(muted bool)
}

// NewEngine creates an uninitialized, muted engine.
func NewEngine(cfg Config, backend Backend, timers common.Timers, rng common.RNG) *Engine {
	return &Engine{
		cfg:     cfg,
		backend: backend,
		timers:  timers,
		rng:     rng,
		muted:   true,
		gain:    Hold(0),
	}
}

// Arm defers Init to the first gesture from src. Arming twice replaces the
// previous registration.
func (e *Engine) Arm(src GestureSource) {
	if e.state != Uninitialized || src == nil {
		return
	}
	e.disarm()
	e.cancelGesture = src.Once(func() {
		e.cancelGesture = nil
		if err := e.Init(); err != nil {
			common.DebugWarn("audio:", err.Error())
		}
	})
}

func (e *Engine) disarm() {
	if e.cancelGesture != nil {
		e.cancelGesture()
		e.cancelGesture = nil
	}
}

// Init builds the audio graph and starts the drone and the crackle timer.
// It only acts on an uninitialized engine. On failure the engine closes
// and stays silent.
func (e *Engine) Init() error {
	if e.state != Uninitialized {
		return nil
	}
	e.state = Initializing
	e.disarm()

	if e.backend == nil {
		e.state = Closed
		return ErrUnavailable
	}
	graph, err := e.backend.Open()
	if err != nil {
		e.state = Closed
		return errors.Wrap(err, "audio: open graph")
	}
	e.graph = graph

	noise := NoiseBuffer(e.cfg, graph.SampleRate(), e.rng)
	graph.StartDrone(noise, e.cfg.FilterCutoff, e.cfg.FilterQ)
	e.gain = Hold(0)

	if e.timers != nil {
		e.crackleID = e.timers.SetInterval(e.rollCrackle, e.cfg.CrackleInterval)
	}
	e.state = Ready
	common.Debug("audio: ready at", graph.SampleRate(), "Hz")
	return nil
}

func (e *Engine) rollCrackle() {
	if e.state != Ready {
		return
	}
	if e.rng.Random() <= 1-e.cfg.CrackleChance {
		return
	}
	freq := e.rng.Random()*e.cfg.CrackleFreqRange + e.cfg.CrackleMinFreq
	e.graph.Crackle(freq, e.cfg.CrackleGain, e.cfg.CrackleDuration)
	e.crackles++
}

// Toggle flips the muted state and ramps the master gain to the new level
// over FadeTime, starting from the live gain. Before the engine is ready it
// does nothing. It returns the muted state.
func (e *Engine) Toggle() bool {
	if e.state != Ready {
		return e.muted
	}
	e.graph.Resume()
	e.muted = !e.muted
	target := e.cfg.MasterVolume
	if e.muted {
		target = 0
	}

	now := e.graph.CurrentTime()
	current := e.gain.ValueAt(now)
	master := e.graph.Master()
	master.CancelScheduledValues(now)
	master.SetValueAtTime(current, now)
	master.LinearRampToValueAtTime(target, now+e.cfg.FadeTime)
	e.gain = Ramp{From: current, To: target, Start: now, End: now + e.cfg.FadeTime}

	if e.OnMuteChange != nil {
		e.OnMuteChange(e.muted)
	}
	return e.muted
}

// Muted reports whether the engine is muted or ramping to silence.
func (e *Engine) Muted() bool {
	return e.muted
}

// Gain returns the master gain at the current audio time.
func (e *Engine) Gain() float64 {
	if e.graph == nil {
		return 0
	}
	return e.gain.ValueAt(e.graph.CurrentTime())
}

// Crackles returns how many crackles have been played.
func (e *Engine) Crackles() int {
	return e.crackles
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Close tears down the graph and the crackle timer and removes a pending
// gesture registration. Closing an engine that never initialized releases
// nothing; closing twice is a no-op.
func (e *Engine) Close() {
	if e.state == Closed {
		return
	}
	e.disarm()
	if e.state == Ready {
		if e.timers != nil {
			e.timers.ClearInterval(e.crackleID)
		}
		e.graph.Close()
		common.Debug("audio: closed")
	}
	e.graph = nil
	e.state = Closed
}

package audio

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
)

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

type fakeGraph struct {
	time    float64
	rate    float64
	master  *Automation
	calls   []string
	drone   []float32
	cutoff  float64
	crackle []float64
	closes  int
	resumes int

	// suspended models a browser context created outside a user activation.
	suspended        bool
	rampWhileStopped bool
}

func (g *fakeGraph) CurrentTime() float64 { return g.time }
func (g *fakeGraph) SampleRate() float64  { return g.rate }
func (g *fakeGraph) Master() Param        { return recordingParam{g} }

func (g *fakeGraph) StartDrone(samples []float32, cutoff, q float64) {
	g.drone = samples
	g.cutoff = cutoff
}

func (g *fakeGraph) Crackle(freq, gain, duration float64) {
	g.crackle = append(g.crackle, freq)
}

func (g *fakeGraph) Resume() {
	g.resumes++
	g.suspended = false
}

func (g *fakeGraph) Close() { g.closes++ }

type recordingParam struct {
	g *fakeGraph
}

func (p recordingParam) CancelScheduledValues(t float64) {
	p.g.calls = append(p.g.calls, "cancel")
	p.g.master.CancelScheduledValues(t)
}

func (p recordingParam) SetValueAtTime(v, t float64) {
	p.g.calls = append(p.g.calls, "set")
	p.g.master.SetValueAtTime(v, t)
}

func (p recordingParam) LinearRampToValueAtTime(v, t float64) {
	p.g.calls = append(p.g.calls, "ramp")
	if p.g.suspended {
		p.g.rampWhileStopped = true
	}
	p.g.master.LinearRampToValueAtTime(v, t)
}

type fakeBackend struct {
	graph *fakeGraph
	opens int
	err   error
}

func (b *fakeBackend) Open() (Graph, error) {
	b.opens++
	if b.err != nil {
		return nil, b.err
	}
	b.graph = &fakeGraph{rate: 8000, master: NewAutomation(0)}
	return b.graph, nil
}

type fakeGestures struct {
	fn       func()
	listens  int
	removals int
}

func (f *fakeGestures) Once(fn func()) func() {
	f.fn = fn
	f.listens++
	return func() {
		if f.fn != nil {
			f.fn = nil
			f.removals++
		}
	}
}

// fire simulates gestures; only the first reaches the registered handler.
func (f *fakeGestures) fire() {
	if fn := f.fn; fn != nil {
		f.fn = nil
		f.removals++
		fn()
	}
}

func newTestEngine() (*Engine, *fakeBackend, *common.ManualTimers) {
	backend := &fakeBackend{}
	timers := common.NewManualTimers()
	return NewEngine(AmbientConfig, backend, timers, common.NewSeededRNG(9)), backend, timers
}

func TestEngine_GestureGatedInit(t *testing.T) {
	e, backend, _ := newTestEngine()
	gestures := &fakeGestures{}

	e.Arm(gestures)
	if backend.opens != 0 || e.State() != Uninitialized {
		t.Fatal("Expected no audio resources before a gesture")
	}

	gestures.fire()
	gestures.fire()

	if e.State() != Ready {
		t.Fatalf("Expected Ready after the gesture, got %s", e.State())
	}
	if backend.opens != 1 {
		t.Errorf("Expected one graph, got %d", backend.opens)
	}
	if gestures.listens != 1 || gestures.removals != 1 {
		t.Errorf("Expected the gesture listener registered and removed once, got %d/%d", gestures.listens, gestures.removals)
	}
	if len(backend.graph.drone) != 16000 {
		t.Errorf("Expected 2s of noise at 8kHz, got %d samples", len(backend.graph.drone))
	}
	if backend.graph.cutoff != 200 {
		t.Errorf("Expected 200Hz lowpass, got %f", backend.graph.cutoff)
	}
	if e.Gain() != 0 || !e.Muted() {
		t.Error("Expected the engine to start muted at gain 0")
	}
}

func TestEngine_InitIsIdempotent(t *testing.T) {
	e, backend, timers := newTestEngine()
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}
	if backend.opens != 1 {
		t.Errorf("Expected a single graph, got %d", backend.opens)
	}
	if timers.Active() != 1 {
		t.Errorf("Expected a single crackle timer, got %d", timers.Active())
	}
}

func TestEngine_InitRemovesPendingGesture(t *testing.T) {
	e, _, _ := newTestEngine()
	gestures := &fakeGestures{}
	e.Arm(gestures)
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}
	if gestures.removals != 1 || gestures.fn != nil {
		t.Error("Expected the gesture listener removed by a direct Init")
	}
}

func TestEngine_UnavailableStaysSilent(t *testing.T) {
	backend := &fakeBackend{err: ErrUnavailable}
	timers := common.NewManualTimers()
	e := NewEngine(AmbientConfig, backend, timers, common.NewSeededRNG(1))

	err := e.Init()
	if errors.Cause(err) != ErrUnavailable {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
	if e.State() != Closed {
		t.Errorf("Expected Closed, got %s", e.State())
	}
	if e.Toggle() != true {
		t.Error("Expected toggle to be a no-op")
	}
	timers.Advance(10000)
	e.Close()
	if timers.Active() != 0 {
		t.Error("Expected no timers")
	}

	nilBackend := NewEngine(AmbientConfig, nil, timers, common.NewSeededRNG(1))
	if err := nilBackend.Init(); err != ErrUnavailable {
		t.Errorf("Expected ErrUnavailable for a nil backend, got %v", err)
	}
}

func TestEngine_ToggleRamps(t *testing.T) {
	e, backend, _ := newTestEngine()
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}
	g := backend.graph

	g.time = 10
	if muted := e.Toggle(); muted {
		t.Fatal("Expected first toggle to unmute")
	}
	want := []string{"cancel", "set", "ramp"}
	if len(g.calls) != 3 {
		t.Fatalf("Expected %v, got %v", want, g.calls)
	}
	for i := range want {
		if g.calls[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, g.calls)
		}
	}

	// Endpoints and monotonic rise.
	prev := -1.0
	for step := 0; step <= 30; step++ {
		g.time = 10 + float64(step)*0.1
		v := e.Gain()
		if v < prev {
			t.Fatalf("Gain fell during an unmute ramp at %f: %f < %f", g.time, v, prev)
		}
		if !floatNear(v, g.master.ValueAt(g.time), 1e-12) {
			t.Fatalf("Engine gain model out of sync with the param at %f", g.time)
		}
		prev = v
	}
	if !floatNear(prev, 0.02, 1e-12) {
		t.Errorf("Expected gain 0.02 after 3s, got %f", prev)
	}

	g.time = 20
	e.Toggle()
	g.time = 23
	if !floatNear(e.Gain(), 0, 1e-12) {
		t.Errorf("Expected silence 3s after muting, got %f", e.Gain())
	}
}

func TestEngine_ToggleMidRampReanchors(t *testing.T) {
	e, backend, _ := newTestEngine()
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}
	g := backend.graph

	g.time = 0
	e.Toggle() // unmute towards 0.02
	g.time = 1.5
	live := e.Gain()
	if !floatNear(live, 0.01, 1e-12) {
		t.Fatalf("Expected 0.01 halfway, got %f", live)
	}

	e.Toggle() // mute from the live value

	if !floatNear(g.master.ValueAt(1.5), live, 1e-12) {
		t.Errorf("Expected the ramp to restart from %f, got %f", live, g.master.ValueAt(1.5))
	}
	prev := live
	for step := 1; step <= 30; step++ {
		g.time = 1.5 + float64(step)*0.1
		v := e.Gain()
		if v > prev+1e-12 {
			t.Fatalf("Gain rose while muting at %f: %f > %f", g.time, v, prev)
		}
		prev = v
	}
	if !floatNear(prev, 0, 1e-12) {
		t.Errorf("Expected gain 0 at 4.5s, got %f", prev)
	}
}

func TestEngine_ToggleBeforeReadyIsNoop(t *testing.T) {
	e, _, _ := newTestEngine()
	changes := 0
	e.OnMuteChange = func(bool) { changes++ }
	if !e.Toggle() || changes != 0 {
		t.Error("Expected toggle before init to do nothing")
	}
}

func TestEngine_ToggleResumesSuspendedOutput(t *testing.T) {
	e, backend, _ := newTestEngine()
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}
	g := backend.graph
	g.suspended = true

	if g.resumes != 0 {
		t.Fatalf("Expected no resume during Init, got %d", g.resumes)
	}
	e.Toggle()
	if g.resumes != 1 || g.suspended {
		t.Fatalf("Expected the toggle to resume the output, got %d resumes", g.resumes)
	}
	if g.rampWhileStopped {
		t.Error("Expected the ramp scheduled after the resume")
	}

	e.Toggle()
	if g.resumes != 2 {
		t.Errorf("Expected a resume on every toggle, got %d", g.resumes)
	}
}

func TestEngine_CrackleProbability(t *testing.T) {
	e, backend, timers := newTestEngine()
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}

	const rolls = 5000
	timers.Advance(rolls * 2000)

	rate := float64(e.Crackles()) / rolls
	if !floatNear(rate, 0.3, 0.03) {
		t.Errorf("Expected about 30%% of rolls to crackle, got %.3f", rate)
	}
	for _, f := range backend.graph.crackle {
		if f < 50 || f >= 150 {
			t.Fatalf("Crackle frequency %f outside [50, 150)", f)
		}
	}
}

func TestEngine_CloseBeforeInit(t *testing.T) {
	e, backend, timers := newTestEngine()
	gestures := &fakeGestures{}
	e.Arm(gestures)

	e.Close()
	e.Close()
	gestures.fire()

	if backend.opens != 0 {
		t.Error("Expected no graph after closing an uninitialized engine")
	}
	if gestures.removals != 1 {
		t.Errorf("Expected the gesture listener removed, got %d", gestures.removals)
	}
	if timers.Active() != 0 || e.State() != Closed {
		t.Error("Expected a closed engine with no timers")
	}
}

func TestEngine_CloseTearsDown(t *testing.T) {
	e, backend, timers := newTestEngine()
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}
	e.Close()
	e.Close()

	if backend.graph.closes != 1 {
		t.Errorf("Expected the graph closed once, got %d", backend.graph.closes)
	}
	if timers.Active() != 0 {
		t.Error("Expected the crackle timer cleared")
	}
	timers.Advance(20000)
	if e.Crackles() != 0 {
		t.Error("Expected no crackles after close")
	}
	if err := e.Init(); err != nil || backend.opens != 1 {
		t.Error("Expected Init after Close to do nothing")
	}
}

package particles

import (
	"testing"

	"github.com/simukka/voidpage/common"
)

type fakeSurface struct {
	width, height int
	ratio         float64

	resizes  int
	draws    int
	releases int
	last     Frame
}

func (f *fakeSurface) Size() (int, int, float64) { return f.width, f.height, f.ratio }

func (f *fakeSurface) Resize(width, height int, pixelRatio float64) {
	if f.releases > 0 {
		panic("resize after release")
	}
	f.width, f.height, f.ratio = width, height, pixelRatio
	f.resizes++
}

func (f *fakeSurface) Draw(frame Frame) {
	if f.releases > 0 {
		panic("draw after release")
	}
	f.draws++
	f.last = frame
}

func (f *fakeSurface) Release() { f.releases++ }

func TestSimulator_EndToEnd(t *testing.T) {
	q := common.NewFrameQueue()
	q.IgnoreCancel = true
	surface := &fakeSurface{width: 1280, height: 720, ratio: 1}
	sim := NewSimulator(DefaultConfig(), q, common.NewSeededRNG(5))

	sim.Start(surface)
	for i := 0; i < 1000; i++ {
		q.Flush(float64(i) * 16.6)
	}

	if surface.draws != 1000 {
		t.Errorf("Expected 1000 draws, got %d", surface.draws)
	}
	if len(surface.last.Positions) != 800*3 {
		t.Errorf("Expected 2400 floats per frame, got %d", len(surface.last.Positions))
	}

	sim.Stop()

	if surface.releases != 1 {
		t.Errorf("Expected surface released once, got %d", surface.releases)
	}

	// The scheduler fires the already queued frame anyway.
	q.Flush(20000)
	q.Flush(20016)

	if surface.draws != 1000 {
		t.Errorf("Expected no draws after Stop, got %d", surface.draws)
	}
	if sim.Running() {
		t.Error("Expected simulator to report stopped")
	}
}

func TestSimulator_NilSurfaceIsInert(t *testing.T) {
	q := common.NewFrameQueue()
	sim := NewSimulator(DefaultConfig(), q, common.NewSeededRNG(5))

	sim.Start(nil)
	q.Flush(0)
	sim.Resize(100, 100, 1)
	sim.Stop()

	if q.Pending() != 0 {
		t.Errorf("Expected no scheduled frames, got %d", q.Pending())
	}
	if sim.Field() != nil {
		t.Error("Expected no particles allocated")
	}
}

func TestSimulator_StopBeforeStartAndTwice(t *testing.T) {
	q := common.NewFrameQueue()
	surface := &fakeSurface{width: 100, height: 100, ratio: 1}
	sim := NewSimulator(DefaultConfig(), q, common.NewSeededRNG(5))

	sim.Stop()
	sim.Start(surface)
	sim.Stop()
	sim.Stop()
	q.Flush(0)

	if surface.releases != 1 {
		t.Errorf("Expected a single release, got %d", surface.releases)
	}
	if surface.draws != 0 {
		t.Errorf("Expected no draws, got %d", surface.draws)
	}
}

func TestSimulator_ResizeKeepsParticles(t *testing.T) {
	q := common.NewFrameQueue()
	surface := &fakeSurface{width: 1000, height: 500, ratio: 1}
	sim := NewSimulator(DefaultConfig(), q, common.NewSeededRNG(8))
	sim.Start(surface)

	for i := 0; i < 10; i++ {
		q.Flush(float64(i))
	}
	field := sim.Field()
	before := field.Particles[0]

	sim.Resize(500, 1000, 1)

	if sim.Field() != field || field.Particles[0] != before {
		t.Error("Expected particle state preserved across resize")
	}
	if sim.Camera().Aspect() != 0.5 {
		t.Errorf("Expected aspect 0.5, got %f", sim.Camera().Aspect())
	}
	if surface.width != 500 || surface.height != 1000 {
		t.Errorf("Expected surface resized to 500x1000, got %dx%d", surface.width, surface.height)
	}

	q.Flush(100)
	if surface.last.PointScale != 500 {
		t.Errorf("Expected point scale 500, got %f", surface.last.PointScale)
	}
	sim.Stop()
}

func TestSimulator_DoubleStartKeepsOneTask(t *testing.T) {
	q := common.NewFrameQueue()
	surface := &fakeSurface{width: 100, height: 100, ratio: 1}
	sim := NewSimulator(DefaultConfig(), q, common.NewSeededRNG(5))

	sim.Start(surface)
	sim.Start(surface)
	q.Flush(0)

	if surface.draws != 1 {
		t.Errorf("Expected 1 draw per frame, got %d", surface.draws)
	}
	sim.Stop()
}

package particles

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
)

// ErrNoSurface is returned when a drawing surface cannot be acquired.
var ErrNoSurface = errors.New("particles: drawing surface unavailable")

// Frame is everything a surface needs to draw one tick.
type Frame struct {
	Positions  []float32 // Packed xyz, len = 3 * particle count
	Projection mgl32.Mat4
	ModelView  mgl32.Mat4
	PointSize  float32
	PointScale float32
	Opacity    float32
}

// Surface renders frames of points with additive blending.
type Surface interface {
	// Size returns the CSS pixel size and device pixel ratio.
	Size() (width, height int, pixelRatio float64)
	// Resize resizes the drawing buffer and viewport.
	Resize(width, height int, pixelRatio float64)
	Draw(frame Frame)
	// Release frees GPU buffers and programs. Called at most once.
	Release()
}

// Simulator drives a Field onto a Surface once per scheduling tick.
type Simulator struct {
	cfg   Config
	sched common.Scheduler
	rng   common.RNG

	field   *Field
	camera  *Camera
	surface Surface
	task    *common.Task
}

// NewSimulator creates an idle simulator.
func NewSimulator(cfg Config, sched common.Scheduler, rng common.RNG) *Simulator {
	return &Simulator{cfg: cfg, sched: sched, rng: rng}
}

// Start allocates the particles and begins rendering onto surface. A nil
// surface leaves the simulator inert. Starting twice is a no-op.
func (s *Simulator) Start(surface Surface) {
	if surface == nil {
		common.DebugWarn("particles:", ErrNoSurface.Error())
		return
	}
	if s.task.Running() {
		return
	}
	w, h, ratio := surface.Size()
	s.surface = surface
	s.field = NewField(s.cfg, s.rng)
	s.camera = NewCamera(s.cfg, w, h, ratio)
	s.surface.Resize(s.camera.Width, s.camera.Height, s.camera.PixelRatio)
	s.task = common.NewTask(s.sched, s.tick)
	s.task.Start()
	common.Debug("particles: started", s.cfg.Count, "points")
}

func (s *Simulator) tick(now float64) {
	s.field.Step()
	s.surface.Draw(s.frame())
}

func (s *Simulator) frame() Frame {
	return Frame{
		Positions:  s.field.Positions(),
		Projection: s.camera.Projection(),
		ModelView:  s.camera.View().Mul4(s.field.Model()),
		PointSize:  s.cfg.PointSize,
		PointScale: s.camera.PointScale(),
		Opacity:    s.cfg.Opacity,
	}
}

// Resize recomputes the camera aspect and viewport. Particle state is kept.
func (s *Simulator) Resize(width, height int, pixelRatio float64) {
	if s.camera == nil || s.surface == nil {
		return
	}
	s.camera.SetPixelRatio(pixelRatio)
	s.camera.Resize(width, height)
	s.surface.Resize(s.camera.Width, s.camera.Height, s.camera.PixelRatio)
}

// Stop cancels the task and releases the surface. Safe to call at any time
// and more than once.
func (s *Simulator) Stop() {
	s.task.Stop()
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
}

// Running reports whether the simulator is ticking.
func (s *Simulator) Running() bool {
	return s.task.Running()
}

// Field returns the live particle field, nil before Start.
func (s *Simulator) Field() *Field {
	return s.field
}

// Camera returns the camera, nil before Start.
func (s *Simulator) Camera() *Camera {
	return s.camera
}

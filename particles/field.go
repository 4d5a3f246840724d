package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/simukka/voidpage/common"
)

// Particle is one drifting point.
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
}

// Field is a fixed set of particles in a reflective cube that slowly spins
// about the vertical axis.
type Field struct {
	Particles []Particle
	Rotation  float64 // Rotation about Y in [0, 2π) radians

	bound     float32
	spin      float32
	positions []float32 // Packed xyz for upload, shared with the surface
}

// NewField scatters cfg.Count particles uniformly through the cube.
func NewField(cfg Config, rng common.RNG) *Field {
	f := &Field{
		Particles: make([]Particle, cfg.Count),
		bound:     cfg.Bound,
		spin:      cfg.Spin,
		positions: make([]float32, cfg.Count*3),
	}
	for i := range f.Particles {
		p := &f.Particles[i]
		for axis := 0; axis < 3; axis++ {
			p.Position[axis] = float32(common.Centered(rng, float64(cfg.Spread)))
		}
		for axis := 0; axis < 3; axis++ {
			p.Velocity[axis] = float32(common.Centered(rng, float64(cfg.Speed)))
		}
	}
	f.pack()
	return f
}

// Step advances the field by one tick. Each axis reflects independently:
// the velocity flips once the position magnitude exceeds the bound, and the
// particle is never clamped.
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Position = p.Position.Add(p.Velocity)
		for axis := 0; axis < 3; axis++ {
			if abs32(p.Position[axis]) > f.bound {
				p.Velocity[axis] = -p.Velocity[axis]
			}
		}
	}
	f.Rotation = math.Mod(f.Rotation+float64(f.spin), 2*math.Pi)
	f.pack()
}

// Positions returns the packed xyz buffer refreshed by the last Step.
func (f *Field) Positions() []float32 {
	return f.positions
}

// Model returns the field's model matrix.
func (f *Field) Model() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(float32(f.Rotation))
}

func (f *Field) pack() {
	for i, p := range f.Particles {
		f.positions[i*3] = p.Position[0]
		f.positions[i*3+1] = p.Position[1]
		f.positions[i*3+2] = p.Position[2]
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// MaxStep caps the time step fed to a spring. Larger frame gaps (a hidden
// tab, a debugger pause) are integrated as a single MaxStep.
const MaxStep = 1.0 / 20

// Spring is a one-dimensional damped oscillator parameterized the way
// animation libraries expose it: stiffness, damping and mass.
type Spring struct {
	Pos float64
	Vel float64

	freq  float64 // Angular frequency
	ratio float64 // Damping ratio

	dt     float64
	coeffs harmonica.Spring
}

// NewSpring converts (stiffness, damping, mass) into harmonica's angular
// frequency and damping ratio.
func NewSpring(stiffness, damping, mass float64) *Spring {
	if mass <= 0 {
		mass = 1
	}
	if stiffness <= 0 {
		stiffness = 1
	}
	return &Spring{
		freq:  math.Sqrt(stiffness / mass),
		ratio: damping / (2 * math.Sqrt(stiffness*mass)),
	}
}

// Frequency returns the angular frequency in rad/s.
func (s *Spring) Frequency() float64 { return s.freq }

// DampingRatio returns zeta. 1 is critical damping.
func (s *Spring) DampingRatio() float64 { return s.ratio }

// Update advances the spring by dt seconds towards target and returns the
// new position.
func (s *Spring) Update(dt, target float64) float64 {
	if dt <= 0 {
		return s.Pos
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	if dt != s.dt {
		s.coeffs = harmonica.NewSpring(dt, s.freq, s.ratio)
		s.dt = dt
	}
	s.Pos, s.Vel = s.coeffs.Update(s.Pos, s.Vel, target)
	return s.Pos
}

// Settled reports whether the spring rests within eps of target.
func (s *Spring) Settled(target, eps float64) bool {
	return math.Abs(s.Pos-target) < eps && math.Abs(s.Vel) < eps
}

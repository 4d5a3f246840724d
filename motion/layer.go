package motion

// settleEps is the distance in px below which the translation is at rest.
const settleEps = 0.01

// frameStep is the time step assumed for the first tick after a pause.
const frameStep = 1.0 / 60

// Layer holds the pointer-reactive state of one element: a magnetic
// translation smoothed by two springs, and an independent tilt.
type Layer struct {
	cfg  Config
	rect Rect

	targetX, targetY float64
	x, y             *Spring

	tilt    TiltState
	hovered bool

	last float64 // Timestamp of the previous Tick in ms, 0 when idle
}

// NewLayer creates a layer at rest.
func NewLayer(cfg Config) *Layer {
	return &Layer{
		cfg:  cfg,
		x:    NewSpring(cfg.Stiffness, cfg.Damping, cfg.Mass),
		y:    NewSpring(cfg.Stiffness, cfg.Damping, cfg.Mass),
		tilt: Rest,
	}
}

// SetRect updates the element bounds used by the next pointer event.
func (l *Layer) SetRect(r Rect) {
	l.rect = r
}

// PointerMove retargets the springs and recomputes the tilt for a pointer
// at client (px, py). The springs keep their current position and velocity.
func (l *Layer) PointerMove(px, py float64) {
	cx, cy := l.rect.Center()
	l.targetX, l.targetY = MagneticTarget(px-cx, py-cy, l.cfg.Radius, l.cfg.Strength)
	l.tilt = ComputeTilt(l.cfg.Tilt, l.rect, px, py)
	l.hovered = true
}

// PointerLeave sends the translation and the tilt back to rest.
func (l *Layer) PointerLeave() {
	l.targetX, l.targetY = 0, 0
	l.tilt = Rest
	l.hovered = false
}

// Tick advances the springs to timestamp now (ms).
func (l *Layer) Tick(now float64) {
	dt := frameStep
	if l.last > 0 {
		dt = (now - l.last) / 1000
	}
	l.last = now
	l.Step(dt)
	if l.Settled() {
		// Next movement starts with a nominal frame instead of the idle gap.
		l.last = 0
	}
}

// Step advances the springs by dt seconds.
func (l *Layer) Step(dt float64) {
	l.x.Update(dt, l.targetX)
	l.y.Update(dt, l.targetY)
}

// Translation returns the rendered translation in px.
func (l *Layer) Translation() (x, y float64) {
	return l.x.Pos, l.y.Pos
}

// Target returns the translation the springs are tracking.
func (l *Layer) Target() (x, y float64) {
	return l.targetX, l.targetY
}

// Tilt returns the current tilt state.
func (l *Layer) Tilt() TiltState {
	return l.tilt
}

// Hovered reports whether the pointer is over the element.
func (l *Layer) Hovered() bool {
	return l.hovered
}

// Settled reports whether both springs rest on their targets.
func (l *Layer) Settled() bool {
	return l.x.Settled(l.targetX, settleEps) && l.y.Settled(l.targetY, settleEps)
}

// Config returns the layer configuration.
func (l *Layer) Config() Config {
	return l.cfg
}

package motion

import (
	"fmt"
	"math"
)

// Rect is an element's bounding client rect in CSS pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

// Center returns the rect center.
func (r Rect) Center() (x, y float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// TiltState is the rendered output of the tilt layer.
type TiltState struct {
	RotateX      float64 // Degrees
	RotateY      float64 // Degrees
	Scale        float64
	GlareAngle   float64 // Degrees, pointing from the center to the pointer
	GlareOpacity float64
}

// Rest is the state with no pointer over the element.
var Rest = TiltState{Scale: 1}

// ComputeTilt maps a pointer at client (px, py) over r to a tilt state.
// The rotation is proportional to the offset from the center and saturates
// at cfg.Max on the element edges.
func ComputeTilt(cfg TiltConfig, r Rect, px, py float64) TiltState {
	if r.Width <= 0 || r.Height <= 0 {
		return Rest
	}
	x := clamp01((px - r.Left) / r.Width)
	y := clamp01((py - r.Top) / r.Height)

	st := TiltState{
		RotateX: y*cfg.Max*2 - cfg.Max,
		RotateY: cfg.Max - x*cfg.Max*2,
		Scale:   cfg.Scale,
	}
	if st.Scale == 0 {
		st.Scale = 1
	}
	if cfg.Glare {
		cx, cy := r.Center()
		st.GlareAngle = math.Atan2(px-cx, -(py-cy)) * 180 / math.Pi
		st.GlareOpacity = y * cfg.MaxGlare
	}
	return st
}

// Transform returns the CSS transform for the tilted element.
func (t TiltState) Transform(perspective float64) string {
	return fmt.Sprintf("perspective(%gpx) rotateX(%.2fdeg) rotateY(%.2fdeg) scale3d(%g, %g, %g)",
		perspective, t.RotateX, t.RotateY, t.Scale, t.Scale, t.Scale)
}

// GlareTransform returns the CSS transform for the glare overlay.
func (t TiltState) GlareTransform() string {
	return fmt.Sprintf("rotate(%.2fdeg) translate(-50%%, -50%%)", t.GlareAngle)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

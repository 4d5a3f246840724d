package card

import (
	"fmt"
	"time"
)

// Reveal is the entrance animation of a card: fade in while rising from
// OffsetY px below its place.
type Reveal struct {
	Delay    time.Duration
	Duration time.Duration
	OffsetY  float64
	Easing   CubicBezier
}

// DefaultReveal returns the card entrance delayed by delay.
func DefaultReveal(delay time.Duration) Reveal {
	return Reveal{
		Delay:    delay,
		Duration: 800 * time.Millisecond,
		OffsetY:  50,
		Easing:   CubicBezier{0.25, 0.46, 0.45, 0.94},
	}
}

// At returns opacity and vertical offset at elapsed time since mount.
func (r Reveal) At(elapsed time.Duration) (opacity, offsetY float64) {
	t := elapsed - r.Delay
	if t <= 0 {
		return 0, r.OffsetY
	}
	if t >= r.Duration || r.Duration <= 0 {
		return 1, 0
	}
	p := r.Easing.Ease(float64(t) / float64(r.Duration))
	return p, r.OffsetY * (1 - p)
}

// TransformAt returns the CSS transform at elapsed time since mount.
func (r Reveal) TransformAt(elapsed time.Duration) string {
	_, y := r.At(elapsed)
	return fmt.Sprintf("translateY(%.2fpx)", y)
}

// Transition returns the CSS transition for the revealed properties.
func (r Reveal) Transition() string {
	d := r.Duration.Seconds()
	return fmt.Sprintf("opacity %gs %s %gs, transform %gs %s %gs",
		d, r.Easing, r.Delay.Seconds(), d, r.Easing, r.Delay.Seconds())
}

// CubicBezier is a CSS timing function with control points (X1, Y1) and
// (X2, Y2).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

func (c CubicBezier) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", c.X1, c.Y1, c.X2, c.Y2)
}

// Ease maps progress x in [0, 1] to eased progress.
func (c CubicBezier) Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	// Newton on the x polynomial, then bisection if it stalls.
	t := x
	for i := 0; i < 8; i++ {
		dx := bezier(t, c.X1, c.X2) - x
		if dx > -1e-7 && dx < 1e-7 {
			return bezier(t, c.Y1, c.Y2)
		}
		d := bezierSlope(t, c.X1, c.X2)
		if d > -1e-6 && d < 1e-6 {
			break
		}
		t -= dx / d
	}
	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 50; i++ {
		v := bezier(t, c.X1, c.X2)
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezier(t, c.Y1, c.Y2)
}

// bezier evaluates one coordinate of the curve anchored at 0 and 1.
func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

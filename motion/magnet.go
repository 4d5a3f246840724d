package motion

import "math"

// Pull returns the falloff factor for a pointer at distance from the
// element center: 1 at the center, falling linearly to 0 at radius.
func Pull(distance, radius float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return (radius - distance) / radius
}

// MagneticTarget returns the translation target for a pointer offset
// (dx, dy) from the element center.
func MagneticTarget(dx, dy, radius, strength float64) (x, y float64) {
	p := Pull(math.Hypot(dx, dy), radius) * strength
	if p == 0 {
		return 0, 0
	}
	return dx * p, dy * p
}

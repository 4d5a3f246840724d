package particles

// Config describes the particle void.
type Config struct {
	Count  int     // Number of particles
	Bound  float32 // Half-extent of the cube; positions reflect beyond it
	Spread float32 // Edge length of the initial cube
	Speed  float32 // Velocity components are drawn from [-Speed/2, Speed/2)
	Spin   float32 // Rotation about the vertical axis per tick (radians)

	Color     string  // Point color
	PointSize float32 // World-space point size before attenuation
	Opacity   float32

	FOV           float32 // Vertical field of view in degrees
	Near, Far     float32
	CameraZ       float32
	MaxPixelRatio float64
}

// DefaultConfig returns the page's particle void settings.
func DefaultConfig() Config {
	return Config{
		Count:  800,
		Bound:  10,
		Spread: 20,
		Speed:  0.01,
		Spin:   0.0002,

		Color:     "#00AEEF",
		PointSize: 0.05,
		Opacity:   0.6,

		FOV:           75,
		Near:          0.1,
		Far:           1000,
		CameraZ:       5,
		MaxPixelRatio: 2,
	}
}

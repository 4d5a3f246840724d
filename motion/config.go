package motion

// TiltConfig mirrors the vanilla-tilt options used by the cards.
type TiltConfig struct {
	Max         float64 // Maximum rotation in degrees on either axis
	Perspective float64 // CSS perspective in px
	Speed       float64 // Transition duration in ms
	Scale       float64 // Scale while hovered
	Glare       bool
	MaxGlare    float64 // Glare opacity at the bottom edge, 0..1
}

// Config holds the per-element motion parameters.
type Config struct {
	// Magnetic pull
	Radius   float64 // Activation radius in px
	Strength float64 // Translation factor k at the center

	// Spring tracking the pull target
	Stiffness float64
	Damping   float64
	Mass      float64

	Tilt TiltConfig
}

// DefaultTilt returns the card tilt settings.
func DefaultTilt() TiltConfig {
	return TiltConfig{
		Max:         5,
		Perspective: 1000,
		Speed:       400,
		Scale:       1.02,
		Glare:       true,
		MaxGlare:    0.2,
	}
}

// DefaultConfig is used by regular link cards.
func DefaultConfig() Config {
	return Config{
		Radius:    150,
		Strength:  0.15,
		Stiffness: 150,
		Damping:   25,
		Mass:      1,
		Tilt:      DefaultTilt(),
	}
}

// PriorityConfig is used by the full-width priority card: a weaker pull
// and an exactly critically damped spring.
func PriorityConfig() Config {
	cfg := DefaultConfig()
	cfg.Strength = 0.12
	cfg.Stiffness = 156.25
	return cfg
}

package common

// RNG is the random source shared by every effect. Random returns a value in [0, 1).
type RNG interface {
	Random() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Effects take it so that tests can replay exact sequences.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

var _ RNG = (*SeededRNG)(nil)

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random generates the next value using Mulberry32.
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt returns an integer in [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// RandomFloat returns a float in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Signed returns a value in [-1, 1).
func Signed(r RNG) float64 {
	return r.Random()*2 - 1
}

// Centered returns a value in [-span/2, span/2), the shape used for
// particle positions and velocities.
func Centered(r RNG, span float64) float64 {
	return (r.Random() - 0.5) * span
}

// StreamSeed derives an independent seed for one effect from a page seed,
// so that every component draws from its own sequence.
func StreamSeed(pageSeed uint32, stream int) uint32 {
	seed := pageSeed ^ (uint32(stream) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}

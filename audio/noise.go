package audio

import "github.com/simukka/voidpage/common"

// BrownNoise integrates white noise with a leaky integrator:
//
//	out = (last + leak*white) / (1 + leak)
//
// The integrator state stays within [-1, 1]; Next scales it by gain.
type BrownNoise struct {
	rng  common.RNG
	leak float64
	gain float64
	last float64
}

// NewBrownNoise creates a generator drawing white samples from rng.
func NewBrownNoise(rng common.RNG, leak, gain float64) *BrownNoise {
	return &BrownNoise{rng: rng, leak: leak, gain: gain}
}

// Next returns the next amplified sample.
func (b *BrownNoise) Next() float64 {
	white := common.Signed(b.rng)
	b.last = (b.last + b.leak*white) / (1 + b.leak)
	return b.last * b.gain
}

// Fill writes len(dst) samples into dst.
func (b *BrownNoise) Fill(dst []float32) {
	for i := range dst {
		dst[i] = float32(b.Next())
	}
}

// NoiseBuffer renders the drone loop for cfg at sampleRate.
func NoiseBuffer(cfg Config, sampleRate float64, rng common.RNG) []float32 {
	n := int(cfg.NoiseSeconds * sampleRate)
	if n < 1 {
		n = 1
	}
	buf := make([]float32, n)
	NewBrownNoise(rng, cfg.NoiseLeak, cfg.NoiseGain).Fill(buf)
	return buf
}

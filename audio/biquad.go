package audio

import "math"

// Biquad is a second order IIR filter in transposed direct form II.
type Biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
	z1, z2     float64
}

// NewLowpass returns the RBJ cookbook lowpass at cutoff Hz.
func NewLowpass(cutoff, q, sampleRate float64) *Biquad {
	if q <= 0 {
		q = math.Sqrt2 / 2
	}
	if nyquist := sampleRate / 2; cutoff >= nyquist {
		cutoff = nyquist * 0.999
	}
	w0 := 2 * math.Pi * cutoff / sampleRate
	cos, sin := math.Cos(w0), math.Sin(w0)
	alpha := sin / (2 * q)
	a0 := 1 + alpha
	return &Biquad{
		b0: (1 - cos) / 2 / a0,
		b1: (1 - cos) / a0,
		b2: (1 - cos) / 2 / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}

// Process filters one sample.
func (f *Biquad) Process(x float64) float64 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x - f.a1*y + f.z2
	f.z2 = f.b2*x - f.a2*y
	return y
}

// Reset clears the filter state.
func (f *Biquad) Reset() {
	f.z1, f.z2 = 0, 0
}

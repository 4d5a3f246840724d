package audio

import (
	"math"
	"testing"

	"github.com/simukka/voidpage/common"
)

// extremeRNG alternates between the ends of the white noise range.
type extremeRNG struct {
	n int
}

func (r *extremeRNG) Random() float64 {
	r.n++
	if (r.n/1000)%2 == 0 {
		return 0.9999999
	}
	return 0
}

func TestBrownNoise_Bounded(t *testing.T) {
	for _, rng := range []common.RNG{common.NewSeededRNG(3), &extremeRNG{}} {
		b := NewBrownNoise(rng, 0.02, 3.5)
		for i := 0; i < 200000; i++ {
			v := b.Next()
			if math.Abs(v) > 3.5 {
				t.Fatalf("Sample %d out of range: %f", i, v)
			}
		}
	}
}

func TestBrownNoise_Recurrence(t *testing.T) {
	rng := common.NewSeededRNG(11)
	check := common.NewSeededRNG(11)
	b := NewBrownNoise(rng, 0.02, 3.5)

	last := 0.0
	for i := 0; i < 100; i++ {
		white := check.Random()*2 - 1
		last = (last + 0.02*white) / 1.02
		if got := b.Next(); !floatNear(got, last*3.5, 1e-12) {
			t.Fatalf("Sample %d = %f, want %f", i, got, last*3.5)
		}
	}
}

func TestBrownNoise_IsLowFrequency(t *testing.T) {
	b := NewBrownNoise(common.NewSeededRNG(5), 0.02, 3.5)
	const n = 50000
	prev := b.Next()
	var diff, power float64
	for i := 0; i < n; i++ {
		v := b.Next()
		diff += (v - prev) * (v - prev)
		power += v * v
		prev = v
	}
	// White noise would give diff/power near 2.
	if ratio := diff / power; ratio > 0.2 {
		t.Errorf("Expected strongly correlated samples, diff/power = %f", ratio)
	}
}

func TestNoiseBuffer_Length(t *testing.T) {
	buf := NoiseBuffer(AmbientConfig, 44100, common.NewSeededRNG(1))
	if len(buf) != 88200 {
		t.Errorf("Expected 2s at 44.1kHz, got %d samples", len(buf))
	}
}

func TestRamp_ValueAt(t *testing.T) {
	r := Ramp{From: 0, To: 0.02, Start: 1, End: 4}
	tests := []struct {
		at, want float64
	}{
		{0, 0},
		{1, 0},
		{2.5, 0.01},
		{4, 0.02},
		{10, 0.02},
	}
	for _, tt := range tests {
		if got := r.ValueAt(tt.at); !floatNear(got, tt.want, 1e-12) {
			t.Errorf("ValueAt(%f) = %f, want %f", tt.at, got, tt.want)
		}
	}
	if !r.Done(4) || r.Done(3.9) {
		t.Error("Done() boundary mismatch")
	}
	if Hold(0.5).ValueAt(100) != 0.5 {
		t.Error("Expected Hold to keep its value")
	}
}

func TestAutomation_CancelFreezes(t *testing.T) {
	a := NewAutomation(0)
	a.SetValueAtTime(0, 0)
	a.LinearRampToValueAtTime(1, 2)
	a.CancelScheduledValues(1)
	if !floatNear(a.ValueAt(5), 0.5, 1e-12) {
		t.Errorf("Expected the value frozen at 0.5, got %f", a.ValueAt(5))
	}
	a.LinearRampToValueAtTime(0, 3)
	if !floatNear(a.ValueAt(2), 0.25, 1e-12) {
		t.Errorf("Expected the ramp to start from the frozen value, got %f", a.ValueAt(2))
	}
}

func TestLowpass_PassesDCAndAttenuatesHighs(t *testing.T) {
	const rate = 48000.0
	f := NewLowpass(200, math.Sqrt2/2, rate)
	var v float64
	for i := 0; i < 10000; i++ {
		v = f.Process(1)
	}
	if !floatNear(v, 1, 1e-6) {
		t.Errorf("Expected unity DC gain, got %f", v)
	}

	f.Reset()
	peak := 0.0
	for i := 0; i < 48000; i++ {
		out := f.Process(math.Sin(2 * math.Pi * 5000 * float64(i) / rate))
		if i > 4800 && math.Abs(out) > peak {
			peak = math.Abs(out)
		}
	}
	if peak > 0.01 {
		t.Errorf("Expected 5kHz strongly attenuated, peak %f", peak)
	}
}

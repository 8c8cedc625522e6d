package biosignal

import (
	"math/rand"
	"time"
)

// Physiological bounds and sampling policy. These are part of the model,
// not incidental tuning: values outside them are silently clamped.
const (
	MinHeartRateBPM = 30.0
	MaxHeartRateBPM = 200.0

	MinRRIntervalMS = 300.0
	MaxRRIntervalMS = 2000.0

	// MaxRRJumpMS bounds the beat-to-beat change in the RR random walk.
	MaxRRJumpMS = 100.0

	// RR intervals emitted per data point, inclusive range.
	MinRRPerSample = 8
	MaxRRPerSample = 15

	// DefaultTransitionSeconds is the span of a scenario transition.
	DefaultTransitionSeconds = 15
)

// Generator produces synthetic biosignal data. It owns its PRNG state:
// two generators with the same seed and the same call sequence produce
// identical output, and independent generators never interfere.
//
// A Generator is not safe for concurrent use; callers wanting parallel
// generation should create one Generator per goroutine.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded from the wall clock.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed for reproducible output.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// SampleHeartRate draws one heart-rate value from Normal(mean, std) and
// clamps it to the physiological range. A zero std returns the clamped mean.
func (g *Generator) SampleHeartRate(mean, std float64) float64 {
	hr := g.rng.NormFloat64()*std + mean
	return clamp(hr, MinHeartRateBPM, MaxHeartRateBPM)
}

// SampleRRIntervals generates count RR intervals as a bounded random walk.
// Each candidate is drawn from Normal(mean, std); a candidate further than
// MaxRRJumpMS from the previous accepted interval is replaced by
// prev ± uniform(0, MaxRRJumpMS). Accepted values are clamped to the valid
// range, and the clamped value becomes the new walk reference. The first
// reference is mean.
//
// Independent Gaussian draws produce implausibly jittery sequences; the
// jump-limited walk keeps beat-to-beat continuity without a full
// physiological model.
func (g *Generator) SampleRRIntervals(mean, std float64, count int) []float64 {
	intervals := make([]float64, 0, count)
	prev := mean

	for i := 0; i < count; i++ {
		target := g.rng.NormFloat64()*std + mean
		if diff := target - prev; diff > MaxRRJumpMS || diff < -MaxRRJumpMS {
			sign := 1.0
			if g.rng.Intn(2) == 0 {
				sign = -1.0
			}
			target = prev + sign*g.rng.Float64()*MaxRRJumpMS
		}

		interval := clamp(target, MinRRIntervalMS, MaxRRIntervalMS)
		intervals = append(intervals, interval)
		prev = interval
	}

	return intervals
}

// rrCount draws the number of RR intervals for one data point, uniform in
// [MinRRPerSample, MaxRRPerSample].
func (g *Generator) rrCount() int {
	return MinRRPerSample + g.rng.Intn(MaxRRPerSample-MinRRPerSample+1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

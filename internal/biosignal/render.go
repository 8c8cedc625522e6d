package biosignal

import (
	"fmt"
	"math"
	"time"
)

// RenderScenario expands one scenario into a timestamped stream of data
// points. Point i is stamped start + i/SamplesPerSecond seconds; the number
// of RR intervals per point is drawn uniformly from [8, 15]. A zero start
// defaults to the current time. A non-positive sample budget renders an
// empty stream, not an error.
func (g *Generator) RenderScenario(s Scenario, start time.Time) []DataPoint {
	if start.IsZero() {
		start = time.Now()
	}

	totalSamples := int(float64(s.DurationSeconds) * s.SamplesPerSecond)
	if totalSamples <= 0 {
		return nil
	}

	points := make([]DataPoint, 0, totalSamples)
	for i := 0; i < totalSamples; i++ {
		ts := start.Add(durationSeconds(float64(i) / s.SamplesPerSecond))

		hr := g.SampleHeartRate(s.HRMean, s.HRStd)
		rr := g.SampleRRIntervals(s.RRMean, s.RRStd, g.rrCount())

		points = append(points, DataPoint{
			Timestamp:     ts,
			HR:            hr,
			RRIntervalsMS: rr,
			Emotion:       s.Emotion,
			Scenario:      s.Name,
		})
	}

	return points
}

// RenderTransition renders a gradual parameter blend from one scenario to
// another over transitionSeconds points at a fixed 1 Hz (transitions do not
// honor SamplesPerSecond). The interpolation factor runs 0 → 1 across the
// span; with a single point the sample is fully at the target. Points are
// labeled with the composite emotion "from→to" and the completion
// percentage.
func (g *Generator) RenderTransition(from, to Scenario, transitionSeconds int, start time.Time) []DataPoint {
	if start.IsZero() {
		start = time.Now()
	}
	if transitionSeconds <= 0 {
		return nil
	}

	emotion := from.Emotion + "→" + to.Emotion
	points := make([]DataPoint, 0, transitionSeconds)

	for i := 0; i < transitionSeconds; i++ {
		factor := 1.0
		if transitionSeconds > 1 {
			factor = float64(i) / float64(transitionSeconds-1)
		}

		hrMean := lerp(from.HRMean, to.HRMean, factor)
		hrStd := lerp(from.HRStd, to.HRStd, factor)
		rrMean := lerp(from.RRMean, to.RRMean, factor)
		rrStd := lerp(from.RRStd, to.RRStd, factor)

		hr := g.SampleHeartRate(hrMean, hrStd)
		rr := g.SampleRRIntervals(rrMean, rrStd, g.rrCount())

		points = append(points, DataPoint{
			Timestamp:     start.Add(time.Duration(i) * time.Second),
			HR:            hr,
			RRIntervalsMS: rr,
			Emotion:       emotion,
			Scenario:      transitionLabel(factor),
		})
	}

	return points
}

func transitionLabel(factor float64) string {
	return fmt.Sprintf("Transition (%d%%)", int(math.Round(factor*100)))
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// durationSeconds converts fractional seconds to a time.Duration without
// losing sub-second precision.
func durationSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

package biosignal

import "time"

// DataPoint is one sample of the rendered stream: a heart-rate reading plus
// the RR intervals observed in that sampling window.
type DataPoint struct {
	Timestamp time.Time `json:"timestamp"`

	// HR in BPM, clamped to [MinHeartRateBPM, MaxHeartRateBPM].
	HR float64 `json:"hr"`

	// RRIntervalsMS holds 8-15 intervals per point, each clamped to
	// [MinRRIntervalMS, MaxRRIntervalMS]. Never empty.
	RRIntervalsMS []float64 `json:"rr_intervals_ms"`

	// Emotion is the scenario's label, or "A→B" during a transition.
	Emotion string `json:"emotion"`

	// Scenario is the human-readable provenance, e.g. "Calm - Resting"
	// or "Transition (40%)".
	Scenario string `json:"scenario"`
}

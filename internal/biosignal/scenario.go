// Package biosignal generates synthetic heart-rate and RR-interval time
// series for named emotional scenarios. All randomness flows through an
// explicit Generator so a whole session is reproducible from one seed.
package biosignal

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEmotion is returned when a scenario name is not in the
// predefined table.
var ErrUnknownEmotion = errors.New("unknown emotion")

// Scenario describes the statistical signature of one emotional state.
// Scenarios are value types: render calls never mutate them, and the
// predefined table entries are shared read-only.
type Scenario struct {
	Name    string `json:"name" yaml:"name"`
	Emotion string `json:"emotion" yaml:"emotion"`

	// Gaussian parameters for heart rate (BPM) and RR intervals (ms).
	HRMean float64 `json:"hr_mean" yaml:"hr_mean"`
	HRStd  float64 `json:"hr_std" yaml:"hr_std"`
	RRMean float64 `json:"rr_mean" yaml:"rr_mean"`
	RRStd  float64 `json:"rr_std" yaml:"rr_std"`

	DurationSeconds  int     `json:"duration_seconds" yaml:"duration_seconds"`
	SamplesPerSecond float64 `json:"samples_per_second" yaml:"samples_per_second"`
}

// Validate checks the scenario invariants: positive means, non-negative
// standard deviations, and a usable sampling rate.
func (s Scenario) Validate() error {
	if s.Emotion == "" {
		return fmt.Errorf("scenario %q: emotion label is required", s.Name)
	}
	if s.HRMean <= 0 {
		return fmt.Errorf("scenario %q: hr_mean must be > 0, got %v", s.Name, s.HRMean)
	}
	if s.RRMean <= 0 {
		return fmt.Errorf("scenario %q: rr_mean must be > 0, got %v", s.Name, s.RRMean)
	}
	if s.HRStd < 0 {
		return fmt.Errorf("scenario %q: hr_std must be >= 0, got %v", s.Name, s.HRStd)
	}
	if s.RRStd < 0 {
		return fmt.Errorf("scenario %q: rr_std must be >= 0, got %v", s.Name, s.RRStd)
	}
	if s.SamplesPerSecond < 0 {
		return fmt.Errorf("scenario %q: samples_per_second must be >= 0, got %v", s.Name, s.SamplesPerSecond)
	}
	return nil
}

// WithDuration returns a copy of the scenario with DurationSeconds replaced.
// Predefined scenarios are shared; callers must copy-and-override rather
// than mutate them in place.
func (s Scenario) WithDuration(seconds int) Scenario {
	s.DurationSeconds = seconds
	return s
}

// Predefined scenarios, tuned against physiological reference data.
// RR means correspond to the HR means (60000/HR); std encodes HRV
// (calm/amused high, stressed low).
var (
	Calm = Scenario{
		Name:             "Calm - Resting",
		Emotion:          "Calm",
		HRMean:           65.0,
		HRStd:            5.0,
		RRMean:           920.0,
		RRStd:            50.0,
		DurationSeconds:  60,
		SamplesPerSecond: 1.0,
	}

	Stressed = Scenario{
		Name:             "Stressed - Working",
		Emotion:          "Stressed",
		HRMean:           85.0,
		HRStd:            8.0,
		RRMean:           705.0,
		RRStd:            25.0,
		DurationSeconds:  60,
		SamplesPerSecond: 1.0,
	}

	Amused = Scenario{
		Name:             "Amused - Laughing",
		Emotion:          "Amused",
		HRMean:           80.0,
		HRStd:            10.0,
		RRMean:           750.0,
		RRStd:            60.0,
		DurationSeconds:  60,
		SamplesPerSecond: 1.0,
	}
)

var predefined = map[string]Scenario{
	Calm.Emotion:     Calm,
	Stressed.Emotion: Stressed,
	Amused.Emotion:   Amused,
}

// ResolveScenario looks up a predefined scenario by emotion name.
// Unknown names return ErrUnknownEmotion.
func ResolveScenario(emotion string) (Scenario, error) {
	s, ok := predefined[emotion]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownEmotion, emotion, KnownEmotions())
	}
	return s, nil
}

// KnownEmotions returns the predefined emotion names in sorted order.
func KnownEmotions() []string {
	names := make([]string, 0, len(predefined))
	for name := range predefined {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PredefinedScenarios returns the predefined table entries in sorted
// emotion order.
func PredefinedScenarios() []Scenario {
	names := KnownEmotions()
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		out = append(out, predefined[name])
	}
	return out
}

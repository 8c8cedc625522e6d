package mcp

import (
	"github.com/synheart/syndata/internal/biosignal"
)

// ListScenariosInput defines the input for syndata_list_scenarios.
type ListScenariosInput struct{}

// ListScenariosOutput defines the output for syndata_list_scenarios.
type ListScenariosOutput struct {
	Scenarios []ScenarioSummary `json:"scenarios" jsonschema:"Available scenarios"`
	Count     int               `json:"count" jsonschema:"Number of scenarios"`
}

// ScenarioSummary describes one scenario's statistical parameters.
type ScenarioSummary struct {
	Name             string  `json:"name"`
	Emotion          string  `json:"emotion"`
	HRMean           float64 `json:"hr_mean"`
	HRStd            float64 `json:"hr_std"`
	RRMean           float64 `json:"rr_mean"`
	RRStd            float64 `json:"rr_std"`
	DurationSeconds  int     `json:"duration_seconds"`
	SamplesPerSecond float64 `json:"samples_per_second"`
}

// GenerateScenarioInput defines the input for syndata_generate_scenario.
type GenerateScenarioInput struct {
	Emotion         string `json:"emotion" jsonschema:"Emotion scenario name (e.g. 'Calm')"`
	DurationSeconds int    `json:"duration_seconds,omitempty" jsonschema:"Duration in seconds (default from config)"`
	Seed            *int64 `json:"seed,omitempty" jsonschema:"Random seed for reproducible output"`
	StartTime       string `json:"start_time,omitempty" jsonschema:"RFC3339 start timestamp (default: now)"`
}

// GenerateSessionInput defines the input for syndata_generate_session.
type GenerateSessionInput struct {
	Emotions          []string `json:"emotions" jsonschema:"Ordered emotion scenario names"`
	DurationSeconds   int      `json:"duration_seconds,omitempty" jsonschema:"Duration per emotion in seconds (default from config)"`
	Transitions       bool     `json:"transitions,omitempty" jsonschema:"Insert smooth transitions between emotions (default: false)"`
	TransitionSeconds int      `json:"transition_seconds,omitempty" jsonschema:"Transition span in seconds (default 15)"`
	Seed              *int64   `json:"seed,omitempty" jsonschema:"Random seed for reproducible output"`
	StartTime         string   `json:"start_time,omitempty" jsonschema:"RFC3339 start timestamp (default: now)"`
}

// GenerateOutput is the shared output of the generation tools.
type GenerateOutput struct {
	Points  []biosignal.DataPoint `json:"points" jsonschema:"Rendered data points in timestamp order"`
	Count   int                   `json:"count" jsonschema:"Number of data points"`
	Seeded  bool                  `json:"seeded" jsonschema:"Whether a fixed seed was used"`
	HRMin   float64               `json:"hr_min,omitempty" jsonschema:"Minimum HR in the rendered stream"`
	HRMax   float64               `json:"hr_max,omitempty" jsonschema:"Maximum HR in the rendered stream"`
}

package biosignal

import "time"

// sessionGap separates consecutive renders so scenario boundaries never
// share a timestamp.
const sessionGap = time.Second

// RenderSession concatenates the renders of multiple scenarios into one
// time-ordered stream. Each scenario starts one sessionGap after the last
// timestamp of the previous render; a scenario that renders zero points
// leaves the running clock unchanged.
func (g *Generator) RenderSession(scenarios []Scenario, start time.Time) []DataPoint {
	if start.IsZero() {
		start = time.Now()
	}

	var all []DataPoint
	current := start

	for _, s := range scenarios {
		points := g.RenderScenario(s, current)
		all = append(all, points...)

		if len(points) > 0 {
			current = points[len(points)-1].Timestamp.Add(sessionGap)
		}
	}

	return all
}

// RenderSessionWithTransitions is RenderSession with a parameter-blended
// transition inserted between every consecutive pair of scenarios.
// Transitions are chained the same way as scenarios: the next block starts
// one sessionGap after the last emitted timestamp. A non-positive
// transitionSeconds falls back to DefaultTransitionSeconds.
func (g *Generator) RenderSessionWithTransitions(scenarios []Scenario, transitionSeconds int, start time.Time) []DataPoint {
	if start.IsZero() {
		start = time.Now()
	}
	if transitionSeconds <= 0 {
		transitionSeconds = DefaultTransitionSeconds
	}

	var all []DataPoint
	current := start

	for i, s := range scenarios {
		points := g.RenderScenario(s, current)
		all = append(all, points...)
		if len(points) > 0 {
			current = points[len(points)-1].Timestamp.Add(sessionGap)
		}

		if i < len(scenarios)-1 {
			transition := g.RenderTransition(s, scenarios[i+1], transitionSeconds, current)
			all = append(all, transition...)
			if len(transition) > 0 {
				current = transition[len(transition)-1].Timestamp.Add(sessionGap)
			}
		}
	}

	return all
}

// GenerateScenario renders a single predefined emotion for the given
// duration. The predefined entry is copied before the duration override, so
// the shared table is never mutated. Unknown emotions return
// ErrUnknownEmotion.
func (g *Generator) GenerateScenario(emotion string, durationSeconds int, start time.Time) ([]DataPoint, error) {
	s, err := ResolveScenario(emotion)
	if err != nil {
		return nil, err
	}
	return g.RenderScenario(s.WithDuration(durationSeconds), start), nil
}

// GenerateSession renders a session over a list of predefined emotion
// names, each lasting durationPerEmotion seconds, optionally with
// transitions between consecutive emotions. All names are resolved before
// any rendering so a bad name fails without consuming randomness.
func (g *Generator) GenerateSession(emotions []string, durationPerEmotion int, withTransitions bool, start time.Time) ([]DataPoint, error) {
	scenarios := make([]Scenario, 0, len(emotions))
	for _, emotion := range emotions {
		s, err := ResolveScenario(emotion)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s.WithDuration(durationPerEmotion))
	}

	if withTransitions {
		return g.RenderSessionWithTransitions(scenarios, DefaultTransitionSeconds, start), nil
	}
	return g.RenderSession(scenarios, start), nil
}

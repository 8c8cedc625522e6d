package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/synheart/syndata/internal/biosignal"
)

func (s *Server) handleListScenarios(ctx context.Context, req *sdk.CallToolRequest, args ListScenariosInput) (*sdk.CallToolResult, ListScenariosOutput, error) {
	scenarios := biosignal.PredefinedScenarios()
	scenarios = append(scenarios, s.cfg.Scenarios...)

	out := ListScenariosOutput{Count: len(scenarios)}
	for _, sc := range scenarios {
		out.Scenarios = append(out.Scenarios, ScenarioSummary{
			Name:             sc.Name,
			Emotion:          sc.Emotion,
			HRMean:           sc.HRMean,
			HRStd:            sc.HRStd,
			RRMean:           sc.RRMean,
			RRStd:            sc.RRStd,
			DurationSeconds:  sc.DurationSeconds,
			SamplesPerSecond: sc.SamplesPerSecond,
		})
	}
	return nil, out, nil
}

func (s *Server) handleGenerateScenario(ctx context.Context, req *sdk.CallToolRequest, args GenerateScenarioInput) (*sdk.CallToolResult, GenerateOutput, error) {
	scenario, err := s.cfg.ResolveScenario(args.Emotion)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	duration := args.DurationSeconds
	if duration == 0 {
		duration = s.cfg.Generation.DurationSeconds
	}

	start, err := parseStartTime(args.StartTime)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	g := newGenerator(args.Seed)
	points := g.RenderScenario(scenario.WithDuration(duration), start)

	return nil, summarize(points, args.Seed != nil), nil
}

func (s *Server) handleGenerateSession(ctx context.Context, req *sdk.CallToolRequest, args GenerateSessionInput) (*sdk.CallToolResult, GenerateOutput, error) {
	if len(args.Emotions) == 0 {
		return nil, GenerateOutput{}, fmt.Errorf("emotions must not be empty")
	}

	duration := args.DurationSeconds
	if duration == 0 {
		duration = s.cfg.Generation.DurationSeconds
	}

	scenarios := make([]biosignal.Scenario, 0, len(args.Emotions))
	for _, emotion := range args.Emotions {
		sc, err := s.cfg.ResolveScenario(emotion)
		if err != nil {
			return nil, GenerateOutput{}, err
		}
		scenarios = append(scenarios, sc.WithDuration(duration))
	}

	start, err := parseStartTime(args.StartTime)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	g := newGenerator(args.Seed)

	var points []biosignal.DataPoint
	if args.Transitions {
		transitionSeconds := args.TransitionSeconds
		if transitionSeconds == 0 {
			transitionSeconds = s.cfg.Generation.TransitionSeconds
		}
		points = g.RenderSessionWithTransitions(scenarios, transitionSeconds, start)
	} else {
		points = g.RenderSession(scenarios, start)
	}

	return nil, summarize(points, args.Seed != nil), nil
}

func newGenerator(seed *int64) *biosignal.Generator {
	if seed != nil {
		return biosignal.NewSeeded(*seed)
	}
	return biosignal.New()
}

func parseStartTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_time %q: %w", s, err)
	}
	return ts, nil
}

func summarize(points []biosignal.DataPoint, seeded bool) GenerateOutput {
	out := GenerateOutput{
		Points: points,
		Count:  len(points),
		Seeded: seeded,
	}
	for i, p := range points {
		if i == 0 || p.HR < out.HRMin {
			out.HRMin = p.HR
		}
		if i == 0 || p.HR > out.HRMax {
			out.HRMax = p.HR
		}
	}
	return out
}

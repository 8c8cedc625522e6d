package mcp

import (
	"context"
	"errors"
	"reflect"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/synheart/syndata/internal/biosignal"
	"github.com/synheart/syndata/internal/config"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	server, err := NewServer(&ServerConfig{
		Name:    "syndata-test",
		Version: "v0.0.0",
		Config:  config.Default(),
	})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestHandleListScenarios(t *testing.T) {
	server := setupTestServer(t)

	_, out, err := server.handleListScenarios(context.Background(), &sdk.CallToolRequest{}, ListScenariosInput{})
	if err != nil {
		t.Fatalf("handleListScenarios() error = %v", err)
	}

	if out.Count != 3 {
		t.Fatalf("Count = %d, want 3 predefined scenarios", out.Count)
	}
	var emotions []string
	for _, s := range out.Scenarios {
		emotions = append(emotions, s.Emotion)
	}
	if !reflect.DeepEqual(emotions, []string{"Amused", "Calm", "Stressed"}) {
		t.Errorf("emotions = %v, want [Amused Calm Stressed]", emotions)
	}
}

func TestHandleGenerateScenario(t *testing.T) {
	server := setupTestServer(t)
	seed := int64(42)

	args := GenerateScenarioInput{
		Emotion:         "Calm",
		DurationSeconds: 10,
		Seed:            &seed,
		StartTime:       "2026-01-15T09:00:00Z",
	}
	_, out, err := server.handleGenerateScenario(context.Background(), &sdk.CallToolRequest{}, args)
	if err != nil {
		t.Fatalf("handleGenerateScenario() error = %v", err)
	}

	if out.Count != 10 {
		t.Fatalf("Count = %d, want 10", out.Count)
	}
	if !out.Seeded {
		t.Error("Seeded = false, want true")
	}
	for _, p := range out.Points {
		if p.Emotion != "Calm" {
			t.Fatalf("Emotion = %q, want Calm", p.Emotion)
		}
	}
	if out.HRMin < biosignal.MinHeartRateBPM || out.HRMax > biosignal.MaxHeartRateBPM {
		t.Errorf("HR summary [%v, %v] outside physiological bounds", out.HRMin, out.HRMax)
	}

	// Same request, same seed: identical output.
	_, again, err := server.handleGenerateScenario(context.Background(), &sdk.CallToolRequest{}, args)
	if err != nil {
		t.Fatalf("second handleGenerateScenario() error = %v", err)
	}
	if !reflect.DeepEqual(out.Points, again.Points) {
		t.Error("seeded requests returned different data")
	}
}

func TestHandleGenerateScenario_UnknownEmotion(t *testing.T) {
	server := setupTestServer(t)

	_, _, err := server.handleGenerateScenario(context.Background(), &sdk.CallToolRequest{},
		GenerateScenarioInput{Emotion: "Furious"})
	if !errors.Is(err, biosignal.ErrUnknownEmotion) {
		t.Errorf("error = %v, want ErrUnknownEmotion", err)
	}
}

func TestHandleGenerateScenario_BadStartTime(t *testing.T) {
	server := setupTestServer(t)

	_, _, err := server.handleGenerateScenario(context.Background(), &sdk.CallToolRequest{},
		GenerateScenarioInput{Emotion: "Calm", StartTime: "yesterday"})
	if err == nil {
		t.Error("error = nil, want invalid start_time failure")
	}
}

func TestHandleGenerateSession(t *testing.T) {
	server := setupTestServer(t)
	seed := int64(1)

	args := GenerateSessionInput{
		Emotions:        []string{"Calm", "Stressed"},
		DurationSeconds: 5,
		Seed:            &seed,
		StartTime:       "2026-01-15T09:00:00Z",
	}
	_, out, err := server.handleGenerateSession(context.Background(), &sdk.CallToolRequest{}, args)
	if err != nil {
		t.Fatalf("handleGenerateSession() error = %v", err)
	}

	if out.Count != 10 {
		t.Fatalf("Count = %d, want 10", out.Count)
	}
	if out.Points[0].Emotion != "Calm" || out.Points[9].Emotion != "Stressed" {
		t.Errorf("session block labels wrong: first %q, last %q",
			out.Points[0].Emotion, out.Points[9].Emotion)
	}
}

func TestHandleGenerateSession_WithTransitions(t *testing.T) {
	server := setupTestServer(t)
	seed := int64(7)

	args := GenerateSessionInput{
		Emotions:          []string{"Calm", "Amused"},
		DurationSeconds:   5,
		Transitions:       true,
		TransitionSeconds: 4,
		Seed:              &seed,
	}
	_, out, err := server.handleGenerateSession(context.Background(), &sdk.CallToolRequest{}, args)
	if err != nil {
		t.Fatalf("handleGenerateSession() error = %v", err)
	}

	// 2 scenarios x 5 + 1 transition x 4.
	if out.Count != 14 {
		t.Fatalf("Count = %d, want 14", out.Count)
	}

	var sawTransition bool
	for _, p := range out.Points {
		if p.Emotion == "Calm→Amused" {
			sawTransition = true
		}
	}
	if !sawTransition {
		t.Error("no transition points in session output")
	}
}

func TestHandleGenerateSession_EmptyEmotions(t *testing.T) {
	server := setupTestServer(t)

	_, _, err := server.handleGenerateSession(context.Background(), &sdk.CallToolRequest{}, GenerateSessionInput{})
	if err == nil {
		t.Error("error = nil, want empty-emotions failure")
	}
}

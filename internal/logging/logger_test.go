package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"trace", LevelTrace},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_Filtering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("info", &buf)

	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()
	if bytes.Contains([]byte(out), []byte("hidden")) {
		t.Error("debug message logged at info level")
	}
	if !bytes.Contains([]byte(out), []byte("shown")) {
		t.Error("info message missing")
	}
}

func TestNewRunLogger_NilAtInfoLevel(t *testing.T) {
	rl := NewRunLogger(t.TempDir(), "info")
	if rl != nil {
		t.Fatal("NewRunLogger at info level should return nil")
	}

	// Nil receiver is safe.
	rl.Log(map[string]any{"mode": "session"})
	rl.Close()
}

func TestRunLogger_WritesJSONL(t *testing.T) {
	dir := t.TempDir()
	rl := NewRunLogger(dir, "debug")
	if rl == nil {
		t.Fatal("NewRunLogger returned nil at debug level")
	}

	rl.Log(map[string]any{"mode": "scenario", "emotion": "Calm", "points": 60})
	rl.Log(map[string]any{"mode": "session", "emotions": []string{"Calm", "Stressed"}})
	rl.Close()

	f, err := os.Open(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl missing: %v", err)
	}
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
		var record map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines, err)
		}
		if _, ok := record["time"]; !ok {
			t.Errorf("line %d missing time field", lines)
		}
	}
	if lines != 2 {
		t.Errorf("got %d lines, want 2", lines)
	}
}

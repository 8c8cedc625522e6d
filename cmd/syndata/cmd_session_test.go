package main

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
)

func TestSessionCmd_TwoEmotions(t *testing.T) {
	isolateHome(t)
	outDir := t.TempDir()

	out, stderr, err := execute(t,
		"session", "Calm", "Stressed", "--duration", "5", "--seed", "1",
		"--output", outDir, "--formats", "sqlite", "--basename", "session_run",
		"--start", "2026-01-15T09:00:00Z")
	if err != nil {
		t.Fatalf("session error = %v", err)
	}

	if !strings.Contains(out, "Generated 10 data points") {
		t.Errorf("summary missing from output:\n%s", out)
	}
	if !strings.Contains(stderr, "Calm → Stressed") {
		t.Errorf("session banner missing from stderr:\n%s", stderr)
	}

	db, err := sql.Open("sqlite", filepath.Join(outDir, "session_run.db"))
	if err != nil {
		t.Fatalf("failed to open exported database: %v", err)
	}
	defer db.Close()

	for emotion, want := range map[string]int{"Calm": 5, "Stressed": 5} {
		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM data_points WHERE emotion = ?`, emotion).Scan(&count); err != nil {
			t.Fatalf("count query failed: %v", err)
		}
		if count != want {
			t.Errorf("%s rows = %d, want %d", emotion, count, want)
		}
	}
}

func TestSessionCmd_WithTransitions(t *testing.T) {
	isolateHome(t)
	outDir := t.TempDir()

	_, _, err := execute(t,
		"session", "Calm", "Amused", "--duration", "5", "--transitions",
		"--transition-seconds", "4", "--seed", "2",
		"--output", outDir, "--formats", "sqlite", "--basename", "trans_run")
	if err != nil {
		t.Fatalf("session --transitions error = %v", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(outDir, "trans_run.db"))
	if err != nil {
		t.Fatalf("failed to open exported database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM data_points WHERE emotion = 'Calm→Amused'`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 4 {
		t.Errorf("transition rows = %d, want 4", count)
	}
}

func TestSessionCmd_RequiresEmotions(t *testing.T) {
	isolateHome(t)

	_, _, err := execute(t, "session")
	if err == nil {
		t.Error("error = nil, want missing-args failure")
	}
}

func TestSessionCmd_UnknownEmotion(t *testing.T) {
	isolateHome(t)

	_, _, err := execute(t, "session", "Calm", "Melancholy", "--output", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "unknown emotion") {
		t.Errorf("error = %v, want unknown emotion failure", err)
	}
}

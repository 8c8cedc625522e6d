package sink

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/synheart/syndata/internal/biosignal"
)

// sqliteSchema stores one row per data point plus a child row per RR
// interval, so consumers can query either granularity directly.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS data_points (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT NOT NULL,
    hr REAL NOT NULL,
    emotion TEXT NOT NULL,
    scenario TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_points_timestamp ON data_points(timestamp);
CREATE INDEX IF NOT EXISTS idx_points_emotion ON data_points(emotion);

CREATE TABLE IF NOT EXISTS rr_intervals (
    point_id INTEGER NOT NULL REFERENCES data_points(id) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    interval_ms REAL NOT NULL,
    PRIMARY KEY (point_id, seq)
);
`

// SQLiteSink writes the stream into a SQLite database file.
type SQLiteSink struct{}

// Name implements Sink.
func (s *SQLiteSink) Name() string { return "sqlite" }

// Export writes points to dir/basename.db. The whole stream is inserted in
// one transaction; an existing file is appended to, which lets several runs
// accumulate into one database.
func (s *SQLiteSink) Export(ctx context.Context, points []biosignal.DataPoint, dir, basename string) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, basename+".db")

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1) // SQLite works best with single writer

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return "", fmt.Errorf("failed to initialize schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertPoint, err := tx.PrepareContext(ctx, `
		INSERT INTO data_points (timestamp, hr, emotion, scenario)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare point insert: %w", err)
	}
	defer insertPoint.Close()

	insertRR, err := tx.PrepareContext(ctx, `
		INSERT INTO rr_intervals (point_id, seq, interval_ms)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare interval insert: %w", err)
	}
	defer insertRR.Close()

	for _, p := range points {
		res, err := insertPoint.ExecContext(ctx,
			p.Timestamp.UTC().Format(time.RFC3339Nano), p.HR, p.Emotion, p.Scenario)
		if err != nil {
			return "", fmt.Errorf("failed to insert data point: %w", err)
		}
		pointID, err := res.LastInsertId()
		if err != nil {
			return "", fmt.Errorf("failed to resolve point id: %w", err)
		}

		for seq, interval := range p.RRIntervalsMS {
			if _, err := insertRR.ExecContext(ctx, pointID, seq, interval); err != nil {
				return "", fmt.Errorf("failed to insert rr interval: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return path, nil
}

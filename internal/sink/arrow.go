package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/synheart/syndata/internal/biosignal"
)

// ArrowSink writes the stream as an Arrow IPC file: columnar, typed, and
// loadable zero-copy by analysis tooling (pandas/polars read it directly).
type ArrowSink struct{}

// Name implements Sink.
func (s *ArrowSink) Name() string { return "arrow" }

// arrowSchema mirrors the DataPoint wire names. Timestamps are stored as
// microseconds UTC; RR intervals as a list column.
func arrowSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "timestamp", Type: arrow.FixedWidthTypes.Timestamp_us},
		{Name: "hr", Type: arrow.PrimitiveTypes.Float64},
		{Name: "rr_intervals_ms", Type: arrow.ListOf(arrow.PrimitiveTypes.Float64)},
		{Name: "emotion", Type: arrow.BinaryTypes.String},
		{Name: "scenario", Type: arrow.BinaryTypes.String},
	}, nil)
}

// Export writes points to dir/basename.arrow as a single record batch.
func (s *ArrowSink) Export(ctx context.Context, points []biosignal.DataPoint, dir, basename string) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, basename+".arrow")

	mem := memory.NewGoAllocator()
	schema := arrowSchema()

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	tsBuilder := b.Field(0).(*array.TimestampBuilder)
	hrBuilder := b.Field(1).(*array.Float64Builder)
	rrBuilder := b.Field(2).(*array.ListBuilder)
	rrValues := rrBuilder.ValueBuilder().(*array.Float64Builder)
	emotionBuilder := b.Field(3).(*array.StringBuilder)
	scenarioBuilder := b.Field(4).(*array.StringBuilder)

	for _, p := range points {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		tsBuilder.Append(arrow.Timestamp(p.Timestamp.UTC().UnixMicro()))
		hrBuilder.Append(p.HR)
		rrBuilder.Append(true)
		rrValues.AppendValues(p.RRIntervalsMS, nil)
		emotionBuilder.Append(p.Emotion)
		scenarioBuilder.Append(p.Scenario)
	}

	rec := b.NewRecord()
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create arrow file: %w", err)
	}

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err != nil {
		f.Close()
		return "", fmt.Errorf("failed to create ipc writer: %w", err)
	}
	if err := w.Write(rec); err != nil {
		w.Close()
		f.Close()
		return "", fmt.Errorf("failed to write record batch: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to finalize arrow file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close arrow file: %w", err)
	}

	return path, nil
}

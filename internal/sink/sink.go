// Package sink persists rendered biosignal streams to binary on-disk
// formats. Sinks only see the point sequence, an output directory, and a
// basename; they know nothing about how the data was generated.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/synheart/syndata/internal/biosignal"
)

// ErrUnknownFormat is returned for format names with no registered sink.
var ErrUnknownFormat = errors.New("unknown export format")

// Sink writes a rendered point sequence to one output file.
type Sink interface {
	// Name is the format name used on the CLI (e.g. "sqlite").
	Name() string

	// Export writes points to dir/basename.<ext> and returns the path
	// of the written file. The directory is created if needed.
	Export(ctx context.Context, points []biosignal.DataPoint, dir, basename string) (string, error)
}

var registry = map[string]func() Sink{
	"sqlite": func() Sink { return &SQLiteSink{} },
	"arrow":  func() Sink { return &ArrowSink{} },
}

// ForFormats resolves format names to sinks. An unknown name is a hard
// input error naming the supported set.
func ForFormats(names []string) ([]Sink, error) {
	sinks := make([]Sink, 0, len(names))
	for _, name := range names {
		factory, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownFormat, name, Formats())
		}
		sinks = append(sinks, factory())
	}
	return sinks, nil
}

// Formats returns the supported format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

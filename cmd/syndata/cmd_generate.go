package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/synheart/syndata/internal/biosignal"
	"github.com/synheart/syndata/internal/config"
	"github.com/synheart/syndata/internal/logging"
	"github.com/synheart/syndata/internal/sink"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate data for a single emotion scenario",
		Example: `  # 60 seconds of calm data
  syndata generate --emotion Calm --duration 60 --output ./data

  # Reproducible data with a fixed seed
  syndata generate --emotion Amused --seed 42 --output ./data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			emotion, _ := cmd.Flags().GetString("emotion")
			scenario, err := cfg.ResolveScenario(emotion)
			if err != nil {
				return err
			}

			opts, err := exportOptions(cmd, cfg)
			if err != nil {
				return err
			}

			g, seeded := newGenerator(cmd)
			points := g.RenderScenario(scenario.WithDuration(opts.duration), opts.start)

			return exportAndReport(cmd, cfg, points, runMeta{
				mode:     "scenario",
				emotions: []string{emotion},
				seeded:   seeded,
				opts:     opts,
			})
		},
	}

	cmd.Flags().String("emotion", "", "Emotion scenario to generate (e.g. Calm)")
	cmd.MarkFlagRequired("emotion")
	addGenerationFlags(cmd)
	return cmd
}

// addGenerationFlags registers the flags shared by generate and session.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().Int("duration", 0, "Duration in seconds per emotion (default from config)")
	cmd.Flags().Int64("seed", 0, "Random seed for reproducible data")
	cmd.Flags().String("start", "", "RFC3339 start timestamp (default: now)")
	cmd.Flags().StringP("output", "o", "", "Output directory (default from config)")
	cmd.Flags().StringSlice("formats", nil, "Export formats (default from config)")
	cmd.Flags().String("basename", "", "Base name for output files (default from config)")
}

// newGenerator builds a Generator from the --seed flag; reports whether a
// fixed seed was supplied.
func newGenerator(cmd *cobra.Command) (*biosignal.Generator, bool) {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		return biosignal.NewSeeded(seed), true
	}
	return biosignal.New(), false
}

type generationOptions struct {
	duration int
	start    time.Time
	output   string
	basename string
	formats  []string
}

// exportOptions merges flags over config defaults for one generation run.
func exportOptions(cmd *cobra.Command, cfg *config.Config) (generationOptions, error) {
	opts := generationOptions{
		duration: cfg.Generation.DurationSeconds,
		output:   cfg.Generation.Output,
		basename: cfg.Generation.Basename,
		formats:  cfg.Generation.Formats,
	}

	if cmd.Flags().Changed("duration") {
		opts.duration, _ = cmd.Flags().GetInt("duration")
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		opts.output = v
	}
	if v, _ := cmd.Flags().GetString("basename"); v != "" {
		opts.basename = v
	}
	if v, _ := cmd.Flags().GetStringSlice("formats"); len(v) > 0 {
		opts.formats = v
	}
	if v, _ := cmd.Flags().GetString("start"); v != "" {
		start, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return opts, fmt.Errorf("invalid start timestamp %q: %w", v, err)
		}
		opts.start = start
	}

	return opts, nil
}

type runMeta struct {
	mode     string
	emotions []string
	seeded   bool
	opts     generationOptions
}

// exportAndReport runs the configured sinks over the rendered stream,
// records the run, and prints the human or JSON summary.
func exportAndReport(cmd *cobra.Command, cfg *config.Config, points []biosignal.DataPoint, meta runMeta) error {
	log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

	sinks, err := sink.ForFormats(meta.opts.formats)
	if err != nil {
		return err
	}

	written := map[string]string{}
	ctx := context.Background()
	for _, s := range sinks {
		path, err := s.Export(ctx, points, meta.opts.output, meta.opts.basename)
		if err != nil {
			return fmt.Errorf("%s export failed: %w", s.Name(), err)
		}
		written[s.Name()] = path
		log.Debug("exported", "format", s.Name(), "path", path)
	}

	runLog := logging.NewRunLogger(meta.opts.output, cfg.Logging.Level)
	runLog.Log(map[string]any{
		"mode":     meta.mode,
		"emotions": meta.emotions,
		"seeded":   meta.seeded,
		"points":   len(points),
		"formats":  meta.opts.formats,
	})
	runLog.Close()

	log.Info("generation complete",
		"mode", meta.mode,
		"points", len(points),
		"seeded", meta.seeded,
	)

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"mode":   meta.mode,
			"points": len(points),
			"files":  written,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d data points\n", len(points))
	if len(points) > 0 {
		hrMin, hrMax := points[0].HR, points[0].HR
		rrTotal := 0
		for _, p := range points {
			if p.HR < hrMin {
				hrMin = p.HR
			}
			if p.HR > hrMax {
				hrMax = p.HR
			}
			rrTotal += len(p.RRIntervalsMS)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "HR range: %.1f - %.1f BPM, %d RR intervals\n", hrMin, hrMax, rrTotal)
	}
	for name, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s\n", name, path)
	}
	return nil
}

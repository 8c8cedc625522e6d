package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synheart/syndata/internal/biosignal"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session EMOTION...",
		Short: "Generate a session spanning multiple emotion scenarios",
		Example: `  # Session with three emotions, 30 seconds each
  syndata session Calm Stressed Amused --duration 30 --output ./data

  # Smooth transitions between emotions, reproducible
  syndata session Calm Stressed --transitions --seed 7 --output ./data`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			opts, err := exportOptions(cmd, cfg)
			if err != nil {
				return err
			}

			// Resolve every name before rendering so a bad name fails
			// without consuming randomness.
			scenarios := make([]biosignal.Scenario, 0, len(args))
			for _, emotion := range args {
				s, err := cfg.ResolveScenario(emotion)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, s.WithDuration(opts.duration))
			}

			withTransitions, _ := cmd.Flags().GetBool("transitions")
			transitionSeconds, _ := cmd.Flags().GetInt("transition-seconds")
			if transitionSeconds == 0 {
				transitionSeconds = cfg.Generation.TransitionSeconds
			}

			g, seeded := newGenerator(cmd)

			var points []biosignal.DataPoint
			if withTransitions {
				points = g.RenderSessionWithTransitions(scenarios, transitionSeconds, opts.start)
			} else {
				points = g.RenderSession(scenarios, opts.start)
			}

			mode := "session"
			if withTransitions {
				mode = "session+transitions"
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Session: %s\n", strings.Join(args, " → "))

			return exportAndReport(cmd, cfg, points, runMeta{
				mode:     mode,
				emotions: args,
				seeded:   seeded,
				opts:     opts,
			})
		},
	}

	cmd.Flags().Bool("transitions", false, "Insert smooth transitions between emotions")
	cmd.Flags().Int("transition-seconds", 0, "Transition span in seconds (default from config)")
	addGenerationFlags(cmd)
	return cmd
}

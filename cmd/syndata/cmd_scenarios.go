package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/synheart/syndata/internal/biosignal"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List available emotion scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			scenarios := biosignal.PredefinedScenarios()
			scenarios = append(scenarios, cfg.Scenarios...)

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(scenarios)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMOTION\tNAME\tHR (BPM)\tRR (ms)\tDURATION")
			for _, s := range scenarios {
				fmt.Fprintf(w, "%s\t%s\t%.0f±%.0f\t%.0f±%.0f\t%ds\n",
					s.Emotion, s.Name, s.HRMean, s.HRStd, s.RRMean, s.RRStd, s.DurationSeconds)
			}
			return w.Flush()
		},
	}
}

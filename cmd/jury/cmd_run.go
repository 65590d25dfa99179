package main

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/timpalpant/go-jury"
	"github.com/timpalpant/go-jury/metrics"
	"github.com/timpalpant/go-jury/report"
	"github.com/timpalpant/go-jury/sweep"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sweep and write a CSV report",
		Long: `Simulate every (distribution, n) cell of the sweep and write the number
of majority-correct juries per k-policy to
<out-dir>/experiment-<runs>-runs-<timestamp>.csv.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := applyRunFlags(cmd, cfg); err != nil {
				return err
			}

			textfile, _ := cmd.Flags().GetString("metrics-textfile")
			var collector *metrics.Collector
			var obs sweep.Observer
			if textfile != "" {
				collector = metrics.NewCollector()
				obs = collector
			}

			started := time.Now()
			rows, err := sweep.Run(cfg, obs)
			if err != nil {
				return err
			}
			glog.Infof("Simulated %d cells of %d juries in %v", len(rows), cfg.TotalRuns(), time.Since(started))

			path, err := report.Save(cfg.OutputDir, cfg.TotalRuns(), started, jury.PolicyNames(cfg.Policies), rows)
			if err != nil {
				return err
			}

			if collector != nil {
				if err := collector.WriteTextfile(textfile); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().Int("batch-size", 0, "Juries simulated per batch (overrides config)")
	cmd.Flags().Int("iterations", 0, "Batches per (distribution, n) cell (overrides config)")
	cmd.Flags().Int("progress-every", 0, "Log progress every N iterations, 0 to disable (overrides config)")
	cmd.Flags().String("out-dir", "", "Directory for the CSV report (overrides config)")
	cmd.Flags().Uint64("seed", 0, "Random seed, 0 for a random seed (overrides config)")
	cmd.Flags().String("metrics-textfile", "", "Write Prometheus metrics to this file when done")

	return cmd
}

// applyRunFlags copies explicitly set flags over the loaded config.
func applyRunFlags(cmd *cobra.Command, cfg *sweep.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("batch-size") {
		if cfg.BatchSize, err = flags.GetInt("batch-size"); err != nil {
			return err
		}
	}
	if flags.Changed("iterations") {
		if cfg.Iterations, err = flags.GetInt("iterations"); err != nil {
			return err
		}
	}
	if flags.Changed("progress-every") {
		if cfg.ProgressEvery, err = flags.GetInt("progress-every"); err != nil {
			return err
		}
	}
	if flags.Changed("out-dir") {
		if cfg.OutputDir, err = flags.GetString("out-dir"); err != nil {
			return err
		}
	}
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrank/experiment"
	"github.com/katalvlaran/lvrank/report"
)

var runCmd = &cobra.Command{
	Use:   "run [edges-file|-]",
	Short: "Run the full experiment: power iteration, Monte Carlo per walk count, top-K error",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	addModelFlags(runCmd)
	runCmd.Flags().IntSlice("walks", []int{1, 3, 5}, "walks per node for each Monte Carlo run")
	runCmd.Flags().IntSlice("top-k", []int{10, 30, 50, 100}, "K values for the top-K error")
	runCmd.Flags().String("order", "approx", "vector that ranks nodes for top-K: approx, exact")
	runCmd.Flags().StringP("format", "f", "text", "output format: text, json, log")
	bindOnRun(runCmd, modelFlags, map[string]string{
		"walks":  "walks",
		"top-k":  "top_k",
		"order":  "order",
		"format": "output.format",
	})

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := cfg.Logger()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Info().Int64("seed", cfg.Seed).Msg("no seed configured, using time-based seed")
	}

	rep, err := report.New(cfg.Output.Format, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	src, closer, err := openEdges(cmd, args)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &experiment.Runner{Config: cfg, Logger: logger, Reporter: rep}
	_, err = r.RunContext(ctx, src)
	return err
}

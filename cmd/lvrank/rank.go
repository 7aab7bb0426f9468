// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/montecarlo"
	"github.com/katalvlaran/lvrank/power"
	"github.com/katalvlaran/lvrank/topk"
)

const (
	methodPower      = "power"
	methodMonteCarlo = "montecarlo"
)

var errUnknownMethod = errors.New("unknown method")

var rankCmd = &cobra.Command{
	Use:   "rank [edges-file|-]",
	Short: "Print the top nodes of one rank vector",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRank,
}

func init() {
	addModelFlags(rankCmd)
	rankCmd.Flags().String("method", methodPower, "solver: power, montecarlo")
	rankCmd.Flags().Int("walks", 5, "walks per node for montecarlo")
	rankCmd.Flags().Int("top", 10, "number of nodes to print (0 = all)")
	bindOnRun(rankCmd, modelFlags)

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := cfg.Logger()
	method, _ := cmd.Flags().GetString("method")
	walks, _ := cmd.Flags().GetInt("walks")
	top, _ := cmd.Flags().GetInt("top")

	src, closer, err := openEdges(cmd, args)
	if err != nil {
		return err
	}
	defer closer.Close()

	t, err := matrix.Build(src, cfg.Nodes, cfg.MatrixOptions()...)
	if err != nil {
		return err
	}

	start := time.Now()
	var rank []float64
	switch method {
	case methodPower:
		res, err := power.Solve(t, cfg.PowerOptions())
		if err != nil {
			return err
		}
		rank = res.Rank
	case methodMonteCarlo:
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s, err := montecarlo.NewSampler(t, cfg.SamplerOptions(seed)...)
		if err != nil {
			return err
		}
		est, err := s.Estimate(walks)
		if err != nil {
			return err
		}
		rank = est.Rank
		logger.Debug().Int64("seed", seed).Int64("steps", est.Steps).Msg("sampled")
	default:
		return fmt.Errorf("--method %q: %w", method, errUnknownMethod)
	}
	logger.Debug().Str("method", method).Dur("elapsed", time.Since(start)).Msg("rank computed")

	order := topk.Order(rank)
	if top <= 0 || top > len(order) {
		top = len(order)
	}
	out := cmd.OutOrStdout()
	for pos, i := range order[:top] {
		fmt.Fprintf(out, "%d\t%d\t%.6f\n", pos+1, i+1, rank[i])
	}
	return nil
}

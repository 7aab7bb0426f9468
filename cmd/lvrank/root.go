// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrank/config"
	"github.com/katalvlaran/lvrank/edgelist"
)

// v holds the merged configuration for every subcommand.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:           "lvrank",
	Short:         "Exact and Monte Carlo PageRank with top-K error",
	Long:          "lvrank builds the column-stochastic link matrix of a directed edge list, solves PageRank by power iteration and compares it against random-walk estimates.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .lvrank.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".lvrank")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	// It's fine if no config file is found; we use defaults.
	_ = v.ReadInConfig()
}

// loadConfig merges all layers and validates the result.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openEdges returns a Source over the file named by args[0], or stdin for
// no argument or "-". The returned closer must be called when done.
func openEdges(cmd *cobra.Command, args []string) (edgelist.Source, io.Closer, error) {
	if len(args) == 0 || args[0] == "-" {
		return edgelist.NewReader(cmd.InOrStdin()), io.NopCloser(nil), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open edge list: %w", err)
	}
	return edgelist.NewReader(f), f, nil
}

// bindFlags ties a command's flags to config keys. Unset flags fall back to
// config file, environment and defaults in that order.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for flag, key := range keys {
		_ = v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

// modelFlags maps flags shared by run and rank to config keys.
var modelFlags = map[string]string{
	"nodes":       "nodes",
	"iterations":  "iterations",
	"teleport":    "teleport",
	"tolerance":   "tolerance",
	"seed":        "seed",
	"workers":     "workers",
	"dangling":    "dangling",
	"duplicates":  "duplicates",
	"start-visit": "start_visit",
}

// addModelFlags registers the flags in modelFlags on cmd. Defaults shown in
// help mirror config.SetDefaults; the effective value comes from viper.
func addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("nodes", "n", 100, "number of nodes N (ids 1..N)")
	f.Int("iterations", 40, "power-iteration steps")
	f.Float64("teleport", 0.2, "teleportation probability τ")
	f.Float64("tolerance", 0, "stop power iteration once the L1 step change drops below this (0 = off)")
	f.Int64("seed", 0, "base seed (0 = time-based)")
	f.Int("workers", 1, "parallel random-walk workers")
	f.String("dangling", "uniform", "dangling-node policy: uniform, absorb, reject")
	f.String("duplicates", "collapse", "duplicate-edge policy: collapse, reject")
	f.Bool("start-visit", true, "count the start node of every walk")
}

// bindOnRun binds keys just before cmd runs, so commands sharing a key do
// not overwrite each other's binding.
func bindOnRun(cmd *cobra.Command, keys ...map[string]string) {
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		for _, m := range keys {
			bindFlags(cmd, m)
		}
	}
}

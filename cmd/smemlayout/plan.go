package main

import (
	"fmt"
	"io"

	"github.com/QuangTung97/smemlayout"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPlanCmd())
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Compute chunk offsets and pool sizes",
		Long: `The plan command loads a pool description and prints, for every pool,
the offset, end, size and alignment of each chunk and the total size the
pool must be allocated with.

Example:
  smemlayout plan kernel.yaml
  smemlayout plan kernel.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

func loadPlanner(path string) (*smemlayout.Planner, error) {
	confs, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}
	planner, err := smemlayout.NewPlanner(confs...)
	if err != nil {
		return nil, fmt.Errorf("invalid pool description %s: %w", path, err)
	}
	return planner, nil
}

func runPlan(w io.Writer, args []string) error {
	planner, err := loadPlanner(args[0])
	if err != nil {
		return err
	}

	reports := buildReport(planner)

	if jsonOut {
		return printJSON(w, reports)
	}

	if quiet {
		return nil
	}
	renderText(w, reports, useColor(w))
	return nil
}

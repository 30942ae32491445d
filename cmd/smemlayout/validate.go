package main

import (
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a pool description without printing the plan",
		Long: `The validate command loads a pool description and reports the first
configuration error, such as an alignment that is not a power of two, a
negative size or a duplicated chunk name. It exits with a non-zero status
when the description is invalid.

Example:
  smemlayout validate kernel.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

type validateResult struct {
	File  string `json:"file"`
	Pools int    `json:"pools"`
	Valid bool   `json:"valid"`
}

func runValidate(w io.Writer, args []string) error {
	planner, err := loadPlanner(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(w, validateResult{
			File:  args[0],
			Pools: len(planner.Pools()),
			Valid: true,
		})
	}

	printInfo(w, "%s: %d pool(s) OK\n", args[0], len(planner.Pools()))
	return nil
}

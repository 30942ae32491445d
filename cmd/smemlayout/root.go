package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/QuangTung97/smemlayout/allocator"
	"github.com/QuangTung97/smemlayout/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "smemlayout",
	Short: "Plan chunk offsets inside fixed-capacity scratch pools",
	Long: `smemlayout reads a YAML description of one or more memory pools and
computes the offset of every chunk and the total size each pool needs.

Chunks are packed in declaration order and aligned individually. A chunk
marked aliasFirst starts at the first chunk's offset and reuses its space.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 when the pool description could not be read or decoded and
// 1 for every other failure, including an invalid layout.
func exitCode(err error) int {
	if errors.IsPhase(err, errors.PhaseLoad) {
		return 2
	}
	return 1
}

func setupLogger() error {
	if !verbose {
		allocator.SetLogger(zap.NewNop())
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	allocator.SetLogger(l)
	return nil
}

// useColor reports whether text output to w should be styled
func useColor(w io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printInfo prints an info message if not in quiet mode
func printInfo(w io.Writer, format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Package cmd implements the lisa command line interface.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lisa",
		Short: "LISA gravitational wave sensitivity curve calculator",
		Long: `lisa evaluates the analytic LISA strain sensitivity model (instrument noise
plus galactic confusion noise) on a log-spaced grid from 1e-5 Hz to 1 Hz for
an observation time of 6mo, 1yr, 2yr or 4yr, and renders it as a chart or
exports it as a table.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(verbose)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewPlotCmd())
	cmd.AddCommand(NewDataCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func setupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.InfoLevel)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

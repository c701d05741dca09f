package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnkushinDaniil/lisa/app"
	"github.com/AnkushinDaniil/lisa/entity/mode"
)

// NewDataCmd creates the data command.
func NewDataCmd() *cobra.Command {
	o := &options{
		mode:   mode.Total.String(),
		format: "csv",
		output: app.Stdout,
	}
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export the frequency and strain arrays",
		Long: `Export the frequency grid and the characteristic strain of every requested
observation time as a table. Formats: csv, json, md.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := o.load(cmd)
			if err != nil {
				return err
			}
			if params.Format.IsChart() {
				return fmt.Errorf("format %s is a chart, use the plot command", params.Format)
			}
			a := app.New(o.output, params)
			a.Stdout = cmd.OutOrStdout()
			return a.Run(cmd.Context())
		},
	}

	o.addFlags(cmd)

	return cmd
}

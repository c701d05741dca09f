package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnkushinDaniil/lisa/app"
	"github.com/AnkushinDaniil/lisa/entity/mode"
	"github.com/AnkushinDaniil/lisa/entity/parameters"
)

// NewPlotCmd creates the plot command.
func NewPlotCmd() *cobra.Command {
	o := &options{
		mode:   mode.Total.String(),
		format: "html",
	}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the sensitivity curve as a log-log chart",
		Long: `Render the characteristic strain sensitivity curve as a log-log chart with
fixed axis bounds (1e-5..1 Hz, 3e-22..1e-14). One curve is drawn per
observation time. Formats: html (interactive), png, svg.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := o.load(cmd)
			if err != nil {
				return err
			}
			if !params.Format.IsChart() {
				return fmt.Errorf("format %s cannot be plotted, use the data command", params.Format)
			}
			output := o.output
			if output == "" {
				output = "sensitivity." + params.Format.String()
			}
			a := app.New(output, params)
			a.Stdout = cmd.OutOrStdout()
			return a.Run(cmd.Context())
		},
	}

	o.addFlags(cmd)
	cmd.Flags().StringVarP(&o.mode, "mode", "m", o.mode, "Chart mode: t (total) or c (total and noise components)")
	cmd.Flags().Float64Var(&o.width, "width", parameters.DefaultWidth, "Figure width in inches (png, svg)")
	cmd.Flags().Float64Var(&o.height, "height", parameters.DefaultHeight, "Figure height in inches (png, svg)")

	return cmd
}

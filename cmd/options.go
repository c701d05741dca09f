package cmd

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AnkushinDaniil/lisa/entity/duration"
	"github.com/AnkushinDaniil/lisa/entity/parameters"
)

// options holds the flags shared by plot and data.
type options struct {
	durations []string
	mode      string
	format    string
	output    string
	config    string
	width     float64
	height    float64
}

func (o *options) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVarP(&o.durations, "duration", "d", []string{duration.Default.String()},
		"Observation time: 6mo, 1yr, 2yr or 4yr (repeatable)")
	f.StringVarP(&o.format, "format", "f", o.format, "Output format")
	f.StringVarP(&o.output, "output", "o", o.output, "Output file, - for stdout")
	f.StringVarP(&o.config, "config", "c", "", "Path to YAML config file (default ./"+parameters.DefaultConfigFile+")")
}

// load applies the config file to every flag not set on the command line
// and returns the parsed parameters.
func (o *options) load(cmd *cobra.Command) (*parameters.Parameters, error) {
	if err := o.applyConfigFile(cmd); err != nil {
		return nil, err
	}

	params, err := parameters.New(o.durations, o.mode, o.format)
	if err != nil {
		return nil, err
	}
	if o.width > 0 {
		params.Width = o.width
	}
	if o.height > 0 {
		params.Height = o.height
	}
	return params, nil
}

func (o *options) applyConfigFile(cmd *cobra.Command) error {
	path := parameters.FindConfigFile(o.config)
	if path == "" {
		if o.config != "" {
			return fmt.Errorf("%w: %s", parameters.ErrConfigNotFound, o.config)
		}
		return nil
	}

	file, err := parameters.LoadConfigFile(path)
	if err != nil {
		if errors.Is(err, parameters.ErrConfigNotFound) {
			return fmt.Errorf("%w: %s", err, path)
		}
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	log.WithField("path", path).Debug("Config file loaded")

	flags := cmd.Flags()
	if !flags.Changed("duration") && len(file.Durations) > 0 {
		o.durations = file.Durations
	}
	if flags.Lookup("mode") != nil && !flags.Changed("mode") && file.Mode != "" {
		o.mode = file.Mode
	}
	if !flags.Changed("format") && file.Format != "" {
		o.format = file.Format
	}
	if !flags.Changed("output") && file.Output != "" {
		o.output = file.Output
	}
	if !flags.Changed("width") && file.Width > 0 {
		o.width = file.Width
	}
	if !flags.Changed("height") && file.Height > 0 {
		o.height = file.Height
	}
	if !flags.Changed("verbose") && file.Verbose {
		setupLogging(true)
	}
	return nil
}

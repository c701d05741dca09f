package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/AnkushinDaniil/lisa/entity"
	"github.com/AnkushinDaniil/lisa/entity/duration"
	"github.com/AnkushinDaniil/lisa/entity/format"
	"github.com/AnkushinDaniil/lisa/entity/parameters"
)

// Stdout is the Output value that writes to App.Stdout instead of a file.
const Stdout = "-"

type App struct {
	Output string
	Params *parameters.Parameters
	Stdout io.Writer
}

func New(output string, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		Params: params,
		Stdout: os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output":    a.Output,
		"durations": a.Params.Durations,
		"mode":      a.Params.Mode,
		"format":    a.Params.Format,
	}).Debug("App started")

	curves, err := Curves(ctx, a.Params.Durations)
	if err != nil {
		return fmt.Errorf("failed to compute sensitivity: %w", err)
	}

	w, closeOutput, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOutput()

	renderTime := time.Now()
	if err := a.write(w, curves); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.Params.Format, err)
	}
	log.WithFields(log.Fields{
		"time":   time.Since(renderTime),
		"format": a.Params.Format,
		"output": a.Output,
	}).Info("Sensitivity written")

	return nil
}

// Curves computes one sensitivity curve per duration, each in its own
// goroutine. The result keeps the order of durations.
func Curves(ctx context.Context, durations []duration.Duration) ([]*entity.Sensitivity, error) {
	if len(durations) == 0 {
		return nil, fmt.Errorf("%w: no observation time selected", duration.ErrInvalidConfiguration)
	}

	curves := make([]*entity.Sensitivity, len(durations))
	g, ctx := errgroup.WithContext(ctx)
	for i, d := range durations {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			startTime := time.Now()
			curve, err := entity.NewSensitivityFor(d)
			if err != nil {
				return err
			}
			curves[i] = curve
			log.WithFields(log.Fields{
				"duration": d,
				"time":     time.Since(startTime),
			}).Debug("Curve computed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return curves, nil
}

func (a *App) write(w io.Writer, curves []*entity.Sensitivity) error {
	switch a.Params.Format {
	case format.HTML:
		line := createChart(curves, a.Params.Mode)
		log.Info("Chart created")
		return line.Render(w)
	case format.Png, format.Svg:
		return writeFigure(w, curves, a.Params)
	case format.Csv:
		return writeCSV(w, curves)
	case format.JSON:
		return writeJSON(w, curves)
	case format.Markdown:
		return writeMarkdown(w, curves)
	default:
		return fmt.Errorf("unsupported format: %s", a.Params.Format)
	}
}

func (a *App) openOutput() (io.Writer, func(), error) {
	if a.Output == "" || a.Output == Stdout {
		return a.Stdout, func() {}, nil
	}
	f, err := os.Create(a.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close output")
		}
	}, nil
}

func title(curves []*entity.Sensitivity) string {
	labels := make([]string, len(curves))
	for i, c := range curves {
		labels[i] = c.Duration().String()
	}
	return fmt.Sprintf("LISA Sensitivity Curve (%s)", strings.Join(labels, ", "))
}

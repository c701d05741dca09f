package parameters

import (
	"fmt"

	"github.com/AnkushinDaniil/lisa/entity/duration"
	"github.com/AnkushinDaniil/lisa/entity/format"
	"github.com/AnkushinDaniil/lisa/entity/mode"
)

const (
	DefaultWidth  = 10.0 // inches
	DefaultHeight = 6.0  // inches
)

type Parameters struct {
	Mode      mode.Mode
	Format    format.Format
	Durations []duration.Duration
	Width     float64
	Height    float64
}

// New parses command line or config file values into Parameters.
// An empty label list selects the default observation time.
func New(labels []string, modeText, formatText string) (*Parameters, error) {
	m, err := mode.UnmarshalText(modeText)
	if err != nil {
		return nil, err
	}
	f, err := format.UnmarshalText(formatText)
	if err != nil {
		return nil, err
	}
	durations, err := parseDurations(labels)
	if err != nil {
		return nil, err
	}
	return &Parameters{
		Mode:      m,
		Format:    f,
		Durations: durations,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
	}, nil
}

func parseDurations(labels []string) ([]duration.Duration, error) {
	if len(labels) == 0 {
		return []duration.Duration{duration.Default}, nil
	}
	seen := make(map[duration.Duration]bool, len(labels))
	durations := make([]duration.Duration, 0, len(labels))
	for _, label := range labels {
		d, err := duration.UnmarshalText(label)
		if err != nil {
			return nil, fmt.Errorf("failed to parse durations: %w", err)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		durations = append(durations, d)
	}
	return durations, nil
}

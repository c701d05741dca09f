package entity

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AnkushinDaniil/lisa/entity/duration"
	"github.com/AnkushinDaniil/lisa/entity/noise"
)

// Sensitivity is the LISA characteristic strain curve for one observation
// time. It is computed once by the constructor and never changes.
type Sensitivity struct {
	name         string
	duration     duration.Duration
	frequencies  []float64
	instrumental []float64
	confusion    []float64
	strain       []float64
}

// NewSensitivity parses an observation time label ("6mo", "1yr", "2yr" or
// "4yr") and computes its curve.
func NewSensitivity(label string) (*Sensitivity, error) {
	d, err := duration.UnmarshalText(label)
	if err != nil {
		return nil, err
	}
	return NewSensitivityFor(d)
}

func NewSensitivityFor(d duration.Duration) (*Sensitivity, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: unknown observation time %s", duration.ErrInvalidConfiguration, d)
	}

	f := noise.Grid()
	instrumental := noise.Instrumental(f)
	confusion := noise.Confusion(f, d.Fit())

	return &Sensitivity{
		name:         fmt.Sprintf("LISA Sensitivity (%s)", d),
		duration:     d,
		frequencies:  f,
		instrumental: instrumental,
		confusion:    confusion,
		strain:       noise.Strain(instrumental, confusion),
	}, nil
}

func NewDefaultSensitivity() *Sensitivity {
	s, _ := NewSensitivityFor(duration.Default)
	return s
}

func (s *Sensitivity) Name() string {
	return s.name
}

func (s *Sensitivity) Duration() duration.Duration {
	return s.duration
}

// Data returns the frequency grid and the strain curve. The slices are
// shared with the model and must not be modified.
func (s *Sensitivity) Data() (frequencies, strain []float64) {
	return s.frequencies, s.strain
}

func (s *Sensitivity) Frequencies() []float64 {
	return s.frequencies
}

func (s *Sensitivity) Strain() []float64 {
	return s.strain
}

// Instrumental returns the instrument noise PSD the curve was built from.
func (s *Sensitivity) Instrumental() []float64 {
	return s.instrumental
}

// Confusion returns the galactic confusion noise PSD the curve was built from.
func (s *Sensitivity) Confusion() []float64 {
	return s.confusion
}

// LineData returns [frequency, strain] pairs for a chart with a value or log
// x axis.
func (s *Sensitivity) LineData() []opts.LineData {
	return pairs(s.frequencies, s.strain)
}

// Components returns the strain of each noise source alone. Bins where a
// source vanishes are left out so the series stay drawable on a log axis.
func (s *Sensitivity) Components() (instrumental, confusion []opts.LineData) {
	return positivePairs(s.frequencies, s.instrumental), positivePairs(s.frequencies, s.confusion)
}

func pairs(x, y []float64) []opts.LineData {
	data := make([]opts.LineData, len(x))
	for i := range x {
		data[i] = opts.LineData{Value: []float64{x[i], y[i]}}
	}
	return data
}

func positivePairs(x, psd []float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(x))
	for i := range x {
		if psd[i] > 0 {
			data = append(data, opts.LineData{Value: []float64{x[i], math.Sqrt(psd[i])}})
		}
	}
	return data
}

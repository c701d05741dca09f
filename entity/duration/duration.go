package duration

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is returned when an observation time is not one of
// the supported labels.
var ErrInvalidConfiguration = errors.New("invalid configuration")

type Duration uint8

const (
	SixMonths Duration = iota
	OneYear
	TwoYears
	FourYears
)

const Default = OneYear

// Fit holds the galactic confusion noise fit for one observation time.
type Fit struct {
	Alpha float64
	Beta  float64
	Kappa float64
	Gamma float64
	FKnee float64
}

var labels = [...]string{
	SixMonths: "6mo",
	OneYear:   "1yr",
	TwoYears:  "2yr",
	FourYears: "4yr",
}

var fits = [...]Fit{
	SixMonths: {Alpha: 0.133, Beta: 243, Kappa: 482, Gamma: 917, FKnee: 0.00258},
	OneYear:   {Alpha: 0.171, Beta: 292, Kappa: 1020, Gamma: 1680, FKnee: 0.00215},
	TwoYears:  {Alpha: 0.165, Beta: 299, Kappa: 611, Gamma: 1340, FKnee: 0.00173},
	FourYears: {Alpha: 0.138, Beta: -221, Kappa: 521, Gamma: 1680, FKnee: 0.00113},
}

func UnmarshalText(text string) (Duration, error) {
	switch text {
	case "6mo":
		return SixMonths, nil
	case "1yr":
		return OneYear, nil
	case "2yr":
		return TwoYears, nil
	case "4yr":
		return FourYears, nil
	default:
		return 0, fmt.Errorf("%w: invalid observation time %q, choose from %s",
			ErrInvalidConfiguration, text, strings.Join(Labels(), ", "))
	}
}

func (d Duration) Valid() bool {
	return int(d) < len(labels)
}

func (d Duration) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Duration(%d)", uint8(d))
	}
	return labels[d]
}

// Fit returns the confusion noise constants. It panics on an invalid value,
// callers check Valid first.
func (d Duration) Fit() Fit {
	return fits[d]
}

func All() []Duration {
	return []Duration{SixMonths, OneYear, TwoYears, FourYears}
}

func Labels() []string {
	return append([]string(nil), labels[:]...)
}

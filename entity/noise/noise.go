// Package noise evaluates the analytic LISA noise model over a frequency grid.
package noise

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/lisa/entity/duration"
)

const (
	ArmLength          = 2.5e9    // meters
	TransferFrequency  = 19.09e-3 // Hz
	ConfusionAmplitude = 9e-45

	MinFrequency = 1e-5 // Hz
	MaxFrequency = 1.0  // Hz
	GridSize     = 1000

	// ExponentBound clamps the confusion exponent before exponentiation.
	ExponentBound = 100.0
)

// Grid returns GridSize log-spaced frequencies from MinFrequency to
// MaxFrequency inclusive.
func Grid() []float64 {
	f := floats.Span(make([]float64, GridSize), math.Log10(MinFrequency), math.Log10(MaxFrequency))
	for i := range f {
		f[i] = math.Pow(10, f[i])
	}
	f[0], f[GridSize-1] = MinFrequency, MaxFrequency
	return f
}

// Instrumental returns the transfer-normalized instrument noise PSD.
func Instrumental(f []float64) []float64 {
	s := make([]float64, len(f))
	for i, x := range f {
		oms := math.Pow(1.5e-11, 2) * (1 + math.Pow(2e-3/x, 4))
		acc := math.Pow(3e-15, 2) * (1 + math.Pow(0.4e-3/x, 2)) * (1 + math.Pow(x/8e-3, 4))
		c := math.Cos(x / TransferFrequency)
		pn := (oms + 2*(1+c*c)*acc/math.Pow(2*math.Pi*x, 4)) / (ArmLength * ArmLength)
		t := 3. / 20. / (1. + 6./10.*math.Pow(x/TransferFrequency, 2)) * 2
		s[i] = pn / t
	}
	return s
}

// Confusion returns the galactic confusion noise PSD for the given fit.
// NaN elements are replaced with zero.
func Confusion(f []float64, fit duration.Fit) []float64 {
	s := make([]float64, len(f))
	for i, x := range f {
		e := math.Exp(Clamp(-x*fit.Alpha+fit.Beta*x*math.Sin(fit.Kappa*x), -ExponentBound, ExponentBound))
		h := math.Tanh(fit.Gamma * (fit.FKnee - x))
		v := ConfusionAmplitude * math.Pow(x, -7./3.) * (1 + h) * e
		if math.IsNaN(v) {
			v = 0
		}
		s[i] = v
	}
	return s
}

// Strain sums both PSDs and returns the characteristic strain.
func Strain(instrumental, confusion []float64) []float64 {
	h := floats.AddTo(make([]float64, len(instrumental)), instrumental, confusion)
	for i := range h {
		h[i] = math.Sqrt(h[i])
	}
	return h
}

func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	return math.Max(lo, math.Min(hi, x))
}

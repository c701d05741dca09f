package duration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/lisa/entity/duration"
)

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want duration.Duration
	}{
		{"6mo", duration.SixMonths},
		{"1yr", duration.OneYear},
		{"2yr", duration.TwoYears},
		{"4yr", duration.FourYears},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got, err := duration.UnmarshalText(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}
}

func TestUnmarshalTextInvalid(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"3yr", "", "1YR", " 1yr", "1 year", "6months"} {
		_, err := duration.UnmarshalText(text)
		require.Error(t, err, "label %q", text)
		assert.ErrorIs(t, err, duration.ErrInvalidConfiguration)
	}
}

func TestFit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    duration.Duration
		want duration.Fit
	}{
		{duration.SixMonths, duration.Fit{Alpha: 0.133, Beta: 243, Kappa: 482, Gamma: 917, FKnee: 0.00258}},
		{duration.OneYear, duration.Fit{Alpha: 0.171, Beta: 292, Kappa: 1020, Gamma: 1680, FKnee: 0.00215}},
		{duration.TwoYears, duration.Fit{Alpha: 0.165, Beta: 299, Kappa: 611, Gamma: 1340, FKnee: 0.00173}},
		{duration.FourYears, duration.Fit{Alpha: 0.138, Beta: -221, Kappa: 521, Gamma: 1680, FKnee: 0.00113}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Fit(), tt.d.String())
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, d := range duration.All() {
		assert.True(t, d.Valid(), d.String())
	}
	invalid := duration.Duration(42)
	assert.False(t, invalid.Valid())
	assert.Equal(t, "Duration(42)", invalid.String())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, duration.OneYear, duration.Default)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	labels := duration.Labels()
	assert.Equal(t, []string{"6mo", "1yr", "2yr", "4yr"}, labels)

	labels[0] = "changed"
	assert.Equal(t, "6mo", duration.SixMonths.String())
}

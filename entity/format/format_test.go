package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/lisa/entity/format"
)

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		want  format.Format
		chart bool
	}{
		{"html", format.HTML, true},
		{"png", format.Png, true},
		{"svg", format.Svg, true},
		{"csv", format.Csv, false},
		{"json", format.JSON, false},
		{"md", format.Markdown, false},
		{"markdown", format.Markdown, false},
	}
	for _, tt := range tests {
		got, err := format.UnmarshalText(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.chart, got.IsChart(), tt.text)
	}
}

func TestUnmarshalTextInvalid(t *testing.T) {
	t.Parallel()

	_, err := format.UnmarshalText("pdf")
	assert.EqualError(t, err, `invalid format: "pdf"`)
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []format.Format{format.HTML, format.Png, format.Csv, format.Svg, format.JSON, format.Markdown} {
		got, err := format.UnmarshalText(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Png
	Csv
	Svg
	JSON
	Markdown
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "png":
		return Png, nil
	case "csv":
		return Csv, nil
	case "svg":
		return Svg, nil
	case "json":
		return JSON, nil
	case "md", "markdown":
		return Markdown, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Png:
		return "png"
	case Csv:
		return "csv"
	case Svg:
		return "svg"
	case JSON:
		return "json"
	case Markdown:
		return "md"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}

// IsChart reports whether the format is a rendered figure rather than a table.
func (f Format) IsChart() bool {
	return f == HTML || f == Png || f == Svg
}

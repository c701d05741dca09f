package app

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/lisa/entity"
)

// All curves share the same frequency grid, so tables have one frequency
// column followed by one strain column per curve.

func header(curves []*entity.Sensitivity) []string {
	h := make([]string, 0, len(curves)+1)
	h = append(h, "frequency_hz")
	for _, c := range curves {
		h = append(h, "strain_"+c.Duration().String())
	}
	return h
}

func rows(curves []*entity.Sensitivity) [][]string {
	frequencies := curves[0].Frequencies()
	rs := make([][]string, len(frequencies))
	for i, f := range frequencies {
		row := make([]string, 0, len(curves)+1)
		row = append(row, formatFloat(f))
		for _, c := range curves {
			row = append(row, formatFloat(c.Strain()[i]))
		}
		rs[i] = row
	}
	return rs
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeCSV(w io.Writer, curves []*entity.Sensitivity) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(curves)); err != nil {
		return err
	}
	if err := cw.WriteAll(rows(curves)); err != nil {
		return err
	}
	return cw.Error()
}

type curveJSON struct {
	Duration    string    `json:"duration"`
	Frequencies []float64 `json:"frequencies"`
	Strain      []float64 `json:"strain"`
}

func writeJSON(w io.Writer, curves []*entity.Sensitivity) error {
	out := make([]curveJSON, len(curves))
	for i, c := range curves {
		frequencies, strain := c.Data()
		out[i] = curveJSON{
			Duration:    c.Duration().String(),
			Frequencies: frequencies,
			Strain:      strain,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeMarkdown(w io.Writer, curves []*entity.Sensitivity) error {
	md := markdown.NewMarkdown(w)
	md.H1(title(curves))
	md.PlainText("")

	md.H2("Best sensitivity")
	md.PlainText("")
	summary := make([][]string, len(curves))
	for i, c := range curves {
		frequencies, strain := c.Data()
		idx := floats.MinIdx(strain)
		summary[i] = []string{c.Duration().String(), formatFloat(frequencies[idx]), formatFloat(strain[idx])}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Observation time", "Frequency [Hz]", "Strain [1/sqrt(Hz)]"},
		Rows:   summary,
	})
	md.PlainText("")

	md.H2("Curve")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: header(curves),
		Rows:   rows(curves),
	})

	return md.Build()
}

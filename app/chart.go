package app

import (
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/lisa/entity"
	"github.com/AnkushinDaniil/lisa/entity/duration"
	"github.com/AnkushinDaniil/lisa/entity/mode"
)

// Axis bounds shared by every renderer.
const (
	XMin = 1e-5
	XMax = 1.0
	YMin = 3e-22
	YMax = 1e-14

	XLabel = "Frequency [Hz]"
	YLabel = "Characteristic Strain [1/sqrt(Hz)]"
)

var colors = map[duration.Duration]string{
	duration.SixMonths: "#ff7f50",
	duration.OneYear:   "skyblue",
	duration.TwoYears:  "#3cb371",
	duration.FourYears: "#9370db",
}

func createChart(curves []*entity.Sensitivity, m mode.Mode) *charts.Line {
	startTime := time.Now()
	defer func() {
		log.WithFields(log.Fields{
			"time":   time.Since(startTime),
			"curves": len(curves),
		}).Debug("Creating chart")
	}()
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "LISA sensitivity curve",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title(curves),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
			Top:          "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "lisa_sensitivity",
					Title: "Save as image",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name:         XLabel,
			NameLocation: "middle",
			NameGap:      30,
			Type:         "log",
			Min:          XMin,
			Max:          XMax,
			SplitLine:    dashedSplitLine(),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      YLabel,
			Type:      "log",
			Show:      opts.Bool(true),
			Min:       YMin,
			Max:       YMax,
			SplitLine: dashedSplitLine(),
		}),
	)

	for _, c := range curves {
		color := colors[c.Duration()]
		line.AddSeries(c.Name(), c.LineData(),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
		if m != mode.Components {
			continue
		}
		instrumental, confusion := c.Components()
		line.AddSeries("Instrument noise ("+c.Duration().String()+")", instrumental,
			charts.WithLineStyleOpts(opts.LineStyle{Color: color, Type: "dashed"}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
		line.AddSeries("Galactic confusion noise ("+c.Duration().String()+")", confusion,
			charts.WithLineStyleOpts(opts.LineStyle{Color: color, Type: "dotted"}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}
	return line
}

func dashedSplitLine() *opts.SplitLine {
	return &opts.SplitLine{
		Show: opts.Bool(true),
		LineStyle: &opts.LineStyle{
			Type:  "dashed",
			Width: 0.5,
		},
	}
}

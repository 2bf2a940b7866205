package report

import (
	"github.com/go-echarts/go-echarts/v2/opts"
)

// logScaleThreshold switches a chart's y axis to log scale when the column's
// largest value exceeds it.
const logScaleThreshold = 1000

const (
	chartWidth  = "100%"
	chartHeight = "480px"
)

// chartOpts centralizes the styling shared by every chart on the page.
type chartOpts struct {
	text, muted, axis, grid string
}

func defaultChartOpts() *chartOpts {
	return &chartOpts{
		text:  "#1f2937",
		muted: "#6b7280",
		axis:  "#9ca3af",
		grid:  "#e5e7eb",
	}
}

func (c *chartOpts) Init() opts.Initialization {
	return opts.Initialization{Width: chartWidth, Height: chartHeight}
}

func (c *chartOpts) Title(title, subtitle string) opts.Title {
	return opts.Title{
		Title:         title,
		Subtitle:      subtitle,
		Left:          "center",
		TitleStyle:    &opts.TextStyle{Color: c.text},
		SubtitleStyle: &opts.TextStyle{Color: c.muted},
	}
}

func (c *chartOpts) Legend() opts.Legend {
	return opts.Legend{
		Show:      opts.Bool(true),
		Type:      "scroll",
		Top:       "12%",
		Left:      "center",
		TextStyle: &opts.TextStyle{Color: c.muted},
	}
}

func (c *chartOpts) XAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name:      name,
		Type:      "category",
		AxisLabel: &opts.AxisLabel{Color: c.muted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.axis}},
	}
}

// YAxis returns a value axis, or a log axis when logScale is set.
func (c *chartOpts) YAxis(name string, logScale bool) opts.YAxis {
	axisType := "value"
	if logScale {
		axisType = "log"
	}

	return opts.YAxis{
		Name:      name,
		Type:      axisType,
		AxisLabel: &opts.AxisLabel{Color: c.muted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.axis}},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.grid},
		},
	}
}

func (c *chartOpts) Grid() opts.Grid {
	return opts.Grid{
		Top:          "24%",
		Bottom:       "12%",
		Left:         "5%",
		Right:        "5%",
		ContainLabel: opts.Bool(true),
	}
}

func (c *chartOpts) Tooltip(trigger string) opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}
}

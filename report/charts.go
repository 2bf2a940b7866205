package report

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/sortlab/generator"
	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/stats"
)

const pageTitle = "Sorting benchmark"

// Charts builds the report page: for every value column and case a line
// chart of group means against size (one series per algorithm) and a box plot
// of the per-trial distribution, followed by an elapsed-time comparison across
// all algorithms and cases.
func Charts(rows []results.Row, groups []stats.Group) *components.Page {
	co := defaultChartOpts()
	page := components.NewPage()
	page.PageTitle = pageTitle

	cases := casesOf(groups)
	for _, col := range stats.Columns(groups) {
		logScale := stats.Max(stats.Series(rows, col)) > logScaleThreshold
		for _, c := range cases {
			page.AddCharts(
				meanLineChart(co, groups, col, c, logScale),
				distributionBoxPlot(co, rows, col, c),
			)
		}
	}
	page.AddCharts(elapsedComparisonChart(co, groups))

	return page
}

// meanLineChart plots group means of col for case c.
func meanLineChart(co *chartOpts, groups []stats.Group, col, c string, logScale bool) *charts.Line {
	sizes, algorithms := axesOf(groups, c)
	labels := sizeLabels(sizes)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init()),
		charts.WithTitleOpts(co.Title(fmt.Sprintf("%s vs size", col), "case "+c)),
		charts.WithTooltipOpts(co.Tooltip("axis")),
		charts.WithLegendOpts(co.Legend()),
		charts.WithXAxisOpts(co.XAxis("size")),
		charts.WithYAxisOpts(co.YAxis(col, logScale)),
		charts.WithGridOpts(co.Grid()),
	)
	line.SetXAxis(labels)

	for _, algo := range algorithms {
		data := make([]opts.LineData, len(sizes))
		for i, n := range sizes {
			data[i] = opts.LineData{Value: "-"}
			if g, ok := findGroup(groups, stats.Key{Algorithm: algo, Case: c, Size: n}); ok {
				if s, ok := g.Column(col); ok {
					data[i] = opts.LineData{Value: s.Mean}
				}
			}
		}
		line.AddSeries(algo, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true), ConnectNulls: opts.Bool(true)}),
		)
	}

	return line
}

// distributionBoxPlot shows the spread of per-trial values of col for case c.
func distributionBoxPlot(co *chartOpts, rows []results.Row, col, c string) *charts.BoxPlot {
	var caseRows []results.Row
	for _, row := range rows {
		if row.Case == c {
			caseRows = append(caseRows, row)
		}
	}
	groups := stats.Aggregate(caseRows)
	sizes, algorithms := axesOf(groups, c)

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init()),
		charts.WithTitleOpts(co.Title(fmt.Sprintf("%s distribution", col), "case "+c)),
		charts.WithTooltipOpts(co.Tooltip("item")),
		charts.WithLegendOpts(co.Legend()),
		charts.WithXAxisOpts(co.XAxis("size")),
		charts.WithYAxisOpts(co.YAxis(col, false)),
		charts.WithGridOpts(co.Grid()),
	)
	box.SetXAxis(sizeLabels(sizes))

	for _, algo := range algorithms {
		data := make([]opts.BoxPlotData, len(sizes))
		for i, n := range sizes {
			var trialRows []results.Row
			for _, row := range caseRows {
				if row.Algorithm == algo && row.Size == n {
					trialRows = append(trialRows, row)
				}
			}
			q := stats.Quartiles(stats.Series(trialRows, col))
			data[i] = opts.BoxPlotData{Name: strconv.Itoa(n), Value: q[:]}
		}
		box.AddSeries(algo, data)
	}

	return box
}

// elapsedComparisonChart overlays mean elapsed time of every algorithm/case
// pair on a log axis.
func elapsedComparisonChart(co *chartOpts, groups []stats.Group) *charts.Line {
	sizes := allSizes(groups)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init()),
		charts.WithTitleOpts(co.Title("Elapsed time vs size", "all cases")),
		charts.WithTooltipOpts(co.Tooltip("axis")),
		charts.WithLegendOpts(co.Legend()),
		charts.WithXAxisOpts(co.XAxis("size")),
		charts.WithYAxisOpts(co.YAxis("seconds", true)),
		charts.WithGridOpts(co.Grid()),
	)
	line.SetXAxis(sizeLabels(sizes))

	for _, algo := range algorithmsOf(groups) {
		for _, c := range casesOf(groups) {
			data := make([]opts.LineData, len(sizes))
			present := false
			for i, n := range sizes {
				data[i] = opts.LineData{Value: "-"}
				if g, ok := findGroup(groups, stats.Key{Algorithm: algo, Case: c, Size: n}); ok {
					if s, ok := g.Column(results.ColElapsed); ok {
						data[i] = opts.LineData{Value: s.Mean}
						present = true
					}
				}
			}
			if present {
				line.AddSeries(algo+" / "+c, data,
					charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true), ConnectNulls: opts.Bool(true)}),
				)
			}
		}
	}

	return line
}

func findGroup(groups []stats.Group, k stats.Key) (stats.Group, bool) {
	i, found := slices.BinarySearchFunc(groups, k, func(g stats.Group, k stats.Key) int {
		return stats.CompareKeys(g.Key, k)
	})
	if !found {
		return stats.Group{}, false
	}

	return groups[i], true
}

// axesOf returns the sorted sizes and the algorithms present for case c.
func axesOf(groups []stats.Group, c string) ([]int, []string) {
	var filtered []stats.Group
	for _, g := range groups {
		if g.Case == c {
			filtered = append(filtered, g)
		}
	}

	return allSizes(filtered), algorithmsOf(filtered)
}

func allSizes(groups []stats.Group) []int {
	var sizes []int
	for _, g := range groups {
		sizes = append(sizes, g.Size)
	}
	slices.Sort(sizes)

	return slices.Compact(sizes)
}

func algorithmsOf(groups []stats.Group) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g.Algorithm)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// casesOf returns the cases present, in report order.
func casesOf(groups []stats.Group) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g.Case)
	}
	slices.SortFunc(out, func(a, b string) int {
		return cmp.Or(cmp.Compare(generator.Case(a).Rank(), generator.Case(b).Rank()), cmp.Compare(a, b))
	})

	return slices.Compact(out)
}

func sizeLabels(sizes []int) []string {
	labels := make([]string, len(sizes))
	for i, n := range sizes {
		labels[i] = strconv.Itoa(n)
	}

	return labels
}

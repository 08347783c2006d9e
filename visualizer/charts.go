// Package visualizer renders the pipeline results as chart pages. Pages can
// be written to HTML files or served over HTTP for interactive viewing.
package visualizer

import (
	"fmt"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/epsilab/insight/behavior"
	"github.com/epsilab/insight/inference"
)

// defaultOptions builds the shared theme, toolbox and title options.
func defaultOptions(pageTitle, title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: pageTitle,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// newRateChart creates the click-rate comparison bar chart.
func newRateChart(results *inference.Results) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(defaultOptions("Click Rates", "Click-Rate Comparison", "per experiment group")...)

	control := results.Control()
	treatment := results.Treatment()
	chart.SetXAxis([]string{results.ControlLabel, results.TreatmentLabel}).
		AddSeries("CTR", []opts.BarData{
			{Value: control.Rate},
			{Value: treatment.Rate},
		})
	return chart
}

// newIntervalChart creates the confidence-interval chart: the rate
// difference with its lower and upper bound.
func newIntervalChart(results *inference.Results) *charts.Bar {
	ci := results.ConfidenceIntervals
	chart := charts.NewBar()
	chart.SetGlobalOptions(defaultOptions("Confidence Interval", "Difference of Click Rates",
		fmt.Sprintf("margin of error %.4f", ci.MarginOfError))...)

	chart.SetXAxis([]string{"lower bound", "difference", "upper bound"}).
		AddSeries("difference", []opts.BarData{
			{Value: ci.Lower},
			{Value: ci.Difference},
			{Value: ci.Upper},
		})
	return chart
}

// newPowerCurveChart creates the power-vs-sample-size line chart from
// (sampleSize, power) points.
func newPowerCurveChart(points [][2]float64, alpha float64) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(defaultOptions("Power Analysis", "Statistical Power by Sample Size",
		fmt.Sprintf("Monte-Carlo estimate, alpha=%.2f", alpha))...)

	axis := make([]string, 0, len(points))
	items := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		axis = append(axis, fmt.Sprintf("%.0f", p[0]))
		items = append(items, opts.LineData{Value: p[1]})
	}
	chart.SetXAxis(axis).AddSeries("power", items)
	return chart
}

// newDAUChart creates the daily-active-users trend line.
func newDAUChart(insights *behavior.Insights) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(defaultOptions("User Activity", "Daily Active Users",
		fmt.Sprintf("average DAU %.1f", insights.Activity.AvgDAU))...)

	dates := make([]string, 0, len(insights.Activity.DAU))
	for date := range insights.Activity.DAU {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	items := make([]opts.LineData, 0, len(dates))
	for _, date := range dates {
		items = append(items, opts.LineData{Value: insights.Activity.DAU[date]})
	}
	chart.SetXAxis(dates).AddSeries("DAU", items)
	return chart
}

// newHourlyChart creates the events-per-hour bar chart.
func newHourlyChart(insights *behavior.Insights) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(defaultOptions("User Activity", "Activity by Hour of Day",
		fmt.Sprintf("peak hour %d", insights.Activity.PeakHour))...)

	axis := make([]string, 24)
	items := make([]opts.BarData, 24)
	for hour, n := range insights.Activity.Hourly {
		axis[hour] = fmt.Sprintf("%02d", hour)
		items[hour] = opts.BarData{Value: n}
	}
	chart.SetXAxis(axis).AddSeries("events", items)
	return chart
}

// newCategoryChart creates the category popularity and reading-time bars.
func newCategoryChart(insights *behavior.Insights) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(defaultOptions("Content Preference", "Book Categories",
		"events and mean reading minutes per category")...)

	names := make([]string, 0, len(insights.Content.Popularity))
	for category := range insights.Content.Popularity {
		names = append(names, category)
	}
	sort.Strings(names)
	popularity := make([]opts.BarData, 0, len(names))
	readTime := make([]opts.BarData, 0, len(names))
	for _, category := range names {
		popularity = append(popularity, opts.BarData{Value: insights.Content.Popularity[category]})
		readTime = append(readTime, opts.BarData{Value: insights.Content.AvgReadTime[category]})
	}
	chart.SetXAxis(names).
		AddSeries("events", popularity).
		AddSeries("mean minutes", readTime)
	return chart
}

// newActionPie creates the action-type distribution pie.
func newActionPie(insights *behavior.Insights) *charts.Pie {
	chart := charts.NewPie()
	chart.SetGlobalOptions(defaultOptions("Action Types", "Distribution of Action Types", "")...)

	names := make([]string, 0, len(insights.Actions.Distribution))
	for action := range insights.Actions.Distribution {
		names = append(names, action)
	}
	sort.Strings(names)
	items := make([]opts.PieData, 0, len(names))
	for _, action := range names {
		items = append(items, opts.PieData{Name: action, Value: insights.Actions.Distribution[action]})
	}
	chart.AddSeries("actions", items)
	return chart
}

package visualizer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/epsilab/insight/behavior"
	"github.com/epsilab/insight/inference"
)

// HTML references for the served pages.
const abTestRef = "ab-test"
const behaviorRef = "behavior"

// mainHTML is the index page of the serve mode.
const mainHTML = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Insight: Analytics Pipelines</title>
  </head>
  <body>
    <h1>Insight: Analytics Pipelines</h1>
    <ul>
    <li> <h3> <a href="/` + abTestRef + `"> A/B-Test Results </a> </h3> </li>
    <li> <h3> <a href="/` + behaviorRef + `"> User-Behavior Insights </a> </h3> </li>
    </ul>
</body>
</html>
`

// abTestPage assembles the A/B-test chart page.
func abTestPage(results *inference.Results, powerCurve [][2]float64, alpha float64) *components.Page {
	page := components.NewPage()
	page.AddCharts(
		newRateChart(results),
		newIntervalChart(results),
	)
	if len(powerCurve) > 0 {
		page.AddCharts(newPowerCurveChart(powerCurve, alpha))
	}
	return page
}

// behaviorPage assembles the behavior chart page.
func behaviorPage(insights *behavior.Insights) *components.Page {
	page := components.NewPage()
	page.AddCharts(
		newDAUChart(insights),
		newHourlyChart(insights),
		newCategoryChart(insights),
		newActionPie(insights),
	)
	return page
}

// renderToFile writes a chart page as an HTML document.
func renderToFile(render func(w io.Writer) error, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create figures directory; %v", err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %v; %v", filename, err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return fmt.Errorf("failed to render %v; %v", filename, err)
	}
	return nil
}

// RenderABTestFigures writes the A/B-test chart page into the figures
// directory and returns the file path.
func RenderABTestFigures(results *inference.Results, powerCurve [][2]float64, alpha float64, figuresDir string) (string, error) {
	filename := filepath.Join(figuresDir, "ab_test_figures.html")
	page := abTestPage(results, powerCurve, alpha)
	return filename, renderToFile(func(w io.Writer) error { return page.Render(w) }, filename)
}

// RenderBehaviorFigures writes the behavior chart page into the figures
// directory and returns the file path.
func RenderBehaviorFigures(insights *behavior.Insights, figuresDir string) (string, error) {
	filename := filepath.Join(figuresDir, "user_behavior_figures.html")
	page := behaviorPage(insights)
	return filename, renderToFile(func(w io.Writer) error { return page.Render(w) }, filename)
}

// FireUpWeb serves the chart pages on the given port until the process is
// interrupted. Either argument may be nil; its page then renders a notice.
func FireUpWeb(results *inference.Results, powerCurve [][2]float64, alpha float64, insights *behavior.Insights, port string) {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mainHTML)
	})
	http.HandleFunc("/"+abTestRef, func(w http.ResponseWriter, r *http.Request) {
		if results == nil {
			fmt.Fprint(w, "<p>no A/B-test results loaded</p>")
			return
		}
		abTestPage(results, powerCurve, alpha).Render(w)
	})
	http.HandleFunc("/"+behaviorRef, func(w http.ResponseWriter, r *http.Request) {
		if insights == nil {
			fmt.Fprint(w, "<p>no behavior insights loaded</p>")
			return
		}
		behaviorPage(insights).Render(w)
	})
	http.ListenAndServe(":"+port, nil)
}

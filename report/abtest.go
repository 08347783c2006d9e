package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/epsilab/insight/inference"
)

// Significant reports whether the experiment reached significance at the
// design's significance level.
func Significant(results *inference.Results, alpha float64) bool {
	return results.ChiSquareTest.PValue < alpha
}

// recommended reports whether the treatment should be rolled out: the
// result is significant and the lift is positive.
func recommended(results *inference.Results, alpha float64) bool {
	return Significant(results, alpha) && results.ConfidenceIntervals.Difference > 0
}

// ABTestReport renders the markdown analysis report.
func ABTestReport(results *inference.Results, design ExperimentDesign) string {
	var b strings.Builder

	verdict := "no"
	if Significant(results, design.SignificanceLevel) {
		verdict = "yes"
	}
	recommendation := "**Not recommended**: the result is not significant or negative; keep the current variant or redesign the experiment."
	if recommended(results, design.SignificanceLevel) {
		recommendation = "**Recommended**: the experiment shows a statistically significant lift; roll out the treatment variant."
	}

	ci := results.ConfidenceIntervals
	fmt.Fprintf(&b, "# A/B-Test Analysis Report\n\n")
	fmt.Fprintf(&b, "## Experiment\n\n")
	fmt.Fprintf(&b, "**Hypothesis**: %s\n\n", design.Hypothesis)
	fmt.Fprintf(&b, "## Key Results\n\n")
	fmt.Fprintf(&b, "### Click Rates\n\n")
	fmt.Fprintf(&b, "- **Control (%s) CTR**: %.3f%%\n", design.ControlVariant, 100*results.Control().Rate)
	fmt.Fprintf(&b, "- **Treatment (%s) CTR**: %.3f%%\n", design.TreatmentVariant, 100*results.Treatment().Rate)
	fmt.Fprintf(&b, "- **Absolute lift**: %.3f%%\n", 100*ci.Difference)
	fmt.Fprintf(&b, "- **Relative lift**: %.1f%%\n\n", 100*ci.RelativeImprovement)
	fmt.Fprintf(&b, "### Statistical Significance\n\n")
	fmt.Fprintf(&b, "- **P-value**: %.6f\n", results.ChiSquareTest.PValue)
	fmt.Fprintf(&b, "- **Significant at alpha=%.2f**: %s\n\n", design.SignificanceLevel, verdict)
	fmt.Fprintf(&b, "### Effect Estimate\n\n")
	fmt.Fprintf(&b, "- **Effect size (Cohen's h)**: %.3f\n", results.EffectSize)
	fmt.Fprintf(&b, "- **%.0f%% confidence interval**: [%.4f, %.4f]\n\n", 100*(1-design.SignificanceLevel), ci.Lower, ci.Upper)
	fmt.Fprintf(&b, "### Statistical Power\n\n")
	fmt.Fprintf(&b, "- **Estimated power**: %.3f (Monte-Carlo, %d trials)\n", results.PowerAnalysis.Power, results.PowerAnalysis.Simulations)
	fmt.Fprintf(&b, "- **Significant detections**: %d\n\n", results.PowerAnalysis.Detections)
	fmt.Fprintf(&b, "## Recommendation\n\n")
	fmt.Fprintf(&b, "%s\n\n", recommendation)
	fmt.Fprintf(&b, "## Next Steps\n\n")
	fmt.Fprintf(&b, "1. Monitor the long-term effect to confirm the lift persists.\n")
	fmt.Fprintf(&b, "2. Analyze the effect across user segments.\n")
	fmt.Fprintf(&b, "3. Design follow-up experiments on the detail page.\n")

	return b.String()
}

// WriteABTestReport writes the markdown report to a file.
func WriteABTestReport(results *inference.Results, design ExperimentDesign, filename string) error {
	if err := os.WriteFile(filename, []byte(ABTestReport(results, design)), 0644); err != nil {
		return fmt.Errorf("failed to write report; %v", err)
	}
	return nil
}

// ABTestSummary writes the console summary: a per-group table, the headline
// numbers and a colored verdict line.
func ABTestSummary(w io.Writer, results *inference.Results, design ExperimentDesign) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Group", "Users", "Clicks", "CTR"})
	tbl.SetBorder(true)
	for _, label := range []string{results.ControlLabel, results.TreatmentLabel} {
		s := results.ClickRates[label]
		tbl.Append([]string{
			label,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%d", s.Successes),
			fmt.Sprintf("%.3f%%", 100*s.Rate),
		})
	}
	tbl.Render()

	ci := results.ConfidenceIntervals
	fmt.Fprintf(w, "lift:        %.3f%% (relative %.1f%%)\n", 100*ci.Difference, 100*ci.RelativeImprovement)
	fmt.Fprintf(w, "p-value:     %.6f\n", results.ChiSquareTest.PValue)
	fmt.Fprintf(w, "effect size: %.3f (Cohen's h)\n", results.EffectSize)
	fmt.Fprintf(w, "power:       %.3f (%d trials)\n", results.PowerAnalysis.Power, results.PowerAnalysis.Simulations)

	if recommended(results, design.SignificanceLevel) {
		green := color.New(color.FgGreen, color.Bold).SprintfFunc()
		fmt.Fprintln(w, green("verdict: significant positive lift; roll out the treatment"))
	} else {
		red := color.New(color.FgRed, color.Bold).SprintfFunc()
		fmt.Fprintln(w, red("verdict: not significant or negative; keep the control"))
	}
}

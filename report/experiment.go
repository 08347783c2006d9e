// Package report renders the analysis results as human-readable documents:
// a markdown A/B-test report, a behavior text report and console summaries.
// This is pure formatting; all numbers are computed upstream.
package report

import "fmt"

// ExperimentDesign is the static design record of the A/B test printed at
// the head of a run and embedded in the report.
type ExperimentDesign struct {
	Hypothesis         string
	Metric             string
	ControlVariant     string
	TreatmentVariant   string
	SuccessCriterion   string
	SampleSizePerGroup int
	SignificanceLevel  float64
	Duration           string
}

// DefaultExperimentDesign returns the button-color experiment this pipeline
// was built around.
func DefaultExperimentDesign() ExperimentDesign {
	return ExperimentDesign{
		Hypothesis:         "changing the 'start reading' button on the novel detail page from blue to red increases the click rate",
		Metric:             "click-through rate (CTR)",
		ControlVariant:     "blue button (original)",
		TreatmentVariant:   "red button (new)",
		SuccessCriterion:   "click-rate lift of at least 2% with statistical significance (p < 0.05)",
		SampleSizePerGroup: 5000,
		SignificanceLevel:  0.05,
		Duration:           "7 days",
	}
}

// String renders the design as console lines.
func (d ExperimentDesign) String() string {
	return fmt.Sprintf(
		"hypothesis: %s\nmetric: %s\ncontrol: %s\ntreatment: %s\nsuccess criterion: %s\nsample size per group: %d\nsignificance level: %.2f\nduration: %s",
		d.Hypothesis, d.Metric, d.ControlVariant, d.TreatmentVariant,
		d.SuccessCriterion, d.SampleSizePerGroup, d.SignificanceLevel, d.Duration)
}

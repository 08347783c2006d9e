package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/behavior"
	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/inference"
)

func significantResults(t *testing.T) *inference.Results {
	t.Helper()
	observations := make([]inference.Observation, 0, 10000)
	for i := 0; i < 5000; i++ {
		observations = append(observations,
			inference.Observation{Group: "control", Converted: i < 400},
			inference.Observation{Group: "treatment", Converted: i < 525},
		)
	}
	results, err := inference.Analyze(observations, inference.AnalysisParams{
		ControlLabel:   "control",
		TreatmentLabel: "treatment",
		Simulations:    100,
		Src:            rand.NewSource(42),
	})
	if err != nil {
		t.Fatalf("analysis failed; %v", err)
	}
	return results
}

// TestABTestReportFields checks that every template field of the markdown
// report is populated.
func TestABTestReportFields(t *testing.T) {
	md := ABTestReport(significantResults(t), DefaultExperimentDesign())
	for _, want := range []string{
		"# A/B-Test Analysis Report",
		"**Hypothesis**",
		"**Control (blue button (original)) CTR**: 8.000%",
		"**Treatment (red button (new)) CTR**: 10.500%",
		"**Absolute lift**: 2.500%",
		"**P-value**: 0.000016",
		"**Significant at alpha=0.05**: yes",
		"Cohen's h",
		"confidence interval",
		"**Recommended**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report misses %q", want)
		}
	}
}

// TestABTestSummaryVerdict checks the console summary for both verdicts.
func TestABTestSummaryVerdict(t *testing.T) {
	var buf bytes.Buffer
	ABTestSummary(&buf, significantResults(t), DefaultExperimentDesign())
	out := buf.String()
	for _, want := range []string{"control", "treatment", "p-value", "roll out the treatment"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary misses %q", want)
		}
	}

	// flat experiment: same rate in both groups
	observations := make([]inference.Observation, 0, 2000)
	for i := 0; i < 1000; i++ {
		observations = append(observations,
			inference.Observation{Group: "control", Converted: i < 100},
			inference.Observation{Group: "treatment", Converted: i < 100},
		)
	}
	flat, err := inference.Analyze(observations, inference.AnalysisParams{
		ControlLabel:   "control",
		TreatmentLabel: "treatment",
		Simulations:    100,
		Src:            rand.NewSource(1),
	})
	if err != nil {
		t.Fatalf("analysis failed; %v", err)
	}
	buf.Reset()
	ABTestSummary(&buf, flat, DefaultExperimentDesign())
	if !strings.Contains(buf.String(), "keep the control") {
		t.Errorf("flat experiment should not recommend a rollout")
	}
}

// TestBehaviorReportFields checks the behavior report sections.
func TestBehaviorReportFields(t *testing.T) {
	ts := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	insights, err := behavior.Analyze([]dataset.BehaviorEvent{
		{UserID: "u1", BookID: "b1", Category: "fantasy", Action: "read", ReadTime: 30, Timestamp: ts},
		{UserID: "u2", BookID: "b2", Category: "romance", Action: "browse", ReadTime: 2, Timestamp: ts.Add(24 * time.Hour)},
		{UserID: "u3", BookID: "b3", Category: "fantasy", Action: "read", ReadTime: 45, Timestamp: ts.Add(25 * time.Hour)},
	})
	if err != nil {
		t.Fatalf("behavior analysis failed; %v", err)
	}

	text := BehaviorReport(insights)
	for _, want := range []string{
		"USER ACTIVITY:",
		"CONTENT PREFERENCE:",
		"USER VALUE:",
		"ACTION TYPES:",
		"most popular category: fantasy",
		"peak hour: 20:00",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report misses %q", want)
		}
	}

	var buf bytes.Buffer
	BehaviorSummary(&buf, insights)
	if !strings.Contains(buf.String(), "average DAU") {
		t.Errorf("summary misses DAU line")
	}
}

// TestExperimentDesignString checks the design record rendering.
func TestExperimentDesignString(t *testing.T) {
	text := DefaultExperimentDesign().String()
	for _, want := range []string{"hypothesis:", "metric:", "sample size per group: 5000", "significance level: 0.05"} {
		if !strings.Contains(text, want) {
			t.Errorf("design misses %q", want)
		}
	}
}

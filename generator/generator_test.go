package generator

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/inference"
)

// TestGenerateClickRecordsDeterministic checks that a fixed seed reproduces
// the exact dataset.
func TestGenerateClickRecordsDeterministic(t *testing.T) {
	p := DefaultABTestParams()
	p.NumUsers = 500
	first, err := GenerateClickRecords(p, rand.NewSource(42))
	if err != nil {
		t.Fatalf("generation failed; %v", err)
	}
	second, err := GenerateClickRecords(p, rand.NewSource(42))
	if err != nil {
		t.Fatalf("generation failed; %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs under identical seed: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestGenerateClickRecordsRates checks group balance and empirical click
// rates of a large synthetic dataset.
func TestGenerateClickRecordsRates(t *testing.T) {
	p := DefaultABTestParams()
	p.NumUsers = 20000
	records, err := GenerateClickRecords(p, rand.NewSource(4711))
	if err != nil {
		t.Fatalf("generation failed; %v", err)
	}
	if len(records) != p.NumUsers {
		t.Fatalf("expected %d records; got %d", p.NumUsers, len(records))
	}

	counts := map[string]int{}
	clicks := map[string]int{}
	for _, r := range records {
		counts[r.Group]++
		if r.Clicked {
			clicks[r.Group]++
		}
		if r.Timestamp.Before(p.StartTime) {
			t.Fatalf("timestamp %v before experiment start", r.Timestamp)
		}
	}
	if math.Abs(float64(counts["control"])-float64(counts["treatment"])) > 0.05*float64(p.NumUsers) {
		t.Errorf("group assignment imbalanced: %v", counts)
	}
	controlRate := float64(clicks["control"]) / float64(counts["control"])
	treatmentRate := float64(clicks["treatment"]) / float64(counts["treatment"])
	if math.Abs(controlRate-p.ControlRate) > 0.01 {
		t.Errorf("control rate %v too far from %v", controlRate, p.ControlRate)
	}
	if math.Abs(treatmentRate-p.TreatmentRate) > 0.01 {
		t.Errorf("treatment rate %v too far from %v", treatmentRate, p.TreatmentRate)
	}
}

// TestGenerateClickRecordsInvalidParams checks parameter validation.
func TestGenerateClickRecordsInvalidParams(t *testing.T) {
	src := rand.NewSource(1)
	p := DefaultABTestParams()
	p.ControlRate = 1.5
	if _, err := GenerateClickRecords(p, src); !errors.Is(err, inference.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for rate 1.5; got %v", err)
	}
	p = DefaultABTestParams()
	p.NumUsers = 0
	if _, err := GenerateClickRecords(p, src); !errors.Is(err, inference.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for zero users; got %v", err)
	}
}

// TestGenerateBehaviorEvents checks the shape of the synthetic reading log.
func TestGenerateBehaviorEvents(t *testing.T) {
	p := DefaultBehaviorParams()
	p.NumUsers = 200
	events, err := GenerateBehaviorEvents(p, rand.NewSource(42))
	if err != nil {
		t.Fatalf("generation failed; %v", err)
	}
	if len(events) == 0 {
		t.Fatal("no events generated")
	}

	users := map[string]bool{}
	dirty := 0
	knownCategory := map[string]bool{}
	for _, c := range categories {
		knownCategory[c] = true
	}
	for _, e := range events {
		users[e.UserID] = true
		if !knownCategory[e.Category] {
			t.Fatalf("unknown category %q", e.Category)
		}
		if e.ReadTime <= 0 {
			dirty++
		}
	}
	if len(users) != p.NumUsers {
		t.Errorf("expected %d distinct users; got %d", p.NumUsers, len(users))
	}
	// the default dirt rate must leave something for the cleaning stage
	if dirty == 0 {
		t.Errorf("expected some zero-read-time rows at dirt rate %v", p.DirtRate)
	}
}

// TestGenerateBehaviorEventsDeterministic checks seed reproducibility.
func TestGenerateBehaviorEventsDeterministic(t *testing.T) {
	p := DefaultBehaviorParams()
	p.NumUsers = 50
	first, err := GenerateBehaviorEvents(p, rand.NewSource(7))
	if err != nil {
		t.Fatalf("generation failed; %v", err)
	}
	second, err := GenerateBehaviorEvents(p, rand.NewSource(7))
	if err != nil {
		t.Fatalf("generation failed; %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("event %d differs under identical seed", i)
		}
	}
}

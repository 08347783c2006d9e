// Package generator produces the synthetic datasets of the two pipelines.
// All generators draw from an injected random source, so a fixed seed
// reproduces the exact dataset.
package generator

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/inference"
)

// ABTestParams control the synthetic A/B-test dataset.
type ABTestParams struct {
	ControlRate   float64   // click probability of the control group
	TreatmentRate float64   // click probability of the treatment group
	NumUsers      int       // total number of users across both groups
	StartTime     time.Time // first day of the experiment
	Days          int       // experiment duration in days
}

// DefaultABTestParams returns the experiment-design defaults: 8.0% against
// 10.5% click rate, 10000 users over seven days.
func DefaultABTestParams() ABTestParams {
	return ABTestParams{
		ControlRate:   0.08,
		TreatmentRate: 0.105,
		NumUsers:      10000,
		StartTime:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:          7,
	}
}

// GenerateClickRecords synthesizes the A/B-test dataset: each user is
// assigned to the control or treatment group with equal probability and
// clicks with the group's rate; timestamps are uniform over the experiment
// window at hour granularity.
func GenerateClickRecords(p ABTestParams, src rand.Source) ([]dataset.ClickRecord, error) {
	for _, r := range []float64{p.ControlRate, p.TreatmentRate} {
		if r < 0 || r > 1 {
			return nil, fmt.Errorf("%w: click rate %v outside [0,1]", inference.ErrInvalidInput, r)
		}
	}
	if p.NumUsers <= 0 {
		return nil, fmt.Errorf("%w: number of users must be positive; got %d", inference.ErrInvalidInput, p.NumUsers)
	}
	if p.Days <= 0 {
		return nil, fmt.Errorf("%w: number of days must be positive; got %d", inference.ErrInvalidInput, p.Days)
	}

	rnd := rand.New(src)
	records := make([]dataset.ClickRecord, p.NumUsers)
	for i := range records {
		group := "control"
		rate := p.ControlRate
		if rnd.Float64() < 0.5 {
			group = "treatment"
			rate = p.TreatmentRate
		}
		ts := p.StartTime.Add(
			time.Duration(rnd.Intn(p.Days))*24*time.Hour +
				time.Duration(rnd.Intn(24))*time.Hour)
		records[i] = dataset.ClickRecord{
			UserID:    fmt.Sprintf("user_%06d", i),
			Timestamp: ts,
			Group:     group,
			Clicked:   rnd.Float64() < rate,
		}
	}
	return records, nil
}

package behavior

import (
	"testing"
	"time"

	"github.com/epsilab/insight/dataset"
)

// fixtureEvents builds a tiny log with known aggregates: three users over
// two days, one dominant category and one heavy reader.
func fixtureEvents() []dataset.BehaviorEvent {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	at := func(base time.Time, hour int) time.Time {
		return base.Add(time.Duration(hour) * time.Hour)
	}
	return []dataset.BehaviorEvent{
		{UserID: "u1", BookID: "b1", Category: "fantasy", Action: "read", ReadTime: 60, Timestamp: at(day1, 20)},
		{UserID: "u1", BookID: "b2", Category: "fantasy", Action: "read", ReadTime: 90, Timestamp: at(day1, 20)},
		{UserID: "u1", BookID: "b1", Category: "fantasy", Action: "bookmark", ReadTime: 1, Timestamp: at(day2, 20)},
		{UserID: "u2", BookID: "b3", Category: "romance", Action: "read", ReadTime: 30, Timestamp: at(day1, 8)},
		{UserID: "u2", BookID: "b3", Category: "romance", Action: "browse", ReadTime: 2, Timestamp: at(day2, 20)},
		{UserID: "u3", BookID: "b4", Category: "fantasy", Action: "browse", ReadTime: 3, Timestamp: at(day2, 9)},
	}
}

// TestAnalyzeActivity checks DAU and peak-hour aggregation.
func TestAnalyzeActivity(t *testing.T) {
	insights, err := Analyze(fixtureEvents())
	if err != nil {
		t.Fatalf("analysis failed; %v", err)
	}
	if insights.Activity.DAU["2024-01-01"] != 2 {
		t.Errorf("expected 2 active users on day one; got %d", insights.Activity.DAU["2024-01-01"])
	}
	if insights.Activity.DAU["2024-01-02"] != 3 {
		t.Errorf("expected 3 active users on day two; got %d", insights.Activity.DAU["2024-01-02"])
	}
	assertAlmostEqual(t, insights.Activity.AvgDAU, 2.5)
	if insights.Activity.PeakHour != 20 {
		t.Errorf("expected peak hour 20; got %d", insights.Activity.PeakHour)
	}
}

// TestAnalyzeContent checks category popularity and reading time.
func TestAnalyzeContent(t *testing.T) {
	insights, err := Analyze(fixtureEvents())
	if err != nil {
		t.Fatalf("analysis failed; %v", err)
	}
	if insights.Content.MostPopular != "fantasy" {
		t.Errorf("expected fantasy to be most popular; got %q", insights.Content.MostPopular)
	}
	if insights.Content.Popularity["fantasy"] != 4 || insights.Content.Popularity["romance"] != 2 {
		t.Errorf("unexpected popularity %v", insights.Content.Popularity)
	}
	assertAlmostEqual(t, insights.Content.AvgReadTime["fantasy"], (60.0+90.0+1.0+3.0)/4.0)
	assertAlmostEqual(t, insights.Content.AvgReadTime["romance"], 16.0)
	if insights.Content.LongestRead != "fantasy" {
		t.Errorf("expected fantasy to have the longest reads; got %q", insights.Content.LongestRead)
	}
}

// TestAnalyzeValue checks the per-user aggregates and the tier split.
func TestAnalyzeValue(t *testing.T) {
	insights, err := Analyze(fixtureEvents())
	if err != nil {
		t.Fatalf("analysis failed; %v", err)
	}
	if len(insights.Value.Users) != 3 {
		t.Fatalf("expected 3 users; got %d", len(insights.Value.Users))
	}
	top := insights.Value.Users[0]
	if top.UserID != "u1" {
		t.Errorf("expected u1 to be the heaviest reader; got %q", top.UserID)
	}
	assertAlmostEqual(t, top.TotalReadTime, 151)
	if top.TotalEvents != 3 || top.UniqueBooks != 2 {
		t.Errorf("unexpected aggregate for u1: %+v", top)
	}
	if top.Tier != TierHigh {
		t.Errorf("expected u1 in the High tier; got %q", top.Tier)
	}
	if insights.Value.HighValue != insights.Value.TierCounts[TierHigh] {
		t.Errorf("high-value count disagrees with tier counts")
	}
	total := 0
	for _, n := range insights.Value.TierCounts {
		total += n
	}
	if total != 3 {
		t.Errorf("tier counts should cover all users; got %d", total)
	}
}

// TestAnalyzeActions checks the action-type distribution.
func TestAnalyzeActions(t *testing.T) {
	insights, err := Analyze(fixtureEvents())
	if err != nil {
		t.Fatalf("analysis failed; %v", err)
	}
	want := map[string]int{"read": 3, "browse": 2, "bookmark": 1}
	for action, n := range want {
		if insights.Actions.Distribution[action] != n {
			t.Errorf("expected %d %s events; got %d", n, action, insights.Actions.Distribution[action])
		}
	}
}

// TestAnalyzeEmptyLog checks that an empty log is rejected.
func TestAnalyzeEmptyLog(t *testing.T) {
	if _, err := Analyze(nil); err == nil {
		t.Errorf("expected error for empty log")
	}
}

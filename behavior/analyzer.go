package behavior

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/epsilab/insight/dataset"
)

// Tier labels of the user-value split.
const (
	TierLow    = "Low"
	TierMedium = "Medium"
	TierHigh   = "High"
)

// ActivityInsights describe when users are active.
type ActivityInsights struct {
	DAU      map[string]int // date -> number of distinct active users
	AvgDAU   float64
	Hourly   [24]int // events per hour of day
	PeakHour int
}

// ContentInsights describe what users read.
type ContentInsights struct {
	Popularity  map[string]int     // category -> number of events
	AvgReadTime map[string]float64 // category -> mean reading minutes
	MostPopular string
	LongestRead string
}

// UserActivity is the per-user aggregate behind the value split.
type UserActivity struct {
	UserID        string
	TotalEvents   int
	TotalReadTime float64
	UniqueBooks   int
	Tier          string
}

// ValueInsights describe how much users are worth.
type ValueInsights struct {
	Users      []UserActivity // sorted by total reading time, descending
	TierCounts map[string]int
	HighValue  int     // number of users in the High tier
	ReadTime   Moments // distribution of per-event reading time
}

// ActionInsights describe what users do.
type ActionInsights struct {
	Distribution map[string]int // action type -> number of events
}

// Insights bundles all sections of the behavior report.
type Insights struct {
	Activity ActivityInsights
	Content  ContentInsights
	Value    ValueInsights
	Actions  ActionInsights
}

// Analyze computes all behavior insights of a cleaned event log.
func Analyze(events []dataset.BehaviorEvent) (*Insights, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("empty event log")
	}

	insights := &Insights{
		Activity: ActivityInsights{DAU: map[string]int{}},
		Content: ContentInsights{
			Popularity:  map[string]int{},
			AvgReadTime: map[string]float64{},
		},
		Value:   ValueInsights{TierCounts: map[string]int{}},
		Actions: ActionInsights{Distribution: map[string]int{}},
	}

	dailyUsers := map[string]map[string]bool{}
	categoryTime := map[string]*Moments{}
	perUser := map[string]*UserActivity{}
	userBooks := map[string]map[string]bool{}

	for _, e := range events {
		date := e.Date()
		if dailyUsers[date] == nil {
			dailyUsers[date] = map[string]bool{}
		}
		dailyUsers[date][e.UserID] = true
		insights.Activity.Hourly[e.Hour()]++

		insights.Content.Popularity[e.Category]++
		if categoryTime[e.Category] == nil {
			categoryTime[e.Category] = &Moments{}
		}
		categoryTime[e.Category].Add(e.ReadTime)

		if perUser[e.UserID] == nil {
			perUser[e.UserID] = &UserActivity{UserID: e.UserID}
			userBooks[e.UserID] = map[string]bool{}
		}
		perUser[e.UserID].TotalEvents++
		perUser[e.UserID].TotalReadTime += e.ReadTime
		userBooks[e.UserID][e.BookID] = true

		insights.Value.ReadTime.Add(e.ReadTime)
		insights.Actions.Distribution[e.Action]++
	}

	// activity section
	totalDAU := 0
	for date, users := range dailyUsers {
		insights.Activity.DAU[date] = len(users)
		totalDAU += len(users)
	}
	insights.Activity.AvgDAU = float64(totalDAU) / float64(len(dailyUsers))
	for hour, n := range insights.Activity.Hourly {
		if n > insights.Activity.Hourly[insights.Activity.PeakHour] {
			insights.Activity.PeakHour = hour
		}
	}

	// content section
	for category, m := range categoryTime {
		insights.Content.AvgReadTime[category] = m.Mean()
	}
	insights.Content.MostPopular = argmaxInt(insights.Content.Popularity)
	insights.Content.LongestRead = argmaxFloat(insights.Content.AvgReadTime)

	// value section: tertile split over total reading time
	users := make([]UserActivity, 0, len(perUser))
	totals := make([]float64, 0, len(perUser))
	for id, u := range perUser {
		u.UniqueBooks = len(userBooks[id])
		users = append(users, *u)
		totals = append(totals, u.TotalReadTime)
	}
	sort.Float64s(totals)
	lowCut := stat.Quantile(1.0/3.0, stat.Empirical, totals, nil)
	highCut := stat.Quantile(2.0/3.0, stat.Empirical, totals, nil)
	for i := range users {
		switch {
		case users[i].TotalReadTime <= lowCut:
			users[i].Tier = TierLow
		case users[i].TotalReadTime <= highCut:
			users[i].Tier = TierMedium
		default:
			users[i].Tier = TierHigh
		}
		insights.Value.TierCounts[users[i].Tier]++
	}
	insights.Value.HighValue = insights.Value.TierCounts[TierHigh]
	sort.Slice(users, func(i, j int) bool {
		return users[i].TotalReadTime > users[j].TotalReadTime
	})
	insights.Value.Users = users

	return insights, nil
}

// argmaxInt returns the key with the largest count; ties resolve to the
// lexicographically smallest key so the result is deterministic.
func argmaxInt(m map[string]int) string {
	best := ""
	for k, v := range m {
		if best == "" || v > m[best] || (v == m[best] && k < best) {
			best = k
		}
	}
	return best
}

func argmaxFloat(m map[string]float64) string {
	best := ""
	for k, v := range m {
		if best == "" || v > m[best] || (v == m[best] && k < best) {
			best = k
		}
	}
	return best
}

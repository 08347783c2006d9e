package generator

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/inference"
)

// Book categories and action types of the synthetic reading log.
var (
	categories = []string{"fantasy", "romance", "sci-fi", "mystery", "history"}
	actions    = []string{"browse", "read", "bookmark"}
)

// BehaviorParams control the synthetic reading-behavior dataset.
type BehaviorParams struct {
	NumUsers     int       // number of distinct users
	NumBooks     int       // number of distinct books
	MeanEvents   int       // average number of events per user
	MeanReadTime float64   // mean reading time in minutes for read events
	StartTime    time.Time // first day of the log
	Days         int       // log duration in days
	DirtRate     float64   // probability of emitting a duplicate or broken row
}

// DefaultBehaviorParams returns the defaults of the behavior pipeline:
// 1000 users, 200 books, 30 days of events starting 2024-01-01, with a
// small fraction of dirty rows for the cleaning stage to remove.
func DefaultBehaviorParams() BehaviorParams {
	return BehaviorParams{
		NumUsers:     1000,
		NumBooks:     200,
		MeanEvents:   20,
		MeanReadTime: 30.0,
		StartTime:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:         30,
		DirtRate:     0.02,
	}
}

// GenerateBehaviorEvents synthesizes the reading log. Reading times of read
// events are exponentially distributed around the configured mean; browse
// and bookmark events are short. A DirtRate fraction of rows is emitted as
// exact duplicates or zero-read-time rows so that the cleaning stage has
// work to do.
func GenerateBehaviorEvents(p BehaviorParams, src rand.Source) ([]dataset.BehaviorEvent, error) {
	if p.NumUsers <= 0 || p.NumBooks <= 0 || p.MeanEvents <= 0 {
		return nil, fmt.Errorf("%w: users, books and events per user must be positive", inference.ErrInvalidInput)
	}
	if p.Days <= 0 {
		return nil, fmt.Errorf("%w: number of days must be positive; got %d", inference.ErrInvalidInput, p.Days)
	}
	if p.DirtRate < 0 || p.DirtRate > 1 {
		return nil, fmt.Errorf("%w: dirt rate %v outside [0,1]", inference.ErrInvalidInput, p.DirtRate)
	}

	rnd := rand.New(src)
	events := make([]dataset.BehaviorEvent, 0, p.NumUsers*p.MeanEvents)
	for u := 0; u < p.NumUsers; u++ {
		userID := fmt.Sprintf("user_%06d", u)
		// each user leans towards one category
		favourite := rnd.Intn(len(categories))
		numEvents := 1 + rnd.Intn(2*p.MeanEvents)
		for i := 0; i < numEvents; i++ {
			category := categories[favourite]
			if rnd.Float64() < 0.4 {
				category = categories[rnd.Intn(len(categories))]
			}
			action := actions[rnd.Intn(len(actions))]
			readTime := 0.5 + 4.5*rnd.Float64()
			if action == "read" {
				readTime = rnd.ExpFloat64() * p.MeanReadTime
			}
			ts := p.StartTime.Add(
				time.Duration(rnd.Intn(p.Days))*24*time.Hour +
					time.Duration(rnd.Intn(24))*time.Hour +
					time.Duration(rnd.Intn(60))*time.Minute)
			event := dataset.BehaviorEvent{
				UserID:    userID,
				BookID:    fmt.Sprintf("book_%04d", rnd.Intn(p.NumBooks)),
				Category:  category,
				Action:    action,
				ReadTime:  readTime,
				Timestamp: ts,
			}
			events = append(events, event)
			if rnd.Float64() < p.DirtRate {
				if rnd.Float64() < 0.5 {
					// exact duplicate row
					events = append(events, event)
				} else {
					broken := event
					broken.ReadTime = 0
					events = append(events, broken)
				}
			}
		}
	}
	return events, nil
}

// Package dataset defines the tabular records exchanged between the
// pipeline stages and their flat-file transport. Column names live here as
// configuration of the CSV layer; the inference engine only ever sees
// Observation values.
package dataset

import (
	"time"

	"github.com/epsilab/insight/inference"
)

// ClickRecord is one row of the A/B-test dataset.
type ClickRecord struct {
	UserID    string
	Timestamp time.Time
	Group     string
	Clicked   bool
}

// Date returns the calendar date of the record, a derived column of the
// cleaned dataset.
func (r ClickRecord) Date() string {
	return r.Timestamp.Format("2006-01-02")
}

// Hour returns the hour-of-day of the record.
func (r ClickRecord) Hour() int {
	return r.Timestamp.Hour()
}

// BehaviorEvent is one row of the user-behavior dataset.
type BehaviorEvent struct {
	UserID    string
	BookID    string
	Category  string
	Action    string
	ReadTime  float64 // minutes
	Timestamp time.Time
}

// Date returns the calendar date of the event.
func (e BehaviorEvent) Date() string {
	return e.Timestamp.Format("2006-01-02")
}

// Hour returns the hour-of-day of the event.
func (e BehaviorEvent) Hour() int {
	return e.Timestamp.Hour()
}

// DayOfWeek returns the weekday of the event.
func (e BehaviorEvent) DayOfWeek() time.Weekday {
	return e.Timestamp.Weekday()
}

// Observations converts click records into the engine's input shape.
func Observations(records []ClickRecord) []inference.Observation {
	observations := make([]inference.Observation, len(records))
	for i, r := range records {
		observations[i] = inference.Observation{Group: r.Group, Converted: r.Clicked}
	}
	return observations
}

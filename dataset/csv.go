package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// timestampLayout is the wire format of timestamp columns.
const timestampLayout = "2006-01-02 15:04:05"

// clickHeader is the column layout of raw click CSV files; cleaned files
// carry two extra derived columns.
var (
	clickHeader      = []string{"user_id", "timestamp", "group", "clicked"}
	clickCleanHeader = []string{"user_id", "timestamp", "group", "clicked", "date", "hour"}
	behaviorHeader   = []string{"user_id", "book_id", "category", "action_type", "read_time", "timestamp"}
)

// WriteClickRecords writes click records as a CSV file. With derived=true
// the cleaned layout with date and hour columns is produced.
func WriteClickRecords(records []ClickRecord, filename string, derived bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %v; %v", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := clickHeader
	if derived {
		header = clickCleanHeader
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header; %v", err)
	}
	for _, r := range records {
		clicked := "0"
		if r.Clicked {
			clicked = "1"
		}
		row := []string{r.UserID, r.Timestamp.Format(timestampLayout), r.Group, clicked}
		if derived {
			row = append(row, r.Date(), strconv.Itoa(r.Hour()))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write record; %v", err)
		}
	}
	return nil
}

// ReadClickRecords reads a click CSV file written by WriteClickRecords;
// derived columns, if present, are ignored since they are recomputable.
func ReadClickRecords(filename string) ([]ClickRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v; %v", filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %v; %v", filename, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file %v has no header row", filename)
	}

	records := make([]ClickRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < len(clickHeader) {
			return nil, fmt.Errorf("row %d of %v has %d columns; need at least %d", i+2, filename, len(row), len(clickHeader))
		}
		ts, err := time.Parse(timestampLayout, row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d of %v has a malformed timestamp; %v", i+2, filename, err)
		}
		clicked, err := strconv.Atoi(row[3])
		if err != nil || (clicked != 0 && clicked != 1) {
			return nil, fmt.Errorf("row %d of %v has a non-binary clicked value %q", i+2, filename, row[3])
		}
		records = append(records, ClickRecord{
			UserID:    row[0],
			Timestamp: ts,
			Group:     row[2],
			Clicked:   clicked == 1,
		})
	}
	return records, nil
}

// WriteBehaviorEvents writes behavior events as a CSV file.
func WriteBehaviorEvents(events []BehaviorEvent, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %v; %v", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(behaviorHeader); err != nil {
		return fmt.Errorf("failed to write header; %v", err)
	}
	for _, e := range events {
		row := []string{
			e.UserID,
			e.BookID,
			e.Category,
			e.Action,
			strconv.FormatFloat(e.ReadTime, 'f', 2, 64),
			e.Timestamp.Format(timestampLayout),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write event; %v", err)
		}
	}
	return nil
}

// ReadBehaviorEvents reads a behavior CSV file written by
// WriteBehaviorEvents.
func ReadBehaviorEvents(filename string) ([]BehaviorEvent, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v; %v", filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %v; %v", filename, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file %v has no header row", filename)
	}

	events := make([]BehaviorEvent, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(behaviorHeader) {
			return nil, fmt.Errorf("row %d of %v has %d columns; need %d", i+2, filename, len(row), len(behaviorHeader))
		}
		readTime, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d of %v has a malformed read time; %v", i+2, filename, err)
		}
		ts, err := time.Parse(timestampLayout, row[5])
		if err != nil {
			return nil, fmt.Errorf("row %d of %v has a malformed timestamp; %v", i+2, filename, err)
		}
		events = append(events, BehaviorEvent{
			UserID:    row[0],
			BookID:    row[1],
			Category:  row[2],
			Action:    row[3],
			ReadTime:  readTime,
			Timestamp: ts,
		})
	}
	return events, nil
}

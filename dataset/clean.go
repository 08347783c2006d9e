package dataset

// CleanStats reports what the cleaning stage removed.
type CleanStats struct {
	Duplicates  int
	NonPositive int
}

// CleanBehaviorEvents removes exact duplicate rows and events with a
// non-positive read time. The input slice is not modified.
func CleanBehaviorEvents(events []BehaviorEvent) ([]BehaviorEvent, CleanStats) {
	var stats CleanStats
	seen := make(map[BehaviorEvent]bool, len(events))
	cleaned := make([]BehaviorEvent, 0, len(events))
	for _, e := range events {
		if seen[e] {
			stats.Duplicates++
			continue
		}
		seen[e] = true
		if e.ReadTime <= 0 {
			stats.NonPositive++
			continue
		}
		cleaned = append(cleaned, e)
	}
	return cleaned, stats
}

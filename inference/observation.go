package inference

import "fmt"

// Observation is a single record of the input dataset: a group label and a
// binary outcome. Ordering of observations is irrelevant; multiplicity is not.
type Observation struct {
	Group     string
	Converted bool
}

// GroupSummary holds the per-group aggregate of a binary-outcome dataset.
// Invariants: 0 <= Successes <= Count and Rate in [0,1].
type GroupSummary struct {
	Count     int64   `json:"count"`
	Successes int64   `json:"clicks"`
	Rate      float64 `json:"ctr"`
}

// NewGroupSummary constructs a summary from raw counts.
func NewGroupSummary(successes, count int64) (GroupSummary, error) {
	if count <= 0 {
		return GroupSummary{}, fmt.Errorf("%w: group count must be positive; got %d", ErrInvalidInput, count)
	}
	if successes < 0 || successes > count {
		return GroupSummary{}, fmt.Errorf("%w: successes %d outside [0,%d]", ErrInvalidInput, successes, count)
	}
	return GroupSummary{
		Count:     count,
		Successes: successes,
		Rate:      float64(successes) / float64(count),
	}, nil
}

// Aggregate reduces a dataset to per-group summaries for the two named
// groups. It fails with ErrConfiguration when the dataset contains fewer
// than two distinct group labels or when either named group is empty.
func Aggregate(observations []Observation, controlLabel string, treatmentLabel string) (map[string]GroupSummary, error) {
	if controlLabel == treatmentLabel {
		return nil, fmt.Errorf("%w: group labels must differ; got %q twice", ErrConfiguration, controlLabel)
	}

	distinct := map[string]bool{}
	counts := map[string]int64{}
	successes := map[string]int64{}
	for _, o := range observations {
		distinct[o.Group] = true
		counts[o.Group]++
		if o.Converted {
			successes[o.Group]++
		}
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: dataset contains %d distinct group(s); need two", ErrConfiguration, len(distinct))
	}

	summaries := map[string]GroupSummary{}
	for _, label := range []string{controlLabel, treatmentLabel} {
		if counts[label] == 0 {
			return nil, fmt.Errorf("%w: group %q has no observations", ErrConfiguration, label)
		}
		s, err := NewGroupSummary(successes[label], counts[label])
		if err != nil {
			return nil, err
		}
		summaries[label] = s
	}
	return summaries, nil
}

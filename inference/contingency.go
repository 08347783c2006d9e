package inference

import "fmt"

// ContingencyTable is a 2x2 cross-tabulation of group x outcome counts.
// Row 0 is the control group, row 1 the treatment group; column 0 counts
// converted observations, column 1 the remainder. The table is derived
// deterministically from its inputs and never mutated afterwards.
type ContingencyTable struct {
	Counts [2][2]int64
}

// NewContingencyTable builds a table from raw per-group counts.
func NewContingencyTable(controlSuccesses, controlTotal, treatmentSuccesses, treatmentTotal int64) (ContingencyTable, error) {
	control, err := NewGroupSummary(controlSuccesses, controlTotal)
	if err != nil {
		return ContingencyTable{}, err
	}
	treatment, err := NewGroupSummary(treatmentSuccesses, treatmentTotal)
	if err != nil {
		return ContingencyTable{}, err
	}
	return TableFromSummaries(control, treatment), nil
}

// TableFromSummaries derives the contingency table of two group summaries.
func TableFromSummaries(control, treatment GroupSummary) ContingencyTable {
	return ContingencyTable{
		Counts: [2][2]int64{
			{control.Successes, control.Count - control.Successes},
			{treatment.Successes, treatment.Count - treatment.Successes},
		},
	}
}

// RowTotals returns the per-group marginal totals.
func (t ContingencyTable) RowTotals() [2]int64 {
	return [2]int64{
		t.Counts[0][0] + t.Counts[0][1],
		t.Counts[1][0] + t.Counts[1][1],
	}
}

// ColTotals returns the per-outcome marginal totals.
func (t ContingencyTable) ColTotals() [2]int64 {
	return [2]int64{
		t.Counts[0][0] + t.Counts[1][0],
		t.Counts[0][1] + t.Counts[1][1],
	}
}

// GrandTotal returns the number of observations in the table.
func (t ContingencyTable) GrandTotal() int64 {
	return t.Counts[0][0] + t.Counts[0][1] + t.Counts[1][0] + t.Counts[1][1]
}

// checkMargins fails with ErrDegenerateTable when a marginal total is zero.
func (t ContingencyTable) checkMargins() error {
	rows := t.RowTotals()
	cols := t.ColTotals()
	for i, r := range rows {
		if r == 0 {
			return fmt.Errorf("%w: row %d total is zero", ErrDegenerateTable, i)
		}
	}
	for j, c := range cols {
		if c == 0 {
			return fmt.Errorf("%w: column %d total is zero", ErrDegenerateTable, j)
		}
	}
	return nil
}

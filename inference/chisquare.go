package inference

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// TestResult is the immutable output of the chi-square test of independence.
type TestResult struct {
	Statistic        float64       `json:"statistic"`
	PValue           float64       `json:"p_value"`
	DegreesOfFreedom int           `json:"degrees_of_freedom"`
	Expected         [2][2]float64 `json:"expected_frequencies"`
}

// ChiSquareTest performs Pearson's chi-square test of independence on a 2x2
// contingency table with one degree of freedom and no continuity correction.
// The statistic is the sum of (observed-expected)^2/expected over all four
// cells, with expected[i][j] = rowTotal[i]*colTotal[j]/grandTotal. The
// p-value is the upper-tail probability of the chi-square distribution with
// dof=1 at the statistic. Fails with ErrDegenerateTable when a marginal
// total is zero.
func ChiSquareTest(t ContingencyTable) (TestResult, error) {
	if err := t.checkMargins(); err != nil {
		return TestResult{}, err
	}

	rows := t.RowTotals()
	cols := t.ColTotals()
	n := float64(t.GrandTotal())

	var expected [2][2]float64
	statistic := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			e := float64(rows[i]) * float64(cols[j]) / n
			expected[i][j] = e
			d := float64(t.Counts[i][j]) - e
			statistic += d * d / e
		}
	}

	return TestResult{
		Statistic:        statistic,
		PValue:           distuv.ChiSquared{K: 1, Src: nil}.Survival(statistic),
		DegreesOfFreedom: 1,
		Expected:         expected,
	}, nil
}

package inference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultAlpha is the significance level used when the caller does not
// choose one.
const DefaultAlpha = 0.05

// IntervalEstimate is the immutable normal-approximation (Wald) interval
// for the difference of two independent proportions.
type IntervalEstimate struct {
	Difference          float64 `json:"difference"`
	Lower               float64 `json:"ci_lower"`
	Upper               float64 `json:"ci_upper"`
	MarginOfError       float64 `json:"margin_of_error"`
	RelativeImprovement float64 `json:"relative_improvement"`
}

// DifferenceInterval computes the Wald interval for the difference of the
// treatment proportion over the control proportion, pB - pA, at significance
// level alpha. Fails with ErrInvalidInput for non-positive totals or an
// alpha outside (0,1), and with ErrDivisionByZero when the control
// proportion is zero, since the relative improvement is undefined there;
// the caller must never see it as Inf or NaN.
func DifferenceInterval(successesA, totalA, successesB, totalB int64, alpha float64) (IntervalEstimate, error) {
	if alpha <= 0 || alpha >= 1 {
		return IntervalEstimate{}, fmt.Errorf("%w: alpha %v outside (0,1)", ErrInvalidInput, alpha)
	}
	control, err := NewGroupSummary(successesA, totalA)
	if err != nil {
		return IntervalEstimate{}, err
	}
	treatment, err := NewGroupSummary(successesB, totalB)
	if err != nil {
		return IntervalEstimate{}, err
	}

	pA := control.Rate
	pB := treatment.Rate
	if pA == 0 {
		return IntervalEstimate{}, fmt.Errorf("%w: control rate is zero; relative improvement undefined", ErrDivisionByZero)
	}

	diff := pB - pA
	se := math.Sqrt(pA*(1-pA)/float64(totalA) + pB*(1-pB)/float64(totalB))
	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	margin := z * se

	return IntervalEstimate{
		Difference:          diff,
		Lower:               diff - margin,
		Upper:               diff + margin,
		MarginOfError:       margin,
		RelativeImprovement: diff / pA,
	}, nil
}

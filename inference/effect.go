package inference

import (
	"fmt"
	"math"
)

// CohenH computes Cohen's h, the arcsine-transform effect size for the
// difference between two proportions:
//
//	h = 2*(asin(sqrt(pB)) - asin(sqrt(pA)))
//
// The absolute value is returned, so the measure is symmetric in its
// arguments. Fails with ErrInvalidInput if either rate is outside [0,1].
func CohenH(rateA, rateB float64) (float64, error) {
	for _, r := range []float64{rateA, rateB} {
		if r < 0 || r > 1 || math.IsNaN(r) {
			return 0, fmt.Errorf("%w: rate %v outside [0,1]", ErrInvalidInput, r)
		}
	}
	h := 2 * (math.Asin(math.Sqrt(rateB)) - math.Asin(math.Sqrt(rateA)))
	return math.Abs(h), nil
}

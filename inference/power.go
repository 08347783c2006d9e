package inference

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSimulations is the number of Monte-Carlo trials used when the
// caller does not choose one.
const DefaultSimulations = 5000

// PowerEstimate is the immutable result of a Monte-Carlo power simulation.
// Power is the fraction of simulated experiments in which the chi-square
// test rejected the null hypothesis at the chosen significance level. It is
// an approximation of the true power with sampling error of order
// 1/sqrt(Simulations), not an exact value.
type PowerEstimate struct {
	Power       float64 `json:"power"`
	Simulations int     `json:"n_simulations"`
	Detections  int     `json:"significant_detections"`
}

// SimulatePower estimates the statistical power of a two-group experiment by
// simulation. Each trial draws the per-group success counts from two
// independent Binomial(sampleSize, rate) distributions, derives the 2x2
// contingency table, and runs the chi-square test; the trial counts as a
// detection when p < alpha. A trial whose table is degenerate (a zero
// marginal total) counts as not detected.
//
// The source of randomness is injected, so runs under a fixed seed are
// reproducible. Trials are independent of each other; the loop is a pure
// reduction over the detection counter.
//
// Fails with ErrInvalidInput for rates outside [0,1], a non-positive sample
// size or simulation count, or an alpha outside (0,1).
func SimulatePower(controlRate, treatmentRate float64, sampleSize int, alpha float64, simulations int, src rand.Source) (PowerEstimate, error) {
	for _, r := range []float64{controlRate, treatmentRate} {
		if r < 0 || r > 1 {
			return PowerEstimate{}, fmt.Errorf("%w: rate %v outside [0,1]", ErrInvalidInput, r)
		}
	}
	if sampleSize <= 0 {
		return PowerEstimate{}, fmt.Errorf("%w: sample size must be positive; got %d", ErrInvalidInput, sampleSize)
	}
	if simulations <= 0 {
		return PowerEstimate{}, fmt.Errorf("%w: simulation count must be positive; got %d", ErrInvalidInput, simulations)
	}
	if alpha <= 0 || alpha >= 1 {
		return PowerEstimate{}, fmt.Errorf("%w: alpha %v outside (0,1)", ErrInvalidInput, alpha)
	}

	controlDist := distuv.Binomial{N: float64(sampleSize), P: controlRate, Src: src}
	treatmentDist := distuv.Binomial{N: float64(sampleSize), P: treatmentRate, Src: src}

	detections := 0
	for trial := 0; trial < simulations; trial++ {
		controlSuccesses := int64(controlDist.Rand())
		treatmentSuccesses := int64(treatmentDist.Rand())

		table, err := NewContingencyTable(controlSuccesses, int64(sampleSize), treatmentSuccesses, int64(sampleSize))
		if err != nil {
			return PowerEstimate{}, err
		}
		result, err := ChiSquareTest(table)
		if err != nil {
			// zero marginal total; the test cannot reject
			continue
		}
		if result.PValue < alpha {
			detections++
		}
	}

	return PowerEstimate{
		Power:       float64(detections) / float64(simulations),
		Simulations: simulations,
		Detections:  detections,
	}, nil
}

// PowerCurve estimates the power for a range of per-group sample sizes and
// returns (sampleSize, power) points, the raw material of the power-curve
// chart. The same source drives all points, so one seed fixes the curve.
func PowerCurve(controlRate, treatmentRate float64, sampleSizes []int, alpha float64, simulations int, src rand.Source) ([][2]float64, error) {
	points := make([][2]float64, 0, len(sampleSizes))
	for _, n := range sampleSizes {
		estimate, err := SimulatePower(controlRate, treatmentRate, n, alpha, simulations, src)
		if err != nil {
			return nil, err
		}
		points = append(points, [2]float64{float64(n), estimate.Power})
	}
	return points, nil
}

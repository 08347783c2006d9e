// Package behavior computes the user-behavior insights of the reading log:
// activity, content preference, user value and action mix.
package behavior

import "math"

// Moments accumulates descriptive statistics of a stream of values in one
// pass: count, min, max, a Kahan-compensated sum and the first four central
// moments, so mean, variance, standard deviation and skewness are available
// without keeping the samples.
type Moments struct {
	count uint64
	min   float64
	max   float64

	ksum float64
	c    float64

	m1 float64
	m2 float64
	m3 float64
	m4 float64
}

// Add feeds one value into the accumulator.
func (s *Moments) Add(x float64) {
	prevN, n := float64(s.count), float64(s.count+1)

	delta := x - s.m1
	deltaN := delta / n
	deltaN2 := deltaN * deltaN

	t := delta * deltaN * prevN
	s.m1 += deltaN
	s.m4 += t*deltaN2*(n*n-3*n+3) + (6 * deltaN2 * s.m2) - (4 * deltaN * s.m3)
	s.m3 += t*deltaN*(n-2) - (3 * deltaN * s.m2)
	s.m2 += t

	// Kahan summation keeps the total exact over long streams
	y := x - s.c
	z := s.ksum + y
	s.c = (z - s.ksum) - y
	s.ksum = z

	if s.count == 0 {
		s.min = x
		s.max = x
	} else {
		s.min = math.Min(s.min, x)
		s.max = math.Max(s.max, x)
	}
	s.count++
}

// Count returns the number of accumulated values.
func (s *Moments) Count() uint64 {
	return s.count
}

// Sum returns the compensated total.
func (s *Moments) Sum() float64 {
	return s.ksum
}

// Mean returns the arithmetic mean.
func (s *Moments) Mean() float64 {
	return s.m1
}

// Variance returns the population variance.
func (s *Moments) Variance() float64 {
	return s.m2 / float64(s.count)
}

// StdDev returns the population standard deviation.
func (s *Moments) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Skewness returns the standardized third moment.
func (s *Moments) Skewness() float64 {
	return math.Sqrt(float64(s.count)) * s.m3 / math.Pow(s.m2, 1.5)
}

// Min returns the smallest accumulated value, NaN when empty.
func (s *Moments) Min() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.min
}

// Max returns the largest accumulated value, NaN when empty.
func (s *Moments) Max() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.max
}

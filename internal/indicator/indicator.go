// Package indicator provides pure, slice-based technical indicator
// primitives. Every function returns a slice aligned index-for-index with
// its input; positions where the lookback window is unsatisfied hold NaN.
// Inputs are never mutated.
package indicator

import "math"

// nans returns a slice of length n filled with NaN.
func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// Defined reports whether v holds a computed value rather than warmup NaN.
func Defined(v float64) bool {
	return !math.IsNaN(v)
}

// windowDefined reports whether values[i-period+1 .. i] are all defined.
func windowDefined(values []float64, i, period int) bool {
	if i-period+1 < 0 {
		return false
	}
	for j := i - period + 1; j <= i; j++ {
		if math.IsNaN(values[j]) {
			return false
		}
	}
	return true
}

// Shift moves a series forward by n bars: out[i] = values[i-n].
// The leading n positions become NaN.
func Shift(values []float64, n int) []float64 {
	out := nans(len(values))
	for i := n; i < len(values); i++ {
		out[i] = values[i-n]
	}
	return out
}

// rollingMax returns the window maximum per bar.
func rollingMax(values []float64, period int) []float64 {
	out := nans(len(values))
	for i := period - 1; i < len(values); i++ {
		if !windowDefined(values, i, period) {
			continue
		}
		max := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if values[j] > max {
				max = values[j]
			}
		}
		out[i] = max
	}
	return out
}

// rollingMin returns the window minimum per bar.
func rollingMin(values []float64, period int) []float64 {
	out := nans(len(values))
	for i := period - 1; i < len(values); i++ {
		if !windowDefined(values, i, period) {
			continue
		}
		min := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if values[j] < min {
				min = values[j]
			}
		}
		out[i] = min
	}
	return out
}

// rollingSum returns the window sum per bar.
func rollingSum(values []float64, period int) []float64 {
	out := nans(len(values))
	for i := period - 1; i < len(values); i++ {
		if !windowDefined(values, i, period) {
			continue
		}
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum
	}
	return out
}

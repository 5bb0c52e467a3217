package indicator

import "math"

// CCI calculates the Commodity Channel Index over typical price, using
// the conventional 0.015 scaling constant.
func CCI(highs, lows, closes []float64, period int) []float64 {
	n := len(closes)
	tp := make([]float64, n)
	for i := 0; i < n; i++ {
		tp[i] = (highs[i] + lows[i] + closes[i]) / 3
	}

	out := nans(n)
	for i := period - 1; i < n; i++ {
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += tp[j]
		}
		mean := sum / float64(period)

		var dev float64
		for j := i - period + 1; j <= i; j++ {
			dev += math.Abs(tp[j] - mean)
		}
		dev /= float64(period)
		if dev == 0 {
			continue
		}
		out[i] = (tp[i] - mean) / (0.015 * dev)
	}
	return out
}

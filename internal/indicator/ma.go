package indicator

import "math"

// SMA calculates the Simple Moving Average.
func SMA(values []float64, period int) []float64 {
	out := nans(len(values))
	for i := period - 1; i < len(values); i++ {
		if !windowDefined(values, i, period) {
			continue
		}
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(period)
	}
	return out
}

// EMA calculates the Exponential Moving Average. The first defined value
// is the SMA over the first full window, then the recursive form applies.
func EMA(values []float64, period int) []float64 {
	out := nans(len(values))
	multiplier := 2.0 / float64(period+1)

	// Find the first index with a full window of defined inputs.
	start := -1
	for i := period - 1; i < len(values); i++ {
		if windowDefined(values, i, period) {
			start = i
			break
		}
	}
	if start < 0 {
		return out
	}

	var sum float64
	for j := start - period + 1; j <= start; j++ {
		sum += values[j]
	}
	ema := sum / float64(period)
	out[start] = ema

	for i := start + 1; i < len(values); i++ {
		if math.IsNaN(values[i]) {
			return out
		}
		ema = (values[i]-ema)*multiplier + ema
		out[i] = ema
	}
	return out
}

// WMA calculates the linearly-weighted moving average, with the most
// recent bar carrying the largest weight.
func WMA(values []float64, period int) []float64 {
	out := nans(len(values))
	denom := float64(period*(period+1)) / 2
	for i := period - 1; i < len(values); i++ {
		if !windowDefined(values, i, period) {
			continue
		}
		var sum float64
		for j := 0; j < period; j++ {
			sum += values[i-period+1+j] * float64(j+1)
		}
		out[i] = sum / denom
	}
	return out
}

// VWMA calculates the volume-weighted moving average of closes.
func VWMA(closes, volumes []float64, period int) []float64 {
	out := nans(len(closes))
	for i := period - 1; i < len(closes); i++ {
		if !windowDefined(closes, i, period) || !windowDefined(volumes, i, period) {
			continue
		}
		var pv, v float64
		for j := i - period + 1; j <= i; j++ {
			pv += closes[j] * volumes[j]
			v += volumes[j]
		}
		if v == 0 {
			continue
		}
		out[i] = pv / v
	}
	return out
}

// HullMA calculates the Hull Moving Average:
// WMA(2*WMA(close, n/2) - WMA(close, n), round(sqrt(n))).
func HullMA(values []float64, period int) []float64 {
	half := period / 2
	sqrtPeriod := int(math.Round(math.Sqrt(float64(period))))

	wmaHalf := WMA(values, half)
	wmaFull := WMA(values, period)

	diff := nans(len(values))
	for i := range values {
		if Defined(wmaHalf[i]) && Defined(wmaFull[i]) {
			diff[i] = 2*wmaHalf[i] - wmaFull[i]
		}
	}
	return WMA(diff, sqrtPeriod)
}

package indicator

import "math"

// AO calculates the Awesome Oscillator: SMA(5) minus SMA(34) over the
// bar midpoint (high+low)/2. Kept at native scale.
func AO(highs, lows []float64) []float64 {
	mid := make([]float64, len(highs))
	for i := range highs {
		mid[i] = (highs[i] + lows[i]) / 2
	}
	fast := SMA(mid, 5)
	slow := SMA(mid, 34)

	out := nans(len(highs))
	for i := range out {
		if Defined(fast[i]) && Defined(slow[i]) {
			out[i] = fast[i] - slow[i]
		}
	}
	return out
}

// Momentum calculates the absolute price difference close[i] - close[i-n].
// This is the difference form, not a ratio.
func Momentum(values []float64, n int) []float64 {
	out := nans(len(values))
	for i := n; i < len(values); i++ {
		out[i] = values[i] - values[i-n]
	}
	return out
}

// WilliamsR calculates Williams %R, ranging [-100, 0].
func WilliamsR(highs, lows, closes []float64, period int) []float64 {
	out := nans(len(closes))
	hh := rollingMax(highs, period)
	ll := rollingMin(lows, period)
	for i := period - 1; i < len(closes); i++ {
		if !Defined(hh[i]) || !Defined(ll[i]) {
			continue
		}
		span := hh[i] - ll[i]
		if span == 0 {
			continue
		}
		out[i] = -100 * (hh[i] - closes[i]) / span
	}
	return out
}

// UltimateOscillator calculates the Ultimate Oscillator over three
// buying-pressure windows with the standard 4/2/1 weighting.
func UltimateOscillator(highs, lows, closes []float64, p1, p2, p3 int) []float64 {
	n := len(closes)
	bp := nans(n)
	tr := nans(n)
	for i := 1; i < n; i++ {
		trueLow := math.Min(lows[i], closes[i-1])
		trueHigh := math.Max(highs[i], closes[i-1])
		bp[i] = closes[i] - trueLow
		tr[i] = trueHigh - trueLow
	}

	avg1 := windowRatio(bp, tr, p1)
	avg2 := windowRatio(bp, tr, p2)
	avg3 := windowRatio(bp, tr, p3)

	out := nans(n)
	for i := range out {
		if Defined(avg1[i]) && Defined(avg2[i]) && Defined(avg3[i]) {
			out[i] = 100 * (4*avg1[i] + 2*avg2[i] + avg3[i]) / 7
		}
	}
	return out
}

// windowRatio returns sum(num, period) / sum(den, period) per bar.
func windowRatio(num, den []float64, period int) []float64 {
	sumNum := rollingSum(num, period)
	sumDen := rollingSum(den, period)
	out := nans(len(num))
	for i := range out {
		if Defined(sumNum[i]) && Defined(sumDen[i]) && sumDen[i] != 0 {
			out[i] = sumNum[i] / sumDen[i]
		}
	}
	return out
}

// ElderRay calculates Bull Power (high - EMA) and Bear Power (low - EMA)
// at native scale.
func ElderRay(highs, lows, closes []float64, period int) (bull, bear []float64) {
	ema := EMA(closes, period)
	bull, bear = nans(len(closes)), nans(len(closes))
	for i := range closes {
		if Defined(ema[i]) {
			bull[i] = highs[i] - ema[i]
			bear[i] = lows[i] - ema[i]
		}
	}
	return bull, bear
}

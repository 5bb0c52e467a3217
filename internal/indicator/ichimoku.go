package indicator

// Midpoint returns (highest high + lowest low) / 2 over the window.
func Midpoint(highs, lows []float64, period int) []float64 {
	hh := rollingMax(highs, period)
	ll := rollingMin(lows, period)
	out := nans(len(highs))
	for i := range out {
		if Defined(hh[i]) && Defined(ll[i]) {
			out[i] = (hh[i] + ll[i]) / 2
		}
	}
	return out
}

// Ichimoku calculates the Tenkan-sen and Kijun-sen lines plus the Senkou
// spans. Both spans are carried forward by `displacement` bars, so the
// value at index i reflects the midpoints computed displacement bars
// earlier — the cloud as it stands over the current bar.
func Ichimoku(highs, lows []float64, conversion, base, span, displacement int) (tenkan, kijun, senkouA, senkouB []float64) {
	tenkan = Midpoint(highs, lows, conversion)
	kijun = Midpoint(highs, lows, base)

	rawA := nans(len(highs))
	for i := range rawA {
		if Defined(tenkan[i]) && Defined(kijun[i]) {
			rawA[i] = (tenkan[i] + kijun[i]) / 2
		}
	}
	senkouA = Shift(rawA, displacement)
	senkouB = Shift(Midpoint(highs, lows, span), displacement)
	return tenkan, kijun, senkouA, senkouB
}

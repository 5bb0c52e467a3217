package indicator

// Stoch calculates the Stochastic oscillator. The raw %K is smoothed over
// `smooth` bars to give the slow %K, and %D is an SMA of the slow %K over
// `signal` bars. Values range [0,100]; a flat window yields NaN.
func Stoch(highs, lows, closes []float64, period, smooth, signal int) (k, d []float64) {
	raw := nans(len(closes))
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
		raw[i] = 100 * (closes[i] - ll[i]) / span
	}

	k = SMA(raw, smooth)
	d = SMA(k, signal)
	return k, d
}

// StochRSI applies the stochastic formula to an RSI series. Output is in
// [0,1]; the display-compatibility x100 scaling is the caller's concern.
func StochRSI(closes []float64, rsiPeriod, stochPeriod, smooth, signal int) (k, d []float64) {
	rsi := RSI(closes, rsiPeriod)
	raw := nans(len(closes))
	hh := rollingMax(rsi, stochPeriod)
	ll := rollingMin(rsi, stochPeriod)

	for i := range closes {
		if !Defined(hh[i]) || !Defined(ll[i]) {
			continue
		}
		span := hh[i] - ll[i]
		if span == 0 {
			continue
		}
		raw[i] = (rsi[i] - ll[i]) / span
	}

	k = SMA(raw, smooth)
	d = SMA(k, signal)
	return k, d
}

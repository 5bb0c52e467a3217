package indicator

import "math"

// DMI calculates the Directional Movement Index: the ADX trend-strength
// line plus the +DI and -DI directional lines, all Wilder-smoothed.
// +DI/-DI appear at index period; ADX needs a second smoothing pass and
// appears at index 2*period-1.
func DMI(highs, lows, closes []float64, period int) (adx, plusDI, minusDI []float64) {
	n := len(closes)
	adx, plusDI, minusDI = nans(n), nans(n), nans(n)
	if n <= period {
		return adx, plusDI, minusDI
	}

	tr := make([]float64, n)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		tr[i] = trueRange(highs[i], lows[i], closes[i-1])

		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	// Wilder smoothing: seed with the first `period` sums, then
	// s = s - s/period + current.
	var sTR, sPlus, sMinus float64
	for i := 1; i <= period; i++ {
		sTR += tr[i]
		sPlus += plusDM[i]
		sMinus += minusDM[i]
	}

	dx := nans(n)
	for i := period; i < n; i++ {
		if i > period {
			sTR = sTR - sTR/float64(period) + tr[i]
			sPlus = sPlus - sPlus/float64(period) + plusDM[i]
			sMinus = sMinus - sMinus/float64(period) + minusDM[i]
		}
		if sTR == 0 {
			continue
		}
		pdi := 100 * sPlus / sTR
		mdi := 100 * sMinus / sTR
		plusDI[i] = pdi
		minusDI[i] = mdi
		if pdi+mdi > 0 {
			dx[i] = 100 * math.Abs(pdi-mdi) / (pdi + mdi)
		}
	}

	first := 2*period - 1
	if first >= n || !windowDefined(dx, first, period) {
		return adx, plusDI, minusDI
	}
	var sum float64
	for i := period; i <= first; i++ {
		sum += dx[i]
	}
	adx[first] = sum / float64(period)
	for i := first + 1; i < n; i++ {
		if math.IsNaN(dx[i]) {
			continue
		}
		adx[i] = (adx[i-1]*float64(period-1) + dx[i]) / float64(period)
	}
	return adx, plusDI, minusDI
}

func trueRange(high, low, prevClose float64) float64 {
	tr := high - low
	if hc := math.Abs(high - prevClose); hc > tr {
		tr = hc
	}
	if lc := math.Abs(low - prevClose); lc > tr {
		tr = lc
	}
	return tr
}

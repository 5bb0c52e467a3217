package indicator

// MACD calculates the Moving Average Convergence Divergence line, its
// signal line, and the histogram, all at native scale.
func MACD(values []float64, fast, slow, signal int) (line, sig, hist []float64) {
	emaFast := EMA(values, fast)
	emaSlow := EMA(values, slow)

	line = nans(len(values))
	for i := range values {
		if Defined(emaFast[i]) && Defined(emaSlow[i]) {
			line[i] = emaFast[i] - emaSlow[i]
		}
	}

	sig = EMA(line, signal)

	hist = nans(len(values))
	for i := range values {
		if Defined(line[i]) && Defined(sig[i]) {
			hist[i] = line[i] - sig[i]
		}
	}
	return line, sig, hist
}

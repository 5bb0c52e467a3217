package indicator

import "testing"

func TestMACD_UptrendPositive(t *testing.T) {
	values := rising(60, 100, 1)
	line, sig, hist := MACD(values, 12, 26, 9)

	// In a steady uptrend the fast EMA sits above the slow EMA.
	if !Defined(line[40]) || line[40] <= 0 {
		t.Errorf("line[40] = %f, want > 0", line[40])
	}

	for i := range values {
		if Defined(hist[i]) {
			if !almostEqual(hist[i], line[i]-sig[i]) {
				t.Errorf("hist[%d] = %f, want line-signal = %f", i, hist[i], line[i]-sig[i])
			}
		}
	}
}

func TestMACD_Warmup(t *testing.T) {
	values := rising(60, 100, 1)
	line, sig, _ := MACD(values, 12, 26, 9)

	// Line needs the slow EMA (26 bars); signal needs 9 more on top.
	if Defined(line[24]) {
		t.Error("line[24] should be NaN")
	}
	if !Defined(line[25]) {
		t.Error("line[25] should be defined")
	}
	if Defined(sig[32]) {
		t.Error("sig[32] should be NaN")
	}
	if !Defined(sig[33]) {
		t.Error("sig[33] should be defined")
	}
}

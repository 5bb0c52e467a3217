package indicator

import (
	"math"
	"testing"
)

func TestAO_LinearSeries(t *testing.T) {
	// With midpoint rising by exactly 1 per bar, SMA5 trails the current
	// midpoint by 2 and SMA34 by 16.5, so AO = 14.5 everywhere defined.
	n := 40
	highs := rising(n, 11, 1)
	lows := rising(n, 9, 1)

	ao := AO(highs, lows)

	if Defined(ao[32]) {
		t.Error("ao[32] should be NaN before the 34-bar window fills")
	}
	for i := 33; i < n; i++ {
		if !almostEqual(ao[i], 14.5) {
			t.Errorf("ao[%d] = %f, want 14.5", i, ao[i])
		}
	}
}

func TestMomentum_IsDifferenceNotRatio(t *testing.T) {
	values := []float64{100, 101, 103, 106, 110, 115, 121, 128, 136, 145, 155}
	mom := Momentum(values, 10)

	if Defined(mom[9]) {
		t.Error("mom[9] should be NaN")
	}
	if !almostEqual(mom[10], 55) {
		t.Errorf("mom[10] = %f, want 55 (155-100)", mom[10])
	}
}

func TestWilliamsR(t *testing.T) {
	n := 20
	highs := constant(n, 10)
	lows := constant(n, 0)
	closes := constant(n, 5)

	wr := WilliamsR(highs, lows, closes, 14)

	// -100 * (10-5)/10 = -50
	if !almostEqual(wr[13], -50) {
		t.Errorf("wr[13] = %f, want -50", wr[13])
	}
	if Defined(wr[12]) {
		t.Error("wr[12] should be NaN")
	}
}

func TestWilliamsR_Bounds(t *testing.T) {
	n := 30
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := range highs {
		base := 100 + float64(i%7)*2
		highs[i] = base + 1
		lows[i] = base - 1
		closes[i] = base + float64(i%3) - 1
	}

	wr := WilliamsR(highs, lows, closes, 14)
	for i := 13; i < n; i++ {
		if wr[i] < -100 || wr[i] > 0 {
			t.Errorf("wr[%d] = %f outside [-100,0]", i, wr[i])
		}
	}
}

func TestUltimateOscillator_MaxPressure(t *testing.T) {
	// With high == low == close rising, buying pressure equals true range
	// every bar, so every average is 1 and UO = 100.
	values := rising(40, 100, 1)
	uo := UltimateOscillator(values, values, values, 7, 14, 28)

	if Defined(uo[27]) {
		t.Error("uo[27] should be NaN before the 28-bar window fills")
	}
	for i := 28; i < len(values); i++ {
		if !almostEqual(uo[i], 100) {
			t.Errorf("uo[%d] = %f, want 100", i, uo[i])
		}
	}
}

func TestElderRay(t *testing.T) {
	n := 20
	closes := constant(n, 10)
	highs := constant(n, 12)
	lows := constant(n, 9)

	bull, bear := ElderRay(highs, lows, closes, 13)

	// Flat closes keep the EMA at 10.
	if !almostEqual(bull[13], 2) {
		t.Errorf("bull[13] = %f, want 2", bull[13])
	}
	if !almostEqual(bear[13], -1) {
		t.Errorf("bear[13] = %f, want -1", bear[13])
	}
	if Defined(bull[11]) {
		t.Error("bull[11] should be NaN")
	}
}

func TestShift(t *testing.T) {
	out := Shift([]float64{1, 2, 3, 4}, 2)
	if Defined(out[0]) || Defined(out[1]) {
		t.Error("shifted-in positions should be NaN")
	}
	if out[2] != 1 || out[3] != 2 {
		t.Errorf("shift = %v, want [NaN NaN 1 2]", out)
	}
	if math.IsNaN(out[3]) {
		t.Error("out[3] should be defined")
	}
}

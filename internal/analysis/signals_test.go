package analysis

import (
	"testing"

	"github.com/dnguyen/tascan/internal/core"
)

// snap builds a bare snapshot for rule tests; absent columns read as null.
func snap(close float64, values map[Name]core.Value) *Snapshot {
	if values == nil {
		values = map[Name]core.Value{}
	}
	return &Snapshot{Close: close, Values: values}
}

func TestClassify_RSIThresholds(t *testing.T) {
	tests := []struct {
		rsi  float64
		want core.SignalClass
	}{
		{75.2, core.SignalSell},
		{70.0, core.SignalNeutral},
		{50.0, core.SignalNeutral},
		{30.0, core.SignalNeutral},
		{25.0, core.SignalBuy},
	}

	for _, tc := range tests {
		curr := snap(100, map[Name]core.Value{NameRSI14: core.Val(tc.rsi)})
		signals := Classify(curr, nil)
		if got := signals[IndRSI]; got != tc.want {
			t.Errorf("RSI %.1f = %s, want %s", tc.rsi, got, tc.want)
		}
	}
}

func TestClassify_NullProducesNoSignal(t *testing.T) {
	curr := snap(100, nil)
	signals := Classify(curr, nil)

	if len(signals) != 0 {
		t.Errorf("expected no signals from an all-null snapshot, got %v", signals)
	}
}

func TestClassify_PriceVsMA(t *testing.T) {
	curr := snap(105, map[Name]core.Value{
		NameSMA10: core.Val(100), // below price
		NameSMA20: core.Val(110), // above price
		NameEMA50: core.Val(105), // tie
	})
	signals := Classify(curr, nil)

	if signals[IndSMA10] != core.SignalBuy {
		t.Errorf("SMA10 = %s, want buy", signals[IndSMA10])
	}
	if signals[IndSMA20] != core.SignalSell {
		t.Errorf("SMA20 = %s, want sell", signals[IndSMA20])
	}
	if signals[IndEMA50] != core.SignalNeutral {
		t.Errorf("EMA50 = %s, want neutral on a tie", signals[IndEMA50])
	}
	if _, ok := signals[IndSMA200]; ok {
		t.Error("SMA200 has no value and should not be signalled")
	}
}

func TestClassify_MACD(t *testing.T) {
	curr := snap(100, map[Name]core.Value{
		NameMACDLine:   core.Val(1.2),
		NameMACDSignal: core.Val(0.8),
	})
	if got := Classify(curr, nil)[IndMACD]; got != core.SignalBuy {
		t.Errorf("MACD above signal = %s, want buy", got)
	}

	curr = snap(100, map[Name]core.Value{
		NameMACDLine:   core.Val(-1.2),
		NameMACDSignal: core.Val(0.8),
	})
	if got := Classify(curr, nil)[IndMACD]; got != core.SignalSell {
		t.Errorf("MACD below signal = %s, want sell", got)
	}
}

func TestClassify_StochasticCross(t *testing.T) {
	buy := snap(100, map[Name]core.Value{
		NameStochK: core.Val(15),
		NameStochD: core.Val(12),
	})
	if got := Classify(buy, nil)[IndStoch]; got != core.SignalBuy {
		t.Errorf("oversold K>D = %s, want buy", got)
	}

	sell := snap(100, map[Name]core.Value{
		NameStochK: core.Val(85),
		NameStochD: core.Val(88),
	})
	if got := Classify(sell, nil)[IndStoch]; got != core.SignalSell {
		t.Errorf("overbought K<D = %s, want sell", got)
	}

	mid := snap(100, map[Name]core.Value{
		NameStochK: core.Val(55),
		NameStochD: core.Val(45),
	})
	if got := Classify(mid, nil)[IndStoch]; got != core.SignalNeutral {
		t.Errorf("midrange = %s, want neutral", got)
	}
}

func TestClassify_PrevDependentRules(t *testing.T) {
	prev := snap(100, map[Name]core.Value{
		NameCCI20:      core.Val(-130),
		NameAO:         core.Val(1),
		NameMomentum10: core.Val(2),
		NameWilliamsR:  core.Val(-90),
		NameADX14:      core.Val(22),
	})
	curr := snap(100, map[Name]core.Value{
		NameCCI20:      core.Val(-120), // oversold and recovering
		NameAO:         core.Val(2),    // positive and rising
		NameMomentum10: core.Val(3),    // rising
		NameWilliamsR:  core.Val(-85),  // oversold and recovering
		NameADX14:      core.Val(25),   // trending and strengthening
		NameDMIPlus:    core.Val(30),
		NameDMIMinus:   core.Val(10),
	})

	signals := Classify(curr, prev)
	for _, ind := range []Indicator{IndCCI, IndAO, IndMomentum, IndWilliamsR, IndADX} {
		if signals[ind] != core.SignalBuy {
			t.Errorf("%s = %s, want buy", ind, signals[ind])
		}
	}
}

func TestClassify_MissingPrevIsNeutral(t *testing.T) {
	curr := snap(100, map[Name]core.Value{
		NameCCI20:      core.Val(-120),
		NameMomentum10: core.Val(3),
	})

	signals := Classify(curr, nil)
	if signals[IndCCI] != core.SignalNeutral {
		t.Errorf("CCI without prev = %s, want neutral", signals[IndCCI])
	}
	if signals[IndMomentum] != core.SignalNeutral {
		t.Errorf("momentum without prev = %s, want neutral", signals[IndMomentum])
	}
}

func TestClassify_BullBearPower(t *testing.T) {
	prev := snap(100, map[Name]core.Value{
		NameEMA13:     core.Val(99),
		NameBullPower: core.Val(500),
		NameBearPower: core.Val(-800),
	})
	curr := snap(100, map[Name]core.Value{
		NameEMA13:     core.Val(100),  // trend rising
		NameBullPower: core.Val(600),
		NameBearPower: core.Val(-500), // negative but improving
	})
	if got := Classify(curr, prev)[IndBBP]; got != core.SignalBuy {
		t.Errorf("BBP = %s, want buy", got)
	}
}

func TestClassify_UltimateOscillator(t *testing.T) {
	if got := Classify(snap(100, map[Name]core.Value{NameUO: core.Val(75)}), nil)[IndUO]; got != core.SignalBuy {
		t.Errorf("UO 75 = %s, want buy", got)
	}
	if got := Classify(snap(100, map[Name]core.Value{NameUO: core.Val(25)}), nil)[IndUO]; got != core.SignalSell {
		t.Errorf("UO 25 = %s, want sell", got)
	}
}

func ichimokuValues(tenkan, kijun, spanA, spanB, chikou float64) map[Name]core.Value {
	return map[Name]core.Value{
		NameIchimokuTenkan:  core.Val(tenkan),
		NameIchimokuKijun:   core.Val(kijun),
		NameIchimokuSenkouA: core.Val(spanA),
		NameIchimokuSenkouB: core.Val(spanB),
		NameIchimokuChikou:  core.Val(chikou),
	}
}

func TestClassify_IchimokuBullish(t *testing.T) {
	// Price above both spans, tenkan above kijun, close above the close
	// 26 bars back: full bullish alignment.
	curr := snap(110, ichimokuValues(105, 100, 98, 95, 90))
	if got := Classify(curr, nil)[IndIchimoku]; got != core.SignalBuy {
		t.Errorf("ichimoku = %s, want buy", got)
	}
}

func TestClassify_IchimokuCloudDominates(t *testing.T) {
	// Price below both spans: bearish cloud wins even though the
	// tenkan/kijun cross and chikou point the other way.
	curr := snap(90, ichimokuValues(105, 100, 98, 95, 80))
	if got := Classify(curr, nil)[IndIchimoku]; got != core.SignalSell {
		t.Errorf("ichimoku = %s, want sell from cloud dominance", got)
	}
}

func TestClassify_IchimokuCrossBreaksTie(t *testing.T) {
	// Price inside the cloud: the tenkan/kijun order decides.
	curr := snap(96, ichimokuValues(105, 100, 98, 95, 120))
	if got := Classify(curr, nil)[IndIchimoku]; got != core.SignalBuy {
		t.Errorf("ichimoku = %s, want buy from tenkan above kijun", got)
	}
}

func TestClassify_IchimokuChikouConfirms(t *testing.T) {
	// Inside the cloud with a flat cross: chikou settles it.
	curr := snap(96, ichimokuValues(100, 100, 98, 95, 90))
	if got := Classify(curr, nil)[IndIchimoku]; got != core.SignalBuy {
		t.Errorf("ichimoku = %s, want buy from chikou", got)
	}
}

func TestClassify_IchimokuMissingLineForcesNeutral(t *testing.T) {
	values := ichimokuValues(105, 100, 98, 95, 90)
	values[NameIchimokuSenkouB] = core.Value{} // insufficient lookback

	curr := snap(110, values)
	got, ok := Classify(curr, nil)[IndIchimoku]
	if !ok {
		t.Fatal("partially available ichimoku should still be signalled")
	}
	if got != core.SignalNeutral {
		t.Errorf("ichimoku with a missing span = %s, want neutral", got)
	}
}

func TestClassify_IchimokuAllMissingIsExcluded(t *testing.T) {
	curr := snap(110, nil)
	if _, ok := Classify(curr, nil)[IndIchimoku]; ok {
		t.Error("fully null ichimoku should produce no signal")
	}
}

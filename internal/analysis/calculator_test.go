package analysis

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/dnguyen/tascan/internal/core"
)

// testSeries builds a deterministic 300-bar daily series with occasional
// calendar gaps standing in for non-trading days.
func testSeries(n int) core.Series {
	series := make(core.Series, 0, n)
	date := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		c := 100 + 10*math.Sin(float64(i)/7) + float64(i)*0.05
		h := c + 1 + 0.5*math.Abs(math.Sin(float64(i)/3))
		l := c - 1 - 0.5*math.Abs(math.Cos(float64(i)/5))
		series = append(series, core.PriceBar{
			Date:   date,
			Open:   (h + l) / 2,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: 1000 + float64(i%13)*50,
		})
		date = date.AddDate(0, 0, 1)
		if i%5 == 4 {
			date = date.AddDate(0, 0, 2) // weekend
		}
	}
	return series
}

func TestComputeFrame_RejectsUnsorted(t *testing.T) {
	series := testSeries(50)
	series[10], series[11] = series[11], series[10]

	_, err := ComputeFrame(series)
	if !errors.Is(err, core.ErrDataOrder) {
		t.Fatalf("expected ErrDataOrder, got %v", err)
	}
}

func TestComputeFrame_Empty(t *testing.T) {
	_, err := ComputeFrame(core.Series{})
	if !errors.Is(err, core.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestComputeIndicators_WarmupIsNull(t *testing.T) {
	series := testSeries(300)

	snap, err := ComputeIndicators(series, 3)
	if err != nil {
		t.Fatal(err)
	}

	// Only the 1-bar-independent columns could exist this early; every
	// windowed indicator must be null, not zero.
	for _, name := range []Name{NameSMA10, NameRSI14, NameMACDLine, NameADX14, NameIchimokuSenkouB} {
		if snap.Value(name).Valid {
			t.Errorf("%s should be null at index 3", name)
		}
	}
}

func TestComputeIndicators_ShortSeriesExcludesFromCounts(t *testing.T) {
	series := testSeries(12) // shorter than RSI(14) lookback

	frame, err := ComputeFrame(series)
	if err != nil {
		t.Fatal(err)
	}
	curr, _ := frame.At(11)
	prev, _ := frame.At(10)

	signals := Classify(curr, prev)
	if _, ok := signals[IndRSI]; ok {
		t.Error("RSI should produce no signal below its lookback")
	}

	osc, _ := Aggregate(curr.Date, signals)
	for ind := range signals {
		if CategoryOf(ind) != core.CategoryOscillator {
			delete(signals, ind)
		}
	}
	if osc.Total() != len(signals) {
		t.Errorf("oscillator counts = %d, want %d signalled indicators", osc.Total(), len(signals))
	}
}

func TestComputeIndicators_Idempotent(t *testing.T) {
	series := testSeries(300)

	a, err := ComputeIndicators(series, 299)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeIndicators(series, 299)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Values) != len(b.Values) {
		t.Fatalf("value sets differ in size: %d vs %d", len(a.Values), len(b.Values))
	}
	for name, av := range a.Values {
		bv := b.Values[name]
		if av.Valid != bv.Valid || av.Raw != bv.Raw || av.Scaled != bv.Scaled {
			t.Errorf("%s differs between identical runs: %+v vs %+v", name, av, bv)
		}
	}
}

func TestComputeIndicators_DocumentedScales(t *testing.T) {
	series := testSeries(300)
	snap, err := ComputeIndicators(series, 299)
	if err != nil {
		t.Fatal(err)
	}

	// MACD, Bull/Bear Power: scaled is exactly 1000x raw.
	for _, name := range []Name{NameMACDLine, NameMACDSignal, NameMACDHist, NameBullPower, NameBearPower} {
		v := snap.Value(name)
		if !v.Valid {
			t.Fatalf("%s should be valid at index 299", name)
		}
		if v.Scaled != v.Raw*1000 {
			t.Errorf("%s scaled = %v, want raw*1000 = %v", name, v.Scaled, v.Raw*1000)
		}
	}

	// StochRSI: scaled is exactly 100x raw and sits in [0,100].
	for _, name := range []Name{NameStochRSIK, NameStochRSID} {
		v := snap.Value(name)
		if !v.Valid {
			t.Fatalf("%s should be valid at index 299", name)
		}
		if v.Scaled != v.Raw*100 {
			t.Errorf("%s scaled = %v, want raw*100", name, v.Scaled)
		}
		if v.Scaled < 0 || v.Scaled > 100 {
			t.Errorf("%s = %v outside [0,100]", name, v.Scaled)
		}
	}

	// Awesome Oscillator stays at native scale.
	ao := snap.Value(NameAO)
	if !ao.Valid || ao.Scaled != ao.Raw {
		t.Errorf("AO must not be scaled: raw %v, scaled %v", ao.Raw, ao.Scaled)
	}
}

func TestComputeIndicators_MomentumIsDifference(t *testing.T) {
	series := testSeries(300)
	snap, err := ComputeIndicators(series, 299)
	if err != nil {
		t.Fatal(err)
	}

	want := series[299].Close - series[289].Close
	got := snap.Value(NameMomentum10)
	if !got.Valid || got.Scaled != want {
		t.Errorf("momentum = %v, want close[299]-close[289] = %v", got.Scaled, want)
	}
}

func TestFrame_At_OutOfRange(t *testing.T) {
	frame, err := ComputeFrame(testSeries(50))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := frame.At(50); !errors.Is(err, core.ErrNoData) {
		t.Errorf("expected ErrNoData for index past the end, got %v", err)
	}
	if _, err := frame.At(-1); !errors.Is(err, core.ErrNoData) {
		t.Errorf("expected ErrNoData for negative index, got %v", err)
	}
}

func TestStrength(t *testing.T) {
	series := testSeries(300)
	frame, err := ComputeFrame(series)
	if err != nil {
		t.Fatal(err)
	}
	snap, _ := frame.At(299)

	ts := Strength(snap)
	if !ts.ShortTerm.Valid || !ts.LongTerm.Valid {
		t.Fatal("strength averages should be valid with 300 bars")
	}

	ma5 := snap.Value(NameSMA5)
	wantVs5 := (snap.Close - ma5.Scaled) / ma5.Scaled * 100
	if math.Abs(ts.CloseVsMA5.Scaled-wantVs5) > 1e-9 {
		t.Errorf("CloseVsMA5 = %v, want %v", ts.CloseVsMA5.Scaled, wantVs5)
	}

	wantST := (ts.CloseVsMA5.Scaled + ts.CloseVsMA10.Scaled + ts.CloseVsMA20.Scaled) / 3
	if math.Abs(ts.ShortTerm.Scaled-wantST) > 1e-9 {
		t.Errorf("ShortTerm = %v, want %v", ts.ShortTerm.Scaled, wantST)
	}

	if !ts.GoldenCrossValid {
		t.Error("golden cross flag should be decidable with 300 bars")
	}
}

func TestStrength_ShortSeries(t *testing.T) {
	frame, err := ComputeFrame(testSeries(30))
	if err != nil {
		t.Fatal(err)
	}
	snap, _ := frame.At(29)

	ts := Strength(snap)
	if ts.LongTerm.Valid {
		t.Error("long-term strength needs the 200-bar MA")
	}
	if ts.GoldenCrossValid {
		t.Error("golden cross is undecidable without MA200")
	}
}

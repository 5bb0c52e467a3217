package analysis

import "github.com/dnguyen/tascan/internal/core"

// TrendStrength carries the close-vs-MA percentage distances and their
// short/long-term averages, plus the MA50>MA200 golden-cross flag.
type TrendStrength struct {
	CloseVsMA5   core.Value
	CloseVsMA10  core.Value
	CloseVsMA20  core.Value
	CloseVsMA50  core.Value
	CloseVsMA200 core.Value

	// ShortTerm averages the 5/10/20 distances; LongTerm all five.
	ShortTerm core.Value
	LongTerm  core.Value

	GoldenCross      bool
	GoldenCrossValid bool
}

// Strength derives the trend-strength metrics from one snapshot.
func Strength(s *Snapshot) TrendStrength {
	ts := TrendStrength{
		CloseVsMA5:   closeVsMA(s, NameSMA5),
		CloseVsMA10:  closeVsMA(s, NameSMA10),
		CloseVsMA20:  closeVsMA(s, NameSMA20),
		CloseVsMA50:  closeVsMA(s, NameSMA50),
		CloseVsMA200: closeVsMA(s, NameSMA200),
	}

	ts.ShortTerm = meanOf(ts.CloseVsMA5, ts.CloseVsMA10, ts.CloseVsMA20)
	ts.LongTerm = meanOf(ts.CloseVsMA5, ts.CloseVsMA10, ts.CloseVsMA20, ts.CloseVsMA50, ts.CloseVsMA200)

	ma50 := s.Value(NameSMA50)
	ma200 := s.Value(NameSMA200)
	if ma50.Valid && ma200.Valid {
		ts.GoldenCross = ma50.Scaled > ma200.Scaled
		ts.GoldenCrossValid = true
	}
	return ts
}

// closeVsMA returns the percentage distance of the close above the MA.
func closeVsMA(s *Snapshot, name Name) core.Value {
	ma := s.Value(name)
	if !ma.Valid || ma.Scaled == 0 {
		return core.Value{}
	}
	return core.Val((s.Close - ma.Scaled) / ma.Scaled * 100)
}

// meanOf averages values, requiring every input to be valid.
func meanOf(values ...core.Value) core.Value {
	var sum float64
	for _, v := range values {
		if !v.Valid {
			return core.Value{}
		}
		sum += v.Scaled
	}
	return core.Val(sum / float64(len(values)))
}

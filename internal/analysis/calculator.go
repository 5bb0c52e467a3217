package analysis

import (
	"fmt"
	"time"

	"github.com/dnguyen/tascan/internal/core"
	"github.com/dnguyen/tascan/internal/indicator"
)

// Ichimoku periods (conversion, base, span, displacement).
const (
	ichimokuConversion   = 9
	ichimokuBase         = 26
	ichimokuSpan         = 52
	ichimokuDisplacement = 26
)

// Frame holds every catalogue column computed once over one immutable
// series snapshot. Columns store raw (unscaled) values with NaN marking
// unsatisfied lookback; display scaling is applied when a snapshot is
// extracted. The frame never mutates the series it was built from.
type Frame struct {
	series core.Series
	cols   map[Name][]float64
}

// ComputeFrame validates the series ordering and computes the full
// indicator catalogue over it.
func ComputeFrame(series core.Series) (*Frame, error) {
	if len(series) == 0 {
		return nil, core.ErrNoData
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()
	volumes := series.Volumes()

	cols := make(map[Name][]float64, 40)

	for name, window := range smaWindows {
		cols[name] = indicator.SMA(closes, window)
	}
	for name, window := range emaWindows {
		cols[name] = indicator.EMA(closes, window)
	}
	cols[NameVWMA20] = indicator.VWMA(closes, volumes, 20)
	cols[NameHullMA9] = indicator.HullMA(closes, 9)

	cols[NameRSI14] = indicator.RSI(closes, 14)

	stochK, stochD := indicator.Stoch(highs, lows, closes, 14, 3, 3)
	cols[NameStochK] = stochK
	cols[NameStochD] = stochD

	cols[NameCCI20] = indicator.CCI(highs, lows, closes, 20)

	adx, plusDI, minusDI := indicator.DMI(highs, lows, closes, 14)
	cols[NameADX14] = adx
	cols[NameDMIPlus] = plusDI
	cols[NameDMIMinus] = minusDI

	cols[NameAO] = indicator.AO(highs, lows)
	cols[NameMomentum10] = indicator.Momentum(closes, 10)

	macdLine, macdSignal, macdHist := indicator.MACD(closes, 12, 26, 9)
	cols[NameMACDLine] = macdLine
	cols[NameMACDSignal] = macdSignal
	cols[NameMACDHist] = macdHist

	stochRSIK, stochRSID := indicator.StochRSI(closes, 14, 14, 3, 3)
	cols[NameStochRSIK] = stochRSIK
	cols[NameStochRSID] = stochRSID

	cols[NameWilliamsR] = indicator.WilliamsR(highs, lows, closes, 14)
	cols[NameUO] = indicator.UltimateOscillator(highs, lows, closes, 7, 14, 28)

	bull, bear := indicator.ElderRay(highs, lows, closes, 13)
	cols[NameBullPower] = bull
	cols[NameBearPower] = bear

	tenkan, kijun, senkouA, senkouB := indicator.Ichimoku(
		highs, lows, ichimokuConversion, ichimokuBase, ichimokuSpan, ichimokuDisplacement)
	cols[NameIchimokuTenkan] = tenkan
	cols[NameIchimokuKijun] = kijun
	cols[NameIchimokuSenkouA] = senkouA
	cols[NameIchimokuSenkouB] = senkouB
	// Chikou comparison reference: the close from `displacement` bars back.
	cols[NameIchimokuChikou] = indicator.Shift(closes, ichimokuDisplacement)

	f := &Frame{series: series, cols: cols}
	if err := f.checkScales(); err != nil {
		return nil, err
	}
	return f, nil
}

// Len returns the number of bars in the frame.
func (f *Frame) Len() int {
	return len(f.series)
}

// Snapshot is the full indicator value set at one bar.
type Snapshot struct {
	Index  int
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
	Values map[Name]core.Value
}

// At extracts the snapshot for one bar, applying the documented
// display-scale multipliers.
func (f *Frame) At(i int) (*Snapshot, error) {
	if i < 0 || i >= len(f.series) {
		return nil, core.WrapError(core.ErrNoData, fmt.Errorf("index %d outside series of %d bars", i, len(f.series)))
	}

	bar := f.series[i]
	values := make(map[Name]core.Value, len(f.cols))
	for name, col := range f.cols {
		raw := col[i]
		if !indicator.Defined(raw) {
			values[name] = core.Value{}
			continue
		}
		scaled := raw
		if m, ok := multipliers[name]; ok {
			scaled = raw * m
		}
		values[name] = core.Value{Raw: raw, Scaled: scaled, Valid: true}
	}

	return &Snapshot{
		Index:  i,
		Date:   bar.Date,
		Open:   bar.Open,
		High:   bar.High,
		Low:    bar.Low,
		Close:  bar.Close,
		Volume: bar.Volume,
		Values: values,
	}, nil
}

// Value returns one column's value at the snapshot's bar.
func (s *Snapshot) Value(name Name) core.Value {
	return s.Values[name]
}

// ComputeIndicators is the per-index calculator contract: the full
// IndicatorValue set at one bar of an ascending series.
func ComputeIndicators(series core.Series, i int) (*Snapshot, error) {
	frame, err := ComputeFrame(series)
	if err != nil {
		return nil, err
	}
	return frame.At(i)
}

// bounded columns and their documented ranges, checked after computation
// so a scaling regression surfaces as an error instead of drifting.
var boundedColumns = []struct {
	name     Name
	min, max float64
}{
	{NameRSI14, 0, 100},
	{NameStochK, 0, 100},
	{NameStochD, 0, 100},
	{NameStochRSIK, 0, 1}, // raw scale; x100 applied at snapshot time
	{NameStochRSID, 0, 1},
	{NameWilliamsR, -100, 0},
	{NameUO, 0, 100},
	{NameADX14, 0, 100},
}

const scaleEpsilon = 1e-6

func (f *Frame) checkScales() error {
	for _, b := range boundedColumns {
		col := f.cols[b.name]
		for i, v := range col {
			if !indicator.Defined(v) {
				continue
			}
			if v < b.min-scaleEpsilon || v > b.max+scaleEpsilon {
				return core.WrapError(core.ErrScaleDrift,
					fmt.Errorf("%s[%d] = %v outside [%v, %v]", b.name, i, v, b.min, b.max))
			}
		}
	}
	return nil
}

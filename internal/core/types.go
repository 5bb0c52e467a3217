package core

import "time"

// SignalClass is the ternary verdict an indicator produces for one bar.
type SignalClass string

const (
	SignalBuy     SignalClass = "buy"
	SignalSell    SignalClass = "sell"
	SignalNeutral SignalClass = "neutral"
)

// Category partitions the indicator catalogue for rating aggregation.
type Category string

const (
	CategoryOscillator    Category = "oscillator"
	CategoryMovingAverage Category = "moving_average"
)

// RatingLabel is the composite strength label for one category.
type RatingLabel string

const (
	RatingStrongSell RatingLabel = "strong_sell"
	RatingSell       RatingLabel = "sell"
	RatingNeutral    RatingLabel = "neutral"
	RatingBuy        RatingLabel = "buy"
	RatingStrongBuy  RatingLabel = "strong_buy"
)

// PriceBar is one daily OHLCV bar. Bars are immutable once ingested;
// every downstream computation treats the containing Series as read-only.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ascending, deduplicated sequence of daily bars for one symbol.
type Series []PriceBar

// Validate checks the ordering contract: dates strictly increasing,
// which also rules out duplicates. Analysis refuses to run on a series
// that fails this rather than silently mis-computing windows.
func (s Series) Validate() error {
	for i := 1; i < len(s); i++ {
		if !s[i].Date.After(s[i-1].Date) {
			return WrapError(ErrDataOrder, &orderViolation{
				index: i,
				prev:  s[i-1].Date,
				cur:   s[i].Date,
			})
		}
	}
	return nil
}

// IndexOn returns the index of the last bar dated on or before target,
// and false when every bar is later than target.
func (s Series) IndexOn(target time.Time) (int, bool) {
	idx := -1
	for i := range s {
		if s[i].Date.After(target) {
			break
		}
		idx = i
	}
	return idx, idx >= 0
}

// Closes returns the close column.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Close
	}
	return out
}

// Highs returns the high column.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].High
	}
	return out
}

// Lows returns the low column.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Low
	}
	return out
}

// Volumes returns the volume column.
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Volume
	}
	return out
}

// Value is one computed indicator value at one bar. Scaled carries the
// display-compatible value (documented multipliers applied); Raw is the
// unscaled formula output. Valid is false while the lookback window is
// unsatisfied — a null, not an error.
type Value struct {
	Raw    float64
	Scaled float64
	Valid  bool
}

// Val wraps a plain value with no scaling applied.
func Val(v float64) Value {
	return Value{Raw: v, Scaled: v, Valid: true}
}

// CategoryRating aggregates one category's signals at one bar.
// BuyCount + SellCount + NeutralCount always equals the number of
// indicators in the category that produced a signal at that bar.
type CategoryRating struct {
	Date         time.Time   `json:"date"`
	Category     Category    `json:"category"`
	BuyCount     int         `json:"buy_count"`
	SellCount    int         `json:"sell_count"`
	NeutralCount int         `json:"neutral_count"`
	Label        RatingLabel `json:"label"`
}

// Total returns the number of signalled indicators behind the rating.
func (r CategoryRating) Total() int {
	return r.BuyCount + r.SellCount + r.NeutralCount
}

// PanelEntry is the pair of category ratings for one anchor offset,
// plus the numeric rating scores derived from the counts.
type PanelEntry struct {
	Offset         int            `json:"offset"`
	Date           time.Time      `json:"date"`
	Oscillators    CategoryRating `json:"oscillators"`
	MovingAverages CategoryRating `json:"moving_averages"`
	Rating1        int            `json:"rating1"`
	Rating2        int            `json:"rating2"`
}

// RatingPanel is the set of per-offset entries computed from one
// immutable series snapshot. Never mutated after creation.
type RatingPanel struct {
	Anchor  time.Time    `json:"anchor"`
	Entries []PanelEntry `json:"entries"`
}

// Entry returns the entry for the given offset, if present.
func (p *RatingPanel) Entry(offset int) (PanelEntry, bool) {
	for _, e := range p.Entries {
		if e.Offset == offset {
			return e, true
		}
	}
	return PanelEntry{}, false
}

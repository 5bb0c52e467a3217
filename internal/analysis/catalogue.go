// Package analysis computes the technical-indicator catalogue over an
// immutable daily series, classifies each indicator into a ternary
// signal, and aggregates the signals into category ratings — including
// ratings re-anchored at prior trading days.
package analysis

import "github.com/dnguyen/tascan/internal/core"

// Name identifies one computed column in the indicator frame.
type Name string

const (
	NameSMA5   Name = "sma_5"
	NameSMA10  Name = "sma_10"
	NameSMA20  Name = "sma_20"
	NameSMA30  Name = "sma_30"
	NameSMA50  Name = "sma_50"
	NameSMA100 Name = "sma_100"
	NameSMA200 Name = "sma_200"

	NameEMA10  Name = "ema_10"
	NameEMA13  Name = "ema_13"
	NameEMA20  Name = "ema_20"
	NameEMA30  Name = "ema_30"
	NameEMA50  Name = "ema_50"
	NameEMA100 Name = "ema_100"
	NameEMA200 Name = "ema_200"

	NameVWMA20  Name = "vwma_20"
	NameHullMA9 Name = "hull_ma_9"

	NameRSI14      Name = "rsi_14"
	NameStochK     Name = "stoch_k"
	NameStochD     Name = "stoch_d"
	NameCCI20      Name = "cci_20"
	NameADX14      Name = "adx_14"
	NameDMIPlus    Name = "dmi_plus"
	NameDMIMinus   Name = "dmi_minus"
	NameAO         Name = "ao"
	NameMomentum10 Name = "momentum_10"
	NameMACDLine   Name = "macd_line"
	NameMACDSignal Name = "macd_signal"
	NameMACDHist   Name = "macd_hist"
	NameStochRSIK  Name = "stochrsi_k"
	NameStochRSID  Name = "stochrsi_d"
	NameWilliamsR  Name = "williams_r"
	NameUO         Name = "uo"
	NameBullPower  Name = "bull_power"
	NameBearPower  Name = "bear_power"

	NameIchimokuTenkan  Name = "ichimoku_tenkan"
	NameIchimokuKijun   Name = "ichimoku_kijun"
	NameIchimokuSenkouA Name = "ichimoku_senkou_a"
	NameIchimokuSenkouB Name = "ichimoku_senkou_b"
	NameIchimokuChikou  Name = "ichimoku_chikou"
)

// smaWindows and emaWindows bind moving-average columns to their lookback.
var smaWindows = map[Name]int{
	NameSMA5:   5,
	NameSMA10:  10,
	NameSMA20:  20,
	NameSMA30:  30,
	NameSMA50:  50,
	NameSMA100: 100,
	NameSMA200: 200,
}

var emaWindows = map[Name]int{
	NameEMA10:  10,
	NameEMA13:  13,
	NameEMA20:  20,
	NameEMA30:  30,
	NameEMA50:  50,
	NameEMA100: 100,
	NameEMA200: 200,
}

// multipliers holds the display-compatibility scale factor per column.
// Columns not listed stay at native scale — the Awesome Oscillator in
// particular is deliberately unscaled.
var multipliers = map[Name]float64{
	NameMACDLine:   1000,
	NameMACDSignal: 1000,
	NameMACDHist:   1000,
	NameStochRSIK:  100,
	NameStochRSID:  100,
	NameBullPower:  1000,
	NameBearPower:  1000,
}

// Indicator identifies one signalling indicator. Multi-line indicators
// (Stochastic, MACD, Ichimoku, ...) classify as a single unit.
type Indicator string

const (
	IndSMA10  Indicator = "sma_10"
	IndSMA20  Indicator = "sma_20"
	IndSMA30  Indicator = "sma_30"
	IndSMA50  Indicator = "sma_50"
	IndSMA100 Indicator = "sma_100"
	IndSMA200 Indicator = "sma_200"

	IndEMA10  Indicator = "ema_10"
	IndEMA20  Indicator = "ema_20"
	IndEMA30  Indicator = "ema_30"
	IndEMA50  Indicator = "ema_50"
	IndEMA100 Indicator = "ema_100"
	IndEMA200 Indicator = "ema_200"

	IndVWMA     Indicator = "vwma"
	IndHullMA   Indicator = "hull_ma"
	IndIchimoku Indicator = "ichimoku"

	IndRSI       Indicator = "rsi"
	IndStoch     Indicator = "stochastic"
	IndCCI       Indicator = "cci"
	IndADX       Indicator = "adx"
	IndAO        Indicator = "awesome_oscillator"
	IndMomentum  Indicator = "momentum"
	IndMACD      Indicator = "macd"
	IndStochRSI  Indicator = "stochastic_rsi"
	IndWilliamsR Indicator = "williams_r"
	IndBBP       Indicator = "bull_bear_power"
	IndUO        Indicator = "ultimate_oscillator"
)

// Oscillators is the fixed oscillator partition of the catalogue.
var Oscillators = []Indicator{
	IndRSI, IndStoch, IndCCI, IndADX, IndAO, IndMomentum,
	IndMACD, IndStochRSI, IndWilliamsR, IndBBP, IndUO,
}

// MovingAverages is the fixed moving-average-type partition.
var MovingAverages = []Indicator{
	IndSMA10, IndSMA20, IndSMA30, IndSMA50, IndSMA100, IndSMA200,
	IndEMA10, IndEMA20, IndEMA30, IndEMA50, IndEMA100, IndEMA200,
	IndVWMA, IndHullMA, IndIchimoku,
}

var categories = buildCategories()

func buildCategories() map[Indicator]core.Category {
	m := make(map[Indicator]core.Category, len(Oscillators)+len(MovingAverages))
	for _, ind := range Oscillators {
		m[ind] = core.CategoryOscillator
	}
	for _, ind := range MovingAverages {
		m[ind] = core.CategoryMovingAverage
	}
	return m
}

// CategoryOf returns the fixed category an indicator belongs to.
func CategoryOf(ind Indicator) core.Category {
	return categories[ind]
}

// maColumns binds each price-vs-MA signalling indicator to its column.
var maColumns = map[Indicator]Name{
	IndSMA10:  NameSMA10,
	IndSMA20:  NameSMA20,
	IndSMA30:  NameSMA30,
	IndSMA50:  NameSMA50,
	IndSMA100: NameSMA100,
	IndSMA200: NameSMA200,
	IndEMA10:  NameEMA10,
	IndEMA20:  NameEMA20,
	IndEMA30:  NameEMA30,
	IndEMA50:  NameEMA50,
	IndEMA100: NameEMA100,
	IndEMA200: NameEMA200,
	IndVWMA:   NameVWMA20,
	IndHullMA: NameHullMA9,
}

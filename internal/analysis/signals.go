package analysis

import "github.com/dnguyen/tascan/internal/core"

// Classification thresholds. Kept in one place so the decision rules
// below read against named constants instead of scattered literals.
const (
	rsiOverbought = 70.0
	rsiOversold   = 30.0

	stochOverbought = 80.0
	stochOversold   = 20.0

	cciUpper = 100.0
	cciLower = -100.0

	adxTrending = 20.0

	williamsOversold   = -80.0
	williamsOverbought = -20.0

	uoUpper = 70.0
	uoLower = 30.0
)

// Classify maps the indicator values at one bar (and, for the rules that
// compare against the prior bar, at the bar before) into one ternary
// signal per indicator. Indicators whose value is null at this bar
// produce no entry at all — they are excluded from aggregation rather
// than counted as neutral. prev may be nil at the first bar.
func Classify(curr, prev *Snapshot) map[Indicator]core.SignalClass {
	signals := make(map[Indicator]core.SignalClass, len(Oscillators)+len(MovingAverages))

	for ind, col := range maColumns {
		if v := curr.Value(col); v.Valid {
			signals[ind] = priceVsMA(curr.Close, v.Scaled)
		}
	}
	if class, ok := classifyIchimoku(curr); ok {
		signals[IndIchimoku] = class
	}

	if v := curr.Value(NameRSI14); v.Valid {
		signals[IndRSI] = classifyRSI(v.Scaled)
	}
	if k, d := curr.Value(NameStochK), curr.Value(NameStochD); k.Valid && d.Valid {
		signals[IndStoch] = classifyStochPair(k.Scaled, d.Scaled)
	}
	if k, d := curr.Value(NameStochRSIK), curr.Value(NameStochRSID); k.Valid && d.Valid {
		signals[IndStochRSI] = classifyStochPair(k.Scaled, d.Scaled)
	}
	if v := curr.Value(NameCCI20); v.Valid {
		signals[IndCCI] = classifyCCI(v.Scaled, previous(prev, NameCCI20))
	}
	if ok, class := classifyADX(curr, prev); ok {
		signals[IndADX] = class
	}
	if v := curr.Value(NameAO); v.Valid {
		signals[IndAO] = classifyAO(v.Scaled, previous(prev, NameAO))
	}
	if v := curr.Value(NameMomentum10); v.Valid {
		signals[IndMomentum] = classifyMomentum(v.Scaled, previous(prev, NameMomentum10))
	}
	if line, sig := curr.Value(NameMACDLine), curr.Value(NameMACDSignal); line.Valid && sig.Valid {
		signals[IndMACD] = classifyMACD(line.Scaled, sig.Scaled)
	}
	if v := curr.Value(NameWilliamsR); v.Valid {
		signals[IndWilliamsR] = classifyWilliamsR(v.Scaled, previous(prev, NameWilliamsR))
	}
	if ok, class := classifyBBP(curr, prev); ok {
		signals[IndBBP] = class
	}
	if v := curr.Value(NameUO); v.Valid {
		signals[IndUO] = classifyUO(v.Scaled)
	}

	return signals
}

// previous fetches a column from the prior snapshot, treating a missing
// snapshot as a null value.
func previous(prev *Snapshot, name Name) core.Value {
	if prev == nil {
		return core.Value{}
	}
	return prev.Value(name)
}

func priceVsMA(close, ma float64) core.SignalClass {
	switch {
	case close > ma:
		return core.SignalBuy
	case close < ma:
		return core.SignalSell
	default:
		return core.SignalNeutral
	}
}

func classifyRSI(rsi float64) core.SignalClass {
	switch {
	case rsi > rsiOverbought:
		return core.SignalSell
	case rsi < rsiOversold:
		return core.SignalBuy
	default:
		return core.SignalNeutral
	}
}

// classifyStochPair serves both Stochastic and StochRSI: a cross in the
// oversold zone buys, a cross in the overbought zone sells.
func classifyStochPair(k, d float64) core.SignalClass {
	switch {
	case k < stochOversold && d < stochOversold && k > d:
		return core.SignalBuy
	case k > stochOverbought && d > stochOverbought && k < d:
		return core.SignalSell
	default:
		return core.SignalNeutral
	}
}

func classifyCCI(cci float64, prev core.Value) core.SignalClass {
	if !prev.Valid {
		return core.SignalNeutral
	}
	switch {
	case cci < cciLower && cci > prev.Scaled:
		return core.SignalBuy
	case cci > cciUpper && cci < prev.Scaled:
		return core.SignalSell
	default:
		return core.SignalNeutral
	}
}

// classifyADX signals in the direction of the dominant DI line, but only
// while the trend is established (ADX above 20) and strengthening.
func classifyADX(curr, prev *Snapshot) (bool, core.SignalClass) {
	adx := curr.Value(NameADX14)
	plus := curr.Value(NameDMIPlus)
	minus := curr.Value(NameDMIMinus)
	if !adx.Valid || !plus.Valid || !minus.Valid {
		return false, core.SignalNeutral
	}

	prevADX := previous(prev, NameADX14)
	if !prevADX.Valid {
		return true, core.SignalNeutral
	}
	strengthening := adx.Scaled > adxTrending && adx.Scaled > prevADX.Scaled
	switch {
	case plus.Scaled > minus.Scaled && strengthening:
		return true, core.SignalBuy
	case plus.Scaled < minus.Scaled && strengthening:
		return true, core.SignalSell
	default:
		return true, core.SignalNeutral
	}
}

func classifyAO(ao float64, prev core.Value) core.SignalClass {
	if !prev.Valid {
		return core.SignalNeutral
	}
	switch {
	case ao > 0 && ao > prev.Scaled:
		return core.SignalBuy
	case ao < 0 && ao < prev.Scaled:
		return core.SignalSell
	default:
		return core.SignalNeutral
	}
}

func classifyMomentum(mom float64, prev core.Value) core.SignalClass {
	if !prev.Valid {
		return core.SignalNeutral
	}
	switch {
	case mom > prev.Scaled:
		return core.SignalBuy
	case mom < prev.Scaled:
		return core.SignalSell
	default:
		return core.SignalNeutral
	}
}

func classifyMACD(line, signal float64) core.SignalClass {
	switch {
	case line > signal:
		return core.SignalBuy
	case line < signal:
		return core.SignalSell
	default:
		return core.SignalNeutral
	}
}

func classifyWilliamsR(wr float64, prev core.Value) core.SignalClass {
	if !prev.Valid {
		return core.SignalNeutral
	}
	switch {
	case wr < williamsOversold && wr > prev.Scaled:
		return core.SignalBuy
	case wr > williamsOverbought && wr < prev.Scaled:
		return core.SignalSell
	default:
		return core.SignalNeutral
	}
}

// classifyBBP follows the Elder-Ray rules: buy when the trend (EMA13)
// rises while bear power is negative but improving; sell on the mirror.
func classifyBBP(curr, prev *Snapshot) (bool, core.SignalClass) {
	bull := curr.Value(NameBullPower)
	bear := curr.Value(NameBearPower)
	if !bull.Valid || !bear.Valid {
		return false, core.SignalNeutral
	}

	ema := curr.Value(NameEMA13)
	prevEMA := previous(prev, NameEMA13)
	prevBull := previous(prev, NameBullPower)
	prevBear := previous(prev, NameBearPower)
	if !ema.Valid || !prevEMA.Valid || !prevBull.Valid || !prevBear.Valid {
		return true, core.SignalNeutral
	}

	switch {
	case ema.Scaled > prevEMA.Scaled && bear.Scaled < 0 && bear.Scaled > prevBear.Scaled:
		return true, core.SignalBuy
	case ema.Scaled < prevEMA.Scaled && bull.Scaled > 0 && bull.Scaled < prevBull.Scaled:
		return true, core.SignalSell
	default:
		return true, core.SignalNeutral
	}
}

func classifyUO(uo float64) core.SignalClass {
	switch {
	case uo > uoUpper:
		return core.SignalBuy
	case uo < uoLower:
		return core.SignalSell
	default:
		return core.SignalNeutral
	}
}

// classifyIchimoku evaluates the composite cloud verdict with a fixed
// precedence: price-vs-cloud dominates, the Tenkan/Kijun order breaks a
// neutral cloud, and the Chikou comparison (close vs close 26 bars back)
// breaks remaining ties — never overriding cloud or cross. A partially
// available line set forces Neutral; the indicator is excluded entirely
// only when every line is null.
func classifyIchimoku(curr *Snapshot) (core.SignalClass, bool) {
	tenkan := curr.Value(NameIchimokuTenkan)
	kijun := curr.Value(NameIchimokuKijun)
	spanA := curr.Value(NameIchimokuSenkouA)
	spanB := curr.Value(NameIchimokuSenkouB)
	chikou := curr.Value(NameIchimokuChikou)

	anyValid := tenkan.Valid || kijun.Valid || spanA.Valid || spanB.Valid || chikou.Valid
	if !anyValid {
		return core.SignalNeutral, false
	}
	allValid := tenkan.Valid && kijun.Valid && spanA.Valid && spanB.Valid && chikou.Valid
	if !allValid {
		return core.SignalNeutral, true
	}

	price := curr.Close

	cloud := core.SignalNeutral
	upper, lower := spanA.Scaled, spanB.Scaled
	if lower > upper {
		upper, lower = lower, upper
	}
	switch {
	case price > upper:
		cloud = core.SignalBuy
	case price < lower:
		cloud = core.SignalSell
	}
	if cloud != core.SignalNeutral {
		return cloud, true
	}

	switch {
	case tenkan.Scaled > kijun.Scaled:
		return core.SignalBuy, true
	case tenkan.Scaled < kijun.Scaled:
		return core.SignalSell, true
	}

	switch {
	case price > chikou.Scaled:
		return core.SignalBuy, true
	case price < chikou.Scaled:
		return core.SignalSell, true
	default:
		return core.SignalNeutral, true
	}
}

package analysis

import (
	"time"

	"github.com/dnguyen/tascan/internal/core"
)

// Composite label cut-points on the normalized score (buy-sell)/total.
const (
	strongCutoff = 0.5
	leanCutoff   = 0.1
)

// Aggregate partitions the classified signals into the two fixed
// categories and derives per-category counts and composite labels.
// The counts cover exactly the indicators that produced a signal, so
// buy+sell+neutral always equals the signalled population per category.
func Aggregate(date time.Time, signals map[Indicator]core.SignalClass) (osc, ma core.CategoryRating) {
	osc = core.CategoryRating{Date: date, Category: core.CategoryOscillator}
	ma = core.CategoryRating{Date: date, Category: core.CategoryMovingAverage}

	for ind, class := range signals {
		target := &osc
		if CategoryOf(ind) == core.CategoryMovingAverage {
			target = &ma
		}
		switch class {
		case core.SignalBuy:
			target.BuyCount++
		case core.SignalSell:
			target.SellCount++
		default:
			target.NeutralCount++
		}
	}

	osc.Label = compositeLabel(osc)
	ma.Label = compositeLabel(ma)
	return osc, ma
}

// compositeLabel maps the normalized buy/sell balance onto the five-step
// rating scale with symmetric cut-points.
func compositeLabel(r core.CategoryRating) core.RatingLabel {
	total := r.Total()
	if total == 0 {
		return core.RatingNeutral
	}
	score := float64(r.BuyCount-r.SellCount) / float64(total)
	switch {
	case score >= strongCutoff:
		return core.RatingStrongBuy
	case score >= leanCutoff:
		return core.RatingBuy
	case score <= -strongCutoff:
		return core.RatingStrongSell
	case score <= -leanCutoff:
		return core.RatingSell
	default:
		return core.RatingNeutral
	}
}

// Scores derives the two linear rating scores from the category counts:
// Rating1 weighs oscillator buys double and subtracts all sells;
// Rating2 counts only the buy side.
func Scores(osc, ma core.CategoryRating) (rating1, rating2 int) {
	rating1 = 2*osc.BuyCount - osc.SellCount + ma.BuyCount - ma.SellCount
	rating2 = 2*osc.BuyCount + ma.BuyCount
	return rating1, rating2
}

package advisor

import "github.com/sells-group/advisor-cli/internal/model"

// Stock sub-allocation proportions. They sum to 1, so the breakdown always
// sums back to the stock percentage.
const (
	largeCapShare      = 0.60
	midCapShare        = 0.25
	smallCapShare      = 0.10
	internationalShare = 0.05
)

// riskAdjustments shifts the age-based stock percentage per risk tolerance.
// Unrecognized tolerances get no adjustment.
var riskAdjustments = map[model.RiskTolerance]float64{
	model.RiskConservative: -15,
	model.RiskModerate:     0,
	model.RiskAggressive:   15,
}

// Allocate maps age and risk tolerance to a stock/bond split using the
// 110-minus-age rule, clamped to [30, 90] stocks. Displayed values round to
// 1 decimal; the sub-allocation is computed from the unrounded percentage.
func Allocate(age int, rt model.RiskTolerance) model.Allocation {
	stocks := float64(110-age) + riskAdjustments[rt]
	if stocks < 30 {
		stocks = 30
	}
	if stocks > 90 {
		stocks = 90
	}
	bonds := 100 - stocks

	return model.Allocation{
		Stocks: round1(stocks),
		Bonds:  round1(bonds),
		Breakdown: model.AllocationBreakdown{
			LargeCap:      round1(stocks * largeCapShare),
			MidCap:        round1(stocks * midCapShare),
			SmallCap:      round1(stocks * smallCapShare),
			International: round1(stocks * internationalShare),
			Bonds:         round1(bonds),
		},
	}
}

package projection

import (
	"math"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Summarize condenses the projections into a current/future/growth snapshot.
// The future point is min(10, horizon) years ahead. Net worth growth divides
// by the absolute current value so a negative starting net worth still yields
// a meaningful sign; it is zero when the current value is zero.
func (pr *Projector) Summarize(p *model.UserProfile, proj *model.Projections, readiness model.RetirementReadiness) model.Summary {
	current := proj.NetWorth[0].NetWorth

	futureYears := len(proj.NetWorth) - 1
	if futureYears > 10 {
		futureYears = 10
	}
	futureNetWorth := proj.NetWorth[futureYears].NetWorth
	futureIncome := proj.Income[futureYears].GrossIncome
	futureDividend := proj.Dividends[futureYears].AnnualDividend

	var netWorthGrowth float64
	if current != 0 {
		netWorthGrowth = (futureNetWorth - current) / math.Abs(current) * 100
	}
	incomeGrowth := (futureIncome - p.AnnualIncome) / p.AnnualIncome * 100

	return model.Summary{
		CurrentSnapshot: model.CurrentSnapshot{
			NetWorth:     round2(current),
			AnnualIncome: round2(p.AnnualIncome),
			Age:          p.Age,
		},
		FutureProjection: model.FutureProjection{
			YearsAhead:     futureYears,
			NetWorth:       round2(futureNetWorth),
			AnnualIncome:   round2(futureIncome),
			AnnualDividend: round2(futureDividend),
			Age:            p.Age + futureYears,
		},
		Growth: model.Growth{
			NetWorthGrowth: round1(netWorthGrowth),
			IncomeGrowth:   round1(incomeGrowth),
		},
		RetirementOutlook: readiness,
	}
}

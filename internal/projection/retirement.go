package projection

import (
	"math"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Readiness derives retirement metrics from the net worth projection using
// the 4% rule. Retirement expenses are the profile's current expenses scaled
// by the retirement expense factor and inflated to the retirement year; the
// goal is that figure times the goal multiple (25x by default). On-track
// tolerates a 20% shortfall against the goal.
func (pr *Projector) Readiness(p *model.UserProfile, netWorth []model.NetWorthPoint) model.RetirementReadiness {
	if len(netWorth) == 0 {
		return model.RetirementReadiness{}
	}

	idx := p.YearsToRetirement
	if idx >= len(netWorth) {
		idx = len(netWorth) - 1
	}
	retirementNetWorth := netWorth[idx].NetWorth

	expenses := p.AnnualExpenses() * pr.cfg.RetirementExpenseFactor *
		math.Pow(1+pr.cfg.InflationRate, float64(p.YearsToRetirement))

	withdrawal := retirementNetWorth * pr.cfg.SafeWithdrawalRate

	replacement := 100.0
	if expenses > 0 {
		replacement = withdrawal / expenses * 100
	}

	goal := expenses * pr.cfg.RetirementGoalMultiple

	return model.RetirementReadiness{
		RetirementNetWorth:      round2(retirementNetWorth),
		EstimatedAnnualExpenses: round2(expenses),
		SafeAnnualWithdrawal:    round2(withdrawal),
		ReplacementRatio:        round1(replacement),
		RetirementGoal:          round2(goal),
		OnTrack:                 retirementNetWorth >= goal*0.8,
		SurplusShortfall:        round2(retirementNetWorth - goal),
	}
}

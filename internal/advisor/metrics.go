package advisor

import "github.com/sells-group/advisor-cli/internal/model"

// Metrics computes the financial health metrics for a validated profile.
// Percentages and year counts round to 2 decimals; emergency fund months
// round to 1. YearsToDebtFree is nil when expenses meet or exceed income —
// the metric is undefined, never infinite.
func Metrics(p *model.UserProfile) model.FinancialHealth {
	monthlyIncome := p.MonthlyIncome()
	savingsRate := (monthlyIncome - p.MonthlyExpenses) / monthlyIncome * 100
	debtToIncome := p.TotalDebt / p.AnnualIncome * 100

	var yearsToDebtFree *float64
	if monthlyIncome > p.MonthlyExpenses {
		v := round2(p.TotalDebt / ((monthlyIncome - p.MonthlyExpenses) * 12))
		yearsToDebtFree = &v
	}

	return model.FinancialHealth{
		SavingsRate:         round2(savingsRate),
		DebtToIncomeRatio:   round2(debtToIncome),
		YearsToDebtFree:     yearsToDebtFree,
		EmergencyFundMonths: round1(p.CurrentSavings / p.MonthlyExpenses),
	}
}

package advisor

import "github.com/sells-group/advisor-cli/internal/model"

// Risk levels and their fixed recommendation texts.
const (
	RiskLevelLow      = "Low"
	RiskLevelModerate = "Moderate"
	RiskLevelHigh     = "High"
)

var riskRecommendations = map[string]string{
	RiskLevelLow:      "Low Risk - Good position for long-term growth investing",
	RiskLevelModerate: "Moderate Risk - Balance growth with stability",
	RiskLevelHigh:     "High Risk - Consider conservative investments and building emergency fund",
}

// Risk factor thresholds.
const (
	lowIncomeThreshold    = 50_000
	highDebtToIncomePct   = 40
	minEmergencyMonths    = 3
	shortHorizonYears     = 10
)

// AssessRisk evaluates five independent risk flags and buckets the profile:
// three or more triggered factors is High, one or two is Moderate, none is Low.
func AssessRisk(p *model.UserProfile) model.RiskAssessment {
	var factors []string

	if p.AnnualIncome < lowIncomeThreshold {
		factors = append(factors, "Lower income requires more conservative approach")
	}
	if p.TotalDebt/p.AnnualIncome*100 > highDebtToIncomePct {
		factors = append(factors, "High debt-to-income ratio")
	}
	if p.CurrentSavings/p.MonthlyExpenses < minEmergencyMonths {
		factors = append(factors, "Insufficient emergency fund")
	}
	if p.NumDependents > 0 {
		factors = append(factors, "Financial responsibility for dependents")
	}
	if p.YearsToRetirement < shortHorizonYears {
		factors = append(factors, "Short time horizon for retirement")
	}

	level := RiskLevelLow
	switch {
	case len(factors) >= 3:
		level = RiskLevelHigh
	case len(factors) >= 1:
		level = RiskLevelModerate
	}

	return model.RiskAssessment{
		Level:          level,
		Factors:        factors,
		Recommendation: riskRecommendations[level],
	}
}

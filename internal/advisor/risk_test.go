package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/advisor-cli/internal/model"
)

// healthyProfile triggers none of the risk factors.
func healthyProfile() *model.UserProfile {
	return &model.UserProfile{
		Age:               35,
		AnnualIncome:      90_000,
		MonthlyExpenses:   3_000,
		CurrentSavings:    30_000, // 10 months
		TotalDebt:         9_000,  // 10% DTI
		NumDependents:     0,
		YearsToRetirement: 30,
	}
}

func TestAssessRiskLow(t *testing.T) {
	r := AssessRisk(healthyProfile())

	assert.Equal(t, RiskLevelLow, r.Level)
	assert.Empty(t, r.Factors)
	assert.Equal(t, "Low Risk - Good position for long-term growth investing", r.Recommendation)
}

func TestAssessRiskModerate(t *testing.T) {
	p := healthyProfile()
	p.NumDependents = 2

	r := AssessRisk(p)

	assert.Equal(t, RiskLevelModerate, r.Level)
	assert.Equal(t, []string{"Financial responsibility for dependents"}, r.Factors)
	assert.Equal(t, "Moderate Risk - Balance growth with stability", r.Recommendation)
}

func TestAssessRiskHigh(t *testing.T) {
	p := healthyProfile()
	p.AnnualIncome = 45_000
	p.TotalDebt = 30_000 // 66% DTI
	p.CurrentSavings = 2_000

	r := AssessRisk(p)

	assert.Equal(t, RiskLevelHigh, r.Level)
	assert.Len(t, r.Factors, 3)
	assert.Equal(t, "High Risk - Consider conservative investments and building emergency fund", r.Recommendation)
}

func TestAssessRiskBoundaries(t *testing.T) {
	p := healthyProfile()

	// exactly 40% DTI does not trigger
	p.TotalDebt = 36_000
	assert.Equal(t, RiskLevelLow, AssessRisk(p).Level)

	// exactly 3 months emergency fund does not trigger
	p.CurrentSavings = 9_000
	assert.Equal(t, RiskLevelLow, AssessRisk(p).Level)

	// exactly 10 years to retirement does not trigger
	p.YearsToRetirement = 10
	assert.Equal(t, RiskLevelLow, AssessRisk(p).Level)

	// 9 years does
	p.YearsToRetirement = 9
	r := AssessRisk(p)
	assert.Equal(t, RiskLevelModerate, r.Level)
	assert.Contains(t, r.Factors, "Short time horizon for retirement")
}

package insight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

func TestNoop(t *testing.T) {
	text, err := Noop{}.Generate(context.Background(), &model.UserProfile{}, &model.Analysis{})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestFromConfig(t *testing.T) {
	assert.IsType(t, Noop{}, FromConfig(config.AnthropicConfig{}))
	assert.IsType(t, &AnthropicGenerator{}, FromConfig(config.AnthropicConfig{Key: "sk-test"}))
}

func TestBuildPrompt(t *testing.T) {
	p := &model.UserProfile{
		Age:               38,
		AnnualIncome:      125_000,
		CurrentSavings:    180_000,
		RiskTolerance:     model.RiskModerate,
		YearsToRetirement: 27,
		MajorLifeGoals:    []string{"Pay off mortgage early", "Comfortable retirement"},
	}
	a := &model.Analysis{
		FinancialHealth:    model.FinancialHealth{SavingsRate: 47.2},
		InvestmentStrategy: "Moderate Growth - Diversified portfolio with growth and value stocks",
		RiskAssessment:     model.RiskAssessment{Recommendation: "Moderate Risk - Balance growth with stability"},
	}

	prompt := buildPrompt(p, a)

	assert.Contains(t, prompt, "Age: 38")
	assert.Contains(t, prompt, "Income: $125000")
	assert.Contains(t, prompt, "Risk Tolerance: moderate")
	assert.Contains(t, prompt, "Pay off mortgage early, Comfortable retirement")
	assert.Contains(t, prompt, "Savings Rate: 47.2%")
	assert.Contains(t, prompt, "Moderate Growth")
}

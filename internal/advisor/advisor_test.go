package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

type staticInsights struct {
	text string
	err  error
}

func (s staticInsights) Generate(context.Context, *model.UserProfile, *model.Analysis) (string, error) {
	return s.text, s.err
}

func TestAnalyze(t *testing.T) {
	a := New(nil)

	p := healthyProfile()
	p.RiskTolerance = model.RiskModerate

	analysis, err := a.Analyze(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 75.0, analysis.RecommendedAllocation.Stocks)
	assert.Equal(t, StrategyModerateGrowth, analysis.InvestmentStrategy)
	assert.Equal(t, RiskLevelLow, analysis.RiskAssessment.Level)
	assert.Empty(t, analysis.Insights)
}

func TestAnalyzeInvalidProfile(t *testing.T) {
	a := New(nil)

	p := healthyProfile()
	p.AnnualIncome = 0

	_, err := a.Analyze(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidProfile)
}

func TestAnalyzeInsightFailureDoesNotPropagate(t *testing.T) {
	a := New(staticInsights{err: errors.New("api down")})

	analysis, err := a.Analyze(context.Background(), healthyProfile())
	require.NoError(t, err)
	assert.Empty(t, analysis.Insights)
}

func TestAnalyzeInsightAttached(t *testing.T) {
	withText := New(staticInsights{text: "stay the course"})
	plain := New(nil)

	p := healthyProfile()

	annotated, err := withText.Analyze(context.Background(), p)
	require.NoError(t, err)
	bare, err := plain.Analyze(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, "stay the course", annotated.Insights)

	// Identical numerics with and without insights.
	annotated.Insights = ""
	assert.Equal(t, bare, annotated)
}

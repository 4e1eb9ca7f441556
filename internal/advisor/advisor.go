// Package advisor analyzes a user profile into financial health metrics, an
// asset allocation, an investment strategy, and a risk assessment.
package advisor

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/insight"
	"github.com/sells-group/advisor-cli/internal/model"
)

// Advisor runs the deterministic profile analysis. The insight generator is
// purely additive: its output annotates the analysis and never changes a
// numeric field, and its failure is logged, not propagated.
type Advisor struct {
	insights insight.Generator
}

// New creates an Advisor. A nil generator disables insights.
func New(gen insight.Generator) *Advisor {
	if gen == nil {
		gen = insight.Noop{}
	}
	return &Advisor{insights: gen}
}

// Analyze validates the profile and computes the full analysis.
func (a *Advisor) Analyze(ctx context.Context, profile *model.UserProfile) (*model.Analysis, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	analysis := &model.Analysis{
		FinancialHealth:       Metrics(profile),
		RecommendedAllocation: Allocate(profile.Age, profile.RiskTolerance),
		InvestmentStrategy:    Strategy(profile),
		RiskAssessment:        AssessRisk(profile),
	}

	text, err := a.insights.Generate(ctx, profile, analysis)
	if err != nil {
		zap.L().Warn("advisor: insight generation failed", zap.Error(err))
	} else {
		analysis.Insights = text
	}

	zap.L().Info("advisor: profile analyzed",
		zap.Int("age", profile.Age),
		zap.String("risk_tolerance", string(profile.RiskTolerance)),
		zap.Float64("stocks_pct", analysis.RecommendedAllocation.Stocks),
		zap.String("risk_level", analysis.RiskAssessment.Level),
	)

	return analysis, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

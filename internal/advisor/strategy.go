package advisor

import "github.com/sells-group/advisor-cli/internal/model"

// Strategy labels are an external contract; consumers match on these exact
// strings.
const (
	StrategyCapitalPreservation = "Capital Preservation - Focus on stable dividend stocks and bonds"
	StrategyBalancedGrowth      = "Balanced Growth - Mix of growth and dividend stocks with some bonds"
	StrategyAggressiveGrowth    = "Aggressive Growth - Focus on high-growth stocks and emerging sectors"
	StrategyConservativeGrowth  = "Conservative Growth - Blue-chip dividend stocks and bonds"
	StrategyModerateGrowth      = "Moderate Growth - Diversified portfolio with growth and value stocks"
)

// Strategy classifies the profile into one of five strategy labels. Time
// horizon dominates: within 5 years of retirement the strategy is capital
// preservation regardless of risk tolerance, within 15 it is balanced growth.
func Strategy(p *model.UserProfile) string {
	switch {
	case p.YearsToRetirement <= 5:
		return StrategyCapitalPreservation
	case p.YearsToRetirement <= 15:
		return StrategyBalancedGrowth
	}

	switch p.RiskTolerance {
	case model.RiskAggressive:
		return StrategyAggressiveGrowth
	case model.RiskConservative:
		return StrategyConservativeGrowth
	default:
		return StrategyModerateGrowth
	}
}

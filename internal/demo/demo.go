// Package demo provides sample profiles for trying the planner without
// entering real data.
package demo

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Scenario names.
const (
	Young        = "young"
	Moderate     = "moderate"
	Conservative = "conservative"
	Retirement   = "retirement"
)

// Scenarios lists the available demo scenarios in presentation order.
func Scenarios() []string {
	return []string{Young, Moderate, Conservative, Retirement}
}

// Describe returns a one-line description of a scenario.
func Describe(scenario string) string {
	switch scenario {
	case Young:
		return "Young Professional - Aggressive growth strategy, long time horizon"
	case Moderate:
		return "Mid-Career Family - Balanced approach with dependents"
	case Conservative:
		return "Pre-Retirement - Focus on stability and income"
	case Retirement:
		return "Recently Retired - Capital preservation and income"
	default:
		return "Standard demo profile"
	}
}

// Profile returns the demo profile for a scenario.
func Profile(scenario string) (*model.UserProfile, error) {
	switch scenario {
	case Young:
		return &model.UserProfile{
			Age:                  28,
			Location:             "Austin, TX",
			AnnualIncome:         85000,
			CurrentSavings:       25000,
			MonthlyExpenses:      3200,
			TotalDebt:            35000,
			CareerField:          "Software Engineering",
			YearsToRetirement:    37,
			ExpectedIncomeGrowth: 5.0,
			MaritalStatus:        "single",
			NumDependents:        0,
			MajorLifeGoals: []string{
				"Buy a house in 5 years",
				"Build wealth for early retirement",
				"Travel internationally",
			},
			RiskTolerance:     model.RiskAggressive,
			InvestmentHorizon: 35,
			PreferredSectors:  []string{"technology", "healthcare", "finance"},
			OtherNotes:        "Tech-savvy, interested in growth stocks",
		}, nil

	case Moderate:
		return &model.UserProfile{
			Age:                  38,
			Location:             "Chicago, IL",
			AnnualIncome:         125000,
			CurrentSavings:       180000,
			MonthlyExpenses:      5500,
			TotalDebt:            280000,
			CareerField:          "Marketing Manager",
			YearsToRetirement:    27,
			ExpectedIncomeGrowth: 3.5,
			MaritalStatus:        "married",
			NumDependents:        2,
			MajorLifeGoals: []string{
				"Save for children's college education",
				"Pay off mortgage early",
				"Comfortable retirement",
				"Family vacations",
			},
			RiskTolerance:     model.RiskModerate,
			InvestmentHorizon: 25,
			PreferredSectors:  []string{"consumer", "healthcare", "technology"},
			OtherNotes:        "Family-oriented, balanced approach to investing",
		}, nil

	case Conservative:
		return &model.UserProfile{
			Age:                  52,
			Location:             "Denver, CO",
			AnnualIncome:         145000,
			CurrentSavings:       525000,
			MonthlyExpenses:      6800,
			TotalDebt:            85000,
			CareerField:          "Financial Analyst",
			YearsToRetirement:    13,
			ExpectedIncomeGrowth: 2.5,
			MaritalStatus:        "married",
			NumDependents:        0,
			MajorLifeGoals: []string{
				"Retire comfortably at 65",
				"Generate passive income",
				"Travel during retirement",
				"Leave inheritance for children",
			},
			RiskTolerance:     model.RiskConservative,
			InvestmentHorizon: 13,
			PreferredSectors:  []string{"utilities", "consumer", "healthcare"},
			OtherNotes:        "Focus on capital preservation and income generation",
		}, nil

	case Retirement:
		return &model.UserProfile{
			Age:                  67,
			Location:             "Phoenix, AZ",
			AnnualIncome:         45000,
			CurrentSavings:       850000,
			MonthlyExpenses:      4200,
			TotalDebt:            0,
			CareerField:          "Retired Teacher",
			YearsToRetirement:    0,
			ExpectedIncomeGrowth: 0.0,
			MaritalStatus:        "widowed",
			NumDependents:        0,
			MajorLifeGoals: []string{
				"Maintain standard of living",
				"Healthcare expenses",
				"Stay financially independent",
				"Support grandchildren",
			},
			RiskTolerance:     model.RiskConservative,
			InvestmentHorizon: 5,
			PreferredSectors:  []string{"utilities", "consumer", "healthcare"},
			OtherNotes:        "Retired, focus on income and preservation",
		}, nil
	}

	return nil, eris.Errorf("demo: unknown scenario %q", scenario)
}

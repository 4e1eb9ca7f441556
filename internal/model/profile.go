package model

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// RiskTolerance classifies an investor's appetite for volatility.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Known reports whether the tolerance is one of the three recognized values.
// Unrecognized tolerances fall back to moderate behavior everywhere.
func (r RiskTolerance) Known() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// ErrInvalidProfile is returned when a profile violates required input ranges.
var ErrInvalidProfile = eris.New("model: invalid profile")

// UserProfile is the immutable input to the planning engine. It is supplied
// once per request and never mutated by the core.
type UserProfile struct {
	Age      int    `json:"age"`
	Location string `json:"location"`

	AnnualIncome    float64 `json:"annual_income"`
	CurrentSavings  float64 `json:"current_savings"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	TotalDebt       float64 `json:"total_debt"`

	CareerField          string  `json:"career_field"`
	YearsToRetirement    int     `json:"years_to_retirement"`
	ExpectedIncomeGrowth float64 `json:"expected_income_growth"` // annual %

	MaritalStatus  string   `json:"marital_status"`
	NumDependents  int      `json:"num_dependents"`
	MajorLifeGoals []string `json:"major_life_goals"`

	RiskTolerance     RiskTolerance `json:"risk_tolerance"`
	InvestmentHorizon int           `json:"investment_horizon"` // years
	PreferredSectors  []string      `json:"preferred_sectors"`

	OtherNotes string `json:"other_notes"`
}

// Validate checks the profile against the input ranges the engine requires.
// Risk tolerance is normalized to lowercase; an unrecognized value is not an
// error (the engine treats it as moderate).
func (p *UserProfile) Validate() error {
	if p.Age < 0 {
		return eris.Wrapf(ErrInvalidProfile, "age must be non-negative (got %d)", p.Age)
	}
	if p.AnnualIncome <= 0 {
		return eris.Wrapf(ErrInvalidProfile, "annual income must be positive (got %.2f)", p.AnnualIncome)
	}
	if p.MonthlyExpenses <= 0 {
		return eris.Wrapf(ErrInvalidProfile, "monthly expenses must be positive (got %.2f)", p.MonthlyExpenses)
	}
	if p.CurrentSavings < 0 {
		return eris.Wrapf(ErrInvalidProfile, "current savings must be non-negative (got %.2f)", p.CurrentSavings)
	}
	if p.TotalDebt < 0 {
		return eris.Wrapf(ErrInvalidProfile, "total debt must be non-negative (got %.2f)", p.TotalDebt)
	}
	if p.YearsToRetirement < 0 {
		return eris.Wrapf(ErrInvalidProfile, "years to retirement must be non-negative (got %d)", p.YearsToRetirement)
	}
	p.RiskTolerance = RiskTolerance(strings.ToLower(strings.TrimSpace(string(p.RiskTolerance))))
	return nil
}

// PrefersSector reports whether the given sector is in the profile's
// preferred list. Comparison is case-insensitive.
func (p *UserProfile) PrefersSector(sector string) bool {
	for _, s := range p.PreferredSectors {
		if strings.EqualFold(s, sector) {
			return true
		}
	}
	return false
}

// MonthlyIncome returns gross monthly income.
func (p *UserProfile) MonthlyIncome() float64 {
	return p.AnnualIncome / 12
}

// AnnualExpenses returns annualized expenses.
func (p *UserProfile) AnnualExpenses() float64 {
	return p.MonthlyExpenses * 12
}

// LoadProfile reads a profile from a JSON file and validates it.
func LoadProfile(path string) (*UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "model: read profile %s", path)
	}
	var p UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, eris.Wrapf(err, "model: parse profile %s", path)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the profile to a JSON file.
func (p *UserProfile) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return eris.Wrap(err, "model: marshal profile")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "model: write profile %s", path)
	}
	return nil
}

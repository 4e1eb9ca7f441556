package model

import "time"

// FinancialHealth holds the profile-derived health metrics.
// YearsToDebtFree is nil when expenses meet or exceed income; it marshals as
// JSON null and renders as "N/A".
type FinancialHealth struct {
	SavingsRate         float64  `json:"savings_rate"`
	DebtToIncomeRatio   float64  `json:"debt_to_income_ratio"`
	YearsToDebtFree     *float64 `json:"years_to_debt_free"`
	EmergencyFundMonths float64  `json:"emergency_fund_months"`
}

// AllocationBreakdown splits the stock share four ways; Bonds mirrors the
// top-level bond percentage so the breakdown is self-contained.
type AllocationBreakdown struct {
	LargeCap      float64 `json:"large_cap"`
	MidCap        float64 `json:"mid_cap"`
	SmallCap      float64 `json:"small_cap"`
	International float64 `json:"international"`
	Bonds         float64 `json:"bonds"`
}

// Allocation is a stock/bond split. Stocks + Bonds is always exactly 100.
type Allocation struct {
	Stocks    float64             `json:"stocks"`
	Bonds     float64             `json:"bonds"`
	Breakdown AllocationBreakdown `json:"breakdown"`
}

// RiskAssessment is the result of the five-flag risk evaluation.
type RiskAssessment struct {
	Level          string   `json:"level"` // Low, Moderate, High
	Factors        []string `json:"factors,omitempty"`
	Recommendation string   `json:"recommendation"`
}

// Analysis is the full profile analysis: health metrics, allocation,
// strategy, and risk. Insights is free text from the optional LLM generator
// and never influences the numeric fields.
type Analysis struct {
	FinancialHealth       FinancialHealth `json:"financial_health"`
	RecommendedAllocation Allocation      `json:"recommended_allocation"`
	InvestmentStrategy    string          `json:"investment_strategy"`
	RiskAssessment        RiskAssessment  `json:"risk_assessment"`
	Insights              string          `json:"ai_insights,omitempty"`
}

// NetWorthPoint is one year of the net worth projection.
type NetWorthPoint struct {
	Year           int     `json:"year"`
	Age            int     `json:"age"`
	NetWorth       float64 `json:"net_worth"`
	AnnualIncome   float64 `json:"annual_income"`
	AnnualExpenses float64 `json:"annual_expenses"`
	AnnualSavings  float64 `json:"annual_savings"`
}

// IncomePoint is one year of the income projection.
type IncomePoint struct {
	Year          int     `json:"year"`
	Age           int     `json:"age"`
	GrossIncome   float64 `json:"gross_income"`
	MonthlyIncome float64 `json:"monthly_income"`
}

// DividendPoint is one year of the dividend income projection.
// DividendYieldPct is the yield applied that year, as a percentage; it
// compounds upward year over year.
type DividendPoint struct {
	Year             int     `json:"year"`
	Age              int     `json:"age"`
	PortfolioValue   float64 `json:"portfolio_value"`
	AnnualDividend   float64 `json:"annual_dividend"`
	MonthlyDividend  float64 `json:"monthly_dividend"`
	DividendYieldPct float64 `json:"dividend_yield"`
}

// PortfolioReturnPoint is one year of the blended-return scenario projection.
type PortfolioReturnPoint struct {
	Year               int     `json:"year"`
	Age                int     `json:"age"`
	ExpectedValue      float64 `json:"expected_value"`
	BestCase           float64 `json:"best_case"`
	WorstCase          float64 `json:"worst_case"`
	ConservativeCase   float64 `json:"conservative_case"`
	TotalContributions float64 `json:"total_contributions"`
}

// Projections bundles the four independent year-by-year tracks.
type Projections struct {
	NetWorth         []NetWorthPoint        `json:"net_worth"`
	Income           []IncomePoint          `json:"income"`
	Dividends        []DividendPoint        `json:"dividends"`
	PortfolioReturns []PortfolioReturnPoint `json:"portfolio_returns"`
}

// RetirementReadiness holds the 4%-rule retirement metrics derived from the
// net worth projection.
type RetirementReadiness struct {
	RetirementNetWorth      float64 `json:"retirement_net_worth"`
	EstimatedAnnualExpenses float64 `json:"estimated_annual_expenses"`
	SafeAnnualWithdrawal    float64 `json:"safe_annual_withdrawal"`
	ReplacementRatio        float64 `json:"replacement_ratio"`
	RetirementGoal          float64 `json:"retirement_goal"`
	OnTrack                 bool    `json:"on_track"`
	SurplusShortfall        float64 `json:"surplus_shortfall"`
}

// CurrentSnapshot is the year-0 state of the plan.
type CurrentSnapshot struct {
	NetWorth     float64 `json:"net_worth"`
	AnnualIncome float64 `json:"annual_income"`
	Age          int     `json:"age"`
}

// FutureProjection is the plan state min(10, horizon) years ahead.
type FutureProjection struct {
	YearsAhead     int     `json:"years_ahead"`
	NetWorth       float64 `json:"net_worth"`
	AnnualIncome   float64 `json:"annual_income"`
	AnnualDividend float64 `json:"annual_dividend"`
	Age            int     `json:"age"`
}

// Growth holds percentage growth between the current and future snapshots.
type Growth struct {
	NetWorthGrowth float64 `json:"net_worth_growth"`
	IncomeGrowth   float64 `json:"income_growth"`
}

// Summary condenses all plan outputs into a current/future/growth snapshot.
type Summary struct {
	CurrentSnapshot   CurrentSnapshot     `json:"current_snapshot"`
	FutureProjection  FutureProjection    `json:"future_projection"`
	Growth            Growth              `json:"growth"`
	RetirementOutlook RetirementReadiness `json:"retirement_outlook"`
}

// Plan is a complete planning run: the input profile plus every derived
// output. Persisted plans carry an ID and creation time.
type Plan struct {
	ID              string           `json:"id,omitempty"`
	Profile         UserProfile      `json:"profile"`
	Analysis        Analysis         `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	Projections     Projections      `json:"projections"`
	Summary         Summary          `json:"summary"`
	CreatedAt       time.Time        `json:"created_at,omitempty"`
}

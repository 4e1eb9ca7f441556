package projection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

func testConfig() config.ProjectionConfig {
	return config.ProjectionConfig{
		InflationRate:           0.03,
		ConservativeReturn:      0.05,
		ModerateReturn:          0.07,
		AggressiveReturn:        0.09,
		StockReturn:             0.10,
		BondReturn:              0.04,
		StockVolatility:         0.18,
		BondVolatility:          0.05,
		MarketAppreciation:      0.07,
		DividendGrowthRate:      0.05,
		DefaultYield:            0.03,
		StockShare:              0.60,
		DividendStockShare:      0.40,
		SafeWithdrawalRate:      0.04,
		RetirementExpenseFactor: 0.80,
		RetirementGoalMultiple:  25,
		MaxYears:                30,
	}
}

func testProfile() *model.UserProfile {
	return &model.UserProfile{
		Age:                  38,
		AnnualIncome:         125_000,
		CurrentSavings:       180_000,
		MonthlyExpenses:      5_500,
		TotalDebt:            280_000,
		YearsToRetirement:    27,
		ExpectedIncomeGrowth: 3.5,
		RiskTolerance:        model.RiskModerate,
	}
}

func TestHorizon(t *testing.T) {
	pr := New(testConfig())

	assert.Equal(t, 27, pr.Horizon(testProfile()))

	long := testProfile()
	long.YearsToRetirement = 45
	assert.Equal(t, 30, pr.Horizon(long), "capped at max years")

	now := testProfile()
	now.YearsToRetirement = 0
	assert.Equal(t, 0, pr.Horizon(now))
}

func TestNetWorthYearZero(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()

	points := pr.NetWorth(p, 5)

	require.Len(t, points, 6)
	first := points[0]
	assert.Equal(t, 0, first.Year)
	assert.Equal(t, 38, first.Age)
	assert.Equal(t, -100_000.0, first.NetWorth, "current savings minus debt, unprojected")
	assert.Equal(t, 125_000.0, first.AnnualIncome)
	assert.Equal(t, 66_000.0, first.AnnualExpenses)
	assert.Equal(t, 59_000.0, first.AnnualSavings)
}

func TestNetWorthRecurrence(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()

	points := pr.NetWorth(p, 2)

	// year 1: income 125000*1.035, expenses 66000*1.03, NW grows at the
	// moderate 7% return then adds the year's savings.
	income1 := 125_000 * 1.035
	expenses1 := 66_000 * 1.03
	nw1 := -100_000*1.07 + (income1 - expenses1)
	assert.InDelta(t, income1, points[1].AnnualIncome, 0.01)
	assert.InDelta(t, expenses1, points[1].AnnualExpenses, 0.01)
	assert.InDelta(t, nw1, points[1].NetWorth, 0.01)

	income2 := income1 * 1.035
	expenses2 := expenses1 * 1.03
	nw2 := nw1*1.07 + (income2 - expenses2)
	assert.InDelta(t, nw2, points[2].NetWorth, 0.01)
}

func TestIncomeTrack(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()

	points := pr.Income(p, 3)

	require.Len(t, points, 4)
	assert.Equal(t, 125_000.0, points[0].GrossIncome)
	assert.InDelta(t, 125_000.0/12, points[0].MonthlyIncome, 0.01)
	assert.InDelta(t, 125_000*1.035*1.035*1.035, points[3].GrossIncome, 0.01)
}

func TestDividendsDefaultYield(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()

	points := pr.Dividends(p, nil, 2)

	require.Len(t, points, 3)

	// year 0: 24% of savings at the default 3% yield, no growth applied yet.
	portfolio0 := 180_000 * 0.24
	assert.InDelta(t, portfolio0, points[0].PortfolioValue, 0.01)
	assert.InDelta(t, portfolio0*0.03, points[0].AnnualDividend, 0.01)
	assert.Equal(t, 3.0, points[0].DividendYieldPct)

	// year 1: portfolio appreciates and receives the year's contribution;
	// the dividend still uses the base yield, which steps up afterward.
	contribution := 59_000 * 0.24
	portfolio1 := portfolio0*1.07 + contribution
	assert.InDelta(t, portfolio1, points[1].PortfolioValue, 0.01)
	assert.InDelta(t, portfolio1*0.03, points[1].AnnualDividend, 0.01)
	assert.InDelta(t, 3.15, points[1].DividendYieldPct, 0.001, "reported yield is the stepped-up one")

	// year 2 uses the stepped-up yield.
	portfolio2 := portfolio1*1.07 + contribution
	assert.InDelta(t, portfolio2*0.03*1.05, points[2].AnnualDividend, 0.01)
}

func TestDividendsYieldFromRecommendations(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()

	recs := []model.Recommendation{
		{Ticker: "KO", DividendYield: 0.031},
		{Ticker: "PEP", DividendYield: 0.029},
		{Ticker: "GROW", DividendYield: 0}, // growth pick pays nothing
	}

	points := pr.Dividends(p, recs, 1)

	wantYield := (0.031 + 0.029 + 0) / 3
	assert.InDelta(t, 180_000*0.24*wantYield, points[0].AnnualDividend, 0.01)
}

func TestDividendsZeroYieldPicksPayNothing(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()

	recs := []model.Recommendation{{Ticker: "GOOGL", DividendYield: 0}}

	points := pr.Dividends(p, recs, 0)

	require.Len(t, points, 1)
	assert.Equal(t, 0.0, points[0].AnnualDividend, "non-payers keep the mean at zero, not the default")
	assert.Equal(t, 0.0, points[0].DividendYieldPct)
}

func TestPortfolioReturnsScenarios(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()

	alloc := model.Allocation{Stocks: 72, Bonds: 28}
	points := pr.PortfolioReturns(p, alloc, 2)

	require.Len(t, points, 3)

	// year 0 is the unprojected starting value with fixed-band scenarios.
	assert.Equal(t, 180_000.0, points[0].ExpectedValue)
	assert.InDelta(t, 180_000*1.1, points[0].BestCase, 0.01)
	assert.InDelta(t, 180_000*0.9, points[0].WorstCase, 0.01)
	assert.Equal(t, 180_000.0, points[0].ConservativeCase)
	assert.Equal(t, 0.0, points[0].TotalContributions)

	blended := 0.72*0.10 + 0.28*0.04
	vol := 0.72*0.18 + 0.28*0.05
	expected1 := 180_000*(1+blended) + 59_000
	assert.InDelta(t, expected1, points[1].ExpectedValue, 0.01)
	assert.InDelta(t, expected1*(1+1.5*vol), points[1].BestCase, 0.01)
	assert.InDelta(t, expected1*(1-1.5*vol), points[1].WorstCase, 0.01)
	assert.InDelta(t, expected1*0.85, points[1].ConservativeCase, 0.01)
	assert.Equal(t, 59_000.0, points[1].TotalContributions)
	assert.Equal(t, 118_000.0, points[2].TotalContributions)
}

func TestRunAllTracksShareLength(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()

	proj, err := pr.Run(context.Background(), p, model.Allocation{Stocks: 72, Bonds: 28}, nil, -1)
	require.NoError(t, err)

	assert.Len(t, proj.NetWorth, 28)
	assert.Len(t, proj.Income, 28)
	assert.Len(t, proj.Dividends, 28)
	assert.Len(t, proj.PortfolioReturns, 28)
}

func TestRunZeroHorizon(t *testing.T) {
	pr := New(testConfig())
	p := testProfile()
	p.YearsToRetirement = 0

	proj, err := pr.Run(context.Background(), p, model.Allocation{Stocks: 30, Bonds: 70}, nil, -1)
	require.NoError(t, err)

	require.Len(t, proj.NetWorth, 1)
	assert.Equal(t, -100_000.0, proj.NetWorth[0].NetWorth)
}

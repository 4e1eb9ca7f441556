// Package projection runs the year-by-year financial simulations: net worth,
// income, dividend income, and blended portfolio-return scenarios, plus the
// retirement readiness and summary derivations built on top of them.
package projection

import (
	"context"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

// Projector generates projections from a profile under the configured
// economic assumptions. Each track is a pure recurrence: year 0 is the
// unprojected current state, and every later year depends only on the one
// before it. Internal arithmetic keeps full precision; values round only
// into the output rows.
type Projector struct {
	cfg config.ProjectionConfig
}

// New creates a Projector.
func New(cfg config.ProjectionConfig) *Projector {
	return &Projector{cfg: cfg}
}

// Horizon returns the default projection horizon for a profile: years to
// retirement, capped at the configured maximum.
func (pr *Projector) Horizon(p *model.UserProfile) int {
	years := p.YearsToRetirement
	if max := pr.cfg.MaxYears; max > 0 && years > max {
		years = max
	}
	return years
}

// Run computes all four projection tracks. The tracks are independent, so
// they run concurrently; each is sequential internally. A negative years
// value selects the profile's default horizon.
func (pr *Projector) Run(ctx context.Context, p *model.UserProfile, alloc model.Allocation, recs []model.Recommendation, years int) (*model.Projections, error) {
	if years < 0 {
		years = pr.Horizon(p)
	}

	var out model.Projections
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { out.NetWorth = pr.NetWorth(p, years); return nil })
	g.Go(func() error { out.Income = pr.Income(p, years); return nil })
	g.Go(func() error { out.Dividends = pr.Dividends(p, recs, years); return nil })
	g.Go(func() error { out.PortfolioReturns = pr.PortfolioReturns(p, alloc, years); return nil })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	zap.L().Debug("projection: all tracks computed",
		zap.Int("years", years),
		zap.Float64("final_net_worth", out.NetWorth[len(out.NetWorth)-1].NetWorth),
	)

	return &out, nil
}

// NetWorth projects net worth from year 0 to years. Income grows at the
// profile's expected rate, expenses at the inflation rate, and the running
// balance compounds at the risk-appropriate expected return before adding
// that year's savings.
func (pr *Projector) NetWorth(p *model.UserProfile, years int) []model.NetWorthPoint {
	netWorth := p.CurrentSavings - p.TotalDebt
	income := p.AnnualIncome
	expenses := p.AnnualExpenses()
	savings := income - expenses
	expectedReturn := pr.cfg.ExpectedReturn(p.RiskTolerance)

	points := make([]model.NetWorthPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		if year > 0 {
			income *= 1 + p.ExpectedIncomeGrowth/100
			expenses *= 1 + pr.cfg.InflationRate
			savings = income - expenses
			netWorth += netWorth*expectedReturn + savings
		}
		points = append(points, model.NetWorthPoint{
			Year:           year,
			Age:            p.Age + year,
			NetWorth:       round2(netWorth),
			AnnualIncome:   round2(income),
			AnnualExpenses: round2(expenses),
			AnnualSavings:  round2(savings),
		})
	}
	return points
}

// Income projects gross income growth, independent of every other track.
func (pr *Projector) Income(p *model.UserProfile, years int) []model.IncomePoint {
	income := p.AnnualIncome

	points := make([]model.IncomePoint, 0, years+1)
	for year := 0; year <= years; year++ {
		if year > 0 {
			income *= 1 + p.ExpectedIncomeGrowth/100
		}
		points = append(points, model.IncomePoint{
			Year:          year,
			Age:           p.Age + year,
			GrossIncome:   round2(income),
			MonthlyIncome: round2(income / 12),
		})
	}
	return points
}

// Dividends projects dividend income from the slice of savings allocated to
// dividend-paying stocks. The starting yield is the mean of the supplied
// recommendations' yields (or the default when none are supplied) and then
// compounds at the dividend growth rate: each year's dividend uses the
// current yield, and the yield steps up afterward, affecting the next year.
// The annual contribution is fixed at year-0 cash flow, not re-derived from
// the income projection.
func (pr *Projector) Dividends(p *model.UserProfile, recs []model.Recommendation, years int) []model.DividendPoint {
	share := pr.cfg.StockShare * pr.cfg.DividendStockShare
	portfolio := p.CurrentSavings * share
	contribution := (p.AnnualIncome - p.AnnualExpenses()) * share

	yield := pr.cfg.DefaultYield
	if len(recs) > 0 {
		var total float64
		for _, r := range recs {
			total += r.DividendYield
		}
		yield = total / float64(len(recs))
	}

	points := make([]model.DividendPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		if year > 0 {
			portfolio = portfolio*(1+pr.cfg.MarketAppreciation) + contribution
		}
		dividend := portfolio * yield

		// Yield growth applies after this year's dividend is computed, so it
		// affects the following year. The reported yield is the stepped-up one.
		if year > 0 {
			yield *= 1 + pr.cfg.DividendGrowthRate
		}

		points = append(points, model.DividendPoint{
			Year:             year,
			Age:              p.Age + year,
			PortfolioValue:   round2(portfolio),
			AnnualDividend:   round2(dividend),
			MonthlyDividend:  round2(dividend / 12),
			DividendYieldPct: round2(yield * 100),
		})
	}
	return points
}

// PortfolioReturns projects expected, best, worst, and conservative scenario
// values under the allocation-blended return and volatility. Best and worst
// deviate by 1.5 standard deviations from the expected path.
func (pr *Projector) PortfolioReturns(p *model.UserProfile, alloc model.Allocation, years int) []model.PortfolioReturnPoint {
	stockPct := alloc.Stocks / 100
	bondPct := alloc.Bonds / 100
	blendedReturn := stockPct*pr.cfg.StockReturn + bondPct*pr.cfg.BondReturn
	volatility := stockPct*pr.cfg.StockVolatility + bondPct*pr.cfg.BondVolatility

	expected := p.CurrentSavings
	contribution := p.AnnualIncome - p.AnnualExpenses()

	points := make([]model.PortfolioReturnPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		var best, worst, conservative float64
		if year > 0 {
			expected += expected*blendedReturn + contribution
			best = expected * (1 + 1.5*volatility)
			worst = expected * (1 - 1.5*volatility)
			conservative = expected * 0.85
		} else {
			best = expected * 1.1
			worst = expected * 0.9
			conservative = expected
		}

		points = append(points, model.PortfolioReturnPoint{
			Year:               year,
			Age:                p.Age + year,
			ExpectedValue:      round2(expected),
			BestCase:           round2(best),
			WorstCase:          round2(worst),
			ConservativeCase:   round2(conservative),
			TotalContributions: round2(contribution * float64(year)),
		})
	}
	return points
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

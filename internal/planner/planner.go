// Package planner wires the engine components into the full planning
// pipeline: analyze, fetch candidates, score, project, summarize.
package planner

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/advisor"
	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/market"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/projection"
	"github.com/sells-group/advisor-cli/internal/scorer"
)

// Options tunes a single planning run.
type Options struct {
	// Years overrides the projection horizon; negative selects the default
	// (years to retirement, capped).
	Years int
	// Offline skips the live provider and scores the curated fallback set.
	Offline bool
}

// DefaultOptions returns the standard run options.
func DefaultOptions() Options {
	return Options{Years: -1}
}

// Planner runs the end-to-end pipeline. All components are deterministic;
// only the market provider performs I/O.
type Planner struct {
	advisor   *advisor.Advisor
	scorer    *scorer.StockScorer
	projector *projection.Projector
	provider  market.Provider
	universe  *market.Universe
	market    config.MarketConfig
}

// New assembles a Planner. A nil provider forces offline operation; a nil
// universe uses the built-in one.
func New(adv *advisor.Advisor, sc *scorer.StockScorer, proj *projection.Projector, provider market.Provider, universe *market.Universe, marketCfg config.MarketConfig) *Planner {
	if universe == nil {
		universe = market.DefaultUniverse()
	}
	return &Planner{
		advisor:   adv,
		scorer:    sc,
		projector: proj,
		provider:  provider,
		universe:  universe,
		market:    marketCfg,
	}
}

// Plan produces the complete plan for a profile.
func (pl *Planner) Plan(ctx context.Context, profile *model.UserProfile, opts Options) (*model.Plan, error) {
	analysis, err := pl.advisor.Analyze(ctx, profile)
	if err != nil {
		return nil, err
	}

	recs := pl.Recommend(ctx, profile, opts)

	proj, err := pl.projector.Run(ctx, profile, analysis.RecommendedAllocation, recs, opts.Years)
	if err != nil {
		return nil, err
	}

	readiness := pl.projector.Readiness(profile, proj.NetWorth)
	summary := pl.projector.Summarize(profile, proj, readiness)

	return &model.Plan{
		Profile:         *profile,
		Analysis:        *analysis,
		Recommendations: recs,
		Projections:     *proj,
		Summary:         summary,
	}, nil
}

// Recommend fetches candidate records and scores them for the profile.
func (pl *Planner) Recommend(ctx context.Context, profile *model.UserProfile, opts Options) []model.Recommendation {
	return pl.scorer.Recommend(profile, pl.candidates(ctx, profile, opts))
}

// candidates assembles and fetches the candidate records, substituting the
// curated fallback set when the provider is unavailable or returns nothing.
func (pl *Planner) candidates(ctx context.Context, profile *model.UserProfile, opts Options) []*model.StockRecord {
	if opts.Offline || pl.provider == nil {
		return market.FallbackRecords()
	}

	tickers := pl.universe.Candidates(profile, market.CandidatePolicy{
		SectorLimit:   pl.market.SectorLimit,
		DividendLimit: pl.market.DividendLimit,
		MaxCandidates: pl.market.MaxCandidates,
	})

	records := market.FetchAll(ctx, pl.provider, tickers, pl.market.FetchPool)
	if len(records) == 0 {
		zap.L().Warn("planner: no live market data, using fallback candidates")
		return market.FallbackRecords()
	}
	return records
}

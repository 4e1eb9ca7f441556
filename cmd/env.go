package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/advisor"
	"github.com/sells-group/advisor-cli/internal/insight"
	"github.com/sells-group/advisor-cli/internal/market"
	"github.com/sells-group/advisor-cli/internal/planner"
	"github.com/sells-group/advisor-cli/internal/projection"
	"github.com/sells-group/advisor-cli/internal/scorer"
	"github.com/sells-group/advisor-cli/internal/store"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "advisor.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func initUniverse() *market.Universe {
	if cfg.Market.UniverseFile == "" {
		return market.DefaultUniverse()
	}
	u, err := market.LoadUniverse(cfg.Market.UniverseFile)
	if err != nil {
		zap.L().Warn("load universe file failed, using built-in universe",
			zap.String("path", cfg.Market.UniverseFile),
			zap.Error(err),
		)
		return market.DefaultUniverse()
	}
	return u
}

// initPlanner assembles the full pipeline. When offline is true no market
// client is constructed and the curated fallback records are used.
func initPlanner(offline bool) *planner.Planner {
	universe := initUniverse()

	var provider market.Provider
	if !offline {
		provider = market.NewYahoo(cfg.Market, universe)
	}

	adv := advisor.New(insight.FromConfig(cfg.Anthropic))
	sc := scorer.New(cfg.Scorer)
	proj := projection.New(cfg.Projection)

	return planner.New(adv, sc, proj, provider, universe, cfg.Market)
}

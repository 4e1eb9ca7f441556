// Package market supplies candidate stock records to the planning engine.
// The engine itself never fetches: it receives a plain slice of records and
// tolerates an empty or partial one.
package market

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Provider fetches market data for a single ticker. A per-ticker failure is
// an error here but is treated as an absent record by FetchAll.
type Provider interface {
	StockInfo(ctx context.Context, ticker string) (*model.StockRecord, error)
}

// FetchAll fetches records for all tickers concurrently, preserving ticker
// order in the result. Failed tickers are logged and omitted; the call
// succeeds even when every fetch fails. Cancellation stops outstanding
// fetches and returns whatever completed.
func FetchAll(ctx context.Context, p Provider, tickers []string, concurrency int) []*model.StockRecord {
	if concurrency <= 0 {
		concurrency = 5
	}

	results := make([]*model.StockRecord, len(tickers))
	var mu sync.Mutex
	var failed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, ticker := range tickers {
		g.Go(func() error {
			rec, err := p.StockInfo(gctx, ticker)
			if err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				zap.L().Warn("market: fetch failed",
					zap.String("ticker", ticker),
					zap.Error(err),
				)
				return nil
			}
			results[i] = rec
			return nil
		})
	}
	_ = g.Wait()

	// Compact out the absent records.
	records := make([]*model.StockRecord, 0, len(tickers))
	for _, r := range results {
		if r != nil {
			records = append(records, r)
		}
	}

	zap.L().Info("market: candidates fetched",
		zap.Int("requested", len(tickers)),
		zap.Int("fetched", len(records)),
		zap.Int("failed", failed),
	)

	return records
}

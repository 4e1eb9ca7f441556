package market

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

type fakeProvider struct {
	fail map[string]bool
}

func (f *fakeProvider) StockInfo(_ context.Context, ticker string) (*model.StockRecord, error) {
	if f.fail[ticker] {
		return nil, eris.Errorf("market: no quote for %s", ticker)
	}
	return &model.StockRecord{Ticker: ticker, Name: ticker + " Inc."}, nil
}

func TestFetchAllPreservesOrder(t *testing.T) {
	p := &fakeProvider{}
	tickers := []string{"AAPL", "MSFT", "JNJ", "JPM", "V"}

	records := FetchAll(context.Background(), p, tickers, 3)

	require.Len(t, records, 5)
	for i, r := range records {
		assert.Equal(t, tickers[i], r.Ticker)
	}
}

func TestFetchAllOmitsFailures(t *testing.T) {
	p := &fakeProvider{fail: map[string]bool{"MSFT": true, "V": true}}

	records := FetchAll(context.Background(), p, []string{"AAPL", "MSFT", "JNJ", "V"}, 2)

	require.Len(t, records, 2)
	assert.Equal(t, "AAPL", records[0].Ticker)
	assert.Equal(t, "JNJ", records[1].Ticker)
}

func TestFetchAllAllFail(t *testing.T) {
	p := &fakeProvider{fail: map[string]bool{"AAPL": true, "MSFT": true}}

	records := FetchAll(context.Background(), p, []string{"AAPL", "MSFT"}, 0)

	assert.Empty(t, records)
}

func TestFetchAllEmptyTickers(t *testing.T) {
	records := FetchAll(context.Background(), &fakeProvider{}, nil, 5)
	assert.Empty(t, records)
}

func TestFallbackRecords(t *testing.T) {
	records := FallbackRecords()

	require.NotEmpty(t, records)
	seen := make(map[string]bool)
	for _, r := range records {
		assert.NotEmpty(t, r.Ticker)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Sector)
		assert.Positive(t, r.CurrentPrice)
		assert.Positive(t, r.Beta)
		assert.False(t, seen[r.Ticker], "duplicate ticker %s", r.Ticker)
		seen[r.Ticker] = true
	}
}

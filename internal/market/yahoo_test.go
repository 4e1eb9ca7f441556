package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/config"
)

func yahooTestClient(baseURL string) *YahooClient {
	return NewYahoo(config.MarketConfig{
		BaseURL:        baseURL,
		UserAgent:      "advisor-test",
		MaxRetries:     2,
		RequestsPerSec: 1000, // don't throttle tests
	}, DefaultUniverse())
}

func TestStockInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v7/finance/quote", r.URL.Path)
		assert.Equal(t, "JNJ", r.URL.Query().Get("symbols"))
		assert.Equal(t, "advisor-test", r.Header.Get("User-Agent"))
		fmt.Fprint(w, `{"quoteResponse":{"result":[{
			"symbol":"JNJ",
			"longName":"Johnson & Johnson",
			"regularMarketPrice":156.7,
			"marketCap":380000000000,
			"trailingPE":15.3,
			"trailingAnnualDividendYield":0.0302,
			"beta":0.54,
			"fiftyTwoWeekHigh":175.4,
			"fiftyTwoWeekLow":144.9
		}],"error":null}}`)
	}))
	defer srv.Close()

	rec, err := yahooTestClient(srv.URL).StockInfo(context.Background(), "JNJ")
	require.NoError(t, err)

	assert.Equal(t, "JNJ", rec.Ticker)
	assert.Equal(t, "Johnson & Johnson", rec.Name)
	assert.Equal(t, "healthcare", rec.Sector, "sector filled from the universe")
	assert.Equal(t, 156.7, rec.CurrentPrice)
	assert.Equal(t, 0.54, rec.Beta)
	assert.Equal(t, 0.0302, rec.DividendYield)
}

func TestStockInfoNameFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"ZZZT","regularMarketPrice":10}],"error":null}}`)
	}))
	defer srv.Close()

	rec, err := yahooTestClient(srv.URL).StockInfo(context.Background(), "ZZZT")
	require.NoError(t, err)

	assert.Equal(t, "ZZZT", rec.Name, "no long or short name: ticker stands in")
	assert.Equal(t, "", rec.Sector)
	assert.Equal(t, 1.0, rec.Beta, "absent beta defaults to market beta")
}

func TestStockInfoUnknownTicker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[],"error":null}}`)
	}))
	defer srv.Close()

	_, err := yahooTestClient(srv.URL).StockInfo(context.Background(), "NOPE")
	assert.Error(t, err)
}

func TestStockInfoRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"AAPL","shortName":"Apple","regularMarketPrice":178.5}],"error":null}}`)
	}))
	defer srv.Close()

	rec, err := yahooTestClient(srv.URL).StockInfo(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "Apple", rec.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestStockInfoExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := yahooTestClient(srv.URL).StockInfo(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestStockInfoClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := yahooTestClient(srv.URL).StockInfo(context.Background(), "AAPL")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestIndexes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "^GSPC,^DJI,^IXIC", r.URL.Query().Get("symbols"))
		fmt.Fprint(w, `{"quoteResponse":{"result":[
			{"symbol":"^GSPC","regularMarketPrice":5510.2,"regularMarketChange":12.4,"regularMarketChangePercent":0.23},
			{"symbol":"^IXIC","regularMarketPrice":17860.1,"regularMarketChange":-45.2,"regularMarketChangePercent":-0.25}
		],"error":null}}`)
	}))
	defer srv.Close()

	quotes, err := yahooTestClient(srv.URL).Indexes(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	assert.Equal(t, "S&P 500", quotes[0].Name)
	assert.Equal(t, 5510.2, quotes[0].Value)
	assert.Equal(t, "Dow Jones", quotes[1].Name)
	assert.Zero(t, quotes[1].Value, "missing symbol stays zero-valued")
	assert.Equal(t, -0.25, quotes[2].ChangePercent)
}

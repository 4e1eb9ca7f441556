package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

// YahooClient implements Provider against the Yahoo Finance quote API, with
// a client-side rate limiter and bounded retries. Quote responses don't carry
// sector information, so it is filled from the universe when the ticker is a
// known one.
type YahooClient struct {
	client     *http.Client
	limiter    *rate.Limiter
	universe   *Universe
	baseURL    string
	userAgent  string
	maxRetries int
}

// NewYahoo creates a YahooClient from config.
func NewYahoo(cfg config.MarketConfig, universe *Universe) *YahooClient {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 4
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 2
	}
	if universe == nil {
		universe = DefaultUniverse()
	}
	return &YahooClient{
		client:     &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		universe:   universe,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		maxRetries: retries,
	}
}

// quoteResult mirrors the fields we consume from /v7/finance/quote.
type quoteResult struct {
	Symbol                      string   `json:"symbol"`
	LongName                    string   `json:"longName"`
	ShortName                   string   `json:"shortName"`
	RegularMarketPrice          float64  `json:"regularMarketPrice"`
	RegularMarketChange         float64  `json:"regularMarketChange"`
	RegularMarketChangePercent  float64  `json:"regularMarketChangePercent"`
	MarketCap                   float64  `json:"marketCap"`
	TrailingPE                  float64  `json:"trailingPE"`
	TrailingAnnualDividendYield float64  `json:"trailingAnnualDividendYield"`
	Beta                        *float64 `json:"beta"`
	FiftyTwoWeekHigh            float64  `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow             float64  `json:"fiftyTwoWeekLow"`
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []quoteResult `json:"result"`
		Error  any           `json:"error"`
	} `json:"quoteResponse"`
}

// StockInfo fetches a single quote. An unknown ticker is an error; the
// caller treats any per-ticker error as an absent record.
func (c *YahooClient) StockInfo(ctx context.Context, ticker string) (*model.StockRecord, error) {
	results, err := c.quote(ctx, []string{ticker})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, eris.Errorf("market: no quote for %s", ticker)
	}
	q := results[0]

	name := q.LongName
	if name == "" {
		name = q.ShortName
	}
	if name == "" {
		name = ticker
	}

	beta := 1.0
	if q.Beta != nil {
		beta = *q.Beta
	}

	return &model.StockRecord{
		Ticker:         strings.ToUpper(ticker),
		Name:           name,
		Sector:         c.universe.SectorOf(ticker),
		CurrentPrice:   q.RegularMarketPrice,
		MarketCap:      q.MarketCap,
		PERatio:        q.TrailingPE,
		DividendYield:  q.TrailingAnnualDividendYield,
		Beta:           beta,
		FiftyTwoWkHigh: q.FiftyTwoWeekHigh,
		FiftyTwoWkLow:  q.FiftyTwoWeekLow,
	}, nil
}

// IndexQuote is a current value for a major market index.
type IndexQuote struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

var indexSymbols = []IndexQuote{
	{Name: "S&P 500", Symbol: "^GSPC"},
	{Name: "Dow Jones", Symbol: "^DJI"},
	{Name: "NASDAQ", Symbol: "^IXIC"},
}

// Indexes fetches the major market indices in one request. Missing symbols
// are returned zero-valued rather than failing the whole call.
func (c *YahooClient) Indexes(ctx context.Context) ([]IndexQuote, error) {
	symbols := make([]string, len(indexSymbols))
	for i, idx := range indexSymbols {
		symbols[i] = idx.Symbol
	}

	results, err := c.quote(ctx, symbols)
	if err != nil {
		return nil, err
	}

	bySymbol := make(map[string]quoteResult, len(results))
	for _, q := range results {
		bySymbol[q.Symbol] = q
	}

	quotes := make([]IndexQuote, len(indexSymbols))
	for i, idx := range indexSymbols {
		quotes[i] = idx
		if q, ok := bySymbol[idx.Symbol]; ok {
			quotes[i].Value = q.RegularMarketPrice
			quotes[i].Change = q.RegularMarketChange
			quotes[i].ChangePercent = q.RegularMarketChangePercent
		}
	}
	return quotes, nil
}

func (c *YahooClient) quote(ctx context.Context, symbols []string) ([]quoteResult, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s",
		c.baseURL, url.QueryEscape(strings.Join(symbols, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "market: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("market: quote %v returned status %d", symbols, resp.StatusCode)
	}

	var decoded quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, eris.Wrap(err, "market: decode quote response")
	}
	return decoded.QuoteResponse.Result, nil
}

func (c *YahooClient) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "market: rate limiter wait")
		}

		resp, err := c.client.Do(req.Clone(ctx))
		if err != nil {
			lastErr = err
			zap.L().Warn("market: request failed, retrying",
				zap.String("url", req.URL.Path),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			c.backoff(ctx, attempt)
			continue
		}

		// Retry rate-limited and server-side failures; everything else is
		// the caller's to interpret.
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			lastErr = eris.Errorf("market: status %d", resp.StatusCode)
			c.backoff(ctx, attempt)
			continue
		}

		return resp, nil
	}
	return nil, eris.Wrapf(lastErr, "market: request failed after %d attempts", c.maxRetries+1)
}

func (c *YahooClient) backoff(ctx context.Context, attempt int) {
	delay := time.Duration(1<<attempt) * 250 * time.Millisecond
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}

package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

func conservativeProfile() *model.UserProfile {
	return &model.UserProfile{
		Age:              60,
		RiskTolerance:    model.RiskConservative,
		PreferredSectors: []string{"Healthcare"},
	}
}

func TestScoreConservative(t *testing.T) {
	p := conservativeProfile()

	stock := &model.StockRecord{
		Ticker:        "JNJ",
		Sector:        "Healthcare",
		Beta:          0.55,
		DividendYield: 0.029,
		PERatio:       15,
		MarketCap:     380e9,
	}

	// 50 base + 15 sector + 10 low beta + 15 dividend + 10 value + 10 large cap
	assert.Equal(t, 110.0, Score(stock, p))
}

func TestScoreConservativePenalizesHighBeta(t *testing.T) {
	p := conservativeProfile()

	stock := &model.StockRecord{
		Ticker:  "NVDA",
		Sector:  "Technology",
		Beta:    1.7,
		PERatio: 55,
	}

	// 50 base - 10 high beta - 5 overpriced; no market cap data
	assert.Equal(t, 35.0, Score(stock, p))
}

func TestScoreAggressive(t *testing.T) {
	p := &model.UserProfile{Age: 28, RiskTolerance: model.RiskAggressive}

	highBeta := &model.StockRecord{Ticker: "TSLA", Beta: 2.0, PERatio: 60, MarketCap: 5e9}
	// 50 + 10 high beta + 5 offset - 5 overpriced + 5 small cap
	assert.Equal(t, 65.0, Score(highBeta, p))

	// Absent market cap still counts as small for the aggressive bonus.
	noCap := &model.StockRecord{Ticker: "UPST", Beta: 1.5, PERatio: 0}
	// 50 + 10 + 5 + 5
	assert.Equal(t, 70.0, Score(noCap, p))
}

func TestScoreAbsentBetaCountsAsMarket(t *testing.T) {
	p := conservativeProfile()

	stock := &model.StockRecord{Ticker: "XYZ"}

	// 50 base only: an unreported beta is market volatility, not low beta,
	// so the conservative bonus must not apply.
	assert.Equal(t, 50.0, Score(stock, p))
	assert.Equal(t, "Solid fundamentals for diversified portfolio", Rationale(stock, p))
}

func TestScoreModerate(t *testing.T) {
	p := &model.UserProfile{Age: 40, RiskTolerance: model.RiskModerate}

	stock := &model.StockRecord{Ticker: "MSFT", Beta: 0.95, DividendYield: 0.02, PERatio: 22}
	// 50 + 10 mid beta + 10 dividend + 10 value
	assert.Equal(t, 80.0, Score(stock, p))
}

func TestRecommendOrderingAndTruncation(t *testing.T) {
	s := New(config.ScorerConfig{MaxPicks: 2})
	p := &model.UserProfile{RiskTolerance: model.RiskModerate}

	candidates := []*model.StockRecord{
		{Ticker: "LOW1", Beta: 2.0}, // scores 50
		{Ticker: "HIGH", Beta: 1.0, DividendYield: 0.02, PERatio: 15}, // scores 80
		nil,
		{Ticker: "MID", Beta: 1.0}, // scores 60
	}

	recs := s.Recommend(p, candidates)

	require.Len(t, recs, 2)
	assert.Equal(t, "HIGH", recs[0].Ticker)
	assert.Equal(t, "MID", recs[1].Ticker)
}

func TestRecommendTieStability(t *testing.T) {
	s := New(config.ScorerConfig{MaxPicks: 10})
	p := &model.UserProfile{RiskTolerance: model.RiskAggressive}

	// Identical fundamentals: identical scores, input order preserved.
	candidates := []*model.StockRecord{
		{Ticker: "AAA", Beta: 1.0},
		{Ticker: "BBB", Beta: 1.0},
		{Ticker: "CCC", Beta: 1.0},
	}

	recs := s.Recommend(p, candidates)

	require.Len(t, recs, 3)
	assert.Equal(t, "AAA", recs[0].Ticker)
	assert.Equal(t, "BBB", recs[1].Ticker)
	assert.Equal(t, "CCC", recs[2].Ticker)
}

func TestRecommendMinScoreFilter(t *testing.T) {
	s := New(config.ScorerConfig{MaxPicks: 10, MinScore: 64})
	p := &model.UserProfile{RiskTolerance: model.RiskModerate}

	candidates := []*model.StockRecord{
		{Ticker: "KEEP", Beta: 1.0, DividendYield: 0.02}, // 70
		{Ticker: "DROP", Beta: 1.0},                      // 60
	}

	recs := s.Recommend(p, candidates)

	require.Len(t, recs, 1)
	assert.Equal(t, "KEEP", recs[0].Ticker)
}

func TestRecommendEmptyInput(t *testing.T) {
	s := New(config.ScorerConfig{})
	recs := s.Recommend(&model.UserProfile{}, nil)
	assert.Empty(t, recs)
}

func TestRationale(t *testing.T) {
	p := conservativeProfile()

	stock := &model.StockRecord{
		Ticker:        "JNJ",
		Sector:        "Healthcare",
		Beta:          0.55,
		DividendYield: 0.031,
		PERatio:       15,
	}

	got := Rationale(stock, p)
	assert.Equal(t, "Matches your interest in Healthcare; Strong dividend yield of 3.10%; Lower volatility matches your risk tolerance; Reasonable valuation", got)
}

func TestRationaleFallback(t *testing.T) {
	p := &model.UserProfile{RiskTolerance: model.RiskModerate}
	stock := &model.StockRecord{Ticker: "XYZ", Beta: 1.0, PERatio: 30}

	assert.Equal(t, "Solid fundamentals for diversified portfolio", Rationale(stock, p))
}

// Package scorer ranks candidate securities against a user profile.
package scorer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

// Scoring weights. These are a fixed contract: the same profile and the same
// candidates always produce the same scores.
const (
	baseScore = 50.0

	sectorBonus = 15.0

	lowBetaBonus     = 10.0 // conservative, beta < 0.8
	highBetaPenalty  = 10.0 // conservative, beta > 1.2
	dividendBonus    = 15.0 // conservative, yield > 2%
	highBetaBonus    = 10.0 // aggressive, beta > 1.2
	aggressiveOffset = 5.0  // aggressive, unconditional (reduced dividend emphasis)
	midBetaBonus     = 10.0 // moderate, 0.8 <= beta <= 1.2
	modDividendBonus = 10.0 // moderate, yield > 1.5%

	valueBonus       = 10.0 // 10 <= P/E <= 25
	overpricePenalty = 5.0  // P/E > 40

	largeCapBonus = 10.0 // conservative, market cap > $100B
	smallCapBonus = 5.0  // aggressive, market cap < $10B

	largeCapFloor = 100e9
	smallCapCeil  = 10e9
)

// StockScorer scores and ranks candidate stocks. It holds no mutable state;
// scoring the same inputs twice yields identical output.
type StockScorer struct {
	cfg config.ScorerConfig
}

// New creates a StockScorer.
func New(cfg config.ScorerConfig) *StockScorer {
	return &StockScorer{cfg: cfg}
}

// Recommend scores every candidate, keeps those above the minimum score
// (strictly positive by default), and returns the top picks ordered by score
// descending. Ties preserve input order. Nil records are skipped. An empty
// candidate list yields an empty result, not an error.
func (s *StockScorer) Recommend(profile *model.UserProfile, candidates []*model.StockRecord) []model.Recommendation {
	maxPicks := s.cfg.MaxPicks
	if maxPicks <= 0 {
		maxPicks = 10
	}

	var recs []model.Recommendation
	for _, stock := range candidates {
		if stock == nil {
			continue
		}
		score := Score(stock, profile)
		if score <= s.cfg.MinScore {
			continue
		}
		recs = append(recs, model.Recommendation{
			Ticker:        stock.Ticker,
			Name:          stock.Name,
			Sector:        stock.Sector,
			CurrentPrice:  stock.CurrentPrice,
			DividendYield: stock.DividendYield,
			PERatio:       stock.PERatio,
			Score:         score,
			Rationale:     Rationale(stock, profile),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > maxPicks {
		recs = recs[:maxPicks]
	}

	zap.L().Info("scorer: candidates ranked",
		zap.Int("candidates", len(candidates)),
		zap.Int("picks", len(recs)),
	)

	return recs
}

// Score computes the profile-weighted score for one stock, rounded to 2
// decimals. Scores are unbounded in principle; no clamping is applied.
func Score(stock *model.StockRecord, profile *model.UserProfile) float64 {
	score := baseScore

	if profile.PrefersSector(stock.Sector) {
		score += sectorBonus
	}

	// An absent beta arrives as zero; treat it as market volatility rather
	// than letting it pass the low-beta checks.
	beta := stock.Beta
	if beta == 0 {
		beta = 1.0
	}

	switch profile.RiskTolerance {
	case model.RiskConservative:
		if beta < 0.8 {
			score += lowBetaBonus
		} else if beta > 1.2 {
			score -= highBetaPenalty
		}
		if stock.DividendYield > 0.02 {
			score += dividendBonus
		}
	case model.RiskAggressive:
		if beta > 1.2 {
			score += highBetaBonus
		}
		score += aggressiveOffset
	default:
		if beta >= 0.8 && beta <= 1.2 {
			score += midBetaBonus
		}
		if stock.DividendYield > 0.015 {
			score += modDividendBonus
		}
	}

	// Valuation. A zero P/E means the figure was unavailable.
	if stock.PERatio > 0 {
		if stock.PERatio >= 10 && stock.PERatio <= 25 {
			score += valueBonus
		} else if stock.PERatio > 40 {
			score -= overpricePenalty
		}
	}

	// Stability by market cap.
	if stock.MarketCap > largeCapFloor && profile.RiskTolerance == model.RiskConservative {
		score += largeCapBonus
	} else if stock.MarketCap < smallCapCeil && profile.RiskTolerance == model.RiskAggressive {
		score += smallCapBonus
	}

	return math.Round(score*100) / 100
}

// Rationale builds the human-readable explanation for a pick. It is computed
// independently of the score: each qualifying reason appends one sentence,
// and a stock with no specific reason falls back to a generic one.
func Rationale(stock *model.StockRecord, profile *model.UserProfile) string {
	var reasons []string

	if profile.PrefersSector(stock.Sector) {
		reasons = append(reasons, fmt.Sprintf("Matches your interest in %s", stock.Sector))
	}
	if stock.DividendYield > 0.03 {
		reasons = append(reasons, fmt.Sprintf("Strong dividend yield of %.2f%%", stock.DividendYield*100))
	}
	beta := stock.Beta
	if beta == 0 {
		beta = 1.0
	}
	if beta < 0.9 && profile.RiskTolerance == model.RiskConservative {
		reasons = append(reasons, "Lower volatility matches your risk tolerance")
	}
	if beta > 1.1 && profile.RiskTolerance == model.RiskAggressive {
		reasons = append(reasons, "Higher growth potential for aggressive strategy")
	}
	if stock.PERatio >= 10 && stock.PERatio <= 20 {
		reasons = append(reasons, "Reasonable valuation")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Solid fundamentals for diversified portfolio")
	}

	return strings.Join(reasons, "; ")
}

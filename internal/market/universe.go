package market

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Universe is the curated ticker universe candidates are drawn from: major
// names per sector, a dividend-aristocrat-style income list, and a blue-chip
// core added to every candidate set.
type Universe struct {
	Sectors             map[string][]string `yaml:"sectors"`
	DividendAristocrats []string            `yaml:"dividend_aristocrats"`
	BlueChips           []string            `yaml:"blue_chips"`
}

// sectorAliases maps alternates to canonical sector keys.
var sectorAliases = map[string]string{
	"tech":      "technology",
	"financial": "finance",
	"telecom":   "telecommunications",
}

// DefaultUniverse returns the built-in ticker universe.
func DefaultUniverse() *Universe {
	return &Universe{
		Sectors: map[string][]string{
			"technology":         {"AAPL", "MSFT", "GOOGL", "META", "NVDA", "AVGO", "CSCO", "ADBE", "CRM", "INTC"},
			"healthcare":         {"JNJ", "UNH", "PFE", "ABBV", "MRK", "TMO", "ABT", "DHR", "LLY", "BMY"},
			"finance":            {"JPM", "BAC", "WFC", "C", "GS", "MS", "BLK", "SCHW", "AXP", "USB"},
			"energy":             {"XOM", "CVX", "COP", "SLB", "EOG", "MPC", "PSX", "VLO", "OXY", "HAL"},
			"consumer":           {"AMZN", "TSLA", "WMT", "HD", "NKE", "MCD", "SBUX", "TGT", "LOW", "DIS"},
			"industrial":         {"BA", "HON", "UNP", "CAT", "GE", "MMM", "LMT", "RTX", "DE", "UPS"},
			"utilities":          {"NEE", "DUK", "SO", "D", "AEP", "EXC", "SRE", "PEG", "XEL", "ED"},
			"real estate":        {"AMT", "PLD", "CCI", "EQIX", "PSA", "SPG", "O", "WELL", "DLR", "AVB"},
			"materials":          {"LIN", "APD", "SHW", "FCX", "NEM", "ECL", "DD", "DOW", "NUE", "VMC"},
			"telecommunications": {"T", "VZ", "TMUS", "CMCSA", "CHTR"},
		},
		DividendAristocrats: []string{
			"JNJ", "PG", "KO", "PEP", "MCD", "WMT", "XOM", "CVX",
			"T", "VZ", "IBM", "ABBV", "MMM", "CAT", "TGT", "O",
			"MO", "SO", "DUK", "NEE",
		},
		BlueChips: []string{"AAPL", "MSFT", "GOOGL", "JNJ", "JPM", "V", "WMT", "PG"},
	}
}

// LoadUniverse reads a universe override from a YAML file. Sections left
// empty in the file fall back to the built-in universe.
func LoadUniverse(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "market: read universe %s", path)
	}
	var u Universe
	if err := yaml.Unmarshal(data, &u); err != nil {
		return nil, eris.Wrapf(err, "market: parse universe %s", path)
	}

	def := DefaultUniverse()
	if len(u.Sectors) == 0 {
		u.Sectors = def.Sectors
	}
	if len(u.DividendAristocrats) == 0 {
		u.DividendAristocrats = def.DividendAristocrats
	}
	if len(u.BlueChips) == 0 {
		u.BlueChips = def.BlueChips
	}
	return &u, nil
}

// SectorTickers returns up to limit tickers for a sector. Lookup is
// case-insensitive and understands common aliases; unknown sectors yield nil.
func (u *Universe) SectorTickers(sector string, limit int) []string {
	key := strings.ToLower(strings.TrimSpace(sector))
	if canonical, ok := sectorAliases[key]; ok {
		key = canonical
	}
	tickers := u.Sectors[key]
	if limit > 0 && len(tickers) > limit {
		tickers = tickers[:limit]
	}
	return tickers
}

// DividendTickers returns up to limit tickers from the income list.
func (u *Universe) DividendTickers(limit int) []string {
	tickers := u.DividendAristocrats
	if limit > 0 && len(tickers) > limit {
		tickers = tickers[:limit]
	}
	return tickers
}

// SectorOf returns the canonical sector for a ticker, or "" if the ticker is
// not in the universe.
func (u *Universe) SectorOf(ticker string) string {
	for sector, tickers := range u.Sectors {
		for _, t := range tickers {
			if strings.EqualFold(t, ticker) {
				return sector
			}
		}
	}
	return ""
}

// CandidatePolicy shapes candidate assembly.
type CandidatePolicy struct {
	SectorLimit   int // tickers per preferred sector
	DividendLimit int // income-list tickers for conservative profiles
	MaxCandidates int // overall cap
}

// Candidates assembles the ticker set for a profile: preferred-sector names,
// the income list for conservative investors, and the blue-chip core.
// Duplicates are dropped keeping first position, and the set is capped at
// MaxCandidates. Order is deterministic for a given profile.
func (u *Universe) Candidates(p *model.UserProfile, policy CandidatePolicy) []string {
	var tickers []string
	for _, sector := range p.PreferredSectors {
		tickers = append(tickers, u.SectorTickers(sector, policy.SectorLimit)...)
	}
	if p.RiskTolerance == model.RiskConservative {
		tickers = append(tickers, u.DividendTickers(policy.DividendLimit)...)
	}
	tickers = append(tickers, u.BlueChips...)

	seen := make(map[string]bool, len(tickers))
	unique := tickers[:0]
	for _, t := range tickers {
		t = strings.ToUpper(t)
		if seen[t] {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}

	if policy.MaxCandidates > 0 && len(unique) > policy.MaxCandidates {
		unique = unique[:policy.MaxCandidates]
	}
	return unique
}

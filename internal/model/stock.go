package model

// StockRecord holds the market data for a single security as supplied by the
// market data collaborator. Records are immutable once fetched. Absent
// fundamentals are zero-valued except Beta, which defaults to market
// volatility (1.0).
type StockRecord struct {
	Ticker         string  `json:"ticker"`
	Name           string  `json:"name"`
	Sector         string  `json:"sector"`
	Industry       string  `json:"industry,omitempty"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	PERatio        float64 `json:"pe_ratio"`
	DividendYield  float64 `json:"dividend_yield"` // fraction, e.g. 0.025
	Beta           float64 `json:"beta"`
	FiftyTwoWkHigh float64 `json:"52_week_high,omitempty"`
	FiftyTwoWkLow  float64 `json:"52_week_low,omitempty"`
}

// Recommendation is a scored, ranked stock pick with its rationale.
type Recommendation struct {
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	CurrentPrice  float64 `json:"current_price"`
	DividendYield float64 `json:"dividend_yield"`
	PERatio       float64 `json:"pe_ratio"`
	Score         float64 `json:"score"`
	Rationale     string  `json:"rationale"`
}

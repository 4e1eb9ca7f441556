package market

import "github.com/sells-group/advisor-cli/internal/model"

// FallbackRecords returns a curated candidate set used when the live
// provider yields nothing — well-known large caps with representative
// fundamentals, so recommendations and dividend projections stay meaningful
// offline. Figures are indicative, not live.
func FallbackRecords() []*model.StockRecord {
	return []*model.StockRecord{
		{Ticker: "AAPL", Name: "Apple Inc.", Sector: "technology", CurrentPrice: 178.50, MarketCap: 2.8e12, PERatio: 29.5, DividendYield: 0.0055, Beta: 1.25},
		{Ticker: "MSFT", Name: "Microsoft Corporation", Sector: "technology", CurrentPrice: 378.90, MarketCap: 2.8e12, PERatio: 35.2, DividendYield: 0.0078, Beta: 0.92},
		{Ticker: "GOOGL", Name: "Alphabet Inc.", Sector: "technology", CurrentPrice: 139.60, MarketCap: 1.75e12, PERatio: 26.8, DividendYield: 0, Beta: 1.05},
		{Ticker: "JNJ", Name: "Johnson & Johnson", Sector: "healthcare", CurrentPrice: 156.70, MarketCap: 3.8e11, PERatio: 15.3, DividendYield: 0.0302, Beta: 0.54},
		{Ticker: "UNH", Name: "UnitedHealth Group", Sector: "healthcare", CurrentPrice: 527.20, MarketCap: 4.9e11, PERatio: 22.4, DividendYield: 0.0143, Beta: 0.68},
		{Ticker: "JPM", Name: "JPMorgan Chase & Co.", Sector: "finance", CurrentPrice: 154.80, MarketCap: 4.5e11, PERatio: 10.9, DividendYield: 0.0271, Beta: 1.11},
		{Ticker: "V", Name: "Visa Inc.", Sector: "finance", CurrentPrice: 252.30, MarketCap: 5.2e11, PERatio: 30.8, DividendYield: 0.0082, Beta: 0.96},
		{Ticker: "XOM", Name: "Exxon Mobil Corporation", Sector: "energy", CurrentPrice: 104.60, MarketCap: 4.2e11, PERatio: 10.2, DividendYield: 0.0355, Beta: 1.04},
		{Ticker: "PG", Name: "Procter & Gamble Co.", Sector: "consumer", CurrentPrice: 152.40, MarketCap: 3.6e11, PERatio: 24.6, DividendYield: 0.0247, Beta: 0.45},
		{Ticker: "KO", Name: "The Coca-Cola Company", Sector: "consumer", CurrentPrice: 59.10, MarketCap: 2.6e11, PERatio: 23.1, DividendYield: 0.0311, Beta: 0.58},
		{Ticker: "WMT", Name: "Walmart Inc.", Sector: "consumer", CurrentPrice: 163.40, MarketCap: 4.4e11, PERatio: 26.3, DividendYield: 0.0139, Beta: 0.49},
		{Ticker: "CAT", Name: "Caterpillar Inc.", Sector: "industrial", CurrentPrice: 287.60, MarketCap: 1.5e11, PERatio: 16.7, DividendYield: 0.0181, Beta: 1.11},
		{Ticker: "NEE", Name: "NextEra Energy Inc.", Sector: "utilities", CurrentPrice: 60.20, MarketCap: 1.2e11, PERatio: 18.9, DividendYield: 0.0312, Beta: 0.51},
		{Ticker: "SO", Name: "The Southern Company", Sector: "utilities", CurrentPrice: 70.10, MarketCap: 7.6e10, PERatio: 20.2, DividendYield: 0.0399, Beta: 0.47},
		{Ticker: "O", Name: "Realty Income Corporation", Sector: "real estate", CurrentPrice: 54.80, MarketCap: 4.7e10, PERatio: 41.3, DividendYield: 0.0561, Beta: 0.80},
		{Ticker: "NVDA", Name: "NVIDIA Corporation", Sector: "technology", CurrentPrice: 485.10, MarketCap: 1.2e12, PERatio: 62.4, DividendYield: 0.0003, Beta: 1.68},
	}
}

package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Market     MarketConfig     `yaml:"market" mapstructure:"market"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Scorer     ScorerConfig     `yaml:"scorer" mapstructure:"scorer"`
	Projection ProjectionConfig `yaml:"projection" mapstructure:"projection"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the plan persistence backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"` // "sqlite" or "postgres"
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// MarketConfig configures the market data client.
type MarketConfig struct {
	BaseURL        string  `yaml:"base_url" mapstructure:"base_url"`
	UserAgent      string  `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs    int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries     int     `yaml:"max_retries" mapstructure:"max_retries"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
	UniverseFile   string  `yaml:"universe_file" mapstructure:"universe_file"`
	MaxCandidates  int     `yaml:"max_candidates" mapstructure:"max_candidates"`
	SectorLimit    int     `yaml:"sector_limit" mapstructure:"sector_limit"`
	DividendLimit  int     `yaml:"dividend_limit" mapstructure:"dividend_limit"`
	FetchPool      int     `yaml:"fetch_pool" mapstructure:"fetch_pool"`
}

// AnthropicConfig holds Anthropic API settings for the insight generator.
// An empty key disables LLM insights; the pipeline runs unchanged without them.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ScorerConfig configures recommendation output. Scoring weights themselves
// are a fixed contract; only result shaping is configurable.
type ScorerConfig struct {
	MaxPicks int     `yaml:"max_picks" mapstructure:"max_picks"`
	MinScore float64 `yaml:"min_score" mapstructure:"min_score"`
}

// ProjectionConfig holds the economic assumptions behind every projection
// track. Defaults reproduce the published model; overriding them changes the
// plan, not just its presentation.
type ProjectionConfig struct {
	InflationRate      float64 `yaml:"inflation_rate" mapstructure:"inflation_rate"`
	ConservativeReturn float64 `yaml:"conservative_return" mapstructure:"conservative_return"`
	ModerateReturn     float64 `yaml:"moderate_return" mapstructure:"moderate_return"`
	AggressiveReturn   float64 `yaml:"aggressive_return" mapstructure:"aggressive_return"`

	StockReturn     float64 `yaml:"stock_return" mapstructure:"stock_return"`
	BondReturn      float64 `yaml:"bond_return" mapstructure:"bond_return"`
	StockVolatility float64 `yaml:"stock_volatility" mapstructure:"stock_volatility"`
	BondVolatility  float64 `yaml:"bond_volatility" mapstructure:"bond_volatility"`

	MarketAppreciation float64 `yaml:"market_appreciation" mapstructure:"market_appreciation"`
	DividendGrowthRate float64 `yaml:"dividend_growth_rate" mapstructure:"dividend_growth_rate"`
	DefaultYield       float64 `yaml:"default_yield" mapstructure:"default_yield"`
	StockShare         float64 `yaml:"stock_share" mapstructure:"stock_share"`
	DividendStockShare float64 `yaml:"dividend_stock_share" mapstructure:"dividend_stock_share"`

	SafeWithdrawalRate      float64 `yaml:"safe_withdrawal_rate" mapstructure:"safe_withdrawal_rate"`
	RetirementExpenseFactor float64 `yaml:"retirement_expense_factor" mapstructure:"retirement_expense_factor"`
	RetirementGoalMultiple  float64 `yaml:"retirement_goal_multiple" mapstructure:"retirement_goal_multiple"`

	MaxYears int `yaml:"max_years" mapstructure:"max_years"`
}

// ExpectedReturn returns the market return estimate for a risk tolerance.
// Unrecognized tolerances use the moderate estimate.
func (c ProjectionConfig) ExpectedReturn(rt model.RiskTolerance) float64 {
	switch rt {
	case model.RiskConservative:
		return c.ConservativeReturn
	case model.RiskAggressive:
		return c.AggressiveReturn
	default:
		return c.ModerateReturn
	}
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "advisor.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("server.port", 8080)

	v.SetDefault("market.base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("market.user_agent", "advisor-cli/1.0")
	v.SetDefault("market.timeout_secs", 10)
	v.SetDefault("market.max_retries", 2)
	v.SetDefault("market.requests_per_sec", 4)
	v.SetDefault("market.max_candidates", 30)
	v.SetDefault("market.sector_limit", 5)
	v.SetDefault("market.dividend_limit", 10)
	v.SetDefault("market.fetch_pool", 5)

	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 1024)

	v.SetDefault("scorer.max_picks", 10)
	v.SetDefault("scorer.min_score", 0)

	v.SetDefault("projection.inflation_rate", 0.03)
	v.SetDefault("projection.conservative_return", 0.05)
	v.SetDefault("projection.moderate_return", 0.07)
	v.SetDefault("projection.aggressive_return", 0.09)
	v.SetDefault("projection.stock_return", 0.10)
	v.SetDefault("projection.bond_return", 0.04)
	v.SetDefault("projection.stock_volatility", 0.18)
	v.SetDefault("projection.bond_volatility", 0.05)
	v.SetDefault("projection.market_appreciation", 0.07)
	v.SetDefault("projection.dividend_growth_rate", 0.05)
	v.SetDefault("projection.default_yield", 0.03)
	v.SetDefault("projection.stock_share", 0.60)
	v.SetDefault("projection.dividend_stock_share", 0.40)
	v.SetDefault("projection.safe_withdrawal_rate", 0.04)
	v.SetDefault("projection.retirement_expense_factor", 0.80)
	v.SetDefault("projection.retirement_goal_multiple", 25)
	v.SetDefault("projection.max_years", 30)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

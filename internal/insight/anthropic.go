package insight

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

const systemPrompt = "You are a financial planning assistant. You comment on " +
	"an already-computed quantitative analysis; do not recompute or contradict " +
	"its figures. Keep the response to 2-3 short, concrete insights."

// AnthropicGenerator produces insights via the Anthropic Messages API.
type AnthropicGenerator struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

// NewAnthropic creates a live generator from config.
func NewAnthropic(cfg config.AnthropicConfig) *AnthropicGenerator {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &AnthropicGenerator{
		client:    sdk.NewClient(option.WithAPIKey(cfg.Key)),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// Generate asks the model for commentary on the analysis.
func (g *AnthropicGenerator) Generate(ctx context.Context, profile *model.UserProfile, analysis *model.Analysis) (string, error) {
	msg, err := g.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(g.model),
		MaxTokens: g.maxTokens,
		System: []sdk.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(buildPrompt(profile, analysis))),
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "insight: create message")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	zap.L().Debug("insight: generated",
		zap.String("model", g.model),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return sb.String(), nil
}

func buildPrompt(p *model.UserProfile, a *model.Analysis) string {
	return fmt.Sprintf(`Analyze this financial profile and provide personalized investment advice:

Age: %d
Income: $%.0f
Savings: $%.0f
Risk Tolerance: %s
Years to Retirement: %d
Goals: %s

Current Analysis:
- Savings Rate: %.1f%%
- Investment Strategy: %s
- Risk Assessment: %s

Provide 2-3 key personalized insights and recommendations.`,
		p.Age, p.AnnualIncome, p.CurrentSavings, p.RiskTolerance, p.YearsToRetirement,
		strings.Join(p.MajorLifeGoals, ", "),
		a.FinancialHealth.SavingsRate, a.InvestmentStrategy, a.RiskAssessment.Recommendation,
	)
}

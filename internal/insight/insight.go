// Package insight generates optional free-text commentary on an analysis.
// Insights are purely additive: they annotate the plan and never feed back
// into any numeric computation.
package insight

import (
	"context"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

// Generator produces commentary for a profile and its analysis. An empty
// string is a valid result.
type Generator interface {
	Generate(ctx context.Context, profile *model.UserProfile, analysis *model.Analysis) (string, error)
}

// Noop is the disabled variant: no commentary, never an error.
type Noop struct{}

// Generate returns an empty insight.
func (Noop) Generate(context.Context, *model.UserProfile, *model.Analysis) (string, error) {
	return "", nil
}

// FromConfig selects the generator variant at construction: the Anthropic
// implementation when an API key is configured, the no-op otherwise.
func FromConfig(cfg config.AnthropicConfig) Generator {
	if cfg.Key == "" {
		return Noop{}
	}
	return NewAnthropic(cfg)
}

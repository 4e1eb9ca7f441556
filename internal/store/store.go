// Package store persists completed plans. The planning engine itself never
// touches storage; callers save plans after the engine runs.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/model"
)

// ErrNotFound is returned when no plan exists for the requested ID.
var ErrNotFound = eris.New("store: plan not found")

// PlanFilter specifies criteria for listing plans.
type PlanFilter struct {
	RiskTolerance model.RiskTolerance `json:"risk_tolerance,omitempty"`
	Limit         int                 `json:"limit,omitempty"`
	Offset        int                 `json:"offset,omitempty"`
}

// PlanHeader is the listing row for a saved plan.
type PlanHeader struct {
	ID            string              `json:"id"`
	Age           int                 `json:"age"`
	RiskTolerance model.RiskTolerance `json:"risk_tolerance"`
	NetWorth      float64             `json:"net_worth"`
	OnTrack       bool                `json:"on_track"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Store defines plan persistence. Implementations assign the plan's ID and
// creation time on save.
type Store interface {
	SavePlan(ctx context.Context, plan *model.Plan) error
	GetPlan(ctx context.Context, id string) (*model.Plan, error)
	ListPlans(ctx context.Context, filter PlanFilter) ([]PlanHeader, error)

	Migrate(ctx context.Context) error
	Close() error
}

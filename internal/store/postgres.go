package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies it in
// tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using a pgx connection pool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: connect")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool. Used by tests.
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS plans (
	id             TEXT PRIMARY KEY,
	age            INTEGER NOT NULL,
	risk_tolerance TEXT NOT NULL,
	net_worth      DOUBLE PRECISION NOT NULL,
	on_track       BOOLEAN NOT NULL,
	plan           JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_plans_risk_tolerance ON plans(risk_tolerance);
CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SavePlan(ctx context.Context, plan *model.Plan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal plan")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO plans (id, age, risk_tolerance, net_worth, on_track, plan, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		plan.ID,
		plan.Profile.Age,
		string(plan.Profile.RiskTolerance),
		plan.Summary.CurrentSnapshot.NetWorth,
		plan.Summary.RetirementOutlook.OnTrack,
		planJSON,
		plan.CreatedAt,
	)
	if err != nil {
		return eris.Wrap(err, "postgres: insert plan")
	}
	return nil
}

func (s *PostgresStore) GetPlan(ctx context.Context, id string) (*model.Plan, error) {
	var planJSON []byte
	err := s.pool.QueryRow(ctx, `SELECT plan FROM plans WHERE id = $1`, id).Scan(&planJSON)
	if err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return nil, eris.Wrapf(ErrNotFound, "postgres: plan %s", id)
		}
		return nil, eris.Wrapf(err, "postgres: get plan %s", id)
	}

	var plan model.Plan
	if err := json.Unmarshal(planJSON, &plan); err != nil {
		return nil, eris.Wrapf(err, "postgres: unmarshal plan %s", id)
	}
	return &plan, nil
}

func (s *PostgresStore) ListPlans(ctx context.Context, filter PlanFilter) ([]PlanHeader, error) {
	query := `SELECT id, age, risk_tolerance, net_worth, on_track, created_at FROM plans`
	var args []any

	if filter.RiskTolerance != "" {
		query += ` WHERE risk_tolerance = $1`
		args = append(args, string(filter.RiskTolerance))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, filter.Offset)
	switch len(args) {
	case 2:
		query += ` LIMIT $1 OFFSET $2`
	case 3:
		query += ` LIMIT $2 OFFSET $3`
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list plans")
	}
	defer rows.Close()

	var headers []PlanHeader
	for rows.Next() {
		var h PlanHeader
		var rt string
		if err := rows.Scan(&h.ID, &h.Age, &rt, &h.NetWorth, &h.OnTrack, &h.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan plan header")
		}
		h.RiskTolerance = model.RiskTolerance(rt)
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate plans")
	}
	return headers, nil
}

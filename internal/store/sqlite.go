package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/advisor-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS plans (
	id             TEXT PRIMARY KEY,
	age            INTEGER NOT NULL,
	risk_tolerance TEXT NOT NULL,
	net_worth      REAL NOT NULL,
	on_track       INTEGER NOT NULL,
	plan           TEXT NOT NULL,
	created_at     DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_plans_risk_tolerance ON plans(risk_tolerance);
CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SavePlan(ctx context.Context, plan *model.Plan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal plan")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO plans (id, age, risk_tolerance, net_worth, on_track, plan, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plan.ID,
		plan.Profile.Age,
		string(plan.Profile.RiskTolerance),
		plan.Summary.CurrentSnapshot.NetWorth,
		plan.Summary.RetirementOutlook.OnTrack,
		string(planJSON),
		plan.CreatedAt,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: insert plan")
	}
	return nil
}

func (s *SQLiteStore) GetPlan(ctx context.Context, id string) (*model.Plan, error) {
	var planJSON string
	err := s.db.QueryRowContext(ctx, `SELECT plan FROM plans WHERE id = ?`, id).Scan(&planJSON)
	if err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, eris.Wrapf(ErrNotFound, "sqlite: plan %s", id)
		}
		return nil, eris.Wrapf(err, "sqlite: get plan %s", id)
	}

	var plan model.Plan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal plan %s", id)
	}
	return &plan, nil
}

func (s *SQLiteStore) ListPlans(ctx context.Context, filter PlanFilter) ([]PlanHeader, error) {
	query := `SELECT id, age, risk_tolerance, net_worth, on_track, created_at FROM plans`
	var args []any

	if filter.RiskTolerance != "" {
		query += ` WHERE risk_tolerance = ?`
		args = append(args, string(filter.RiskTolerance))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list plans")
	}
	defer rows.Close()

	var headers []PlanHeader
	for rows.Next() {
		var h PlanHeader
		var rt string
		if err := rows.Scan(&h.ID, &h.Age, &rt, &h.NetWorth, &h.OnTrack, &h.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan plan header")
		}
		h.RiskTolerance = model.RiskTolerance(rt)
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate plans")
	}
	return headers, nil
}

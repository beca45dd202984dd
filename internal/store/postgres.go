package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies
// it for unit tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS reports (
	id          TEXT PRIMARY KEY,
	company     TEXT NOT NULL,
	total_score INTEGER NOT NULL,
	stage       TEXT NOT NULL,
	level       TEXT NOT NULL,
	report      JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_reports_company ON reports(company);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveReport(ctx context.Context, report *model.Report) (string, error) {
	id := report.ID
	if id == "" {
		id = uuid.New().String()
	}

	stored := *report
	stored.ID = id
	reportJSON, err := json.Marshal(&stored)
	if err != nil {
		return "", eris.Wrap(err, "postgres: marshal report")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO reports (id, company, total_score, stage, level, report, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   company = EXCLUDED.company,
		   total_score = EXCLUDED.total_score,
		   stage = EXCLUDED.stage,
		   level = EXCLUDED.level,
		   report = EXCLUDED.report`,
		id, stored.Profile.Name, stored.Assessment.TotalScore,
		string(stored.Assessment.Stage), string(stored.Assessment.Level),
		string(reportJSON), time.Now().UTC(),
	)
	if err != nil {
		return "", eris.Wrap(err, "postgres: insert report")
	}
	return id, nil
}

func (s *PostgresStore) GetReport(ctx context.Context, id string) (*model.Report, error) {
	var reportJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT report FROM reports WHERE id = $1`, id,
	).Scan(&reportJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Errorf("postgres: report %s not found", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get report %s", id)
	}

	var report model.Report
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, eris.Wrapf(err, "postgres: unmarshal report %s", id)
	}
	return &report, nil
}

func (s *PostgresStore) ListReports(ctx context.Context, filter ReportFilter) ([]ReportSummary, error) {
	query := `SELECT id, company, total_score, stage, level, created_at FROM reports WHERE 1=1`
	var args []any

	if filter.Company != "" {
		args = append(args, filter.Company)
		query += ` AND company = $1`
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list reports")
	}
	defer rows.Close()

	var summaries []ReportSummary
	for rows.Next() {
		var sum ReportSummary
		var stage, level string
		if err := rows.Scan(&sum.ID, &sum.Company, &sum.TotalScore, &stage, &level, &sum.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan report summary")
		}
		sum.Stage = model.Stage(stage)
		sum.Level = model.Level(level)
		summaries = append(summaries, sum)
	}
	return summaries, eris.Wrap(rows.Err(), "postgres: list reports iterate")
}

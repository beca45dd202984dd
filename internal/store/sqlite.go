package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/globalbridge/readiness-cli/internal/model"
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
CREATE TABLE IF NOT EXISTS reports (
	id          TEXT PRIMARY KEY,
	company     TEXT NOT NULL,
	total_score INTEGER NOT NULL,
	stage       TEXT NOT NULL,
	level       TEXT NOT NULL,
	report      TEXT NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_reports_company ON reports(company);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveReport(ctx context.Context, report *model.Report) (string, error) {
	id := report.ID
	if id == "" {
		id = uuid.New().String()
	}

	stored := *report
	stored.ID = id
	reportJSON, err := json.Marshal(&stored)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: marshal report")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, company, total_score, stage, level, report, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   company = excluded.company,
		   total_score = excluded.total_score,
		   stage = excluded.stage,
		   level = excluded.level,
		   report = excluded.report`,
		id, stored.Profile.Name, stored.Assessment.TotalScore,
		string(stored.Assessment.Stage), string(stored.Assessment.Level),
		string(reportJSON), time.Now().UTC(),
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: insert report")
	}
	return id, nil
}

func (s *SQLiteStore) GetReport(ctx context.Context, id string) (*model.Report, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT report FROM reports WHERE id = ?`, id,
	)

	var reportJSON string
	if err := row.Scan(&reportJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, eris.Errorf("sqlite: report %s not found", id)
		}
		return nil, eris.Wrapf(err, "sqlite: get report %s", id)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal report %s", id)
	}
	return &report, nil
}

func (s *SQLiteStore) ListReports(ctx context.Context, filter ReportFilter) ([]ReportSummary, error) {
	query := `SELECT id, company, total_score, stage, level, created_at FROM reports WHERE 1=1`
	var args []any

	if filter.Company != "" {
		query += ` AND company = ?`
		args = append(args, filter.Company)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list reports")
	}
	defer rows.Close()

	var summaries []ReportSummary
	for rows.Next() {
		var sum ReportSummary
		var stage, level string
		if err := rows.Scan(&sum.ID, &sum.Company, &sum.TotalScore, &stage, &level, &sum.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan report summary")
		}
		sum.Stage = model.Stage(stage)
		sum.Level = model.Level(level)
		summaries = append(summaries, sum)
	}
	return summaries, eris.Wrap(rows.Err(), "sqlite: list reports iterate")
}

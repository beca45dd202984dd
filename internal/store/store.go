// Package store persists completed assessment reports. Reports are
// stored as JSON blobs with last-write-wins semantics; the store offers
// no stronger guarantees.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/globalbridge/readiness-cli/internal/config"
	"github.com/globalbridge/readiness-cli/internal/model"
)

// ReportFilter specifies criteria for listing stored reports.
type ReportFilter struct {
	Company string `json:"company,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

// ReportSummary is one row of a report listing.
type ReportSummary struct {
	ID         string      `json:"id"`
	Company    string      `json:"company"`
	TotalScore int         `json:"total_score"`
	Stage      model.Stage `json:"stage"`
	Level      model.Level `json:"level"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Store defines the persistence interface for assessment reports.
type Store interface {
	// SaveReport persists the report and returns its id, assigning a new
	// uuid when the report carries none. Saving an existing id overwrites
	// the stored report.
	SaveReport(ctx context.Context, report *model.Report) (string, error)
	GetReport(ctx context.Context, id string) (*model.Report, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]ReportSummary, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates the store selected by the config and runs migrations.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case "sqlite":
		s, err = NewSQLite(cfg.Path)
	case "postgres":
		s, err = NewPostgres(ctx, cfg.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalbridge/readiness-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testReport(company string, score int) *model.Report {
	return &model.Report{
		Profile: model.CompanyProfile{Name: company, Industry: "machinery"},
		Assessment: model.AssessmentResult{
			Stage:      model.StageExploration,
			Level:      model.LevelNewcomer,
			TotalScore: score,
			DimensionScores: model.DimensionScores{
				Foundation: 50, Product: 45, Operation: 40, Resource: 35, Potential: 55,
			},
			KeyFindings: []string{"a finding"},
		},
		ActionPlan:  model.ActionPlan{Immediate: []string{"do the thing"}},
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSQLiteSaveGetRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	original := testReport("Acme Industrial", 52)
	id, err := s.SaveReport(ctx, original)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetReport(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	// JSON equality modulo the assigned id.
	original.ID = id
	wantJSON, err := json.Marshal(original)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
}

func TestSQLiteSaveOverwritesExistingID(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	first := testReport("Acme Industrial", 52)
	id, err := s.SaveReport(ctx, first)
	require.NoError(t, err)

	second := testReport("Acme Industrial", 61)
	second.ID = id
	id2, err := s.SaveReport(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	got, err := s.GetReport(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 61, got.Assessment.TotalScore)
}

func TestSQLiteGetMissingReport(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.GetReport(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListReports(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	for i, company := range []string{"Acme Industrial", "Acme Industrial", "Binford Tools"} {
		_, err := s.SaveReport(ctx, testReport(company, 40+i))
		require.NoError(t, err)
	}

	t.Run("all", func(t *testing.T) {
		all, err := s.ListReports(ctx, ReportFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
		for _, sum := range all {
			assert.NotEmpty(t, sum.ID)
			assert.Equal(t, model.StageExploration, sum.Stage)
		}
	})

	t.Run("company filter", func(t *testing.T) {
		acme, err := s.ListReports(ctx, ReportFilter{Company: "Acme Industrial"})
		require.NoError(t, err)
		assert.Len(t, acme, 2)
	})

	t.Run("limit", func(t *testing.T) {
		limited, err := s.ListReports(ctx, ReportFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("no match", func(t *testing.T) {
		none, err := s.ListReports(ctx, ReportFilter{Company: "Nobody"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestSQLiteMigrateIdempotent(t *testing.T) {
	s := newTestSQLite(t)
	require.NoError(t, s.Migrate(context.Background()))
}

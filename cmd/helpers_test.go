package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalbridge/readiness-cli/internal/model"
	"github.com/globalbridge/readiness-cli/internal/scoring"
)

func TestTitleize(t *testing.T) {
	assert.Equal(t, "-", titleize(""))
	assert.Equal(t, "Southeast Asia", titleize("southeast_asia"))
	assert.Equal(t, "Growth", titleize("growth"))
	assert.Equal(t, "North America", titleize("north america"))
}

func TestLoadApplication(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"profile": {"name": "Acme Industrial", "industry": "machinery"},
		"diagnosis": {"stage": "exploration"}
	}`), 0o644))

	app, err := loadApplication(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Industrial", app.Profile.Name)
	assert.Equal(t, model.StageExploration, app.Diagnosis.Stage)
}

func TestLoadApplicationErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadApplication(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := loadApplication(path)
		require.Error(t, err)
	})

	t.Run("anonymous application", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "anon.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"profile":{}}`), 0o644))
		_, err := loadApplication(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no company name")
	})
}

func TestFormatAssessment(t *testing.T) {
	app := model.Application{
		Profile:   model.CompanyProfile{Name: "Acme Industrial"},
		Diagnosis: model.OverseasDiagnosis{Stage: model.StageExploration},
	}
	result := scoring.Score(app)

	var buf bytes.Buffer
	formatAssessment(&buf, app.Profile.Name, result)

	out := buf.String()
	assert.Contains(t, out, "Acme Industrial")
	assert.Contains(t, out, "Exploration")
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "Growth Potential")
}

// Package report assembles the full assessment deliverable: scores,
// benchmark matches, market and service recommendations, action and
// investment plans, and a flattened answer summary.
package report

import (
	"time"

	"github.com/globalbridge/readiness-cli/internal/match"
	"github.com/globalbridge/readiness-cli/internal/model"
	"github.com/globalbridge/readiness-cli/internal/scoring"
)

// Default top-K limits for the ranked report sections.
const (
	DefaultBenchmarkTopK = 3
	DefaultMarketTopK    = 3
)

// Catalogs bundles the reference data a report build needs. Callers load
// it once and reuse it across builds; BuildReport never mutates it.
type Catalogs struct {
	Industries []model.Industry
	Companies  []model.BenchmarkCompany
	Markets    []model.MarketRecord
	Services   []model.ServiceProduct
}

// BuildReport runs the complete assessment pipeline for one application
// and assembles the deliverable.
func BuildReport(app model.Application, cats Catalogs) model.Report {
	assessment := scoring.Score(app)

	return model.Report{
		Profile:     app.Profile,
		Assessment:  assessment,
		Benchmarks:  match.MatchBenchmarks(app.Profile, app.Diagnosis, cats.Companies, DefaultBenchmarkTopK),
		Markets:     match.RecommendMarkets(app.Profile, app.Product, app.Diagnosis, cats.Markets, DefaultMarketTopK),
		Services:    match.RecommendServices(app, assessment, cats.Services),
		ActionPlan:  BuildActionPlan(assessment),
		Investment:  BuildInvestmentPlan(app.Profile, assessment),
		DataSummary: BuildDataSummary(app),
		GeneratedAt: time.Now().UTC(),
	}
}

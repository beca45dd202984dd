package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalbridge/readiness-cli/internal/model"
)

func TestBuildActionPlan(t *testing.T) {
	t.Parallel()

	t.Run("each stage has a full four-horizon plan", func(t *testing.T) {
		t.Parallel()
		for _, stage := range []model.Stage{
			model.StagePreparation, model.StageExploration, model.StageGrowth,
			model.StageExpansion, model.StageMature,
		} {
			plan := BuildActionPlan(model.AssessmentResult{Stage: stage})
			assert.NotEmpty(t, plan.Immediate, "stage %s", stage)
			assert.NotEmpty(t, plan.ShortTerm, "stage %s", stage)
			assert.NotEmpty(t, plan.MediumTerm, "stage %s", stage)
			assert.NotEmpty(t, plan.LongTerm, "stage %s", stage)
		}
	})

	t.Run("expansion and mature share the scale-up plan", func(t *testing.T) {
		t.Parallel()
		expansion := BuildActionPlan(model.AssessmentResult{Stage: model.StageExpansion})
		mature := BuildActionPlan(model.AssessmentResult{Stage: model.StageMature})
		assert.Equal(t, expansion, mature)
	})

	t.Run("preparation plan starts with market definition", func(t *testing.T) {
		t.Parallel()
		plan := BuildActionPlan(model.AssessmentResult{Stage: model.StagePreparation})
		assert.Contains(t, plan.Immediate[0], "target export markets")
	})
}

func TestBuildInvestmentPlan(t *testing.T) {
	t.Parallel()

	t.Run("small preparation-stage company", func(t *testing.T) {
		t.Parallel()
		plan := BuildInvestmentPlan(
			model.CompanyProfile{AnnualRevenue: "<500"},
			model.AssessmentResult{Stage: model.StagePreparation},
		)
		// 10-30 base scaled by 0.7.
		assert.Equal(t, model.BudgetRange{Min: 7, Max: 21}, plan.TotalBudget)
	})

	t.Run("large growth-stage company", func(t *testing.T) {
		t.Parallel()
		plan := BuildInvestmentPlan(
			model.CompanyProfile{AnnualRevenue: ">5000"},
			model.AssessmentResult{Stage: model.StageGrowth},
		)
		// 50-150 base scaled by 1.5.
		assert.Equal(t, model.BudgetRange{Min: 75, Max: 225}, plan.TotalBudget)

		require.Len(t, plan.Allocation, 5)
		total := 0
		for _, a := range plan.Allocation {
			total += a.Percentage
		}
		assert.Equal(t, 100, total)

		assert.Equal(t, "Team building", plan.Allocation[0].Category)
		assert.Equal(t, "19-56", plan.Allocation[0].Amount)
		assert.Equal(t, "23-68", plan.Allocation[2].Amount)
	})

	t.Run("unanswered revenue uses the smallest factor", func(t *testing.T) {
		t.Parallel()
		plan := BuildInvestmentPlan(
			model.CompanyProfile{},
			model.AssessmentResult{Stage: model.StageExploration},
		)
		// 20-50 base scaled by 0.7.
		assert.Equal(t, model.BudgetRange{Min: 14, Max: 35}, plan.TotalBudget)
	})

	t.Run("unknown stage falls back to the exploration band", func(t *testing.T) {
		t.Parallel()
		plan := BuildInvestmentPlan(
			model.CompanyProfile{AnnualRevenue: "1000-3000"},
			model.AssessmentResult{Stage: ""},
		)
		// 20-50 base scaled by 1.1.
		assert.Equal(t, model.BudgetRange{Min: 22, Max: 55}, plan.TotalBudget)
	})

	t.Run("roi projection is always present", func(t *testing.T) {
		t.Parallel()
		plan := BuildInvestmentPlan(model.CompanyProfile{}, model.AssessmentResult{})
		assert.NotEmpty(t, plan.ROIProjection)
	})
}

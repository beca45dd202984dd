package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globalbridge/readiness-cli/internal/model"
)

func TestGenerateSWOT(t *testing.T) {
	t.Parallel()

	t.Run("empty application still yields non-empty buckets", func(t *testing.T) {
		t.Parallel()
		swot := GenerateSWOT(model.Application{}, model.DimensionScores{Foundation: 30, Product: 25, Operation: 20, Resource: 20, Potential: 25})

		assert.NotEmpty(t, swot.Strengths)
		assert.NotEmpty(t, swot.Opportunities)
		assert.GreaterOrEqual(t, len(swot.Threats), 3)
		// Low scores across the board produce weaknesses.
		assert.NotEmpty(t, swot.Weaknesses)
	})

	t.Run("strength rules fire on strong answers", func(t *testing.T) {
		t.Parallel()
		app := model.Application{
			Profile: model.CompanyProfile{CoreCompetencies: []string{"technology"}},
			Product: model.ProductCompetitiveness{Certifications: []string{"CE", "FCC", "UL"}},
			Diagnosis: model.OverseasDiagnosis{
				TeamConfig: model.TeamConfig{HasDedicatedTeam: true, TeamSize: "20-50"},
			},
			Operation: model.OperationCapability{HasBrand: true, BrandAwareness: "medium"},
		}
		dims := model.DimensionScores{Foundation: 80, Product: 85, Operation: 75, Resource: 70, Potential: 70}
		swot := GenerateSWOT(app, dims)

		assert.Len(t, swot.Strengths, 6)
		assert.Empty(t, swot.Weaknesses)
	})

	t.Run("conditional opportunity and threat rules", func(t *testing.T) {
		t.Parallel()
		app := model.Application{
			Profile:  model.CompanyProfile{Industry: "electronics"},
			Resource: model.ResourceAndPlan{GovernmentSupport: []string{"export_subsidy"}, PerceivedRisks: []string{"payment"}},
		}
		swot := GenerateSWOT(app, model.DimensionScores{Foundation: 60})

		assert.Len(t, swot.Opportunities, 4)
		assert.Len(t, swot.Threats, 4)
	})
}

func TestGenerateKeyFindings(t *testing.T) {
	t.Parallel()

	t.Run("weakest and strongest dimensions named", func(t *testing.T) {
		t.Parallel()
		dims := model.DimensionScores{Foundation: 80, Product: 90, Operation: 40, Resource: 60, Potential: 70}
		findings := GenerateKeyFindings(model.Application{}, dims)

		assert.Contains(t, findings[0], "operating capability")
		assert.Contains(t, findings[1], "product competitiveness")
	})

	t.Run("ties resolve to first declared dimension", func(t *testing.T) {
		t.Parallel()
		// Operation and resource tie for the minimum; operation declares first.
		dims := model.DimensionScores{Foundation: 30, Product: 25, Operation: 20, Resource: 20, Potential: 25}
		findings := GenerateKeyFindings(model.Application{}, dims)

		assert.Contains(t, findings[0], "operating capability")
		// Foundation is the unique max.
		assert.Contains(t, findings[1], "fundamentals")
	})

	t.Run("uniform scores emit a single gap finding", func(t *testing.T) {
		t.Parallel()
		dims := model.DimensionScores{Foundation: 50, Product: 50, Operation: 50, Resource: 50, Potential: 50}
		findings := GenerateKeyFindings(model.Application{}, dims)

		// Weakest and strongest coincide, so no asset sentence.
		assert.Len(t, findings, 2)
		assert.Contains(t, findings[0], "foundational capability")
	})

	t.Run("channel diversity finding tiers", func(t *testing.T) {
		t.Parallel()
		dims := model.DimensionScores{Foundation: 50, Product: 50, Operation: 50, Resource: 50, Potential: 50}

		cases := []struct {
			name     string
			channels model.Channels
			want     string
		}{
			{"no channels", model.Channels{}, "no export channel"},
			{"single channel", model.Channels{B2BPlatform: true}, "single point of failure"},
			{
				"broad coverage",
				model.Channels{B2BPlatform: true, SocialMedia: true, IndependentSite: true, OfflineExhibition: true},
				"cross-channel",
			},
		}
		for _, tc := range cases {
			app := model.Application{Diagnosis: model.OverseasDiagnosis{Channels: tc.channels}}
			findings := GenerateKeyFindings(app, dims)
			last := findings[len(findings)-1]
			assert.True(t, strings.Contains(last, tc.want), "%s: got %q", tc.name, last)
		}
	})

	t.Run("two or three channels add no diversity finding", func(t *testing.T) {
		t.Parallel()
		dims := model.DimensionScores{Foundation: 50, Product: 50, Operation: 50, Resource: 50, Potential: 50}
		app := model.Application{Diagnosis: model.OverseasDiagnosis{Channels: model.Channels{B2BPlatform: true, SocialMedia: true}}}
		findings := GenerateKeyFindings(app, dims)

		assert.Len(t, findings, 1)
	})
}

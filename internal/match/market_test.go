package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalbridge/readiness-cli/internal/model"
)

func marketCatalog() []model.MarketRecord {
	return []model.MarketRecord{
		{
			Key: "europe", Region: "Europe",
			Countries:              []string{"Germany", "France", "Netherlands"},
			Rationale:              "mature, quality-driven market",
			RequiredCertifications: []string{"CE", "GS", "TUV", "RoHS"},
		},
		{
			Key: "north_america", Region: "North America",
			Countries:              []string{"United States", "Canada", "Mexico"},
			Rationale:              "largest consumer market",
			RequiredCertifications: []string{"UL", "FCC", "FDA", "EPA"},
		},
		{
			Key: "southeast_asia", Region: "Southeast Asia",
			Countries:              []string{"Vietnam", "Thailand", "Indonesia"},
			Rationale:              "fast growth, low entry barriers",
			RequiredCertifications: []string{"PSB", "SIRIM", "TISI"},
		},
		{
			Key: "japan", Region: "Japan",
			Countries:              []string{"Japan"},
			Rationale:              "quality-obsessed, loyal once entered",
			RequiredCertifications: []string{"PSE", "TELEC", "JIS"},
		},
	}
}

func TestRecommendMarkets(t *testing.T) {
	t.Parallel()

	t.Run("empty catalog or non-positive k", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, RecommendMarkets(model.CompanyProfile{}, model.ProductCompetitiveness{}, model.OverseasDiagnosis{}, nil, 3))
		assert.Empty(t, RecommendMarkets(model.CompanyProfile{}, model.ProductCompetitiveness{}, model.OverseasDiagnosis{}, marketCatalog(), 0))
	})

	t.Run("premium certified electronics ranks europe and north america first", func(t *testing.T) {
		t.Parallel()
		profile := model.CompanyProfile{Industry: "electronics"}
		product := model.ProductCompetitiveness{
			PricePositioning: "premium",
			Certifications:   []string{"CE", "FCC"},
		}

		got := RecommendMarkets(profile, product, model.OverseasDiagnosis{}, marketCatalog(), 4)
		require.Len(t, got, 4)

		top2 := []string{got[0].Market.Key, got[1].Market.Key}
		assert.ElementsMatch(t, []string{"europe", "north_america"}, top2)

		// europe: 88*.30 + 95*.25 + 100*.20 + 60*.15 + 50*.10 = 84.15
		assert.Equal(t, "europe", got[0].Market.Key)
		assert.Equal(t, 84, got[0].FitScore)
		assert.Equal(t, model.PriorityHigh, got[0].Priority)
		assert.Contains(t, got[0].Rationale, "entry requirements")
	})

	t.Run("fit scores stay within bounds and sorted", func(t *testing.T) {
		t.Parallel()
		got := RecommendMarkets(model.CompanyProfile{Industry: "machinery"}, model.ProductCompetitiveness{}, model.OverseasDiagnosis{}, marketCatalog(), 4)
		require.Len(t, got, 4)
		for i, rec := range got {
			assert.GreaterOrEqual(t, rec.FitScore, 0)
			assert.LessOrEqual(t, rec.FitScore, 100)
			if i > 0 {
				assert.LessOrEqual(t, rec.FitScore, got[i-1].FitScore)
			}
		}
	})

	t.Run("no qualifying reason falls back to the static rationale", func(t *testing.T) {
		t.Parallel()
		// Unknown industry, no price tier, no certs, mature stage, no intent:
		// every sub-score sits below its reason threshold.
		profile := model.CompanyProfile{Industry: "other"}
		diag := model.OverseasDiagnosis{Stage: model.StageMature}

		got := RecommendMarkets(profile, model.ProductCompetitiveness{}, diag, marketCatalog()[:1], 1)
		require.Len(t, got, 1)
		assert.Equal(t, "mature, quality-driven market", got[0].Rationale)
		// 50*.30 + 50*.25 + 30*.20 + 60*.15 + 50*.10 = 47.5 -> low priority
		assert.Equal(t, 48, got[0].FitScore)
		assert.Equal(t, model.PriorityLow, got[0].Priority)
	})

	t.Run("stated target markets lift the intent sub-score", func(t *testing.T) {
		t.Parallel()
		diagWithIntent := model.OverseasDiagnosis{TopMarkets: []string{"Vietnam"}}

		baseline := RecommendMarkets(model.CompanyProfile{}, model.ProductCompetitiveness{}, model.OverseasDiagnosis{}, marketCatalog(), 4)
		withIntent := RecommendMarkets(model.CompanyProfile{}, model.ProductCompetitiveness{}, diagWithIntent, marketCatalog(), 4)

		scoreOf := func(recs []model.MarketRecommendation, key string) int {
			for _, r := range recs {
				if r.Market.Key == key {
					return r.FitScore
				}
			}
			t.Fatalf("market %s missing", key)
			return 0
		}

		assert.Equal(t, 5, scoreOf(withIntent, "southeast_asia")-scoreOf(baseline, "southeast_asia"))
	})

	t.Run("market key can be named directly as a target", func(t *testing.T) {
		t.Parallel()
		diag := model.OverseasDiagnosis{TopMarkets: []string{"Southeast Asia"}}
		got := RecommendMarkets(model.CompanyProfile{}, model.ProductCompetitiveness{}, diag, marketCatalog(), 4)

		for _, rec := range got {
			if rec.Market.Key == "southeast_asia" {
				assert.Contains(t, rec.Rationale, "target markets")
				return
			}
		}
		t.Fatal("southeast_asia missing from results")
	})
}

func TestHoldsRequiredCert(t *testing.T) {
	t.Parallel()

	assert.True(t, holdsRequiredCert([]string{"CE"}, []string{"CE", "GS"}))
	assert.True(t, holdsRequiredCert([]string{"ce-lvd"}, []string{"CE"}))
	assert.False(t, holdsRequiredCert([]string{"FCC"}, []string{"CE", "GS"}))
	assert.False(t, holdsRequiredCert(nil, []string{"CE"}))
	assert.False(t, holdsRequiredCert([]string{"CE"}, nil))
}

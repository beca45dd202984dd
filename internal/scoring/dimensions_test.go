package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// baseProfile returns a profile with the identity fields answered so the
// foundation scorer gets past its untouched-section guard.
func baseProfile() model.CompanyProfile {
	return model.CompanyProfile{
		Name:            "Acme Industrial",
		EstablishedYear: "2010",
		Industry:        "machinery",
	}
}

func TestScoreFoundation(t *testing.T) {
	t.Parallel()

	t.Run("identity fields missing returns floor", func(t *testing.T) {
		t.Parallel()
		profile := baseProfile()
		profile.Name = ""
		profile.AnnualRevenue = ">5000" // ignored behind the guard
		assert.Equal(t, FloorFoundation, ScoreFoundation(profile, model.OverseasDiagnosis{}))
	})

	t.Run("identity answered but nothing else scores floor", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 30, ScoreFoundation(baseProfile(), model.OverseasDiagnosis{}))
	})

	t.Run("dedicated team adds team and language bonuses", func(t *testing.T) {
		t.Parallel()
		diag := model.OverseasDiagnosis{
			TeamConfig: model.TeamConfig{
				HasDedicatedTeam:          true,
				TeamSize:                  ">50",
				ForeignLanguageCapability: "excellent",
			},
		}
		without := ScoreFoundation(baseProfile(), model.OverseasDiagnosis{})
		with := ScoreFoundation(baseProfile(), diag)
		assert.GreaterOrEqual(t, with-without, 30)
	})

	t.Run("team bonuses require the dedicated team flag", func(t *testing.T) {
		t.Parallel()
		diag := model.OverseasDiagnosis{
			TeamConfig: model.TeamConfig{TeamSize: ">50", ForeignLanguageCapability: "excellent"},
		}
		assert.Equal(t, 30, ScoreFoundation(baseProfile(), diag))
	})

	t.Run("team flag with empty size still earns partial credit", func(t *testing.T) {
		t.Parallel()
		diag := model.OverseasDiagnosis{
			TeamConfig: model.TeamConfig{HasDedicatedTeam: true, ForeignLanguageCapability: "basic"},
		}
		// No team-size bucket, but language capability still counts.
		assert.Equal(t, 33, ScoreFoundation(baseProfile(), diag))
	})

	t.Run("fully answered profile", func(t *testing.T) {
		t.Parallel()
		profile := baseProfile()
		profile.AnnualRevenue = ">5000"
		profile.RAndDStaffRatio = ">30%"
		profile.CompanyNature = model.NatureListed
		diag := model.OverseasDiagnosis{
			TeamConfig: model.TeamConfig{
				HasDedicatedTeam:          true,
				TeamSize:                  ">50",
				ForeignLanguageCapability: "excellent",
			},
		}
		assert.Equal(t, 90, ScoreFoundation(profile, diag))
	})
}

func TestScoreProduct(t *testing.T) {
	t.Parallel()

	t.Run("untouched section returns floor", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 25, ScoreProduct(model.ProductCompetitiveness{}))
	})

	t.Run("untouched guard ignores secondary fields", func(t *testing.T) {
		t.Parallel()
		// R&D and quality control alone do not open the section.
		p := model.ProductCompetitiveness{
			HasRAndD:       true,
			PatentCount:    ">10",
			QualityControl: []string{"iso9001", "inspection"},
		}
		assert.Equal(t, FloorProduct, ScoreProduct(p))
	})

	t.Run("certification count is capped at 20 points", func(t *testing.T) {
		t.Parallel()
		five := model.ProductCompetitiveness{Certifications: []string{"CE", "FCC", "UL", "RoHS", "GS"}}
		nine := model.ProductCompetitiveness{
			Certifications: []string{"CE", "FCC", "UL", "RoHS", "GS", "TUV", "PSE", "SAA", "SASO"},
		}
		assert.Equal(t, ScoreProduct(five), ScoreProduct(nine))
	})

	t.Run("more certifications never lowers the score", func(t *testing.T) {
		t.Parallel()
		certs := []string{"CE", "FCC", "UL", "RoHS", "GS", "TUV", "PSE"}
		prev := 0
		for i := 0; i <= len(certs); i++ {
			p := model.ProductCompetitiveness{
				PricePositioning: "premium",
				Certifications:   certs[:i],
			}
			got := ScoreProduct(p)
			assert.GreaterOrEqual(t, got, prev, "certs=%d", i)
			prev = got
		}
	})

	t.Run("patents only count with an R&D function", func(t *testing.T) {
		t.Parallel()
		withRAndD := model.ProductCompetitiveness{
			PricePositioning: "mid",
			HasRAndD:         true,
			PatentCount:      ">10",
		}
		withoutRAndD := withRAndD
		withoutRAndD.HasRAndD = false
		assert.Equal(t, 15, ScoreProduct(withRAndD)-ScoreProduct(withoutRAndD))
	})
}

func TestScoreOperation(t *testing.T) {
	t.Parallel()

	t.Run("untouched section returns floor", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 20, ScoreOperation(model.OperationCapability{}, model.OverseasDiagnosis{}))
	})

	t.Run("channel coverage caps at 25 points", func(t *testing.T) {
		t.Parallel()
		diag := model.OverseasDiagnosis{Channels: model.Channels{
			B2BPlatform:         true,
			B2BPlatformsUsed:    []string{"alibaba"},
			SocialMedia:         true,
			SocialPlatformsUsed: []string{"linkedin"},
			B2CPlatform:         true,
			B2CPlatformsUsed:    []string{"amazon"},
			IndependentSite:     true,
			OfflineExhibition:   true,
			OverseasOffice:      true,
			AgentDistributor:    true,
		}}
		require.Equal(t, 10, diag.Channels.ActiveCount())
		assert.Equal(t, 20+25, ScoreOperation(model.OperationCapability{}, diag))
	})

	t.Run("digital tooling and brand stack up", func(t *testing.T) {
		t.Parallel()
		op := model.OperationCapability{
			HasCRM:          true,
			HasERP:          true,
			DigitalLevel:    "advanced",
			MarketingBudget: ">10%",
			HasBrand:        true,
			BrandAwareness:  "high",
			BrandProtection: []string{"trademark_cn", "trademark_intl", "domain", "patent"},
		}
		// 20 + 5 + 5 + 10 + 10 + 5 + 10 + min(4*2,6)
		assert.Equal(t, 71, ScoreOperation(op, model.OverseasDiagnosis{}))
	})

	t.Run("social media graded by followers", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			followers string
			want      int
		}{
			{"", 22},               // base + unlisted marketing bucket, no presence bonus
			{"500", 22 + 3 + 2},
			{"5000", 22 + 3 + 4},
			{"20000", 22 + 3 + 6},
		}
		for _, tc := range cases {
			op := model.OperationCapability{
				MarketingBudget: "1%",
				SocialOperation: model.SocialOperation{TotalFollowers: tc.followers},
			}
			assert.Equal(t, tc.want, ScoreOperation(op, model.OverseasDiagnosis{}), "followers=%q", tc.followers)
		}
	})
}

func TestScoreResource(t *testing.T) {
	t.Parallel()

	t.Run("untouched section returns floor", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 20, ScoreResource(model.ResourceAndPlan{}))
	})

	t.Run("untouched guard ignores government support alone", func(t *testing.T) {
		t.Parallel()
		r := model.ResourceAndPlan{GovernmentSupport: []string{"export_subsidy"}}
		assert.Equal(t, FloorResource, ScoreResource(r))
	})

	t.Run("risk awareness needs both risks and mitigation for full credit", func(t *testing.T) {
		t.Parallel()
		base := model.ResourceAndPlan{ExportBudget: "20-50"}
		risksOnly := base
		risksOnly.PerceivedRisks = []string{"payment"}
		both := risksOnly
		both.RiskMitigation = []string{"insurance"}

		assert.Equal(t, 5, ScoreResource(risksOnly)-ScoreResource(base))
		assert.Equal(t, 10, ScoreResource(both)-ScoreResource(base))
	})

	t.Run("fully answered section", func(t *testing.T) {
		t.Parallel()
		r := model.ResourceAndPlan{
			ExportBudget:        ">500",
			FinancingCapability: "strong",
			GovernmentSupport:   []string{"export_subsidy", "tax_rebate", "exhibition_grant"},
			HasClearPlan:        true,
			PlanTimeframe:       ">3years",
			TargetMarkets:       []string{"southeast_asia", "europe", "north_america"},
			TargetRevenueGrowth: ">100%",
			PerceivedRisks:      []string{"payment"},
			RiskMitigation:      []string{"insurance"},
		}
		// 20 + 20 + 10 + 9 + 12 + 10 + 10 + 10 = 101, clamped.
		assert.Equal(t, 100, ScoreResource(r))
	})
}

func TestScorePotential(t *testing.T) {
	t.Parallel()

	t.Run("empty sections return floor", func(t *testing.T) {
		t.Parallel()
		got := ScorePotential(model.CompanyProfile{}, model.ProductCompetitiveness{}, model.ResourceAndPlan{})
		assert.Equal(t, 25, got)
	})

	t.Run("industry tailwind tiers", func(t *testing.T) {
		t.Parallel()
		for industry, want := range map[string]int{
			"electronics": 35,
			"energy":      35,
			"machinery":   33,
			"auto":        33,
			"textile":     30,
		} {
			got := ScorePotential(model.CompanyProfile{Industry: industry}, model.ProductCompetitiveness{}, model.ResourceAndPlan{})
			assert.Equal(t, want, got, "industry=%s", industry)
		}
	})

	t.Run("competency list capped at 15", func(t *testing.T) {
		t.Parallel()
		tags := []string{"technology", "cost", "quality", "speed", "design", "service", "scale"}
		five := ScorePotential(model.CompanyProfile{CoreCompetencies: tags[:5]}, model.ProductCompetitiveness{}, model.ResourceAndPlan{})
		seven := ScorePotential(model.CompanyProfile{CoreCompetencies: tags}, model.ProductCompetitiveness{}, model.ResourceAndPlan{})
		assert.Equal(t, five, seven)
	})
}

func TestScoreDimensionsBounds(t *testing.T) {
	t.Parallel()

	apps := []model.Application{
		{},
		{Profile: baseProfile()},
		{
			Profile: model.CompanyProfile{
				Name: "Maxed Co", EstablishedYear: "1999", Industry: "electronics",
				AnnualRevenue: ">5000", RAndDStaffRatio: ">30%", CompanyNature: model.NatureListed,
				CoreCompetencies: []string{"technology", "cost", "quality", "speed", "design", "service"},
			},
			Diagnosis: model.OverseasDiagnosis{
				Channels: model.Channels{B2BPlatform: true, SocialMedia: true, B2CPlatform: true, IndependentSite: true, OfflineExhibition: true, OverseasOffice: true, AgentDistributor: true},
				TeamConfig: model.TeamConfig{
					HasDedicatedTeam: true, TeamSize: ">50", ForeignLanguageCapability: "excellent",
				},
			},
			Product: model.ProductCompetitiveness{
				Certifications:   []string{"CE", "FCC", "UL", "RoHS", "GS", "TUV"},
				PricePositioning: "premium", CustomizationCapability: "strong",
				HasRAndD: true, PatentCount: ">10", AnnualNewProducts: ">10",
				QualityControl:       []string{"iso9001", "inspection", "lab", "traceability", "supplier_audit", "spc"},
				SupplyChainStability: "excellent",
			},
			Operation: model.OperationCapability{
				HasCRM: true, HasERP: true, DigitalLevel: "advanced", MarketingBudget: ">10%",
				HasBrand: true, BrandAwareness: "high",
				BrandProtection: []string{"trademark_cn", "trademark_intl", "domain", "patent"},
				SocialOperation: model.SocialOperation{TotalFollowers: "50000"},
			},
			Resource: model.ResourceAndPlan{
				ExportBudget: ">500", FinancingCapability: "strong",
				GovernmentSupport: []string{"export_subsidy", "tax_rebate", "exhibition_grant"},
				HasClearPlan:      true, PlanTimeframe: ">3years",
				TargetMarkets:       []string{"southeast_asia", "europe", "north_america"},
				TargetRevenueGrowth: ">100%",
				PerceivedRisks:      []string{"payment"}, RiskMitigation: []string{"insurance"},
			},
		},
	}

	for i, app := range apps {
		dims := ScoreDimensions(app)
		for _, d := range dims.Ordered() {
			assert.GreaterOrEqual(t, d.Score, 0, "app %d dim %s", i, d.Name)
			assert.LessOrEqual(t, d.Score, 100, "app %d dim %s", i, d.Name)
		}
	}
}

func TestScoreDimensionsIdempotent(t *testing.T) {
	t.Parallel()

	app := model.Application{
		Profile: baseProfile(),
		Product: model.ProductCompetitiveness{Certifications: []string{"CE"}, PricePositioning: "mid"},
	}
	first := Score(app)
	second := Score(app)
	assert.Equal(t, first, second)
}

package scoring

import (
	"fmt"
	"slices"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// swotRule pairs a predicate with the bullet it contributes. Rules fire
// independently and bullets keep declaration order.
type swotRule struct {
	applies func(app model.Application, dims model.DimensionScores) bool
	bullet  string
}

var strengthRules = []swotRule{
	{func(_ model.Application, d model.DimensionScores) bool { return d.Product >= 70 },
		"strong product competitiveness"},
	{func(a model.Application, _ model.DimensionScores) bool { return len(a.Product.Certifications) >= 3 },
		"well-developed product certification portfolio"},
	{func(a model.Application, _ model.DimensionScores) bool {
		return a.Diagnosis.TeamConfig.HasDedicatedTeam && a.Diagnosis.TeamConfig.TeamSize != "<5"
	}, "well-staffed export team"},
	{func(_ model.Application, d model.DimensionScores) bool { return d.Operation >= 70 },
		"strong operating capability"},
	{func(a model.Application, _ model.DimensionScores) bool {
		return a.Operation.HasBrand && a.Operation.BrandAwareness != "none"
	}, "established brand foundation"},
	{func(a model.Application, _ model.DimensionScores) bool {
		return slices.Contains(a.Profile.CoreCompetencies, "technology")
	}, "core technology advantage"},
}

var weaknessRules = []swotRule{
	{func(_ model.Application, d model.DimensionScores) bool { return d.Foundation < 60 },
		"foundational capability needs strengthening"},
	{func(a model.Application, _ model.DimensionScores) bool { return !a.Diagnosis.TeamConfig.HasDedicatedTeam },
		"no dedicated export team"},
	{func(a model.Application, _ model.DimensionScores) bool { return len(a.Product.Certifications) == 0 },
		"insufficient product certifications"},
	{func(a model.Application, _ model.DimensionScores) bool { return !a.Operation.HasBrand },
		"brand building lags behind"},
	{func(a model.Application, _ model.DimensionScores) bool {
		return a.Operation.DigitalLevel == "basic" || a.Operation.DigitalLevel == "none"
	}, "low level of digitalization"},
}

var opportunityRules = []swotRule{
	{func(model.Application, model.DimensionScores) bool { return true },
		"tariff preferences under RCEP and other regional trade agreements"},
	{func(model.Application, model.DimensionScores) bool { return true },
		"cross-border e-commerce lowers market entry barriers"},
	{func(a model.Application, _ model.DimensionScores) bool {
		return a.Profile.Industry == "energy" || a.Profile.Industry == "electronics"
	}, "supportive industrial policy in target markets"},
	{func(a model.Application, _ model.DimensionScores) bool {
		return slices.Contains(a.Resource.GovernmentSupport, "export_subsidy")
	}, "eligible for export subsidy programs"},
}

var threatRules = []swotRule{
	{func(model.Application, model.DimensionScores) bool { return true },
		"trade friction and tariff barrier risk"},
	{func(model.Application, model.DimensionScores) bool { return true },
		"exchange rate volatility squeezing margins"},
	{func(model.Application, model.DimensionScores) bool { return true },
		"intensifying competition in target markets"},
	{func(a model.Application, _ model.DimensionScores) bool {
		return slices.Contains(a.Resource.PerceivedRisks, "payment")
	}, "overseas customer credit risk"},
}

func collectBullets(rules []swotRule, app model.Application, dims model.DimensionScores) []string {
	var out []string
	for _, r := range rules {
		if r.applies(app, dims) {
			out = append(out, r.bullet)
		}
	}
	return out
}

// GenerateSWOT evaluates the four rule tables over one application.
// Strengths fall back to a generic bullet so the bucket is never empty;
// opportunities and threats carry unconditional macro bullets already.
func GenerateSWOT(app model.Application, dims model.DimensionScores) model.SWOT {
	strengths := collectBullets(strengthRules, app, dims)
	if len(strengths) == 0 {
		strengths = []string{"flexibility and growth headroom typical of an early-stage exporter"}
	}

	return model.SWOT{
		Strengths:     strengths,
		Weaknesses:    collectBullets(weaknessRules, app, dims),
		Opportunities: collectBullets(opportunityRules, app, dims),
		Threats:       collectBullets(threatRules, app, dims),
	}
}

// Findings templates keyed by dimension name.
var gapFindings = map[string]string{
	model.DimFoundation: "foundational capability is the most pressing gap; prioritize team building and internal management",
	model.DimProduct:    "product competitiveness is the most pressing gap; invest in R&D and certifications",
	model.DimOperation:  "operating capability is the binding constraint; strengthen digital tooling and channel coverage",
	model.DimResource:   "resourcing is the most pressing gap; set a clear export plan and budget",
	model.DimPotential:  "growth potential is the most pressing gap; sharpen market targets and innovation focus",
}

var assetFindings = map[string]string{
	model.DimFoundation: "company fundamentals are the standout asset and a stable base for expansion",
	model.DimProduct:    "product competitiveness is the core advantage and the natural spearhead for going abroad",
	model.DimOperation:  "operating capability is strong enough to support rapid business expansion",
	model.DimResource:   "resourcing is the standout asset; deploy the budget behind focused market entries",
	model.DimPotential:  "growth potential is the standout asset; momentum favors an aggressive roadmap",
}

// GenerateKeyFindings names the weakest dimension as the priority gap and
// the strongest as the leverageable asset, then adds a channel-diversity
// finding. Ties resolve to the first dimension in declaration order.
func GenerateKeyFindings(app model.Application, dims model.DimensionScores) []string {
	ordered := dims.Ordered()

	weakest, strongest := ordered[0], ordered[0]
	for _, d := range ordered[1:] {
		if d.Score < weakest.Score {
			weakest = d
		}
		if d.Score > strongest.Score {
			strongest = d
		}
	}

	findings := []string{gapFindings[weakest.Name]}
	if strongest.Name != weakest.Name {
		findings = append(findings, assetFindings[strongest.Name])
	}

	switch n := app.Diagnosis.Channels.ActiveFlagCount(); {
	case n == 0:
		findings = append(findings, "no export channel is in place yet; start channel buildout as soon as possible")
	case n == 1:
		findings = append(findings, "channel mix is a single point of failure; diversify to reduce risk")
	case n >= 4:
		findings = append(findings, fmt.Sprintf("channel coverage is broad (%d active); focus on cross-channel efficiency", n))
	}

	return findings
}

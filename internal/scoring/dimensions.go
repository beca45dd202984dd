// Package scoring converts questionnaire answers into five dimension
// scores, a weighted total, a stage/level classification, and narrative
// insights (SWOT and key findings). Every function here is pure: no I/O,
// no clock, no shared state.
package scoring

import "github.com/globalbridge/readiness-cli/internal/model"

const maxDimensionScore = 100

// Floor scores returned when a section is untouched. Unanswered is never
// scored as zero; incomplete submissions keep a low but nonzero baseline.
const (
	FloorFoundation = 30
	FloorProduct    = 25
	FloorOperation  = 20
	FloorResource   = 20
	FloorPotential  = 25
)

// Bonus tables. Each table is total over its closed bucket set; an empty
// bucket contributes 0 and an answered-but-unlisted bucket falls back to
// the table's catch-all value.

var revenueScalePoints = map[string]int{
	">5000":     15,
	"3000-5000": 12,
	"1000-3000": 9,
	"500-1000":  6,
}

var teamSizePoints = map[string]int{
	">50":   20,
	"20-50": 15,
	"5-20":  10,
}

var languagePoints = map[string]int{
	"excellent": 10,
	"good":      6,
	"basic":     3,
}

var rAndDRatioPoints = map[string]int{
	">30%":   10,
	"10-30%": 6,
}

var pricePositioningPoints = map[string]int{
	"premium":  15,
	"mid-high": 10,
	"mid":      7,
}

var customizationPoints = map[string]int{
	"strong": 12,
	"medium": 8,
	"weak":   4,
}

var patentPoints = map[string]int{
	">10":  10,
	"5-10": 7,
	"1-5":  4,
}

var supplyChainPoints = map[string]int{
	"excellent": 10,
	"good":      7,
	"average":   3,
}

var digitalLevelPoints = map[string]int{
	"advanced":     10,
	"intermediate": 6,
	"basic":        3,
}

var marketingBudgetPoints = map[string]int{
	">10%":  10,
	"5-10%": 7,
	"2-5%":  4,
}

var brandAwarenessPoints = map[string]int{
	"high":   10,
	"medium": 6,
	"low":    3,
}

var exportBudgetPoints = map[string]int{
	">500":    20,
	"200-500": 16,
	"100-200": 12,
	"50-100":  8,
	"20-50":   4,
}

var financingPoints = map[string]int{
	"strong": 10,
	"medium": 6,
	"weak":   3,
}

var planTimeframePoints = map[string]int{
	">3years":  7,
	"1-3years": 4,
}

var targetRevenuePointsResource = map[string]int{
	">100%":   10,
	"50-100%": 7,
	"30-50%":  5,
	"10-30%":  3,
}

var targetRevenuePointsPotential = map[string]int{
	">100%":   15,
	"50-100%": 11,
	"30-50%":  8,
	"10-30%":  5,
}

var newProductPoints = map[string]int{
	">10":  10,
	"5-10": 7,
	"1-5":  4,
}

// bucketPoints looks up a bucket in a points table. Empty means unanswered
// and contributes nothing; an answered value outside the table falls back
// to the catch-all.
func bucketPoints(table map[string]int, bucket string, fallback int) int {
	if bucket == "" {
		return 0
	}
	if pts, ok := table[bucket]; ok {
		return pts
	}
	return fallback
}

// capped limits a multi-valued bonus to its category cap.
func capped(n, perItem, limit int) int {
	pts := n * perItem
	if pts > limit {
		return limit
	}
	return pts
}

func clampScore(score int) int {
	if score > maxDimensionScore {
		return maxDimensionScore
	}
	return score
}

// ScoreFoundation scores company fundamentals: scale, export team,
// R&D staffing, and ownership. Returns the floor when the identity
// fields (name, founding year, industry) are not all answered.
func ScoreFoundation(profile model.CompanyProfile, diagnosis model.OverseasDiagnosis) int {
	if profile.Name == "" || profile.EstablishedYear == "" || profile.Industry == "" {
		return FloorFoundation
	}

	score := FloorFoundation

	// Company scale, up to 15.
	score += bucketPoints(revenueScalePoints, profile.AnnualRevenue, 3)

	// Dedicated team, up to 20, plus language capability, up to 10.
	// Both gated on an actual team existing.
	if diagnosis.TeamConfig.HasDedicatedTeam {
		score += bucketPoints(teamSizePoints, diagnosis.TeamConfig.TeamSize, 5)
		score += bucketPoints(languagePoints, diagnosis.TeamConfig.ForeignLanguageCapability, 0)
	}

	// R&D staffing ratio, up to 10.
	score += bucketPoints(rAndDRatioPoints, profile.RAndDStaffRatio, 3)

	// Ownership bonus, up to 5.
	switch profile.CompanyNature {
	case model.NatureListed, model.NatureState:
		score += 5
	case "":
	default:
		score += 2
	}

	return clampScore(score)
}

// ScoreProduct scores product competitiveness: certifications, pricing,
// customization, R&D, quality control, and supply chain.
func ScoreProduct(product model.ProductCompetitiveness) int {
	untouched := product.PricePositioning == "" &&
		product.CustomizationCapability == "" &&
		len(product.Certifications) == 0
	if untouched {
		return FloorProduct
	}

	score := FloorProduct

	// Certifications, 4 points each up to 20.
	score += capped(len(product.Certifications), 4, 20)

	// Price positioning, up to 15.
	score += bucketPoints(pricePositioningPoints, product.PricePositioning, 3)

	// Customization capability, up to 12.
	score += bucketPoints(customizationPoints, product.CustomizationCapability, 0)

	// R&D, up to 15: 5 for having a function, more for patents.
	if product.HasRAndD {
		score += 5
		score += bucketPoints(patentPoints, product.PatentCount, 0)
	}

	// Quality control measures, 2 points each up to 10.
	score += capped(len(product.QualityControl), 2, 10)

	// Supply chain stability, up to 10.
	score += bucketPoints(supplyChainPoints, product.SupplyChainStability, 0)

	return clampScore(score)
}

// ScoreOperation scores operating capability: channel coverage, digital
// tooling, marketing spend, brand building, and social media presence.
func ScoreOperation(operation model.OperationCapability, diagnosis model.OverseasDiagnosis) int {
	score := FloorOperation

	// Channel coverage, 5 points per active channel entry up to 25.
	score += capped(diagnosis.Channels.ActiveCount(), 5, 25)

	// Digital tooling, up to 15.
	if operation.HasCRM {
		score += 5
	}
	if operation.HasERP {
		score += 5
	}
	score += bucketPoints(digitalLevelPoints, operation.DigitalLevel, 0)

	// Marketing spend ratio, up to 10.
	score += bucketPoints(marketingBudgetPoints, operation.MarketingBudget, 2)

	// Brand building, up to 15.
	if operation.HasBrand {
		score += 5
		score += bucketPoints(brandAwarenessPoints, operation.BrandAwareness, 0)
	}

	// Brand protection measures, 2 points each up to 6.
	score += capped(len(operation.BrandProtection), 2, 6)

	// Social media operation, up to 9, graded by follower count.
	if f := operation.SocialOperation.TotalFollowers; f != "" {
		score += 3
		followers := parseFollowers(f)
		switch {
		case followers >= 10000:
			score += 6
		case followers >= 1000:
			score += 4
		default:
			score += 2
		}
	}

	return clampScore(score)
}

// ScoreResource scores resourcing and planning: budget, financing,
// government support, plan clarity, risk awareness, and targets.
func ScoreResource(resource model.ResourceAndPlan) int {
	untouched := resource.ExportBudget == "" &&
		resource.FinancingCapability == "" &&
		len(resource.TargetMarkets) == 0
	if untouched {
		return FloorResource
	}

	score := FloorResource

	// Export budget, up to 20.
	score += bucketPoints(exportBudgetPoints, resource.ExportBudget, 2)

	// Financing capability, up to 10.
	score += bucketPoints(financingPoints, resource.FinancingCapability, 0)

	// Government support programs, 3 points each up to 9.
	score += capped(len(resource.GovernmentSupport), 3, 9)

	// Plan clarity, up to 12.
	if resource.HasClearPlan {
		score += 5
		score += bucketPoints(planTimeframePoints, resource.PlanTimeframe, 2)
	}

	// Risk awareness, up to 10: full credit only when risks are both
	// identified and mitigated.
	switch {
	case len(resource.PerceivedRisks) > 0 && len(resource.RiskMitigation) > 0:
		score += 10
	case len(resource.PerceivedRisks) > 0 || len(resource.RiskMitigation) > 0:
		score += 5
	}

	// Target market clarity, up to 10.
	score += targetMarketPoints(len(resource.TargetMarkets))

	// Target revenue growth, up to 10.
	score += bucketPoints(targetRevenuePointsResource, resource.TargetRevenueGrowth, 1)

	return clampScore(score)
}

// ScorePotential scores growth potential: core competencies, market and
// revenue ambitions, product innovation, and industry tailwinds.
func ScorePotential(profile model.CompanyProfile, product model.ProductCompetitiveness, resource model.ResourceAndPlan) int {
	score := FloorPotential

	// Core competencies, 3 points each up to 15.
	score += capped(len(profile.CoreCompetencies), 3, 15)

	// Target market clarity, up to 10.
	score += targetMarketPoints(len(resource.TargetMarkets))

	// Target revenue growth, up to 15.
	score += bucketPoints(targetRevenuePointsPotential, resource.TargetRevenueGrowth, 2)

	// Product innovation, up to 15.
	if product.HasRAndD {
		score += 5
		score += bucketPoints(newProductPoints, product.AnnualNewProducts, 2)
	}

	// Industry tailwind, up to 10.
	switch profile.Industry {
	case "energy", "electronics":
		score += 10
	case "machinery", "auto":
		score += 8
	case "":
	default:
		score += 5
	}

	// R&D staffing ratio, up to 10.
	score += bucketPoints(rAndDRatioPoints, profile.RAndDStaffRatio, 3)

	return clampScore(score)
}

// targetMarketPoints grades how clearly target markets are identified.
func targetMarketPoints(n int) int {
	switch {
	case n >= 3:
		return 10
	case n >= 2:
		return 7
	case n >= 1:
		return 4
	default:
		return 0
	}
}

// parseFollowers reads a leading integer from a follower-count answer,
// tolerating trailing text. Unparseable answers count as zero.
func parseFollowers(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}

// ScoreDimensions runs all five dimension scorers over one application.
func ScoreDimensions(app model.Application) model.DimensionScores {
	return model.DimensionScores{
		Foundation: ScoreFoundation(app.Profile, app.Diagnosis),
		Product:    ScoreProduct(app.Product),
		Operation:  ScoreOperation(app.Operation, app.Diagnosis),
		Resource:   ScoreResource(app.Resource),
		Potential:  ScorePotential(app.Profile, app.Product, app.Resource),
	}
}

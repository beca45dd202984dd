package report

import (
	"fmt"
	"strings"

	"github.com/globalbridge/readiness-cli/internal/model"
)

var natureLabels = map[model.CompanyNature]string{
	model.NaturePrivate: "Private company",
	model.NatureState:   "State-owned enterprise",
	model.NatureJoint:   "Joint venture",
	model.NatureForeign: "Foreign-owned company",
	model.NatureListed:  "Listed company",
}

var typeLabels = map[model.CompanyType]string{
	model.TypeManufacturer: "Manufacturer",
	model.TypeTrader:       "Trading company",
	model.TypeHybrid:       "Manufacturer-trader",
	model.TypeBrand:        "Brand owner",
	model.TypeService:      "Service provider",
}

var stageLabels = map[model.Stage]string{
	model.StagePreparation: "Preparation",
	model.StageExploration: "Exploration",
	model.StageGrowth:      "Growth",
	model.StageExpansion:   "Expansion",
	model.StageMature:      "Mature",
}

var revenueLabels = map[string]string{
	">5000":     "over 50M",
	"3000-5000": "30-50M",
	"1000-3000": "10-30M",
	"500-1000":  "5-10M",
	"<500":      "under 5M",
}

var employeeLabels = map[string]string{
	">500":    "over 500",
	"100-500": "100-500",
	"50-100":  "50-100",
	"<50":     "under 50",
}

var competencyLabels = map[string]string{
	"technology":    "Core technology",
	"cost":          "Cost advantage",
	"quality":       "Quality control",
	"customization": "Customization",
	"delivery":      "Fast delivery",
	"certification": "International certifications",
	"brand":         "Brand influence",
	"service":       "Service system",
	"scale":         "Economies of scale",
}

var exportValueLabels = map[string]string{
	"0":         "No exports",
	"<100":      "under 1M",
	"100-1000":  "1-10M",
	"1000-5000": "10-50M",
	">5000":     "over 50M",
}

var exportRatioLabels = map[string]string{
	">50%":   "over 50%",
	"30-50%": "30-50%",
	"10-30%": "10-30%",
	"<10%":   "under 10%",
}

var marketCountLabels = map[string]string{
	">20":   "over 20",
	"10-20": "10-20",
	"5-10":  "5-10",
	"1-5":   "1-5",
}

var priceLabels = map[string]string{
	"premium":  "Premium",
	"mid-high": "Upper mid-range",
	"mid":      "Mid-range",
	"economy":  "Economy",
}

var gradeLabels = map[string]string{
	"strong": "Strong",
	"medium": "Medium",
	"weak":   "Weak",
}

var newProductLabels = map[string]string{
	">10":  "over 10",
	"5-10": "5-10",
	"1-5":  "1-5",
}

var supplyChainLabels = map[string]string{
	"excellent": "Excellent",
	"good":      "Good",
	"average":   "Average",
	"poor":      "Poor",
}

var digitalLabels = map[string]string{
	"advanced":     "Advanced",
	"intermediate": "Intermediate",
	"basic":        "Basic",
	"none":         "None",
}

var awarenessLabels = map[string]string{
	"high":   "high",
	"medium": "medium",
	"low":    "low",
}

var marketingBudgetLabels = map[string]string{
	">10%":  "over 10%",
	"5-10%": "5-10%",
	"2-5%":  "2-5%",
	"<2%":   "under 2%",
}

var exportBudgetLabels = map[string]string{
	">500":    "over 5M",
	"200-500": "2-5M",
	"100-200": "1-2M",
	"50-100":  "500k-1M",
	"<50":     "under 500k",
}

var timeframeLabels = map[string]string{
	">3years":  "over 3 years",
	"1-3years": "1-3 years",
	"<1year":   "within 1 year",
}

var growthTargetLabels = map[string]string{
	">100%":   "over 100%",
	"50-100%": "50-100%",
	"30-50%":  "30-50%",
	"<30%":    "under 30%",
}

// label resolves a bucket code to its display label. Unanswered values
// render as "-"; unmapped non-empty values pass through unchanged.
func label[K ~string](table map[K]string, key K) string {
	if key == "" {
		return "-"
	}
	if l, ok := table[key]; ok {
		return l
	}
	return string(key)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func yesWith(detail string) string {
	return "yes (" + detail + ")"
}

func deployed(b bool) string {
	if b {
		return "deployed"
	}
	return "not deployed"
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

func countOr(n int, noun string) string {
	if n == 0 {
		return "none"
	}
	return fmt.Sprintf("%d %s", n, noun)
}

// BuildDataSummary flattens the questionnaire answers into labeled
// section maps for report rendering.
func BuildDataSummary(app model.Application) model.DataSummary {
	profile, diagnosis := app.Profile, app.Diagnosis
	product, operation, resource := app.Product, app.Operation, app.Resource

	competencies := make([]string, 0, len(profile.CoreCompetencies))
	for _, c := range profile.CoreCompetencies {
		if l, ok := competencyLabels[c]; ok {
			competencies = append(competencies, l)
		}
	}

	team := yesNo(false)
	if diagnosis.TeamConfig.HasDedicatedTeam {
		team = yesWith(diagnosis.TeamConfig.TeamSize + " people")
	}

	channelLine := func(active bool, platforms []string) string {
		if !active {
			return "no"
		}
		return yesWith(joinOr(platforms, "unspecified"))
	}

	rAndD := yesNo(false)
	if product.HasRAndD {
		rAndD = yesWith(product.PatentCount + " patents")
	}

	brand := yesNo(false)
	if operation.HasBrand {
		brand = yesWith("awareness " + label(awarenessLabels, operation.BrandAwareness))
	}

	plan := yesNo(false)
	if resource.HasClearPlan {
		plan = yesWith(label(timeframeLabels, resource.PlanTimeframe) + " horizon")
	}

	return model.DataSummary{
		Profile: map[string]string{
			"Company name":   orDash(profile.Name),
			"Established":    orDash(profile.EstablishedYear),
			"Ownership":      label(natureLabels, profile.CompanyNature),
			"Business model": label(typeLabels, profile.CompanyType),
			"Industry":       orDash(profile.Industry),
			"Main product":   orDash(profile.MainProduct),
			"Annual revenue": label(revenueLabels, profile.AnnualRevenue),
			"Employees":      label(employeeLabels, profile.EmployeeCount),
			"Core strengths": joinOr(competencies, "-"),
		},
		Diagnosis: map[string]string{
			"Export stage":          label(stageLabels, diagnosis.Stage),
			"Annual export value":   label(exportValueLabels, diagnosis.AnnualExportValue),
			"Export revenue share":  label(exportRatioLabels, diagnosis.ExportRevenueRatio),
			"Markets covered":       label(marketCountLabels, diagnosis.MarketCount),
			"Top markets":           joinOr(diagnosis.TopMarkets, "-"),
			"B2B platforms":         channelLine(diagnosis.Channels.B2BPlatform, diagnosis.Channels.B2BPlatformsUsed),
			"Social media":          channelLine(diagnosis.Channels.SocialMedia, diagnosis.Channels.SocialPlatformsUsed),
			"B2C platforms":         channelLine(diagnosis.Channels.B2CPlatform, diagnosis.Channels.B2CPlatformsUsed),
			"Dedicated export team": team,
		},
		Product: map[string]string{
			"Certifications held":    countOr(len(product.Certifications), "certifications"),
			"Price positioning":      label(priceLabels, product.PricePositioning),
			"Customization":          label(gradeLabels, product.CustomizationCapability),
			"R&D capability":         rAndD,
			"New products per year":  label(newProductLabels, product.AnnualNewProducts),
			"Supply chain stability": label(supplyChainLabels, product.SupplyChainStability),
		},
		Operation: map[string]string{
			"CRM system":             deployed(operation.HasCRM),
			"ERP system":             deployed(operation.HasERP),
			"Digital maturity":       label(digitalLabels, operation.DigitalLevel),
			"Brand building":         brand,
			"Marketing budget share": label(marketingBudgetLabels, operation.MarketingBudget),
		},
		Resource: map[string]string{
			"Export budget":         label(exportBudgetLabels, resource.ExportBudget),
			"Financing capability":  label(gradeLabels, resource.FinancingCapability),
			"Government support":    countOr(len(resource.GovernmentSupport), "programs"),
			"Export plan":           plan,
			"Target markets":        joinOr(resource.TargetMarkets, "not specified"),
			"Target revenue growth": label(growthTargetLabels, resource.TargetRevenueGrowth),
		},
	}
}

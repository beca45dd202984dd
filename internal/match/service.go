package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// Service score components.
const (
	serviceStagePoints     = 30
	serviceIndustryPoints  = 25
	servicePainPointCap    = 25
	servicePainPointEach   = 8
	serviceRedundantMalus  = 10
	serviceBudgetFitPoints = 10
	serviceTopK            = 5
)

// industryServiceMap names the service ids recommended per industry.
var industryServiceMap = map[string][]string{
	"machinery":   {"certification_service", "market_entry_consulting", "trade_finance"},
	"electronics": {"certification_service", "brand_building", "digital_transformation"},
	"auto":        {"certification_service", "overseas_warehouse", "trade_finance"},
	"textile":     {"brand_building", "social_media_marketing", "platform_operation"},
	"chemical":    {"certification_service", "market_entry_consulting", "trade_finance"},
	"medical":     {"certification_service", "market_entry_consulting", "brand_building"},
	"building":    {"certification_service", "overseas_warehouse", "trade_finance"},
	"furniture":   {"brand_building", "overseas_warehouse", "platform_operation"},
	"food":        {"certification_service", "brand_building", "overseas_warehouse"},
	"beauty":      {"brand_building", "social_media_marketing", "platform_operation"},
	"sports":      {"brand_building", "social_media_marketing", "platform_operation"},
	"toys":        {"certification_service", "brand_building", "platform_operation"},
	"packaging":   {"market_entry_consulting", "trade_finance", "platform_operation"},
	"energy":      {"certification_service", "brand_building", "trade_finance"},
	"other":       {"market_entry_consulting", "platform_operation"},
}

// gapKeyword pairs a pain-point keyword with a predicate that is true when
// the applicant actually has that gap.
type gapKeyword struct {
	keyword string
	hasGap  func(app model.Application) bool
}

var gapKeywords = []gapKeyword{
	{"certification", func(a model.Application) bool { return len(a.Product.Certifications) == 0 }},
	{"r&d", func(a model.Application) bool { return !a.Product.HasRAndD }},
	{"brand", func(a model.Application) bool { return !a.Operation.HasBrand }},
	{"management", func(a model.Application) bool { return !a.Operation.HasCRM && !a.Operation.HasERP }},
	{"channel", func(a model.Application) bool { return !a.Diagnosis.Channels.Any() }},
	{"team", func(a model.Application) bool { return !a.Diagnosis.TeamConfig.HasDedicatedTeam }},
	{"funding", func(a model.Application) bool { return a.Resource.FinancingCapability == "weak" }},
}

// countPainPointMatches counts the service pain points that name a gap the
// applicant actually has, by keyword containment.
func countPainPointMatches(app model.Application, painPoints []string) int {
	n := 0
	for _, painPoint := range painPoints {
		lower := strings.ToLower(painPoint)
		for _, gap := range gapKeywords {
			if strings.Contains(lower, gap.keyword) && gap.hasGap(app) {
				n++
				break
			}
		}
	}
	return n
}

// budgetFit awards the compatibility bonus between company size and the
// service's midpoint investment (10k CNY).
func budgetFit(annualRevenue string, rng model.InvestmentRange) int {
	investment := (rng.Min + rng.Max) / 2
	switch {
	case annualRevenue == ">5000" && investment > 20:
		return serviceBudgetFitPoints // large company, high-touch service
	case annualRevenue == "1000-3000" && investment >= 10 && investment <= 30:
		return serviceBudgetFitPoints
	case annualRevenue != "" && annualRevenue != ">5000" && investment < 15:
		return serviceBudgetFitPoints // small company, low-cost entry point
	default:
		return 0
	}
}

// RecommendServices scores the service catalog against the applicant and
// assessment, returning the top five. Matched reasons are appended to each
// service's description so downstream rendering needs no extra context.
func RecommendServices(app model.Application, assessment model.AssessmentResult, catalog []model.ServiceProduct) []model.RankedService {
	if len(catalog) == 0 {
		return nil
	}

	ranked := make([]model.RankedService, 0, len(catalog))
	for _, svc := range catalog {
		score := 0
		var reasons []string

		if svc.TargetsStage(assessment.Stage) {
			score += serviceStagePoints
			reasons = append(reasons, "fits your current export stage")
		}

		for _, id := range industryServiceMap[app.Profile.Industry] {
			if id == svc.ID {
				score += serviceIndustryPoints
				reasons = append(reasons, fmt.Sprintf("commonly used in the %s industry", app.Profile.Industry))
				break
			}
		}

		if matches := countPainPointMatches(app, svc.PainPoints); matches > 0 {
			score += min(matches*servicePainPointEach, servicePainPointCap)
			reasons = append(reasons, fmt.Sprintf("addresses %d of your pain points", matches))
		}

		// Deprioritize services whose gap is already closed.
		if svc.ID == "certification_service" && len(app.Product.Certifications) > 0 {
			score -= serviceRedundantMalus
		}
		if svc.ID == "brand_building" && app.Operation.HasBrand {
			score -= serviceRedundantMalus
		}

		score += budgetFit(app.Profile.AnnualRevenue, svc.InvestmentRange)

		if len(reasons) > 0 {
			svc.Description = fmt.Sprintf("%s (recommended because: %s)", svc.Description, strings.Join(reasons, ", "))
		}

		ranked = append(ranked, model.RankedService{Service: svc, Score: score, Reasons: reasons})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > serviceTopK {
		ranked = ranked[:serviceTopK]
	}
	return ranked
}

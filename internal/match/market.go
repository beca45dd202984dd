package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// Market sub-score weights. Must sum to 1.0.
const (
	marketIndustryWeight = 0.30
	marketPriceWeight    = 0.25
	marketCertWeight     = 0.20
	marketStageWeight    = 0.15
	marketIntentWeight   = 0.10
)

// defaultAffinity is used whenever an industry or price tier has no entry
// for a market in its matrix.
const defaultAffinity = 50

// industryMarketAffinity holds hand-assigned industry×market affinities.
var industryMarketAffinity = map[string]map[string]int{
	"machinery": {
		"southeast_asia": 92, "middle_east": 88, "africa": 82, "cis": 85,
		"south_america": 72, "europe": 65, "north_america": 58,
	},
	"electronics": {
		"southeast_asia": 96, "north_america": 85, "europe": 88,
		"middle_east": 82, "south_america": 70, "africa": 68,
	},
	"auto": {
		"cis": 92, "middle_east": 88, "southeast_asia": 86,
		"south_america": 78, "europe": 55, "north_america": 45,
	},
	"textile": {
		"europe": 88, "north_america": 85, "japan": 86,
		"southeast_asia": 78, "middle_east": 72, "south_america": 68,
	},
	"building": {
		"middle_east": 96, "southeast_asia": 88, "africa": 82,
		"cis": 78, "south_america": 72,
	},
	"furniture": {
		"north_america": 88, "europe": 85, "japan": 82,
		"australia": 78, "middle_east": 72,
	},
	"beauty": {
		"southeast_asia": 92, "middle_east": 88, "europe": 78,
		"south_america": 72, "africa": 68,
	},
	"food": {
		"southeast_asia": 88, "north_america": 82, "europe": 75,
		"japan": 86, "australia": 72,
	},
	"medical": {
		"europe": 88, "north_america": 86, "japan": 84,
		"middle_east": 80, "southeast_asia": 75,
	},
	"chemical": {
		"southeast_asia": 85, "middle_east": 80, "africa": 75,
		"south_america": 70,
	},
	"energy": {
		"europe": 92, "southeast_asia": 88, "middle_east": 85,
		"north_america": 78, "cis": 75,
	},
}

// priceMarketAffinity holds price-tier×market affinities.
var priceMarketAffinity = map[string]map[string]int{
	"premium": {
		"europe": 95, "north_america": 90, "japan": 92,
		"australia": 85, "middle_east": 82,
	},
	"mid-high": {
		"europe": 82, "north_america": 85, "japan": 80,
		"southeast_asia": 78, "middle_east": 75,
	},
	"mid": {
		"southeast_asia": 92, "middle_east": 88, "south_america": 82,
		"cis": 85, "africa": 78,
	},
	"mid-low": {
		"africa": 92, "southeast_asia": 88, "south_america": 85, "cis": 80,
	},
	"low": {
		"africa": 95, "southeast_asia": 92, "south_america": 88,
	},
}

// stageSuitableMarkets maps an export stage to the markets whose entry
// difficulty fits it.
var stageSuitableMarkets = map[model.Stage][]string{
	model.StagePreparation: {"africa", "southeast_asia", "cis"},
	model.StageExploration: {"southeast_asia", "middle_east", "africa", "cis"},
	model.StageGrowth:      {"southeast_asia", "middle_east", "south_america", "cis"},
	model.StageExpansion:   {"europe", "north_america", "japan", "australia"},
}

func affinity(matrix map[string]map[string]int, key, marketKey string) int {
	if row, ok := matrix[key]; ok {
		if score, ok := row[marketKey]; ok {
			return score
		}
	}
	return defaultAffinity
}

// holdsRequiredCert reports whether any held certification covers one of
// the market's required certifications. Matching is a case-insensitive
// substring test so "CE-LVD" still satisfies a "CE" requirement.
func holdsRequiredCert(held, required []string) bool {
	for _, cert := range held {
		for _, req := range required {
			if req != "" && strings.Contains(strings.ToLower(cert), strings.ToLower(req)) {
				return true
			}
		}
	}
	return false
}

// intendsMarket reports whether the applicant's stated target markets name
// this market, either by key or by one of its countries.
func intendsMarket(targets []string, market model.MarketRecord) bool {
	for _, target := range targets {
		normalized := strings.ReplaceAll(strings.ToLower(target), " ", "_")
		if normalized != "" && strings.Contains(market.Key, normalized) {
			return true
		}
		for _, country := range market.Countries {
			if strings.EqualFold(country, target) {
				return true
			}
		}
	}
	return false
}

// RecommendMarkets scores every catalog market against the applicant and
// returns the top k by fit score, descending. Empty catalog or k <= 0
// yields an empty result.
func RecommendMarkets(profile model.CompanyProfile, product model.ProductCompetitiveness, diagnosis model.OverseasDiagnosis, catalog []model.MarketRecord, k int) []model.MarketRecommendation {
	if k <= 0 || len(catalog) == 0 {
		return nil
	}

	stage := diagnosis.Stage
	if stage == "" {
		stage = model.StagePreparation
	}
	targets := diagnosis.TopMarkets

	recs := make([]model.MarketRecommendation, 0, len(catalog))
	for _, market := range catalog {
		var score float64
		var reasons []string

		industryScore := affinity(industryMarketAffinity, profile.Industry, market.Key)
		score += float64(industryScore) * marketIndustryWeight
		switch {
		case industryScore >= 85:
			reasons = append(reasons, fmt.Sprintf("%s is a priority export market for the %s industry", market.Region, profile.Industry))
		case industryScore >= 75:
			reasons = append(reasons, fmt.Sprintf("%s has steady demand for %s products", market.Region, profile.Industry))
		}

		priceScore := affinity(priceMarketAffinity, product.PricePositioning, market.Key)
		score += float64(priceScore) * marketPriceWeight
		if priceScore >= 85 {
			reasons = append(reasons, fmt.Sprintf("%s positioning matches the %s consumption tier", product.PricePositioning, market.Region))
		}

		certScore := 30
		switch {
		case holdsRequiredCert(product.Certifications, market.RequiredCertifications):
			certScore = 100
			reasons = append(reasons, "existing certifications satisfy this market's entry requirements")
		case len(product.Certifications) > 0:
			certScore = 60
			if len(market.RequiredCertifications) > 0 {
				reasons = append(reasons, fmt.Sprintf("consider adding %s to strengthen market access", strings.Join(firstN(market.RequiredCertifications, 2), "/")))
			}
		}
		score += float64(certScore) * marketCertWeight

		stageScore := 60
		for _, key := range stageSuitableMarkets[stage] {
			if key == market.Key {
				stageScore = 100
				reasons = append(reasons, fmt.Sprintf("entry difficulty suits a company in the %s stage", stage))
				break
			}
		}
		score += float64(stageScore) * marketStageWeight

		intentScore := 50
		if intendsMarket(targets, market) {
			intentScore = 100
			reasons = append(reasons, "matches your stated target markets")
		}
		score += float64(intentScore) * marketIntentWeight

		rationale := strings.Join(reasons, "; ")
		if rationale == "" {
			rationale = market.Rationale
		}

		priority := model.PriorityLow
		switch {
		case score >= 80:
			priority = model.PriorityHigh
		case score >= 60:
			priority = model.PriorityMedium
		}

		recs = append(recs, model.MarketRecommendation{
			Market:    market,
			Priority:  priority,
			FitScore:  int(math.Round(score)),
			Rationale: rationale,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].FitScore > recs[j].FitScore })
	if len(recs) > k {
		recs = recs[:k]
	}
	return recs
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

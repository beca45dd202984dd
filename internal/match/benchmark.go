// Package match ranks static reference catalogs (benchmark companies,
// target markets, service products) against one applicant using weighted
// fit scores. Like the scoring package, everything here is pure.
package match

import (
	"math"
	"sort"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// Benchmark sub-score weights. Must sum to 1.0.
const (
	benchIndustryWeight = 0.25
	benchStageWeight    = 0.20
	benchRevenueWeight  = 0.20
	benchEmployeeWeight = 0.15
	benchNatureWeight   = 0.10
	benchTypeWeight     = 0.10
)

// relatedIndustries maps an industry to the industries considered close
// enough for a partial benchmark match.
var relatedIndustries = map[string][]string{
	"machinery":   {"auto", "energy", "building"},
	"electronics": {"auto", "machinery", "medical"},
	"auto":        {"machinery", "electronics"},
	"textile":     {"beauty", "sports"},
	"building":    {"machinery", "furniture"},
	"furniture":   {"building", "textile"},
	"beauty":      {"textile", "food"},
	"food":        {"beauty", "packaging"},
}

// revenueBucketValue assigns a representative value (10k CNY) to each
// revenue bucket, applicant and catalog grammars both. Unlisted buckets
// resolve to 0, which the ratio scorer treats as unknown.
var revenueBucketValue = map[string]int64{
	// Applicant buckets.
	"<500":      250,
	"500-1000":  750,
	"1000-3000": 2000,
	"3000-5000": 4000,
	">5000":     7500,
	// Catalog buckets.
	"<1000":         500,
	"1000-5000":     3000,
	"5000-10000":    7500,
	"10000-50000":   30000,
	"50000-100000":  75000,
	"100000-500000": 300000,
	">500000":       750000,
}

// employeeBucketValue does the same for headcount buckets.
var employeeBucketValue = map[string]int64{
	"<50":       25,
	"50-100":    75,
	"100-300":   200,
	"100-500":   300,
	"300-500":   400,
	">500":      750,
	"500-1000":  750,
	"1000-2000": 1500,
	"2000-5000": 3500,
	"5000+":     5000,
	"10000+":    10000,
	"20000+":    20000,
}

func industryMatch(applicant, candidate string) int {
	if applicant != "" && applicant == candidate {
		return 100
	}
	for _, rel := range relatedIndustries[applicant] {
		if rel == candidate {
			return 70
		}
	}
	return 30
}

func stageMatch(applicant, candidate model.Stage) int {
	a, c := applicant.Ordinal(), candidate.Ordinal()
	if a < 0 || c < 0 {
		return 50
	}
	switch diff := abs(a - c); diff {
	case 0:
		return 100
	case 1:
		return 90
	case 2:
		return 70
	default:
		return 50
	}
}

// ratioMatch scores how close two bucket values are on a log-ish scale:
// same order of magnitude scores high, a decade apart scores low.
func ratioMatch(table map[string]int64, applicant, candidate string) int {
	a, c := table[applicant], table[candidate]
	if a == 0 || c == 0 {
		return 50
	}
	ratio := float64(min(a, c)) / float64(max(a, c))
	switch {
	case ratio >= 0.5:
		return 100
	case ratio >= 0.3:
		return 80
	case ratio >= 0.1:
		return 60
	default:
		return 40
	}
}

func natureMatch(applicant, candidate model.CompanyNature) int {
	if applicant != "" && applicant == candidate {
		return 100
	}
	if applicant == model.NatureForeign && candidate == model.NatureJoint {
		return 90
	}
	return 60
}

func typeMatch(applicant, candidate model.CompanyType) int {
	if applicant != "" && applicant == candidate {
		return 100
	}
	if (applicant == model.TypeManufacturer && candidate == model.TypeBrand) ||
		(applicant == model.TypeBrand && candidate == model.TypeManufacturer) {
		return 80
	}
	if applicant == model.TypeHybrid {
		return 85
	}
	return 60
}

// MatchBenchmarks scores every catalog company against the applicant and
// returns the top k, sorted descending. An empty catalog or k <= 0 yields
// an empty result, never an error.
func MatchBenchmarks(profile model.CompanyProfile, diagnosis model.OverseasDiagnosis, catalog []model.BenchmarkCompany, k int) []model.RankedBenchmark {
	if k <= 0 || len(catalog) == 0 {
		return nil
	}

	stage := diagnosis.Stage
	if stage == "" {
		stage = model.StagePreparation
	}

	ranked := make([]model.RankedBenchmark, 0, len(catalog))
	for _, company := range catalog {
		industryScore := industryMatch(profile.Industry, company.Industry)
		stageScore := stageMatch(stage, company.Stage)
		revenueScore := ratioMatch(revenueBucketValue, profile.AnnualRevenue, company.AnnualRevenue)
		employeeScore := ratioMatch(employeeBucketValue, profile.EmployeeCount, company.EmployeeRange)
		natureScore := natureMatch(profile.CompanyNature, company.CompanyNature)
		typeScore := typeMatch(profile.CompanyType, company.CompanyType)

		var reasons []string
		if industryScore >= 70 {
			if industryScore == 100 {
				reasons = append(reasons, "same-industry benchmark")
			} else {
				reasons = append(reasons, "related-industry benchmark")
			}
		}
		if revenueScore >= 80 {
			reasons = append(reasons, "comparable scale")
		}
		if stageScore >= 90 {
			reasons = append(reasons, "similar export stage")
		}
		if natureScore >= 90 {
			reasons = append(reasons, "same ownership structure")
		}
		if typeScore >= 80 {
			reasons = append(reasons, "similar business model")
		}
		if len(reasons) == 0 {
			reasons = []string{"overall profile match"}
		}

		total := int(math.Round(
			float64(industryScore)*benchIndustryWeight +
				float64(stageScore)*benchStageWeight +
				float64(revenueScore)*benchRevenueWeight +
				float64(employeeScore)*benchEmployeeWeight +
				float64(natureScore)*benchNatureWeight +
				float64(typeScore)*benchTypeWeight))

		ranked = append(ranked, model.RankedBenchmark{Company: company, Score: total, Reasons: reasons})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

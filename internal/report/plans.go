package report

import (
	"fmt"
	"math"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// stageActionPlans holds the recommended actions per export stage.
// Expansion and mature companies share the scale-up plan.
var stageActionPlans = map[model.Stage]model.ActionPlan{
	model.StagePreparation: {
		Immediate: []string{
			"Define target export markets and target customer segments",
			"Draft a certification roadmap for core products",
		},
		ShortTerm: []string{
			"Build a basic export team (at least 2-3 people)",
			"Open storefronts on Alibaba International or comparable B2B platforms",
		},
		MediumTerm: []string{
			"Complete 2-3 core product certifications",
			"Attend trade shows in target markets",
		},
		LongTerm: []string{
			"Establish a stable inquiry pipeline",
			"Deliver the first batch of overseas orders",
		},
	},
	model.StageExploration: {
		Immediate: []string{
			"Improve operating efficiency of existing channels",
			"Analyze current customer data and sharpen the customer profile",
		},
		ShortTerm: []string{
			"Open 1-2 new channels",
			"Round out the export team",
		},
		MediumTerm: []string{
			"Put a customer management system (CRM) in place",
			"Start brand building",
		},
		LongTerm: []string{
			"Double export revenue",
			"Establish a stable repeat-purchase mechanism",
		},
	},
	model.StageGrowth: {
		Immediate: []string{
			"Analyze per-channel ROI and rebalance resources",
			"Identify and fix the causes of customer churn",
		},
		ShortTerm: []string{
			"Expand into 2-3 new markets",
			"Set up overseas warehousing or a logistics partnership",
		},
		MediumTerm: []string{
			"Launch a brand upgrade",
			"Build a localized service team",
		},
		LongTerm: []string{
			"Grow export revenue by 50% or more",
			"Establish regional market leadership",
		},
	},
}

// scaleUpPlan covers the expansion and mature stages.
var scaleUpPlan = model.ActionPlan{
	Immediate: []string{
		"Assess the feasibility of overseas plants or subsidiaries",
		"Optimize the global supply-chain footprint",
	},
	ShortTerm: []string{
		"Open offices or subsidiaries in key markets",
		"Build localized teams",
	},
	MediumTerm: []string{
		"Start overseas M&A or joint-venture negotiations",
		"Establish a global R&D center",
	},
	LongTerm: []string{
		"Run a fully globalized operating system",
		"Become the global leader in the niche",
	},
}

// BuildActionPlan returns the stage-appropriate action plan.
func BuildActionPlan(assessment model.AssessmentResult) model.ActionPlan {
	if plan, ok := stageActionPlans[assessment.Stage]; ok {
		return plan
	}
	return scaleUpPlan
}

// stageBudgets holds the base budget band per stage in 10k currency units.
var stageBudgets = map[model.Stage]model.BudgetRange{
	model.StagePreparation: {Min: 10, Max: 30},
	model.StageExploration: {Min: 20, Max: 50},
	model.StageGrowth:      {Min: 50, Max: 150},
	model.StageExpansion:   {Min: 150, Max: 500},
	model.StageMature:      {Min: 150, Max: 500},
}

// revenueScaleFactors adjusts the budget band for company size. Buckets
// below "500-1000", including unanswered, use the smallest factor.
var revenueScaleFactors = map[string]float64{
	">5000":     1.5,
	"3000-5000": 1.3,
	"1000-3000": 1.1,
	"500-1000":  0.9,
}

// allocationSplit is the fixed percentage split of the total budget.
var allocationSplit = []struct {
	category   string
	percentage int
}{
	{"Team building", 25},
	{"Certification & compliance", 20},
	{"Marketing & promotion", 30},
	{"Platform & infrastructure", 15},
	{"Contingency", 10},
}

// BuildInvestmentPlan derives the budget recommendation from the company's
// stage and revenue scale.
func BuildInvestmentPlan(profile model.CompanyProfile, assessment model.AssessmentResult) model.InvestmentPlan {
	base, ok := stageBudgets[assessment.Stage]
	if !ok {
		base = model.BudgetRange{Min: 20, Max: 50}
	}

	factor, ok := revenueScaleFactors[profile.AnnualRevenue]
	if !ok {
		factor = 0.7
	}

	total := model.BudgetRange{
		Min: int(math.Round(float64(base.Min) * factor)),
		Max: int(math.Round(float64(base.Max) * factor)),
	}

	allocation := make([]model.BudgetAllocation, 0, len(allocationSplit))
	for _, split := range allocationSplit {
		pct := float64(split.percentage) / 100
		allocation = append(allocation, model.BudgetAllocation{
			Category:   split.category,
			Percentage: split.percentage,
			Amount: fmt.Sprintf("%d-%d",
				int(math.Round(float64(total.Min)*pct)),
				int(math.Round(float64(total.Max)*pct))),
		})
	}

	return model.InvestmentPlan{
		TotalBudget:   total,
		Allocation:    allocation,
		ROIProjection: "Payback expected within 12-18 months, with export revenue growth of 30-100%",
	}
}

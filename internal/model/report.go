package model

import "time"

// RankedBenchmark pairs a benchmark company with its fit score and the
// human-readable reasons that cleared a threshold.
type RankedBenchmark struct {
	Company BenchmarkCompany `json:"company"`
	Score   int              `json:"score"`
	Reasons []string         `json:"reasons"`
}

// Priority buckets a fit score for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// MarketRecommendation is one scored target market. One instance exists per
// scored market per request; recommendations are not persisted on their own.
type MarketRecommendation struct {
	Market    MarketRecord `json:"market"`
	Priority  Priority     `json:"priority"`
	FitScore  int          `json:"fit_score"`
	Rationale string       `json:"rationale"`
}

// RankedService pairs a service product with its match score and reasons.
type RankedService struct {
	Service ServiceProduct `json:"service"`
	Score   int            `json:"score"`
	Reasons []string       `json:"reasons"`
}

// ActionPlan groups recommended actions by time horizon.
type ActionPlan struct {
	Immediate  []string `json:"immediate"`
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
	LongTerm   []string `json:"long_term"`
}

// BudgetRange is a budget band in 10k currency units.
type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BudgetAllocation is one line of the investment plan.
type BudgetAllocation struct {
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	Amount     string `json:"amount"`
}

// InvestmentPlan is the rule-derived budget recommendation.
type InvestmentPlan struct {
	TotalBudget   BudgetRange        `json:"total_budget"`
	Allocation    []BudgetAllocation `json:"allocation"`
	ROIProjection string             `json:"roi_projection"`
}

// DataSummary is the flattened, human-readable restatement of the
// questionnaire answers, one label→value map per section.
type DataSummary struct {
	Profile   map[string]string `json:"profile"`
	Diagnosis map[string]string `json:"diagnosis"`
	Product   map[string]string `json:"product"`
	Operation map[string]string `json:"operation"`
	Resource  map[string]string `json:"resource"`
}

// Report is the complete assessment deliverable for one Application.
// Constructed once per completed questionnaire; immutable; a pure snapshot
// with no identity beyond the id assigned at save time.
type Report struct {
	ID          string                 `json:"id,omitempty"`
	Profile     CompanyProfile         `json:"profile"`
	Assessment  AssessmentResult       `json:"assessment"`
	Benchmarks  []RankedBenchmark      `json:"benchmarks"`
	Services    []RankedService        `json:"services"`
	Markets     []MarketRecommendation `json:"markets"`
	ActionPlan  ActionPlan             `json:"action_plan"`
	Investment  InvestmentPlan         `json:"investment_plan"`
	DataSummary DataSummary            `json:"data_summary"`
	GeneratedAt time.Time              `json:"generated_at"`
}

package model

// Industry is one entry of the static industry catalog.
type Industry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// BenchmarkCompany is a reference company from the static benchmark catalog.
// Records are read-only; the engine never creates or mutates them.
type BenchmarkCompany struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Industry             string        `json:"industry"`
	SubIndustry          string        `json:"sub_industry,omitempty"`
	CompanyNature        CompanyNature `json:"company_nature"`
	CompanyType          CompanyType   `json:"company_type"`
	Stage                Stage         `json:"stage"`
	Location             string        `json:"location"`
	EstablishedYear      int           `json:"established_year"`
	EmployeeRange        string        `json:"employee_range"`
	AnnualRevenue        string        `json:"annual_revenue"`
	ExportMarkets        []string      `json:"export_markets"`
	ExportRevenue        string        `json:"export_revenue"`
	KeyMilestones        []string      `json:"key_milestones"`
	CoreCompetency       string        `json:"core_competency"`
	CompetitiveAdvantage string        `json:"competitive_advantage"`
	ExpansionPath        string        `json:"expansion_path"`
	KeyStrategies        []string      `json:"key_strategies"`
	LearnablePoints      []string      `json:"learnable_points"`
	ApplicableScenarios  []string      `json:"applicable_scenarios"`
}

// MarketRecord is a reference target market from the static market catalog.
type MarketRecord struct {
	Key                    string   `json:"key"`
	Region                 string   `json:"region"`
	Countries              []string `json:"countries"`
	MarketSize             string   `json:"market_size"`
	GrowthRate             string   `json:"growth_rate"`
	EntryDifficulty        string   `json:"entry_difficulty"`
	CompetitionLevel       string   `json:"competition_level"`
	Rationale              string   `json:"rationale"`
	EntryStrategy          string   `json:"entry_strategy"`
	KeyRequirements        []string `json:"key_requirements"`
	EstimatedInvestment    string   `json:"estimated_investment"`
	Timeline               string   `json:"timeline"`
	RequiredCertifications []string `json:"required_certifications"`
}

// InvestmentRange is a service price band in 10k currency units.
type InvestmentRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ServiceProduct is one entry of the static service catalog.
type ServiceProduct struct {
	ID               string          `json:"id"`
	Category         string          `json:"category"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Deliverables     []string        `json:"deliverables"`
	Duration         string          `json:"duration"`
	TargetStages     []Stage         `json:"target_stages"`
	PainPoints       []string        `json:"pain_points"`
	ExpectedOutcomes []string        `json:"expected_outcomes"`
	InvestmentRange  InvestmentRange `json:"investment_range"`
}

// TargetsStage reports whether the service lists the given stage.
func (s ServiceProduct) TargetsStage(stage Stage) bool {
	for _, ts := range s.TargetStages {
		if ts == stage {
			return true
		}
	}
	return false
}

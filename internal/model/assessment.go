package model

// Stage represents a company's export maturity phase.
type Stage string

const (
	StagePreparation Stage = "preparation"
	StageExploration Stage = "exploration"
	StageGrowth      Stage = "growth"
	StageExpansion   Stage = "expansion"
	StageMature      Stage = "mature"
)

// stageOrder fixes the ordinal position of each stage for distance
// computations.
var stageOrder = []Stage{
	StagePreparation, StageExploration, StageGrowth, StageExpansion, StageMature,
}

// Ordinal returns the zero-based position of the stage in the maturity
// progression, or -1 for an unknown or empty stage.
func (s Stage) Ordinal() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Level is the customer-facing tier label derived 1:1 from Stage.
type Level string

const (
	LevelNewcomer Level = "NewcomerTier"
	LevelGrowth   Level = "GrowthTier"
	LevelPioneer  Level = "PioneerTier"
	LevelLeader   Level = "LeaderTier"
)

// DimensionScores holds the five dimension scores, each in [0,100].
// Derived once per assessment and never mutated afterwards.
type DimensionScores struct {
	Foundation int `json:"foundation"`
	Product    int `json:"product"`
	Operation  int `json:"operation"`
	Resource   int `json:"resource"`
	Potential  int `json:"potential"`
}

// Dimension names in their fixed declaration order. Tie-breaking in the
// insight generator depends on this order.
const (
	DimFoundation = "foundation"
	DimProduct    = "product"
	DimOperation  = "operation"
	DimResource   = "resource"
	DimPotential  = "potential"
)

// Ordered returns (name, score) pairs in fixed declaration order.
func (d DimensionScores) Ordered() [5]struct {
	Name  string
	Score int
} {
	return [5]struct {
		Name  string
		Score int
	}{
		{DimFoundation, d.Foundation},
		{DimProduct, d.Product},
		{DimOperation, d.Operation},
		{DimResource, d.Resource},
		{DimPotential, d.Potential},
	}
}

// SWOT holds the four analysis buckets. Strengths, opportunities, and
// threats are always non-empty; weaknesses may be empty for a high scorer.
type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// AssessmentResult is the fully derived outcome of scoring one Application.
type AssessmentResult struct {
	Stage           Stage           `json:"stage"`
	Level           Level           `json:"level"`
	TotalScore      int             `json:"total_score"`
	DimensionScores DimensionScores `json:"dimension_scores"`
	SWOT            SWOT            `json:"swot"`
	KeyFindings     []string        `json:"key_findings"`
}

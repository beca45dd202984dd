package scoring

import (
	"math"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// Weights blends the five dimension scores into the total. The values
// must sum to exactly 1.0; WeightSum exists so tests can pin that down.
var Weights = map[string]float64{
	model.DimFoundation: 0.20,
	model.DimProduct:    0.25,
	model.DimOperation:  0.25,
	model.DimResource:   0.15,
	model.DimPotential:  0.15,
}

// WeightSum returns the sum of all dimension weights.
func WeightSum() float64 {
	var sum float64
	for _, w := range Weights {
		sum += w
	}
	return sum
}

// ComputeTotal blends the dimension scores into a single total in [0,100],
// rounded half up.
func ComputeTotal(dims model.DimensionScores) int {
	var total float64
	for _, d := range dims.Ordered() {
		total += float64(d.Score) * Weights[d.Name]
	}
	return int(math.Round(total))
}

// levelForStage is the fixed stage→tier mapping.
var levelForStage = map[model.Stage]model.Level{
	model.StagePreparation: model.LevelNewcomer,
	model.StageExploration: model.LevelNewcomer,
	model.StageGrowth:      model.LevelGrowth,
	model.StageExpansion:   model.LevelPioneer,
	model.StageMature:      model.LevelLeader,
}

// ClassifyStageLevel maps the export-value bucket, falling back to the
// self-declared stage, to a (stage, level) pair. The total score is
// accepted for future score-gated tiers inside a stage; today every
// branch resolves the level from the stage alone.
func ClassifyStageLevel(totalScore int, dims model.DimensionScores, diagnosis model.OverseasDiagnosis) (model.Stage, model.Level) {
	_, _ = totalScore, dims

	exportValue := diagnosis.AnnualExportValue

	switch {
	case exportValue == "0" || diagnosis.Stage == model.StagePreparation:
		return model.StagePreparation, model.LevelNewcomer
	case exportValue == "<100" || diagnosis.Stage == model.StageExploration:
		return model.StageExploration, model.LevelNewcomer
	case exportValue == "100-1000" || diagnosis.Stage == model.StageGrowth:
		return model.StageGrowth, model.LevelGrowth
	case exportValue == "1000-5000" || diagnosis.Stage == model.StageExpansion:
		return model.StageExpansion, model.LevelPioneer
	default:
		return model.StageMature, model.LevelLeader
	}
}

// Score runs the full assessment pipeline for one application: dimension
// scores, weighted total, stage/level, SWOT, and key findings.
func Score(app model.Application) model.AssessmentResult {
	dims := ScoreDimensions(app)
	total := ComputeTotal(dims)
	stage, level := ClassifyStageLevel(total, dims, app.Diagnosis)

	return model.AssessmentResult{
		Stage:           stage,
		Level:           level,
		TotalScore:      total,
		DimensionScores: dims,
		SWOT:            GenerateSWOT(app, dims),
		KeyFindings:     GenerateKeyFindings(app, dims),
	}
}

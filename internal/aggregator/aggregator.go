// Package aggregator combines the lexical and acoustic sub-scores into the
// final tiered risk assessment.
package aggregator

import (
	"math"

	"scamshield-go/internal/types"
)

// Lexical content is the stronger, more specific signal; acoustic cues only
// corroborate.
const (
	textWeight  = 0.7
	audioWeight = 0.3
)

const (
	highThreshold   = 60.0
	mediumThreshold = 35.0
	lowThreshold    = 15.0
)

var recommendations = map[string]string{
	types.RiskHigh:    "HIGH RISK: This appears to be a potential scam. Do not provide any personal information or money.",
	types.RiskMedium:  "MEDIUM RISK: Exercise caution. Verify the caller's identity independently.",
	types.RiskLow:     "LOW RISK: Some suspicious elements detected. Stay alert.",
	types.RiskMinimal: "MINIMAL RISK: No significant scam indicators detected.",
}

// Combine merges both sub-results into the final assessment. Sub-scores arrive
// already clamped to [0,100]; the total is rounded to one decimal place before
// tiering, so a 59.95 raw total tiers as 60.0 → high.
func Combine(text types.TextAnalysisResult, audio types.AudioAnalysisResult, features *types.AcousticFeatures, info types.FileInfo) types.AnalysisResponse {
	total := round1(float64(text.ScamScore)*textWeight + float64(audio.AudioScore)*audioWeight)

	var tier string
	switch {
	case total >= highThreshold:
		tier = types.RiskHigh
	case total >= mediumThreshold:
		tier = types.RiskMedium
	case total >= lowThreshold:
		tier = types.RiskLow
	default:
		tier = types.RiskMinimal
	}

	return types.AnalysisResponse{
		Success:        true,
		OverallRisk:    tier,
		TotalScore:     total,
		Recommendation: recommendations[tier],
		TextAnalysis:   text,
		AudioAnalysis:  audio,
		AudioFeatures:  features.Map(),
		FileInfo:       info,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

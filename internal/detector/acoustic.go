package detector

import "scamshield-go/internal/types"

// Thresholds for scripted-delivery heuristics. Fast, monotone, or
// artificially steady delivery correlates with scripted scam calls.
const (
	veryFastSpeechRate = 8.0
	fastSpeechRate     = 6.0
	monotonePitchStd   = 20.0
	flatVolumeStd      = 0.01
)

// AnalyzeAcoustics maps extracted features to a suspicion score. Rules are
// additive and evaluated in a fixed order; at most one speech-rate tier fires.
// Nil features short-circuit with a single "unanalyzable" indicator.
func AnalyzeAcoustics(f *types.AcousticFeatures) types.AudioAnalysisResult {
	if f == nil {
		return types.AudioAnalysisResult{
			AudioScore:      0,
			AudioIndicators: []string{"Could not analyze audio features"},
		}
	}

	score := 0
	indicators := []string{}

	if f.SpeechRate > veryFastSpeechRate {
		score += 15
		indicators = append(indicators, "Unusually fast speech rate detected")
	} else if f.SpeechRate > fastSpeechRate {
		score += 10
		indicators = append(indicators, "Fast speech rate detected")
	}

	if f.PitchVariation < monotonePitchStd {
		score += 10
		indicators = append(indicators, "Monotone speech pattern (possible script reading)")
	}

	if f.VolumeVariation < flatVolumeStd {
		score += 5
		indicators = append(indicators, "Unusually consistent volume levels")
	}

	return types.AudioAnalysisResult{
		AudioScore:      clampScore(score),
		AudioIndicators: indicators,
	}
}

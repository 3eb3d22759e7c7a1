package aggregator

import (
	"testing"

	"scamshield-go/internal/types"
)

func combineScores(textScore, audioScore int) types.AnalysisResponse {
	text := types.TextAnalysisResult{ScamScore: textScore, Indicators: []string{}, RiskLevel: types.RiskMinimal}
	audio := types.AudioAnalysisResult{AudioScore: audioScore, AudioIndicators: []string{}}
	return Combine(text, audio, nil, types.FileInfo{Filename: "call.wav", Size: 1024})
}

func TestCombine_Weighting(t *testing.T) {
	tests := []struct {
		name      string
		textScore int
		audioScore int
		wantTotal float64
		wantRisk  string
	}{
		{"text dominates", 75, 30, 61.5, types.RiskHigh},
		{"high boundary inclusive", 60, 60, 60.0, types.RiskHigh},
		{"just below high", 80, 13, 59.9, types.RiskMedium},
		{"medium boundary", 50, 0, 35.0, types.RiskMedium},
		{"low boundary", 10, 30, 16.0, types.RiskLow},
		{"acoustic only stays minimal", 0, 30, 9.0, types.RiskMinimal},
		{"all zero", 0, 0, 0.0, types.RiskMinimal},
		{"both maxed", 100, 100, 100.0, types.RiskHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := combineScores(tt.textScore, tt.audioScore)
			if res.TotalScore != tt.wantTotal {
				t.Errorf("total = %v, want %v", res.TotalScore, tt.wantTotal)
			}
			if res.OverallRisk != tt.wantRisk {
				t.Errorf("risk = %q, want %q", res.OverallRisk, tt.wantRisk)
			}
			if !res.Success {
				t.Error("success = false, want true")
			}
		})
	}
}

func TestCombine_RoundsToOneDecimal(t *testing.T) {
	res := combineScores(33, 0) // 23.099999... must come out as 23.1
	if res.TotalScore != 23.1 {
		t.Errorf("total = %v, want 23.1", res.TotalScore)
	}
}

func TestCombine_RecommendationPerTier(t *testing.T) {
	tests := []struct {
		textScore int
		wantRisk  string
	}{
		{100, types.RiskHigh},
		{60, types.RiskMedium},
		{25, types.RiskLow},
		{0, types.RiskMinimal},
	}
	for _, tt := range tests {
		res := combineScores(tt.textScore, 0)
		if res.OverallRisk != tt.wantRisk {
			t.Fatalf("text %d: risk = %q, want %q", tt.textScore, res.OverallRisk, tt.wantRisk)
		}
		if res.Recommendation != recommendations[tt.wantRisk] {
			t.Errorf("tier %q: recommendation = %q", tt.wantRisk, res.Recommendation)
		}
		if res.Recommendation == "" {
			t.Errorf("tier %q has empty recommendation", tt.wantRisk)
		}
	}
}

func TestCombine_NilFeaturesRenderEmptyMapping(t *testing.T) {
	res := combineScores(0, 0)
	if res.AudioFeatures == nil {
		t.Fatal("audio_features is nil, want empty mapping")
	}
	if len(res.AudioFeatures) != 0 {
		t.Errorf("audio_features = %v, want empty", res.AudioFeatures)
	}
}

func TestCombine_FeaturesPassThrough(t *testing.T) {
	f := &types.AcousticFeatures{SpeechRate: 5.5, PitchMean: 180}
	res := Combine(
		types.TextAnalysisResult{Indicators: []string{}},
		types.AudioAnalysisResult{AudioIndicators: []string{}},
		f,
		types.FileInfo{Filename: "call.wav", Size: 10},
	)
	if len(res.AudioFeatures) != 7 {
		t.Fatalf("audio_features has %d keys, want 7", len(res.AudioFeatures))
	}
	if res.AudioFeatures["speech_rate"] != 5.5 {
		t.Errorf("speech_rate = %v, want 5.5", res.AudioFeatures["speech_rate"])
	}
	if res.FileInfo.Filename != "call.wav" || res.FileInfo.Size != 10 {
		t.Errorf("file_info = %+v", res.FileInfo)
	}
}

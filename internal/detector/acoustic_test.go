package detector

import (
	"reflect"
	"testing"

	"scamshield-go/internal/types"
)

func TestAnalyzeAcoustics_NilFeatures(t *testing.T) {
	res := AnalyzeAcoustics(nil)
	if res.AudioScore != 0 {
		t.Errorf("score = %d, want 0", res.AudioScore)
	}
	want := []string{"Could not analyze audio features"}
	if !reflect.DeepEqual(res.AudioIndicators, want) {
		t.Errorf("indicators = %v, want %v", res.AudioIndicators, want)
	}
}

func TestAnalyzeAcoustics_Rules(t *testing.T) {
	tests := []struct {
		name           string
		features       types.AcousticFeatures
		wantScore      int
		wantIndicators int
	}{
		{
			name:           "all suspicious",
			features:       types.AcousticFeatures{SpeechRate: 9, PitchVariation: 5, VolumeVariation: 0.005},
			wantScore:      30,
			wantIndicators: 3,
		},
		{
			name:           "fast but not very fast",
			features:       types.AcousticFeatures{SpeechRate: 7, PitchVariation: 50, VolumeVariation: 0.02},
			wantScore:      10,
			wantIndicators: 1,
		},
		{
			name:           "speech rate boundary stays in lower tier",
			features:       types.AcousticFeatures{SpeechRate: 8, PitchVariation: 50, VolumeVariation: 0.02},
			wantScore:      10,
			wantIndicators: 1,
		},
		{
			name:           "pitch variation boundary not monotone",
			features:       types.AcousticFeatures{SpeechRate: 4, PitchVariation: 20, VolumeVariation: 0.02},
			wantScore:      0,
			wantIndicators: 0,
		},
		{
			name:           "clean delivery",
			features:       types.AcousticFeatures{SpeechRate: 4, PitchVariation: 50, VolumeVariation: 0.05},
			wantScore:      0,
			wantIndicators: 0,
		},
		{
			name:           "monotone and flat only",
			features:       types.AcousticFeatures{SpeechRate: 3, PitchVariation: 10, VolumeVariation: 0.001},
			wantScore:      15,
			wantIndicators: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.features
			res := AnalyzeAcoustics(&f)
			if res.AudioScore != tt.wantScore {
				t.Errorf("score = %d, want %d, indicators: %v", res.AudioScore, tt.wantScore, res.AudioIndicators)
			}
			if len(res.AudioIndicators) != tt.wantIndicators {
				t.Errorf("indicators = %v, want %d entries", res.AudioIndicators, tt.wantIndicators)
			}
		})
	}
}

func TestAnalyzeAcoustics_AtMostOneSpeechRateTier(t *testing.T) {
	f := types.AcousticFeatures{SpeechRate: 20, PitchVariation: 50, VolumeVariation: 0.05}
	res := AnalyzeAcoustics(&f)
	if res.AudioScore != 15 {
		t.Errorf("score = %d, want 15 (only the fast tier)", res.AudioScore)
	}
	if len(res.AudioIndicators) != 1 {
		t.Errorf("indicators = %v, want exactly one", res.AudioIndicators)
	}
}

func TestAnalyzeAcoustics_ScoreWithinRange(t *testing.T) {
	f := types.AcousticFeatures{SpeechRate: 100, PitchVariation: 0, VolumeVariation: 0}
	res := AnalyzeAcoustics(&f)
	if res.AudioScore < 0 || res.AudioScore > 100 {
		t.Errorf("score %d outside [0,100]", res.AudioScore)
	}
}

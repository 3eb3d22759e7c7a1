package types

// Risk tiers shared by the lexical detector and the aggregator.
const (
	RiskUnknown = "unknown"
	RiskMinimal = "minimal"
	RiskLow     = "low"
	RiskMedium  = "medium"
	RiskHigh    = "high"
)

// AcousticFeatures is the fixed set of prosodic/spectral statistics the
// extractor computes over one decoded recording. A nil *AcousticFeatures means
// the signal could not be analyzed at all; there is no partial state.
type AcousticFeatures struct {
	SpeechRate       float64 `json:"speech_rate"`
	PitchMean        float64 `json:"pitch_mean"`
	PitchVariation   float64 `json:"pitch_variation"`
	VolumeMean       float64 `json:"volume_mean"`
	VolumeVariation  float64 `json:"volume_variation"`
	SpectralCentroid float64 `json:"spectral_centroid"`
	ZeroCrossingRate float64 `json:"zero_crossing_rate"`
}

// Map renders the features as the diagnostic mapping exposed on the API.
// A nil receiver yields an empty (non-null) mapping.
func (f *AcousticFeatures) Map() map[string]float64 {
	if f == nil {
		return map[string]float64{}
	}
	return map[string]float64{
		"speech_rate":        f.SpeechRate,
		"pitch_mean":         f.PitchMean,
		"pitch_variation":    f.PitchVariation,
		"volume_mean":        f.VolumeMean,
		"volume_variation":   f.VolumeVariation,
		"spectral_centroid":  f.SpectralCentroid,
		"zero_crossing_rate": f.ZeroCrossingRate,
	}
}

// TextAnalysisResult is the lexical detector's verdict on a transcript.
type TextAnalysisResult struct {
	ScamScore       int      `json:"scam_score"`
	Indicators      []string `json:"indicators"`
	RiskLevel       string   `json:"risk_level"`
	TranscribedText string   `json:"transcribed_text"`
}

// AudioAnalysisResult is the acoustic suspicion scorer's verdict.
type AudioAnalysisResult struct {
	AudioScore      int      `json:"audio_score"`
	AudioIndicators []string `json:"audio_indicators"`
}

// FileInfo echoes back what was uploaded.
type FileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// AnalysisResponse is the full assessment returned for one recording.
type AnalysisResponse struct {
	Success        bool                `json:"success"`
	OverallRisk    string              `json:"overall_risk"`
	TotalScore     float64             `json:"total_score"`
	Recommendation string              `json:"recommendation"`
	TextAnalysis   TextAnalysisResult  `json:"text_analysis"`
	AudioAnalysis  AudioAnalysisResult `json:"audio_analysis"`
	AudioFeatures  map[string]float64  `json:"audio_features"`
	FileInfo       FileInfo            `json:"file_info"`
}

// ErrorResponse is returned for validation rejections and pipeline failures.
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

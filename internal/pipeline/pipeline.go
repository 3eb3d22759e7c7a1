// Package pipeline runs one full analysis: decode, feature extraction,
// transcription, scoring, aggregation. Recoverable failures inside the
// pipeline degrade to a lower-information result of the same shape; only an
// unclassified panic surfaces as an error.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"scamshield-go/internal/aggregator"
	"scamshield-go/internal/audio"
	"scamshield-go/internal/detector"
	"scamshield-go/internal/logger"
	"scamshield-go/internal/metrics"
	"scamshield-go/internal/transcribe"
	"scamshield-go/internal/types"
)

type Pipeline struct {
	extractor   audio.Extractor
	lexical     *detector.Lexical
	transcriber *transcribe.Orchestrator
	log         *logger.Logger
}

func New(extractor audio.Extractor, lexical *detector.Lexical, transcriber *transcribe.Orchestrator) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		lexical:     lexical,
		transcriber: transcriber,
		log:         logger.New(),
	}
}

// Analyze processes one uploaded recording and always returns either a
// well-formed assessment or an error; never a partial structure.
func (p *Pipeline) Analyze(ctx context.Context, data []byte, filename string) (resp types.AnalysisResponse, err error) {
	log := p.log.WithComponent("pipeline").WithField("filename", filename)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			metrics.PipelineFailures.Inc()
			log.WithField("panic", r).Error("analysis pipeline panicked")
			err = fmt.Errorf("analysis failed: %v", r)
		}
	}()

	info := types.FileInfo{Filename: filename, Size: int64(len(data))}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	sig, decErr := audio.Decode(data, ext)
	if decErr != nil {
		// corrupt or undecodable audio degrades to "no acoustic signal
		// available" rather than failing the request
		log.WithError(decErr).Warn("audio decode failed")
	}

	var features *types.AcousticFeatures
	if sig != nil {
		var exErr error
		features, exErr = p.extractor.Extract(sig)
		if exErr != nil {
			log.WithError(exErr).Warn("feature extraction failed")
			features = nil
		}
	}

	text := ""
	if sig != nil {
		text = p.transcriber.Transcribe(ctx, sig)
	}

	textAnalysis := p.lexical.Analyze(text)
	audioAnalysis := detector.AnalyzeAcoustics(features)
	resp = aggregator.Combine(textAnalysis, audioAnalysis, features, info)

	metrics.AnalysisTotal.WithLabelValues(resp.OverallRisk).Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	log.WithField("overall_risk", resp.OverallRisk).
		WithField("total_score", resp.TotalScore).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("analysis completed")
	return resp, nil
}

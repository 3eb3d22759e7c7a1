package transcribe

import (
	"context"
	"errors"
	"strings"

	"scamshield-go/internal/audio"
	"scamshield-go/internal/logger"
)

// Orchestrator runs the fallback chain: calibrate, then the primary engine,
// then — only on a primary service error — the secondary. Every terminal state
// yields a lower-cased transcript or the empty string, never an error.
type Orchestrator struct {
	engines []Engine
	log     *logger.Logger
}

// NewOrchestrator builds the chain from the configured engines in order.
// Nil engines are skipped, so callers can pass the result of conditional
// construction directly.
func NewOrchestrator(engines ...Engine) *Orchestrator {
	o := &Orchestrator{log: logger.New()}
	for _, e := range engines {
		if e != nil {
			o.engines = append(o.engines, e)
		}
	}
	return o
}

// Available reports whether any speech capability is configured.
func (o *Orchestrator) Available() bool {
	return len(o.engines) > 0
}

// Transcribe produces the best-effort transcript for one decoded recording.
func (o *Orchestrator) Transcribe(ctx context.Context, sig *audio.Signal) string {
	log := o.log.WithComponent("transcribe")

	if !o.Available() {
		log.Warn("no speech engine configured, skipping transcription")
		return ""
	}

	clip := calibrate(sig)
	if clip == nil {
		log.Warn("nothing above ambient floor after calibration")
		return ""
	}

	text, err := o.engines[0].Transcribe(ctx, clip)
	switch {
	case err == nil:
		log.WithField("engine", o.engines[0].Name()).Info("transcription succeeded")
		return strings.ToLower(text)
	case errors.Is(err, ErrNoSpeech):
		// the engine heard the clip and found nothing; falling back to a
		// weaker engine would not change that
		log.WithField("engine", o.engines[0].Name()).Warn("engine could not understand audio")
		return ""
	default:
		log.WithField("engine", o.engines[0].Name()).WithError(err).Error("engine service error")
	}

	if len(o.engines) < 2 {
		return ""
	}
	text, err = o.engines[1].Transcribe(ctx, clip)
	if err != nil {
		log.WithField("engine", o.engines[1].Name()).WithError(err).Error("fallback engine failed")
		return ""
	}
	log.WithField("engine", o.engines[1].Name()).Info("transcription succeeded via fallback")
	return strings.ToLower(text)
}

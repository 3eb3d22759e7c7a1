// Package transcribe turns a decoded recording into best-effort text through
// an ordered engine fallback chain. Total transcription failure degrades to an
// empty transcript; nothing here returns an error past the orchestrator.
package transcribe

import (
	"context"
	"errors"
)

// ErrNoSpeech reports that an engine processed the clip but found no
// intelligible speech. It is distinct from a service error: the orchestrator
// does not fall back past it.
var ErrNoSpeech = errors.New("no speech detected in audio")

// Engine is one speech-to-text backend.
type Engine interface {
	Name() string
	Transcribe(ctx context.Context, clip *Clip) (string, error)
}

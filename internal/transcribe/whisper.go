package transcribe

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
)

const whisperMaxRetryTime = 12 * time.Second

// WhisperEngine is the offline secondary engine: a whisper server on the local
// network speaking the OpenAI transcription API. It is only consulted when the
// primary engine fails with a service error.
type WhisperEngine struct {
	cli   *openai.Client
	model string
}

// NewWhisperEngine points an OpenAI-compatible client at the local server.
func NewWhisperEngine(baseURL, model string) *WhisperEngine {
	cfg := openai.DefaultConfig("local")
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	if model == "" {
		model = "whisper-1"
	}
	return &WhisperEngine{cli: openai.NewClientWithConfig(cfg), model: model}
}

func (w *WhisperEngine) Name() string { return "whisper-local" }

// Transcribe uploads the clip as an in-memory WAV. Transient server errors are
// retried with exponential backoff; 4xx responses are permanent.
func (w *WhisperEngine) Transcribe(ctx context.Context, clip *Clip) (string, error) {
	wav := clip.WAV()

	var text string
	op := func() error {
		resp, err := w.cli.CreateTranscription(ctx, openai.AudioRequest{
			Model:    w.model,
			FilePath: "clip.wav",
			Reader:   bytes.NewReader(wav),
		})
		if err != nil {
			var apiErr *openai.APIError
			if errors.As(err, &apiErr) && apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		text = strings.TrimSpace(resp.Text)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = whisperMaxRetryTime
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

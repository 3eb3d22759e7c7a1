package transcribe

import (
	"context"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// GoogleEngine is the online primary engine, backed by Google Cloud
// Speech-to-Text synchronous recognition.
type GoogleEngine struct {
	client *speech.Client
}

// NewGoogleEngine creates the engine. Requires GOOGLE_APPLICATION_CREDENTIALS
// to be set in the environment.
func NewGoogleEngine(ctx context.Context) (*GoogleEngine, error) {
	c, err := speech.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GoogleEngine{client: c}, nil
}

func (g *GoogleEngine) Name() string { return "google" }

// Transcribe sends the clip as LINEAR16 and joins the top alternative of each
// result. A successful response with no results means the service heard no
// speech, which is ErrNoSpeech rather than a service error.
func (g *GoogleEngine) Transcribe(ctx context.Context, clip *Clip) (string, error) {
	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: int32(clip.SampleRate),
			LanguageCode:    "en-US",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: clip.PCM16()},
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, r := range resp.Results {
		if len(r.Alternatives) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.Alternatives[0].Transcript)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

// Close releases the underlying gRPC connection.
func (g *GoogleEngine) Close() error {
	return g.client.Close()
}

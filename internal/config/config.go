package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	LexiconPath string

	// transcription engines
	GoogleEnabled        bool // set via GOOGLE_APPLICATION_CREDENTIALS
	LocalWhisperURL      string
	LocalWhisperModel    string
	DisableTranscription bool

	// acoustic capability, off in minimal deployments
	DisableAcoustics bool

	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:                 envOrDefault("PORT", "8080"),
		LexiconPath:          os.Getenv("LEXICON_PATH"),
		GoogleEnabled:        os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "",
		LocalWhisperURL:      os.Getenv("LOCAL_WHISPER_URL"),
		LocalWhisperModel:    envOrDefault("LOCAL_WHISPER_MODEL", "whisper-1"),
		DisableTranscription: os.Getenv("DISABLE_TRANSCRIPTION") == "true",
		DisableAcoustics:     os.Getenv("DISABLE_ACOUSTICS") == "true",
		AllowedOrigins:       splitOrigins(envOrDefault("ALLOWED_ORIGINS", "*")),
	}
}

func splitOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

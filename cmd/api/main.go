package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"scamshield-go/internal/audio"
	"scamshield-go/internal/config"
	"scamshield-go/internal/detector"
	"scamshield-go/internal/httpapi"
	"scamshield-go/internal/lexicon"
	"scamshield-go/internal/logger"
	"scamshield-go/internal/pipeline"
	"scamshield-go/internal/transcribe"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "scamshield-go").Info("starting service")

	cfg := config.Load()

	// keyword/pattern tables: built-in defaults unless the fraud team's
	// catalogue is configured
	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		loaded, err := lexicon.LoadXLSX(cfg.LexiconPath)
		if err != nil {
			log.WithError(err).WithField("lexicon_path", cfg.LexiconPath).
				Warn("catalogue load failed, using built-in lexicon")
		} else {
			lex = loaded
			log.WithField("keywords", len(lex.Keywords)).Info("lexicon catalogue loaded")
		}
	}
	lexical, err := detector.NewLexical(lex)
	if err != nil {
		log.WithError(err).Fatal("invalid pattern in lexicon")
	}

	// transcription chain: online primary, offline secondary; either may be
	// absent, the orchestrator degrades accordingly
	var engines []transcribe.Engine
	if !cfg.DisableTranscription {
		if cfg.GoogleEnabled {
			g, err := transcribe.NewGoogleEngine(context.Background())
			if err != nil {
				log.WithError(err).Warn("google speech engine unavailable")
			} else {
				defer g.Close()
				engines = append(engines, g)
			}
		}
		if cfg.LocalWhisperURL != "" {
			engines = append(engines, transcribe.NewWhisperEngine(cfg.LocalWhisperURL, cfg.LocalWhisperModel))
		}
	}
	orchestrator := transcribe.NewOrchestrator(engines...)
	if !orchestrator.Available() {
		log.Warn("no transcription engines configured, lexical analysis will report unknown")
	}

	var extractor audio.Extractor = audio.Analyzer{}
	if cfg.DisableAcoustics {
		extractor = audio.Noop{}
		log.Warn("acoustic analysis disabled")
	}

	pipe := pipeline.New(extractor, lexical, orchestrator)
	handler := httpapi.NewRouter(pipe, cfg.AllowedOrigins)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

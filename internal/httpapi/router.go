// Package httpapi carries the thin HTTP plumbing around the analysis
// pipeline: routing, CORS, upload validation, and response marshaling.
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"scamshield-go/internal/logger"
	"scamshield-go/internal/metrics"
	"scamshield-go/internal/pipeline"
	"scamshield-go/internal/types"
)

const maxFileSize = 50 * 1024 * 1024 // 50MB

var allowedExtensions = map[string]bool{
	".wav": true, ".mp3": true, ".ogg": true, ".flac": true, ".m4a": true,
}

type Router struct {
	pipe *pipeline.Pipeline
	log  *logger.Logger
}

// NewRouter wires the API surface: health, metrics, and the analyze endpoint.
func NewRouter(pipe *pipeline.Pipeline, allowedOrigins []string) http.Handler {
	rt := &Router{pipe: pipe, log: logger.New()}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	mux.Get("/health", rt.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Post("/analyze", rt.handleAnalyze)
	return mux
}

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Voice Analyzer API is running",
	})
}

func (rt *Router) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	log := rt.log.WithRequest(r).WithField("handler", "analyze")

	file, header, err := r.FormFile("audio")
	if err != nil {
		rt.reject(w, log, "No audio file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		rt.reject(w, log, "No file selected")
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		rt.reject(w, log, "Invalid file format. Supported: WAV, MP3, OGG, FLAC, M4A")
		return
	}
	// size check before any read or decode
	if header.Size > maxFileSize {
		rt.reject(w, log, "File too large. Maximum size: 50MB")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxFileSize+1))
	if err != nil {
		rt.reject(w, log, "Could not read uploaded file")
		return
	}
	if int64(len(data)) > maxFileSize {
		rt.reject(w, log, "File too large. Maximum size: 50MB")
		return
	}

	resp, err := rt.pipe.Analyze(r.Context(), data, filepath.Base(header.Filename))
	if err != nil {
		log.WithError(err).Error("analysis failed")
		success := false
		writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{
			Success: &success,
			Error:   "Analysis failed",
			Message: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (rt *Router) reject(w http.ResponseWriter, log *logrus.Entry, msg string) {
	metrics.ValidationRejections.Inc()
	log.Warn(msg)
	writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

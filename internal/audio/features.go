package audio

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/stat"

	"scamshield-go/internal/types"
)

// Frame geometry matches the librosa defaults the thresholds were tuned
// against.
const (
	frameLength = 2048
	hopLength   = 512
)

// Pitch search band for voiced speech; estimates outside it report 0
// (unvoiced) and are excluded from the pitch statistics.
const (
	pitchMinHz = 50.0
	pitchMaxHz = 2000.0
)

// A frame quieter than this RMS is treated as unvoiced for pitch tracking.
const voicedRMSGate = 1e-4

// Energy rises below this floor are numeric jitter, not onsets.
const onsetFluxFloor = 1e-6

// Extractor computes acoustic features from a decoded signal. The Noop
// implementation serves deployments without the acoustic capability.
type Extractor interface {
	Extract(sig *Signal) (*types.AcousticFeatures, error)
}

// Noop reports no acoustic signal available, degrading the scorer to its
// single "unanalyzable" indicator.
type Noop struct{}

func (Noop) Extract(*Signal) (*types.AcousticFeatures, error) { return nil, nil }

// Analyzer is the real extractor.
type Analyzer struct{}

// Extract computes the seven summary statistics over the capped signal.
func (Analyzer) Extract(sig *Signal) (*types.AcousticFeatures, error) {
	if sig == nil || len(sig.Samples) == 0 || sig.SampleRate <= 0 {
		return nil, errors.New("empty signal")
	}

	frames := frameSignal(sig.Samples)
	if len(frames) == 0 {
		return nil, errors.New("signal too short to frame")
	}

	rms := make([]float64, len(frames))
	zcr := make([]float64, len(frames))
	for i, fr := range frames {
		rms[i] = frameRMS(fr)
		zcr[i] = frameZCR(fr)
	}

	fft := fourier.NewFFT(frameLength)
	binHz := float64(sig.SampleRate) / frameLength
	var centroids []float64
	var pitches []float64
	win := make([]float64, frameLength)
	for i, fr := range frames {
		copy(win, fr)
		window.Hann(win)
		coeffs := fft.Coefficients(nil, win)

		if c, ok := spectralCentroid(coeffs, binHz); ok {
			centroids = append(centroids, c)
		}
		if p := pitchEstimate(coeffs, binHz, rms[i]); p > 0 {
			pitches = append(pitches, p)
		}
	}

	f := &types.AcousticFeatures{
		SpeechRate:       float64(countOnsets(rms)) / sig.Duration(),
		VolumeMean:       stat.Mean(rms, nil),
		VolumeVariation:  stat.PopStdDev(rms, nil),
		ZeroCrossingRate: stat.Mean(zcr, nil),
	}
	if len(centroids) > 0 {
		f.SpectralCentroid = stat.Mean(centroids, nil)
	}
	if len(pitches) > 0 {
		f.PitchMean = stat.Mean(pitches, nil)
		f.PitchVariation = stat.PopStdDev(pitches, nil)
	}
	return f, nil
}

// frameSignal cuts the signal into frames of frameLength every hopLength
// samples, zero-padding a lone short signal into a single frame.
func frameSignal(samples []float64) [][]float64 {
	if len(samples) < frameLength {
		fr := make([]float64, frameLength)
		copy(fr, samples)
		return [][]float64{fr}
	}
	var frames [][]float64
	for start := 0; start+frameLength <= len(samples); start += hopLength {
		frames = append(frames, samples[start:start+frameLength])
	}
	return frames
}

func frameRMS(fr []float64) float64 {
	sum := 0.0
	for _, v := range fr {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(fr)))
}

func frameZCR(fr []float64) float64 {
	crossings := 0
	for i := 1; i < len(fr); i++ {
		if (fr[i-1] >= 0) != (fr[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(fr))
}

// countOnsets peak-picks the positive flux of the energy envelope. A frame is
// an onset when its energy rise exceeds the envelope's mean flux by one
// standard deviation and is a local maximum.
func countOnsets(rms []float64) int {
	if len(rms) < 3 {
		return 0
	}
	flux := make([]float64, len(rms))
	for i := 1; i < len(rms); i++ {
		if d := rms[i] - rms[i-1]; d > 0 {
			flux[i] = d
		}
	}
	threshold := stat.Mean(flux, nil) + stat.PopStdDev(flux, nil)
	if threshold < onsetFluxFloor {
		threshold = onsetFluxFloor
	}
	onsets := 0
	for i := 1; i < len(flux)-1; i++ {
		if flux[i] > threshold && flux[i] >= flux[i-1] && flux[i] >= flux[i+1] {
			onsets++
		}
	}
	return onsets
}

// spectralCentroid returns the energy-weighted mean frequency of one frame.
func spectralCentroid(coeffs []complex128, binHz float64) (float64, bool) {
	var num, den float64
	for k, c := range coeffs {
		m := cmplxAbs(c)
		num += float64(k) * binHz * m
		den += m
	}
	if den == 0 {
		return 0, false
	}
	return num / den, true
}

// pitchEstimate returns the frequency of the strongest spectral peak in the
// voiced band, or 0 for silent/unvoiced frames.
func pitchEstimate(coeffs []complex128, binHz, rms float64) float64 {
	if rms < voicedRMSGate {
		return 0
	}
	lo := int(math.Ceil(pitchMinHz / binHz))
	hi := int(math.Floor(pitchMaxHz / binHz))
	if hi >= len(coeffs) {
		hi = len(coeffs) - 1
	}
	if lo < 1 || lo > hi {
		return 0
	}
	best, bestMag := 0, 0.0
	for k := lo; k <= hi; k++ {
		if m := cmplxAbs(coeffs[k]); m > bestMag {
			best, bestMag = k, m
		}
	}
	if bestMag == 0 {
		return 0
	}
	return float64(best) * binHz
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

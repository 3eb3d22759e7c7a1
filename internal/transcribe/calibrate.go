package transcribe

import (
	"math"

	"scamshield-go/internal/audio"
)

// Calibration samples roughly the first second of the recording to estimate
// the ambient noise floor, then trims below-floor silence off both ends of
// the remainder. What survives is the utterance buffer.
const (
	calibrationSeconds = 1
	trimBlockSamples   = 512

	// ambient floor is scaled up so ordinary room noise does not count as
	// speech; the additive term keeps digital silence from producing a zero
	// threshold.
	ambientScale = 1.5
	ambientBias  = 1e-5
)

// calibrate returns the utterance clip, or nil when nothing above the ambient
// floor remains after the calibration window.
func calibrate(sig *audio.Signal) *Clip {
	if sig == nil || len(sig.Samples) == 0 {
		return nil
	}
	lead := calibrationSeconds * sig.SampleRate
	if lead >= len(sig.Samples) {
		return nil
	}
	threshold := blockRMS(sig.Samples[:lead])*ambientScale + ambientBias
	rest := sig.Samples[lead:]

	start, end := 0, len(rest)
	for start+trimBlockSamples <= end && blockRMS(rest[start:start+trimBlockSamples]) < threshold {
		start += trimBlockSamples
	}
	for end-trimBlockSamples >= start && blockRMS(rest[end-trimBlockSamples:end]) < threshold {
		end -= trimBlockSamples
	}
	if end-start <= 0 {
		return nil
	}
	return &Clip{Samples: rest[start:end], SampleRate: sig.SampleRate}
}

func blockRMS(block []float64) float64 {
	if len(block) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range block {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(block)))
}

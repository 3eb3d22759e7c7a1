// Package audio decodes uploaded recordings into a mono float signal and
// extracts the prosodic/spectral statistics the suspicion scorer consumes.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// MaxAnalysisSeconds caps how much of a recording is analyzed. Anything past
// the cap is discarded at decode time.
const MaxAnalysisSeconds = 60

// ErrUnsupportedFormat is returned for extensions the service accepts for
// upload but cannot decode in-process (currently m4a). The pipeline degrades
// to an empty feature set rather than failing the request.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Signal is one decoded mono waveform. Owned by a single pipeline invocation.
type Signal struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the signal length in seconds.
func (s *Signal) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// Decode parses the raw upload bytes according to the file extension
// (lowercase, no dot) and returns the capped mono signal.
func Decode(data []byte, ext string) (*Signal, error) {
	var (
		sig *Signal
		err error
	)
	switch strings.ToLower(ext) {
	case "wav":
		sig, err = decodeWAV(data)
	case "mp3":
		sig, err = decodeMP3(data)
	case "ogg":
		sig, err = decodeOGG(data)
	case "flac":
		sig, err = decodeFLAC(data)
	case "m4a":
		return nil, fmt.Errorf("%w: m4a", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if len(sig.Samples) == 0 {
		return nil, errors.New("decoded signal is empty")
	}
	if max := MaxAnalysisSeconds * sig.SampleRate; len(sig.Samples) > max {
		sig.Samples = sig.Samples[:max]
	}
	return sig, nil
}

func decodeWAV(data []byte) (*Signal, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav decode: %w", err)
	}
	if buf == nil || buf.Format == nil || len(buf.Data) == 0 {
		return nil, errors.New("wav decode: no pcm data")
	}
	bitDepth := int(d.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float64(int(1) << (bitDepth - 1))
	ch := buf.Format.NumChannels
	if ch < 1 {
		ch = 1
	}
	samples := make([]float64, 0, len(buf.Data)/ch)
	for i := 0; i+ch <= len(buf.Data); i += ch {
		sum := 0.0
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i+c]) / scale
		}
		samples = append(samples, sum/float64(ch))
	}
	return &Signal{Samples: samples, SampleRate: buf.Format.SampleRate}, nil
}

func decodeMP3(data []byte) (*Signal, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mp3 decode: %w", err)
	}
	pcm, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode: %w", err)
	}
	// go-mp3 always emits 16-bit little-endian stereo.
	samples := make([]float64, 0, len(pcm)/4)
	for i := 0; i+4 <= len(pcm); i += 4 {
		l := int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
		r := int16(uint16(pcm[i+2]) | uint16(pcm[i+3])<<8)
		samples = append(samples, (float64(l)+float64(r))/2/32768)
	}
	return &Signal{Samples: samples, SampleRate: d.SampleRate()}, nil
}

func decodeOGG(data []byte) (*Signal, error) {
	pcm, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ogg decode: %w", err)
	}
	ch := format.Channels
	if ch < 1 {
		ch = 1
	}
	samples := make([]float64, 0, len(pcm)/ch)
	for i := 0; i+ch <= len(pcm); i += ch {
		sum := 0.0
		for c := 0; c < ch; c++ {
			sum += float64(pcm[i+c])
		}
		samples = append(samples, sum/float64(ch))
	}
	return &Signal{Samples: samples, SampleRate: format.SampleRate}, nil
}

func decodeFLAC(data []byte) (*Signal, error) {
	stream, err := flac.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("flac decode: %w", err)
	}
	info := stream.Info
	ch := int(info.NChannels)
	if ch < 1 {
		ch = 1
	}
	scale := float64(int64(1) << (info.BitsPerSample - 1))
	var samples []float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flac frame: %w", err)
		}
		n := len(frame.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			sum := 0.0
			for c := 0; c < ch && c < len(frame.Subframes); c++ {
				sum += float64(frame.Subframes[c].Samples[i]) / scale
			}
			samples = append(samples, sum/float64(ch))
		}
		// no need to parse past the analysis cap
		if len(samples) >= MaxAnalysisSeconds*int(info.SampleRate) {
			break
		}
	}
	return &Signal{Samples: samples, SampleRate: int(info.SampleRate)}, nil
}

package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

// pcm16WAV renders samples as a minimal 16-bit mono RIFF file.
func pcm16WAV(samples []float64, sr int) []byte {
	var buf bytes.Buffer
	dataLen := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint32(sr))
	binary.Write(&buf, binary.LittleEndian, uint32(sr*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, int16(math.Round(s*32767)))
	}
	return buf.Bytes()
}

func toneSamples(freq float64, seconds float64, sr int) []float64 {
	n := int(seconds * float64(sr))
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
	}
	return out
}

func TestDecode_WAV(t *testing.T) {
	const sr = 8000
	samples := toneSamples(440, 1, sr)
	sig, err := Decode(pcm16WAV(samples, sr), "wav")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sig.SampleRate != sr {
		t.Errorf("sample rate = %d, want %d", sig.SampleRate, sr)
	}
	if len(sig.Samples) != len(samples) {
		t.Errorf("sample count = %d, want %d", len(sig.Samples), len(samples))
	}
	for i, s := range sig.Samples {
		if s < -1 || s > 1 {
			t.Fatalf("sample %d = %v outside [-1,1]", i, s)
		}
	}
	if sig.Duration() < 0.99 || sig.Duration() > 1.01 {
		t.Errorf("duration = %v, want ≈1s", sig.Duration())
	}
}

func TestDecode_CapsAtSixtySeconds(t *testing.T) {
	const sr = 4000
	sig, err := Decode(pcm16WAV(toneSamples(200, 65, sr), sr), "wav")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(sig.Samples) != MaxAnalysisSeconds*sr {
		t.Errorf("sample count = %d, want capped to %d", len(sig.Samples), MaxAnalysisSeconds*sr)
	}
}

func TestDecode_UppercaseExtension(t *testing.T) {
	const sr = 8000
	if _, err := Decode(pcm16WAV(toneSamples(440, 0.5, sr), sr), "WAV"); err != nil {
		t.Errorf("Decode with WAV extension: %v", err)
	}
}

func TestDecode_M4AUnsupported(t *testing.T) {
	_, err := Decode([]byte("not audio"), "m4a")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_UnknownExtension(t *testing.T) {
	_, err := Decode([]byte("not audio"), "txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_CorruptBytes(t *testing.T) {
	for _, ext := range []string{"wav", "mp3", "ogg", "flac"} {
		t.Run(ext, func(t *testing.T) {
			if _, err := Decode([]byte("definitely not audio data"), ext); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestDecode_EmptyWAV(t *testing.T) {
	if _, err := Decode(pcm16WAV(nil, 8000), "wav"); err == nil {
		t.Error("expected error for zero-sample wav")
	}
}

// ABOUTME: Audio type definitions
// ABOUTME: Defines buffer formats, tones and 8-bit sample conversions
package audio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultSampleRate is used when the caller does not pick a rate
	DefaultSampleRate = 16000

	// Silence is the centre of the unsigned 8-bit range
	Silence uint8 = 128

	// Rest is the near-silent value used for padding
	Rest uint8 = 127

	Channels = 1
	BitDepth = 8
)

// ErrInvalidTone is returned when tone text cannot be parsed
var ErrInvalidTone = errors.New("invalid tone")

// Format describes a sample buffer
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Mono8 returns the only format buffers are produced in
func Mono8(sampleRate int) Format {
	return Format{
		SampleRate: sampleRate,
		Channels:   Channels,
		BitDepth:   BitDepth,
	}
}

// Validate reports whether the format can carry a synthesized buffer
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", f.SampleRate)
	}
	if f.Channels != Channels || f.BitDepth != BitDepth {
		return fmt.Errorf("unsupported format: %d channels, %d-bit (supported: 1 channel, 8-bit)",
			f.Channels, f.BitDepth)
	}
	return nil
}

// Tone is a single sine segment
type Tone struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
}

func (t Tone) String() string {
	return strconv.FormatFloat(t.Frequency, 'g', -1, 64) + ":" +
		strconv.FormatFloat(t.Duration, 'g', -1, 64)
}

// ParseTone parses "FREQ:SECONDS", e.g. "500:1" or "440:0.25"
func ParseTone(s string) (Tone, error) {
	freqText, durText, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Tone{}, fmt.Errorf("%w %q: expected FREQ:SECONDS", ErrInvalidTone, s)
	}

	freq, err := parseNonNegative(freqText)
	if err != nil {
		return Tone{}, fmt.Errorf("%w %q: frequency: %v", ErrInvalidTone, s, err)
	}

	dur, err := parseNonNegative(durText)
	if err != nil {
		return Tone{}, fmt.Errorf("%w %q: duration: %v", ErrInvalidTone, s, err)
	}

	return Tone{Frequency: freq, Duration: dur}, nil
}

// ParseSequence parses each argument with ParseTone, keeping order
func ParseSequence(args []string) ([]Tone, error) {
	seq := make([]Tone, 0, len(args))
	for _, arg := range args {
		tone, err := ParseTone(arg)
		if err != nil {
			return nil, err
		}
		seq = append(seq, tone)
	}
	return seq, nil
}

func parseNonNegative(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("out of range: %s", s)
	}
	return v, nil
}

// SampleFromUint8 converts an unsigned 8-bit sample to a signed value centred on zero
func SampleFromUint8(sample uint8) int32 {
	return int32(sample) - int32(Silence)
}

// SampleToUint8 converts a signed 8-bit range value back to unsigned
func SampleToUint8(sample int32) uint8 {
	// Clamp to signed 8-bit range before re-centering
	if sample > math.MaxInt8 {
		sample = math.MaxInt8
	} else if sample < math.MinInt8 {
		sample = math.MinInt8
	}
	return uint8(sample + int32(Silence))
}

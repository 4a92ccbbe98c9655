// ABOUTME: Clean tone synthesizer
// ABOUTME: Generates one unsigned byte per sine sample plus rest padding
package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

const (
	// rateHeadroom keeps the effective rate above the tone frequency
	rateHeadroom = 100

	// MaxSamples caps both the effective rate and the samples generated for
	// one tone; tones reaching it are rejected with ErrInvalidArgument
	MaxSamples = math.MaxInt32
)

// EffectiveSampleRate clamps sampleRate up to at least frequency+100,
// saturating at MaxSamples
func EffectiveSampleRate(frequency float64, sampleRate int) int {
	minRate := math.Ceil(frequency + rateHeadroom)
	if minRate <= float64(sampleRate) || math.IsNaN(minRate) {
		return sampleRate
	}
	if minRate >= MaxSamples {
		return MaxSamples
	}
	return int(minRate)
}

// SampleCounts returns the generated sample count and the padding count for
// a tone. Invalid tones count as zero.
func SampleCounts(tone audio.Tone, sampleRate int) (samples, rest int) {
	if validate(tone, sampleRate) != nil {
		return 0, 0
	}
	rate := EffectiveSampleRate(tone.Frequency, sampleRate)
	samples = int(math.Floor(float64(rate) * tone.Duration))
	rest = samples % rate
	return samples, rest
}

// Synthesize renders a tone as one byte per sample.
// A zero frequency yields a single padding sample.
func Synthesize(tone audio.Tone, sampleRate int) ([]byte, error) {
	buf, err := render(tone, sampleRate, appendByte)
	if errors.Is(err, ErrDivisionByZero) {
		return []byte{audio.Rest}, nil
	}
	return buf, err
}

// appender writes one sample value into the buffer
type appender func(buf []byte, value uint8) []byte

func appendByte(buf []byte, value uint8) []byte {
	return append(buf, value)
}

// render runs the shared sample loop. It returns ErrDivisionByZero for a
// zero frequency without recovering from it.
func render(tone audio.Tone, sampleRate int, emit appender) ([]byte, error) {
	if err := validate(tone, sampleRate); err != nil {
		return nil, err
	}
	if tone.Frequency == 0 {
		return nil, fmt.Errorf("%w: frequency is 0", ErrDivisionByZero)
	}

	rate := EffectiveSampleRate(tone.Frequency, sampleRate)
	n, rest := SampleCounts(tone, sampleRate)

	// Angular step divisor, kept in this exact form so rounding matches
	step := (float64(rate) / tone.Frequency) / math.Pi

	buf := make([]byte, 0, n+rest)
	for x := 0; x < n; x++ {
		buf = emit(buf, amplitude(float64(x)/step))
	}
	for i := 0; i < rest; i++ {
		buf = emit(buf, audio.Rest)
	}

	return buf, nil
}

// amplitude quantizes sin(phase) into the unsigned 8-bit range
func amplitude(phase float64) uint8 {
	v := math.Round(math.Sin(phase)*127 + 128)
	if v < 0 {
		v = 0
	} else if v > math.MaxUint8 {
		v = math.MaxUint8
	}
	return uint8(v)
}

func validate(tone audio.Tone, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidArgument, sampleRate)
	}
	if tone.Frequency < 0 || math.IsNaN(tone.Frequency) || math.IsInf(tone.Frequency, 0) {
		return fmt.Errorf("%w: frequency %v", ErrInvalidArgument, tone.Frequency)
	}
	if tone.Duration < 0 || math.IsNaN(tone.Duration) || math.IsInf(tone.Duration, 0) {
		return fmt.Errorf("%w: duration %v", ErrInvalidArgument, tone.Duration)
	}
	if tone.Frequency+rateHeadroom >= MaxSamples {
		return fmt.Errorf("%w: frequency %v exceeds %d Hz", ErrInvalidArgument, tone.Frequency, MaxSamples-rateHeadroom)
	}
	rate := math.Max(float64(sampleRate), math.Ceil(tone.Frequency+rateHeadroom))
	if rate*tone.Duration >= MaxSamples {
		return fmt.Errorf("%w: duration %v needs more than %d samples", ErrInvalidArgument, tone.Duration, MaxSamples)
	}
	return nil
}

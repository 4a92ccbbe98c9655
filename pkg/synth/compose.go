// ABOUTME: Sequence composer
// ABOUTME: Concatenates synthesized tones into one buffer in order
package synth

import (
	"fmt"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

// Compose synthesizes every tone in order and concatenates the results with
// no gaps. An empty sequence yields an empty buffer.
func Compose(seq []audio.Tone, sampleRate int, harsh bool) ([]byte, error) {
	synthesize := Synthesize
	if harsh {
		synthesize = SynthesizeHarsh
	}

	size := 0
	for _, tone := range seq {
		size += encodedSize(tone, sampleRate, harsh)
	}

	out := make([]byte, 0, size)
	for i, tone := range seq {
		buf, err := synthesize(tone, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("tone %d: %w", i, err)
		}
		out = append(out, buf...)
	}

	return out, nil
}

// encodedSize is an upper bound on the bytes a tone synthesizes to. Harsh
// samples take at most two bytes each.
func encodedSize(tone audio.Tone, sampleRate int, harsh bool) int {
	if validate(tone, sampleRate) != nil {
		return 0
	}
	if tone.Frequency == 0 {
		return 1
	}
	n, rest := SampleCounts(tone, sampleRate)
	if harsh {
		return 2*n + rest
	}
	return n + rest
}

// SequenceRate returns the rate a composed sequence plays back at. When every
// sounding tone shares one effective rate that rate is returned with uniform
// set; otherwise it returns sampleRate and uniform is false. Zero-frequency
// tones yield one padding sample and do not affect the result.
func SequenceRate(seq []audio.Tone, sampleRate int) (rate int, uniform bool) {
	for _, tone := range seq {
		if tone.Frequency == 0 {
			continue
		}
		effective := EffectiveSampleRate(tone.Frequency, sampleRate)
		if rate == 0 {
			rate = effective
		} else if effective != rate {
			return sampleRate, false
		}
	}
	if rate == 0 {
		return sampleRate, true
	}
	return rate, true
}

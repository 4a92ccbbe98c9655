// ABOUTME: Harsh tone synthesizer
// ABOUTME: Emits each sample as a UTF-8 encoded codepoint for aliased noise
package synth

import (
	"errors"
	"unicode/utf8"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

// SynthesizeHarsh renders a tone with each sample value appended as a UTF-8
// codepoint. Values above 127 expand to two bytes, so the buffer is longer
// than Synthesize's and plays back distorted.
func SynthesizeHarsh(tone audio.Tone, sampleRate int) ([]byte, error) {
	buf, err := render(tone, sampleRate, appendCodepoint)
	if errors.Is(err, ErrDivisionByZero) {
		return appendCodepoint(nil, audio.Rest), nil
	}
	return buf, err
}

func appendCodepoint(buf []byte, value uint8) []byte {
	return utf8.AppendRune(buf, rune(value))
}

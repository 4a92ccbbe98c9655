// ABOUTME: Tone synthesis package
// ABOUTME: Turns tones and sequences into 8-bit sample buffers
// Package synth converts tones into unsigned 8-bit sample buffers.
//
// Synthesize produces one byte per sample. SynthesizeHarsh produces the same
// sample values but appends each one as a UTF-8 encoded codepoint, so every
// value above 127 takes two bytes; the longer, aliased buffer is the point of
// that mode. Compose concatenates a sequence of tones in order.
//
// Both synthesizers compute the effective rate as max(sampleRate, ceil(f+100)),
// generate floor(rate*duration) samples and then append (that count mod rate)
// padding samples of value 127.
//
// Example:
//
//	buf, err := synth.Compose([]audio.Tone{{500, 0.1}, {600, 0.1}}, audio.DefaultSampleRate, false)
package synth

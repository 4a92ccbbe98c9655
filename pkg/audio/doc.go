// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format and Tone types, sample constants and tone parsing
// Package audio provides the fundamental types shared by the synthesizer, the
// output backends and the file containers.
//
// This package defines:
//   - Format: describes a sample buffer (sample rate, channels, bit depth)
//   - Tone: one sine segment given by frequency and duration
//
// Buffers are always 8-bit unsigned mono. Silence is 128 and the padding
// value appended after a tone is 127.
//
// Example:
//
//	seq, err := audio.ParseSequence([]string{"500:1", "600:0.5"})
//	format := audio.Mono8(audio.DefaultSampleRate)
package audio

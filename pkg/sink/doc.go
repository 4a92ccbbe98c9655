// ABOUTME: Sink package for emitting finished sample buffers
// ABOUTME: Provides device and file sinks with scoped resource handling
// Package sink hands a finished buffer to an audio device or a file.
//
// Each Emit acquires its resource immediately before writing and releases it
// on every path, including failures. Errors from Open, Write and Close are all
// reported.
//
// Example:
//
//	s := sink.NewFile("tones.wav")
//	err := s.Emit(samples, audio.Mono8(16000))
package sink

// ABOUTME: Audio container package for writing sample buffers to files
// ABOUTME: Provides Encoder interface with WAV and FLAC implementations
// Package encode writes unsigned 8-bit mono buffers into audio files.
//
// Supports: WAV (uncompressed PCM), FLAC (lossless, verbatim subframes)
//
// Example:
//
//	enc, err := encode.ForPath("tones.wav")
//	err = enc.Encode(f, samples, audio.Mono8(16000))
package encode

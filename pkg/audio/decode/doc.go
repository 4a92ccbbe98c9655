// ABOUTME: Audio container package for reading rendered files back
// ABOUTME: Decodes WAV and FLAC files into 8-bit sample buffers
// Package decode reads files written by package encode back into an unsigned
// 8-bit buffer and its format. It is used to verify rendered output.
//
// Example:
//
//	samples, format, err := decode.File("tones.flac")
package decode

// ABOUTME: Audio output package for playing sample buffers
// ABOUTME: Provides Output interface with oto and malgo backends
// Package output plays unsigned 8-bit mono buffers on the default audio
// device.
//
// Two backends are available: oto (default) and malgo. Write blocks until the
// whole buffer has been played.
//
// Example:
//
//	out, err := output.New(output.BackendOto, nil)
//	err = out.Open(audio.Mono8(16000))
//	err = out.Write(samples)
//	err = out.Close()
package output

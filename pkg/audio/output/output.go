// ABOUTME: Audio output interface definition
// ABOUTME: Common interface and factory for audio playback backends
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

const (
	BackendOto   = "oto"
	BackendMalgo = "malgo"
)

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(format audio.Format) error

	// Write plays samples (blocks until playback completes)
	Write(samples []byte) error

	// Close releases output resources
	Close() error
}

// ProgressFunc receives the number of samples handed to the device so far
type ProgressFunc func(played, total int)

// New creates an output for the named backend
func New(backend string, onProgress ProgressFunc) (Output, error) {
	switch backend {
	case BackendOto, "":
		return NewOto(onProgress), nil
	case BackendMalgo:
		return NewMalgo(onProgress), nil
	default:
		return nil, fmt.Errorf("unknown output backend: %s (supported: %s, %s)", backend, BackendOto, BackendMalgo)
	}
}

// playbackTimeout bounds how long Write waits for a buffer of the given size
func playbackTimeout(samples, sampleRate int) time.Duration {
	return time.Duration(samples)*time.Second/time.Duration(sampleRate) + 2*time.Second
}

// progressReader reports how much of the buffer the player has consumed
type progressReader struct {
	r          io.Reader
	read       int
	total      int
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += n
	if n > 0 && p.onProgress != nil {
		p.onProgress(p.read, p.total)
	}
	return n, err
}

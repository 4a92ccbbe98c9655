// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for file containers and extension lookup
package encode

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

// Encoder writes a sample buffer into a file container
type Encoder interface {
	// Encode writes the header and samples to w
	Encode(w io.WriteSeeker, samples []byte, format audio.Format) error

	// Extension returns the file extension including the dot
	Extension() string
}

// ForPath picks an encoder by file extension. Paths without an extension
// are written as WAV.
func ForPath(path string) (Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", "":
		return WAV{}, nil
	case ".flac":
		return FLAC{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: .wav, .flac)", ext)
	}
}

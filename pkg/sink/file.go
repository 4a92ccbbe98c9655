// ABOUTME: File sink
// ABOUTME: Writes buffers into a WAV or FLAC file chosen by extension
package sink

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio/encode"
)

// FileSink writes buffers to Path
type FileSink struct {
	Path string
}

// NewFile creates a file sink
func NewFile(path string) *FileSink {
	return &FileSink{Path: path}
}

// Emit creates the file, writes the container and closes the file
func (s *FileSink) Emit(samples []byte, format audio.Format) (err error) {
	enc, err := encode.ForPath(s.Path)
	if err != nil {
		return err
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close output file: %w", closeErr))
		}
	}()

	if err := enc.Encode(f, samples, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}

	return nil
}

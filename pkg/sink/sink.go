// ABOUTME: Sink interface and device sink
// ABOUTME: Plays buffers on an output that is opened and closed per Emit
package sink

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio/output"
)

// Sink consumes a finished buffer
type Sink interface {
	Emit(samples []byte, format audio.Format) error
}

// OutputFactory creates the output a DeviceSink plays through
type OutputFactory func() (output.Output, error)

// DeviceSink plays buffers through an audio output
type DeviceSink struct {
	newOutput OutputFactory
}

// NewDevice creates a device sink for the named backend
func NewDevice(backend string, onProgress output.ProgressFunc) *DeviceSink {
	return NewDeviceWith(func() (output.Output, error) {
		return output.New(backend, onProgress)
	})
}

// NewDeviceWith creates a device sink that uses factory for each Emit
func NewDeviceWith(factory OutputFactory) *DeviceSink {
	return &DeviceSink{newOutput: factory}
}

// Emit opens the output, plays the buffer to completion and closes the output
func (s *DeviceSink) Emit(samples []byte, format audio.Format) (err error) {
	out, err := s.newOutput()
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close output: %w", closeErr))
		}
	}()

	if err := out.Open(format); err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	if err := out.Write(samples); err != nil {
		return fmt.Errorf("failed to play buffer: %w", err)
	}

	return nil
}

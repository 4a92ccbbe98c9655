// ABOUTME: Tests for device and file sinks
// ABOUTME: Verifies outputs and files are released on every path
package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio/decode"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio/output"
)

// fakeOutput records calls and fails where told to
type fakeOutput struct {
	openErr  error
	writeErr error
	closeErr error

	opened  bool
	closed  bool
	format  audio.Format
	written []byte
}

func (f *fakeOutput) Open(format audio.Format) error {
	f.opened = true
	f.format = format
	return f.openErr
}

func (f *fakeOutput) Write(samples []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, samples...)
	return nil
}

func (f *fakeOutput) Close() error {
	f.closed = true
	return f.closeErr
}

func TestSinksImplementSink(t *testing.T) {
	var _ Sink = (*DeviceSink)(nil)
	var _ Sink = (*FileSink)(nil)
}

func TestDeviceSinkEmit(t *testing.T) {
	errOpen := errors.New("no device")
	errWrite := errors.New("underrun")
	errClose := errors.New("stuck")

	tests := []struct {
		name       string
		out        *fakeOutput
		wantErrs   []error
		wantOutput bool
	}{
		{"success", &fakeOutput{}, nil, true},
		{"open fails", &fakeOutput{openErr: errOpen}, []error{errOpen}, false},
		{"write fails", &fakeOutput{writeErr: errWrite}, []error{errWrite}, false},
		{"close fails", &fakeOutput{closeErr: errClose}, []error{errClose}, true},
		{"write and close fail", &fakeOutput{writeErr: errWrite, closeErr: errClose}, []error{errWrite, errClose}, false},
	}

	samples := []byte{128, 200, 50, 127}
	format := audio.Mono8(16000)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDeviceWith(func() (output.Output, error) { return tt.out, nil })

			err := s.Emit(samples, format)
			if len(tt.wantErrs) == 0 && err != nil {
				t.Fatalf("Emit() unexpected error: %v", err)
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Emit() error = %v, want it to wrap %v", err, want)
				}
			}

			if !tt.out.closed {
				t.Error("output was not closed")
			}
			if tt.out.format != format {
				t.Errorf("opened with %+v, want %+v", tt.out.format, format)
			}
			if tt.wantOutput && !bytes.Equal(tt.out.written, samples) {
				t.Errorf("written = %v, want %v", tt.out.written, samples)
			}
		})
	}
}

func TestDeviceSinkFactoryError(t *testing.T) {
	s := NewDevice("pulse", nil)
	err := s.Emit([]byte{128}, audio.Mono8(16000))
	if err == nil || !strings.Contains(err.Error(), "failed to create output") {
		t.Errorf("expected factory error, got %v", err)
	}
}

func TestFileSinkEmit(t *testing.T) {
	samples := []byte{128, 255, 1, 127, 127}

	for _, name := range []string{"tones.wav", "tones.flac"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			if err := NewFile(path).Emit(samples, audio.Mono8(16000)); err != nil {
				t.Fatalf("Emit() failed: %v", err)
			}

			decoded, format, err := decode.File(path)
			if err != nil {
				t.Fatalf("decode.File() failed: %v", err)
			}
			if format != audio.Mono8(16000) {
				t.Errorf("format = %+v", format)
			}
			if !bytes.Equal(decoded, samples) {
				t.Errorf("decoded = %v, want %v", decoded, samples)
			}
		})
	}
}

func TestFileSinkUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tones.ogg")

	if err := NewFile(path).Emit([]byte{128}, audio.Mono8(16000)); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no file to be created for unsupported extension")
	}
}

func TestFileSinkUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "tones.wav")

	err := NewFile(path).Emit([]byte{128}, audio.Mono8(16000))
	if err == nil || !strings.Contains(err.Error(), "failed to create output file") {
		t.Errorf("expected create error, got %v", err)
	}
}

func TestFileSinkEncodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tones.wav")
	stereo := audio.Format{SampleRate: 16000, Channels: 2, BitDepth: 8}

	if err := NewFile(path).Emit([]byte{128}, stereo); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

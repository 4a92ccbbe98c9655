// ABOUTME: File decoders for rendered audio
// ABOUTME: Reads WAV via go-audio/wav and FLAC via mewkiz/flac
package decode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/mewkiz/flac"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

// File opens path and decodes it according to its extension
func File(path string) ([]byte, audio.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", "":
		return WAV(f)
	case ".flac":
		return FLAC(f)
	default:
		return nil, audio.Format{}, fmt.Errorf("unsupported audio format: %s (supported: .wav, .flac)", ext)
	}
}

// WAV decodes an 8-bit RIFF/WAVE stream
func WAV(r io.ReadSeeker) ([]byte, audio.Format, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, audio.Format{}, fmt.Errorf("invalid wav file")
	}

	format := audio.Format{
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
	}
	if err := format.Validate(); err != nil {
		return nil, format, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, format, fmt.Errorf("failed to read wav samples: %w", err)
	}

	samples := make([]byte, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = byte(v)
	}

	return samples, format, nil
}

// FLAC decodes an 8-bit mono FLAC stream
func FLAC(r io.Reader) ([]byte, audio.Format, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	format := audio.Format{
		SampleRate: int(info.SampleRate),
		Channels:   int(info.NChannels),
		BitDepth:   int(info.BitsPerSample),
	}
	if err := format.Validate(); err != nil {
		return nil, format, err
	}

	samples := make([]byte, 0, info.NSamples)
	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, format, fmt.Errorf("failed to parse flac frame: %w", err)
		}

		for _, sample := range frame.Subframes[0].Samples {
			samples = append(samples, audio.SampleToUint8(sample))
		}
	}

	return samples, format, nil
}

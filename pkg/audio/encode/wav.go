// ABOUTME: WAV container encoder
// ABOUTME: Writes 8-bit PCM RIFF files using go-audio/wav
package encode

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

// wavFormatPCM is the RIFF audio format code for uncompressed PCM
const wavFormatPCM = 1

// WAV writes RIFF/WAVE files
type WAV struct{}

// Extension returns ".wav"
func (WAV) Extension() string { return ".wav" }

// Encode writes the header {channels, bits, rate, frames=len(samples)}
// followed by the raw sample bytes
func (WAV) Encode(w io.WriteSeeker, samples []byte, format audio.Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	enc := wav.NewEncoder(w, format.SampleRate, format.BitDepth, format.Channels, wavFormatPCM)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			SampleRate:  format.SampleRate,
			NumChannels: format.Channels,
		},
		SourceBitDepth: format.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write wav samples: %w", err)
	}

	// Close patches the RIFF and data chunk sizes
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav header: %w", err)
	}

	return nil
}

// ABOUTME: FLAC container encoder
// ABOUTME: Writes 8-bit mono FLAC streams with verbatim subframes using mewkiz/flac
package encode

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

const (
	// flacBlockSize is the number of samples per frame
	flacBlockSize = 4096

	// flacMinBlockSize is the smallest block size the format allows in STREAMINFO
	flacMinBlockSize = 16

	// flacMaxSampleRate is the highest rate a FLAC stream may declare
	flacMaxSampleRate = 655350
)

// FLAC writes lossless FLAC streams
type FLAC struct{}

// Extension returns ".flac"
func (FLAC) Extension() string { return ".flac" }

// Encode writes the samples as signed 8-bit verbatim frames
func (FLAC) Encode(w io.WriteSeeker, samples []byte, format audio.Format) error {
	if err := format.Validate(); err != nil {
		return err
	}
	if format.SampleRate > flacMaxSampleRate {
		return fmt.Errorf("flac cannot store sample rate %dHz (max %dHz)", format.SampleRate, flacMaxSampleRate)
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  flacMinBlockSize,
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(format.SampleRate),
		NChannels:     uint8(format.Channels),
		BitsPerSample: uint8(format.BitDepth),
		NSamples:      uint64(len(samples)),
	}

	enc, err := flac.NewEncoder(w, info)
	if err != nil {
		return fmt.Errorf("failed to create flac encoder: %w", err)
	}

	for start := 0; start < len(samples); start += flacBlockSize {
		end := start + flacBlockSize
		if end > len(samples) {
			end = len(samples)
		}

		if err := enc.WriteFrame(newFLACFrame(samples[start:end], start, format)); err != nil {
			enc.Close()
			return fmt.Errorf("failed to write flac frame at sample %d: %w", start, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize flac stream: %w", err)
	}

	return nil
}

// newFLACFrame builds a mono frame whose header carries its first sample number
func newFLACFrame(block []byte, first int, format audio.Format) *frame.Frame {
	subframe := &frame.Subframe{
		SubHeader: frame.SubHeader{
			Pred: frame.PredVerbatim,
		},
		Samples:  make([]int32, len(block)),
		NSamples: len(block),
	}
	for i, s := range block {
		subframe.Samples[i] = audio.SampleFromUint8(s)
	}

	return &frame.Frame{
		Header: frame.Header{
			HasFixedBlockSize: false,
			BlockSize:         uint16(len(block)),
			SampleRate:        frameSampleRate(format.SampleRate),
			Channels:          frame.ChannelsMono,
			BitsPerSample:     uint8(format.BitDepth),
			Num:               uint64(first),
		},
		Subframes: []*frame.Subframe{subframe},
	}
}

// frameSampleRate returns the rate to write in a frame header, or 0 to defer
// to STREAMINFO when the header has no encoding for it
func frameSampleRate(rate int) uint32 {
	switch {
	case rate <= 65535:
		return uint32(rate)
	case rate%10 == 0:
		return uint32(rate)
	default:
		return 0
	}
}

// ABOUTME: Oto-based audio output implementation
// ABOUTME: Plays unsigned 8-bit mono buffers to completion using oto
package output

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/ebitengine/oto/v3"
)

// pollInterval is how often Write checks whether the player has drained
const pollInterval = 10 * time.Millisecond

// oto allows one context per process, shared by every Oto output
var (
	sharedMu     sync.Mutex
	sharedCtx    *oto.Context
	sharedFormat audio.Format
)

// Oto output implementation using oto library
type Oto struct {
	otoCtx     *oto.Context
	format     audio.Format
	onProgress ProgressFunc
	ready      bool
}

// NewOto creates a new Oto output
func NewOto(onProgress ProgressFunc) Output {
	return &Oto{
		onProgress: onProgress,
	}
}

// Open initializes the output device
func (o *Oto) Open(format audio.Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	ctx, err := sharedContext(format)
	if err != nil {
		return err
	}

	o.otoCtx = ctx
	o.format = format
	o.ready = true

	return nil
}

// sharedContext returns the process-wide context, creating it on first use
// and resuming it afterwards
func sharedContext(format audio.Format) (*oto.Context, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedCtx != nil {
		if sharedFormat != format {
			return nil, fmt.Errorf("oto context already open at %dHz, cannot reopen at %dHz",
				sharedFormat.SampleRate, format.SampleRate)
		}
		if err := sharedCtx.Resume(); err != nil {
			return nil, fmt.Errorf("failed to resume oto context: %w", err)
		}
		return sharedCtx, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatUnsignedInt8,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	sharedCtx = ctx
	sharedFormat = format
	return ctx, nil
}

// Write plays the buffer and returns once the player has drained
func (o *Oto) Write(samples []byte) error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}
	if len(samples) == 0 {
		return nil
	}

	reader := &progressReader{
		r:          bytes.NewReader(samples),
		total:      len(samples),
		onProgress: o.onProgress,
	}

	player := o.otoCtx.NewPlayer(reader)
	defer player.Close()

	player.Play()

	deadline := time.Now().Add(playbackTimeout(len(samples), o.format.SampleRate))
	for player.IsPlaying() {
		if time.Now().After(deadline) {
			return fmt.Errorf("playback timed out after %d of %d samples", reader.read, len(samples))
		}
		time.Sleep(pollInterval)
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}

	return nil
}

// Close releases output resources
func (o *Oto) Close() error {
	if o.otoCtx != nil && o.ready {
		o.ready = false
		if err := o.otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
	}
	return nil
}

// ABOUTME: Malgo-based audio output implementation
// ABOUTME: Uses miniaudio via malgo with a callback that drains the buffer
package output

import (
	"fmt"
	"sync"
	"time"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/gen2brain/malgo"
)

// Malgo output implementation using malgo/miniaudio library
type Malgo struct {
	malgoCtx   *malgo.AllocatedContext
	device     *malgo.Device
	format     audio.Format
	onProgress ProgressFunc
	ready      bool
	mu         sync.Mutex

	// current is read by the device callback, guarded by playMu
	current *playback
	playMu  sync.Mutex
}

// playback tracks one buffer being drained by the device callback
type playback struct {
	samples []byte
	pos     int
	done    chan struct{}
}

func newPlayback(samples []byte) *playback {
	return &playback{
		samples: samples,
		done:    make(chan struct{}),
	}
}

// fill copies the next chunk into dst and pads the rest with silence.
// It reports finished on the first call after the buffer ran out, so the
// last chunk has been handed to the device before Write returns.
func (p *playback) fill(dst []byte) (n int, finished bool) {
	if p.pos >= len(p.samples) {
		finished = true
	} else {
		n = copy(dst, p.samples[p.pos:])
		p.pos += n
	}

	// Underrun plays silence
	for i := n; i < len(dst); i++ {
		dst[i] = audio.Silence
	}

	return n, finished
}

// NewMalgo creates a new Malgo output
func NewMalgo(onProgress ProgressFunc) Output {
	return &Malgo{
		onProgress: onProgress,
	}
}

// Open initializes the playback device
func (m *Malgo) Open(format audio.Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		if m.format == format {
			return nil
		}
		m.closeDevice()
	}

	if m.malgoCtx == nil {
		ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
		if err != nil {
			return fmt.Errorf("failed to initialize malgo context: %w", err)
		}
		m.malgoCtx = ctx
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatU8
	deviceConfig.Playback.Channels = uint32(format.Channels)
	deviceConfig.SampleRate = uint32(format.SampleRate)
	deviceConfig.Alsa.NoMMap = 1

	onSamples := func(pOutputSample, pInputSamples []byte, frameCount uint32) {
		m.dataCallback(pOutputSample)
	}

	device, err := malgo.InitDevice(m.malgoCtx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onSamples,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize playback device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		return fmt.Errorf("failed to start device: %w", err)
	}

	m.device = device
	m.format = format
	m.ready = true

	return nil
}

// Write queues the buffer and waits for the callback to drain it
func (m *Malgo) Write(samples []byte) error {
	if !m.ready {
		return fmt.Errorf("output not initialized")
	}
	if len(samples) == 0 {
		return nil
	}

	pb := newPlayback(samples)

	m.playMu.Lock()
	m.current = pb
	m.playMu.Unlock()

	select {
	case <-pb.done:
		return nil
	case <-time.After(playbackTimeout(len(samples), m.format.SampleRate)):
		m.playMu.Lock()
		m.current = nil
		played := pb.pos
		m.playMu.Unlock()
		return fmt.Errorf("playback timed out after %d of %d samples", played, len(samples))
	}
}

// dataCallback is called by malgo to fill the audio output buffer
func (m *Malgo) dataCallback(pOutput []byte) {
	m.playMu.Lock()
	pb := m.current
	if pb == nil {
		m.playMu.Unlock()
		for i := range pOutput {
			pOutput[i] = audio.Silence
		}
		return
	}

	n, finished := pb.fill(pOutput)
	played := pb.pos
	if finished {
		m.current = nil
		close(pb.done)
	}
	m.playMu.Unlock()

	if n > 0 && m.onProgress != nil {
		m.onProgress(played, len(pb.samples))
	}
}

// Close releases output resources
func (m *Malgo) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeDevice()

	if m.malgoCtx != nil {
		err := m.malgoCtx.Uninit()
		m.malgoCtx.Free()
		m.malgoCtx = nil
		if err != nil {
			return fmt.Errorf("malgo context uninit failed: %w", err)
		}
	}

	return nil
}

// closeDevice stops and uninitializes the device (must hold m.mu)
func (m *Malgo) closeDevice() {
	if m.device != nil {
		_ = m.device.Stop()
		m.device.Uninit()
		m.device = nil
		m.ready = false
	}
}

// ABOUTME: Playback device enumeration
// ABOUTME: Lists playback devices through malgo
package output

import (
	"fmt"

	"github.com/gen2brain/malgo"
)

// DeviceInfo describes a playback device
type DeviceInfo struct {
	ID   string
	Name string
}

// PlaybackDevices returns all playback devices known to miniaudio
func PlaybackDevices() ([]DeviceInfo, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize malgo context: %w", err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	infos, err := ctx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("failed to list playback devices: %w", err)
	}

	devices := make([]DeviceInfo, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, DeviceInfo{
			ID:   info.ID.String(),
			Name: info.Name(),
		})
	}
	return devices, nil
}

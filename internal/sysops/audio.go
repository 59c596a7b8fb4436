package sysops

import (
	"fmt"

	volume "github.com/itchyny/volume-go"
)

// SystemAudio toggles mute on the default audio endpoint.
type SystemAudio struct{}

// SetMute mutes or unmutes system audio.
func (SystemAudio) SetMute(mute bool) error {
	var err error
	if mute {
		err = volume.Mute()
	} else {
		err = volume.Unmute()
	}
	if err != nil {
		return fmt.Errorf("set mute=%v: %w", mute, err)
	}
	return nil
}

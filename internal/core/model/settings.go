package model

import "math"

// Settings holds the cue preferences chosen by the user.
type Settings struct {
	Sound   bool
	Vibrate bool
	Volume  float64
}

// DefaultSettings returns the settings used when nothing was saved yet.
func DefaultSettings() Settings {
	return Settings{
		Sound:   true,
		Vibrate: true,
		Volume:  0.5,
	}
}

// ClampVolume limits a volume to [0, 1].
func ClampVolume(volume float64) float64 {
	if volume < 0 || math.IsNaN(volume) {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}

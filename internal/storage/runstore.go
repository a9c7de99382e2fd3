package storage

import (
	"fmt"

	"couchrunner/internal/codec"
	"couchrunner/internal/core/model"

	"github.com/rs/zerolog"
)

// Keys used in the backing store.
const (
	KeySound   = "sound"
	KeyVibrate = "vibrate"
	KeyVolume  = "volume"
	KeyRuns    = "runs"
)

// RunStore reads and writes settings and the catalog without caching, so a
// get always reflects the latest set. Calls block on the backing store and
// should stay off tick handling paths.
type RunStore struct {
	store  Store
	logger zerolog.Logger
}

// NewRunStore wraps a backing store.
func NewRunStore(store Store, logger zerolog.Logger) *RunStore {
	return &RunStore{store: store, logger: logger}
}

// Sound reports whether audio cues are enabled. Default true.
func (runs *RunStore) Sound() bool {
	if value, ok := runs.store.Bool(KeySound); ok {
		return value
	}
	return model.DefaultSettings().Sound
}

// SetSound stores the audio cue setting.
func (runs *RunStore) SetSound(sound bool) error {
	return runs.set(KeySound, runs.store.SetBool(KeySound, sound))
}

// Vibrate reports whether haptic cues are enabled. Default true.
func (runs *RunStore) Vibrate() bool {
	if value, ok := runs.store.Bool(KeyVibrate); ok {
		return value
	}
	return model.DefaultSettings().Vibrate
}

// SetVibrate stores the haptic cue setting.
func (runs *RunStore) SetVibrate(vibrate bool) error {
	return runs.set(KeyVibrate, runs.store.SetBool(KeyVibrate, vibrate))
}

// Volume returns the cue volume in [0, 1]. Default 0.5.
func (runs *RunStore) Volume() float64 {
	if value, ok := runs.store.Float(KeyVolume); ok {
		return model.ClampVolume(value)
	}
	return model.DefaultSettings().Volume
}

// SetVolume stores the cue volume, clamped to [0, 1].
func (runs *RunStore) SetVolume(volume float64) error {
	return runs.set(KeyVolume, runs.store.SetFloat(KeyVolume, model.ClampVolume(volume)))
}

// Settings reads all cue settings.
func (runs *RunStore) Settings() model.Settings {
	return model.Settings{
		Sound:   runs.Sound(),
		Vibrate: runs.Vibrate(),
		Volume:  runs.Volume(),
	}
}

// SaveSettings writes all cue settings.
func (runs *RunStore) SaveSettings(settings model.Settings) error {
	if err := runs.SetSound(settings.Sound); err != nil {
		return err
	}
	if err := runs.SetVibrate(settings.Vibrate); err != nil {
		return err
	}
	return runs.SetVolume(settings.Volume)
}

// Runs returns the stored catalog. A missing or malformed value yields the
// default program.
func (runs *RunStore) Runs() model.Catalog {
	encoded, ok := runs.store.String(KeyRuns)
	if !ok {
		return model.DefaultCatalog()
	}
	catalog, err := codec.Decode(encoded)
	if err != nil {
		runs.logger.Warn().Err(err).Str("key", KeyRuns).Msg("stored catalog unreadable, using default program")
		return model.DefaultCatalog()
	}
	return catalog
}

// SetRuns encodes and stores the whole catalog.
func (runs *RunStore) SetRuns(catalog []model.Run) error {
	return runs.set(KeyRuns, runs.store.SetString(KeyRuns, codec.Encode(catalog)))
}

// Reset stores the default program, clearing all progress.
func (runs *RunStore) Reset() (model.Catalog, error) {
	catalog := model.DefaultCatalog()
	if err := runs.SetRuns(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (runs *RunStore) set(key string, err error) error {
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// Package tracker is the controller between the run store, the interval
// timer and a front-end. It owns the catalog and the cue settings.
package tracker

import (
	"errors"
	"fmt"
	"sync"

	"couchrunner/internal/core/model"
	"couchrunner/internal/storage"

	"github.com/rs/zerolog"
)

// ErrClosed indicates a catalog change after Close; it is kept in memory only.
var ErrClosed = errors.New("tracker closed")

// Tracker holds the program state for one front-end. Catalog writes go
// through a single background writer so timer callbacks never block on the
// store.
type Tracker struct {
	mu       sync.Mutex
	store    *storage.RunStore
	logger   zerolog.Logger
	catalog  model.Catalog
	settings model.Settings

	saves   chan model.Catalog
	done    chan struct{}
	closeMu sync.Once
	closed  bool
}

// New loads settings and the catalog from store and starts the writer.
func New(store *storage.RunStore, logger zerolog.Logger) *Tracker {
	tracker := &Tracker{
		store:    store,
		logger:   logger,
		catalog:  store.Runs(),
		settings: store.Settings(),
		saves:    make(chan model.Catalog, 16),
		done:     make(chan struct{}),
	}
	go tracker.writeLoop()
	return tracker
}

// Close flushes pending catalog writes and stops the writer.
func (tracker *Tracker) Close() {
	tracker.closeMu.Do(func() {
		tracker.mu.Lock()
		tracker.closed = true
		close(tracker.saves)
		tracker.mu.Unlock()
		<-tracker.done
	})
}

// Runs returns a snapshot of the catalog.
func (tracker *Tracker) Runs() model.Catalog {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.catalog.Clone()
}

// Run returns run i.
func (tracker *Tracker) Run(i int) (model.Run, error) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if i < 0 || i >= len(tracker.catalog) {
		return model.Run{}, fmt.Errorf("%w: %d", model.ErrRunIndex, i)
	}
	return tracker.catalog[i], nil
}

// Settings returns the current cue settings.
func (tracker *Tracker) Settings() model.Settings {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.settings
}

// SetSound updates and persists the sound setting.
func (tracker *Tracker) SetSound(sound bool) error {
	tracker.mu.Lock()
	tracker.settings.Sound = sound
	tracker.mu.Unlock()
	return tracker.store.SetSound(sound)
}

// SetVibrate updates and persists the vibration setting.
func (tracker *Tracker) SetVibrate(vibrate bool) error {
	tracker.mu.Lock()
	tracker.settings.Vibrate = vibrate
	tracker.mu.Unlock()
	return tracker.store.SetVibrate(vibrate)
}

// SetVolume updates and persists the volume, clamped to [0, 1].
func (tracker *Tracker) SetVolume(volume float64) error {
	volume = model.ClampVolume(volume)
	tracker.mu.Lock()
	tracker.settings.Volume = volume
	tracker.mu.Unlock()
	return tracker.store.SetVolume(volume)
}

// UpdateSettings replaces all cue settings.
func (tracker *Tracker) UpdateSettings(settings model.Settings) error {
	settings.Volume = model.ClampVolume(settings.Volume)
	tracker.mu.Lock()
	tracker.settings = settings
	tracker.mu.Unlock()
	return tracker.store.SaveSettings(settings)
}

// Toggle flips the completion flag of run i and queues a save.
func (tracker *Tracker) Toggle(i int) (bool, error) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	completed, err := tracker.catalog.Toggle(i)
	if err != nil {
		return false, err
	}
	tracker.logger.Info().Int("index", i).Bool("completed", completed).Msg("run toggled")
	return completed, tracker.queueSaveLocked()
}

// Complete marks run i as completed and queues a save.
func (tracker *Tracker) Complete(i int) error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if err := tracker.catalog.MarkCompleted(i); err != nil {
		return err
	}
	tracker.logger.Info().Int("index", i).Str("run", tracker.catalog[i].Name()).Msg("run completed")
	return tracker.queueSaveLocked()
}

// Reset restores the default program, clearing all progress.
func (tracker *Tracker) Reset() error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.catalog = model.DefaultCatalog()
	tracker.logger.Info().Msg("program reset")
	return tracker.queueSaveLocked()
}

// queueSaveLocked hands a snapshot to the writer. Saves are applied in
// queue order, so the newest state always wins.
func (tracker *Tracker) queueSaveLocked() error {
	if tracker.closed {
		return ErrClosed
	}
	tracker.saves <- tracker.catalog.Clone()
	return nil
}

func (tracker *Tracker) writeLoop() {
	defer close(tracker.done)
	for catalog := range tracker.saves {
		// Only the newest snapshot matters.
		for pending := len(tracker.saves); pending > 0; pending-- {
			next, ok := <-tracker.saves
			if !ok {
				break
			}
			catalog = next
		}
		if err := tracker.store.SetRuns(catalog); err != nil {
			tracker.logger.Error().Err(err).Msg("saving catalog failed")
		}
	}
}

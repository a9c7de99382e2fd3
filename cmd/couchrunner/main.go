package main

import (
	"errors"
	"os"

	"couchrunner/internal/config"
	"couchrunner/internal/core/model"
	"couchrunner/internal/core/timer"
	"couchrunner/internal/cue"
	"couchrunner/internal/logging"
	"couchrunner/internal/platform"
	"couchrunner/internal/storage"
	"couchrunner/internal/tracker"
	"couchrunner/internal/ui/preferences"
	"couchrunner/internal/ui/runs"
	"couchrunner/internal/ui/track"
	"couchrunner/internal/ui/tray"
	"couchrunner/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
)

const appID = "com.couchrunner.app"

func main() {
	cfg, cfgErr := config.Load(config.DefaultPath())
	if cfgErr != nil {
		defaults := config.Default()
		cfg = &defaults
	}
	logger, err := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("config unusable, using defaults")
	}

	guard, err := platform.AcquireSingleInstance(config.AppName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		if err := platform.ActivateRunning(config.AppName); err != nil {
			logger.Error().Err(err).Msg("single instance")
		}
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("single instance")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconApp))

	runStore := storage.NewRunStore(storage.NewPreferencesStore(fyneApp.Preferences()), logger)
	runTracker := tracker.New(runStore, logger)
	defer runTracker.Close()

	trackWindow := track.New(fyneApp)
	sink := cue.Multi(cue.LogSink{Logger: logger}, track.NotificationSink{App: fyneApp})

	prefsWindow := preferences.New(fyneApp, runTracker.Settings(), func(updated model.Settings) {
		if err := runTracker.UpdateSettings(updated); err != nil {
			logger.Error().Err(err).Msg("saving settings")
		}
	})

	var runsWindow *runs.Window
	runsWindow = runs.New(fyneApp, runTracker, runs.Callbacks{
		OnTrack: func(index int) {
			session, err := runTracker.Track(index, trackWindow, sink,
				timer.WithDispatcher(fyne.Do),
				timer.WithTickPeriod(cfg.Timer.TickInterval))
			if err != nil {
				dialog.ShowError(err, runsWindow.Window())
				return
			}
			trackWindow.Show(session)
		},
		OnPreferences: prefsWindow.Show,
	})
	runsWindow.Window().SetMaster()

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Idle:    resources.MustIcon(resources.IconApp),
			Running: resources.MustIcon(resources.IconRunning),
			Paused:  resources.MustIcon(resources.IconPaused),
		}, tray.Callbacks{
			OnShowRuns:    runsWindow.Show,
			OnToggleTimer: trackWindow.Toggle,
			OnSkip:        trackWindow.Skip,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
	} else {
		logger.Info().Msg("system tray unsupported on this platform")
	}

	trackWindow.SetOnChange(func() {
		session := trackWindow.Session()
		state := session.Timer().State()
		if state == timer.StateCompleted {
			runsWindow.Refresh()
		}
		if trayManager != nil {
			trayManager.SetStatus(trackWindow.Status())
			trayManager.SetSession(state != timer.StateCompleted, state == timer.StateActive)
		}
	})

	guard.OnActivate(func() {
		fyne.Do(runsWindow.Show)
	})

	runsWindow.Show()
	fyneApp.Run()
}

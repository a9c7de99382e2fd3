package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowRuns    func()
	OnToggleTimer func()
	OnSkip        func()
	OnPreferences func()
	OnQuit        func()
}

// Icons are swapped as the session state changes.
type Icons struct {
	Idle    fyne.Resource
	Running fyne.Resource
	Paused  fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	icons       Icons
	statusItem  *fyne.MenuItem
	runsItem    *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	skipItem    *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	callbacks   Callbacks
	tracking    bool
	active      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		icons:       icons,
		callbacks:   callbacks,
		statusLabel: "no run selected",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.runsItem = fyne.NewMenuItem("Show runs", func() {
		if manager.callbacks.OnShowRuns != nil {
			manager.callbacks.OnShowRuns()
		}
	})
	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleTimer != nil {
			manager.callbacks.OnToggleTimer()
		}
	})
	manager.skipItem = fyne.NewMenuItem("Skip interval", func() {
		if manager.callbacks.OnSkip != nil {
			manager.callbacks.OnSkip()
		}
	})
	manager.prefsItem = fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refresh()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.refresh()
}

// SetSession updates the controls for the session state. tracking is false
// when no run is loaded or the loaded run has finished.
func (manager *Manager) SetSession(tracking, active bool) {
	if tracking == manager.tracking && active == manager.active {
		return
	}
	manager.tracking = tracking
	manager.active = active
	manager.refresh()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("CouchRunner",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.skipItem,
		fyne.NewMenuItemSeparator(),
		manager.runsItem,
		manager.prefsItem,
		manager.quitItem,
	)
}

func (manager *Manager) refresh() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	if manager.active {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.toggleItem.Disabled = !manager.tracking
	manager.skipItem.Disabled = !manager.tracking

	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.Menu())
	if icon := manager.icon(); icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) icon() fyne.Resource {
	switch {
	case manager.active:
		return manager.icons.Running
	case manager.tracking:
		return manager.icons.Paused
	default:
		return manager.icons.Idle
	}
}

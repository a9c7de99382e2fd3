package runs

import (
	"fmt"

	"couchrunner/internal/core/model"
	"couchrunner/internal/core/timer"
	"couchrunner/internal/tracker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines run list action handlers.
type Callbacks struct {
	OnTrack       func(index int)
	OnPreferences func()
}

// Window lists the program with completion marks.
type Window struct {
	window    fyne.Window
	tracker   *tracker.Tracker
	callbacks Callbacks
	catalog   model.Catalog
	list      *widget.List
	progress  *widget.Label
	track     *widget.Button
	selected  int
}

// New creates the run list window.
func New(app fyne.App, tr *tracker.Tracker, callbacks Callbacks) *Window {
	window := app.NewWindow("CouchRunner")
	runs := &Window{
		window:    window,
		tracker:   tr,
		callbacks: callbacks,
		progress:  widget.NewLabel(""),
		selected:  -1,
	}

	runs.list = widget.NewList(
		func() int {
			return len(runs.catalog)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, widget.NewCheck("", nil), nil,
				container.NewVBox(
					widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
					widget.NewLabel(""),
				))
		},
		runs.updateItem,
	)
	runs.list.OnSelected = func(id widget.ListItemID) {
		runs.selected = id
	}

	runs.track = widget.NewButton("Track", func() {
		index := runs.selected
		if index < 0 {
			index = runs.catalog.NextIncomplete()
		}
		if index >= 0 && runs.callbacks.OnTrack != nil {
			runs.callbacks.OnTrack(index)
		}
	})
	runs.track.Importance = widget.HighImportance
	preferencesButton := widget.NewButton("Preferences", func() {
		if runs.callbacks.OnPreferences != nil {
			runs.callbacks.OnPreferences()
		}
	})
	resetButton := widget.NewButton("Reset", runs.confirmReset)

	buttons := container.NewHBox(runs.track, layout.NewSpacer(), runs.progress, layout.NewSpacer(), preferencesButton, resetButton)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, runs.list))
	window.Resize(fyne.NewSize(420, 560))

	runs.Refresh()
	return runs
}

// Window returns the underlying fyne window.
func (runs *Window) Window() fyne.Window {
	return runs.window
}

// Show displays the run list.
func (runs *Window) Show() {
	runs.window.Show()
	runs.window.RequestFocus()
}

// Refresh reloads the catalog from the tracker.
func (runs *Window) Refresh() {
	runs.catalog = runs.tracker.Runs()
	runs.progress.SetText(fmt.Sprintf("%d of %d done", runs.catalog.CompletedCount(), len(runs.catalog)))
	runs.list.Refresh()
}

func (runs *Window) updateItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(runs.catalog) {
		return
	}
	run := runs.catalog[id]
	row := item.(*fyne.Container)
	labels := row.Objects[0].(*fyne.Container)
	check := row.Objects[1].(*widget.Check)

	labels.Objects[0].(*widget.Label).SetText(run.Name())
	labels.Objects[1].(*widget.Label).SetText(fmt.Sprintf("%s (%s)", run.Description(), timer.FormatClock(run.TotalSeconds())))

	// Detach the handler so the programmatic update is not taken as a toggle.
	check.OnChanged = nil
	check.SetChecked(run.Completed)
	check.OnChanged = func(bool) {
		runs.toggle(id)
	}
}

func (runs *Window) toggle(index int) {
	if _, err := runs.tracker.Toggle(index); err != nil {
		dialog.ShowError(err, runs.window)
	}
	runs.Refresh()
}

func (runs *Window) confirmReset() {
	dialog.ShowConfirm("Reset program", "Restore the default program and clear all progress?", func(ok bool) {
		if !ok {
			return
		}
		if err := runs.tracker.Reset(); err != nil {
			dialog.ShowError(err, runs.window)
		}
		runs.selected = -1
		runs.list.UnselectAll()
		runs.Refresh()
	}, runs.window)
}

package preferences

import (
	"fmt"

	"couchrunner/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    model.Settings
	onSave      func(model.Settings)
	sound       *widget.Check
	vibrate     *widget.Check
	volume      *widget.Slider
	volumeLabel *widget.Label
	cancel      *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("CouchRunner Settings")

	sound := widget.NewCheck("Play sound at interval changes", nil)
	vibrate := widget.NewCheck("Vibrate at interval changes", nil)

	volume := widget.NewSlider(0, 1)
	volume.Step = 0.05
	volumeLabel := widget.NewLabel("")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Cues", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		vibrate,
		container.NewHBox(widget.NewLabel("Volume"), layout.NewSpacer(), volumeLabel),
		volume,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 240))

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		sound:       sound,
		vibrate:     vibrate,
		volume:      volume,
		volumeLabel: volumeLabel,
		cancel:      cancelButton,
	}

	volume.OnChanged = prefs.showVolume
	sound.OnChanged = func(enabled bool) {
		if enabled {
			volume.Enable()
		} else {
			volume.Disable()
		}
	}
	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(cancelButton.OnTapped)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.sound.SetChecked(settings.Sound)
	prefs.vibrate.SetChecked(settings.Vibrate)
	prefs.volume.SetValue(model.ClampVolume(settings.Volume))
	prefs.showVolume(prefs.volume.Value)
}

func (prefs *Window) showVolume(value float64) {
	prefs.volumeLabel.SetText(fmt.Sprintf("%d%%", int(value*100+0.5)))
}

func (prefs *Window) handleSave() {
	settings := model.Settings{
		Sound:   prefs.sound.Checked,
		Vibrate: prefs.vibrate.Checked,
		Volume:  model.ClampVolume(prefs.volume.Value),
	}
	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

package track

import (
	"fmt"
	"image/color"

	"couchrunner/internal/core/model"
	"couchrunner/internal/core/timer"
	"couchrunner/internal/tracker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	accentColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	background  = color.NRGBA{R: 24, G: 24, B: 24, A: 235}
)

// Window shows the clocks of one session and its Start/Pause/Skip controls.
// It is the session's view; all methods run on the fyne thread.
type Window struct {
	window        fyne.Window
	titleLabel    *canvas.Text
	subtitleLabel *canvas.Text
	phaseLabel    *canvas.Text
	intervalClock *canvas.Text
	totalClock    *canvas.Text
	startButton   *widget.Button
	skipButton    *widget.Button
	session       *tracker.Session
	onChange      func()
}

// New creates the tracking window. It stays hidden until Show.
func New(app fyne.App) *Window {
	window := app.NewWindow("CouchRunner")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	titleLabel := canvas.NewText("", textColor)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 21

	subtitleLabel := canvas.NewText("", textColor)
	subtitleLabel.TextSize = 14

	phaseLabel := canvas.NewText("", accentColor)
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 28

	intervalClock := canvas.NewText("--:--", accentColor)
	intervalClock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	intervalClock.TextSize = 40

	totalClock := canvas.NewText("--:--", textColor)
	totalClock.TextStyle = fyne.TextStyle{Monospace: true}
	totalClock.TextSize = 16

	track := &Window{
		window:        window,
		titleLabel:    titleLabel,
		subtitleLabel: subtitleLabel,
		phaseLabel:    phaseLabel,
		intervalClock: intervalClock,
		totalClock:    totalClock,
	}
	track.startButton = widget.NewButton("Start", track.toggle)
	track.skipButton = widget.NewButton("Skip", track.skip)

	labels := container.New(&panelLayout{}, titleLabel, subtitleLabel, phaseLabel, intervalClock, totalClock)
	buttons := container.NewGridWithColumns(2, track.startButton, track.skipButton)
	content := container.NewBorder(nil, container.NewPadded(buttons), nil, nil, labels)
	window.SetContent(container.NewStack(canvas.NewRectangle(background), content))
	window.Resize(fyne.NewSize(360, 300))

	window.SetCloseIntercept(func() {
		if track.session != nil {
			track.session.Pause()
		}
		track.refreshControls()
		window.Hide()
	})

	track.refreshControls()
	return track
}

// SetOnChange registers a hook called after every clock or state change.
func (track *Window) SetOnChange(handler func()) {
	track.onChange = handler
}

// Show attaches session and displays the window. A previous session is paused.
func (track *Window) Show(session *tracker.Session) {
	if track.session != nil && track.session != session {
		track.session.Pause()
	}
	track.session = session

	run := session.Run()
	track.titleLabel.Text = run.Name()
	track.titleLabel.Refresh()
	track.subtitleLabel.Text = run.Description()
	track.subtitleLabel.Refresh()
	track.refreshClocks()
	track.refreshControls()

	track.window.Show()
	track.window.RequestFocus()
}

// Session returns the attached session, or nil.
func (track *Window) Session() *tracker.Session {
	return track.session
}

// Status summarizes the session for the tray.
func (track *Window) Status() string {
	if track.session == nil {
		return "no run selected"
	}
	clock := track.session.Timer()
	switch clock.State() {
	case timer.StateCompleted:
		return track.session.Run().Name() + " completed"
	case timer.StateStopped:
		return fmt.Sprintf("%s paused, %s left", track.session.Run().Name(), clock.TotalRemaining())
	}
	_, current := clock.Current()
	return fmt.Sprintf("%s %s, %s left", current.Label(), clock.IntervalRemaining(), clock.TotalRemaining())
}

// Tick implements timer.Observer.
func (track *Window) Tick() {
	track.refreshClocks()
	track.changed()
}

// NextInterval implements timer.Observer.
func (track *Window) NextInterval(model.Interval) {
	track.refreshClocks()
	track.refreshControls()
	track.changed()
}

// FinishRun implements timer.Observer.
func (track *Window) FinishRun() {
	track.phaseLabel.Text = "Done!"
	track.phaseLabel.Refresh()
	track.refreshClocks()
	track.refreshControls()
	track.changed()
}

// Toggle starts a stopped session or pauses an active one.
func (track *Window) Toggle() {
	track.toggle()
}

// Skip ends the current interval.
func (track *Window) Skip() {
	track.skip()
}

func (track *Window) toggle() {
	if track.session == nil {
		return
	}
	switch track.session.Timer().State() {
	case timer.StateStopped:
		track.session.Start()
	case timer.StateActive:
		track.session.Pause()
	}
	track.refreshControls()
	track.changed()
}

func (track *Window) skip() {
	if track.session == nil {
		return
	}
	track.session.Skip()
	track.refreshControls()
	track.changed()
}

func (track *Window) refreshClocks() {
	if track.session == nil {
		return
	}
	clock := track.session.Timer()
	if clock.State() != timer.StateCompleted {
		_, current := clock.Current()
		track.phaseLabel.Text = current.Label()
		track.phaseLabel.Refresh()
	}
	track.intervalClock.Text = clock.IntervalRemaining()
	track.intervalClock.Refresh()
	track.totalClock.Text = "total " + clock.TotalRemaining()
	track.totalClock.Refresh()
}

func (track *Window) refreshControls() {
	if track.session == nil {
		track.startButton.Disable()
		track.skipButton.Disable()
		return
	}
	switch track.session.Timer().State() {
	case timer.StateActive:
		track.startButton.SetText("Pause")
		track.startButton.Enable()
		track.skipButton.Enable()
	case timer.StateStopped:
		track.startButton.SetText("Start")
		track.startButton.Enable()
		track.skipButton.Enable()
	case timer.StateCompleted:
		track.startButton.SetText("Start")
		track.startButton.Disable()
		track.skipButton.Disable()
	}
}

func (track *Window) changed() {
	if track.onChange != nil {
		track.onChange()
	}
}

// panelLayout stacks title and subtitle at the top and the clocks below.
type panelLayout struct{}

func (layout *panelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 5 {
		return
	}
	title, subtitle, phase, interval, total := objects[0], objects[1], objects[2], objects[3], objects[4]

	pad := size.Height * 0.05
	availableWidth := size.Width - pad*2
	if availableWidth < 0 {
		availableWidth = 0
	}

	y := pad
	for _, object := range []fyne.CanvasObject{title, subtitle} {
		height := object.MinSize().Height
		object.Move(fyne.NewPos(pad, y))
		object.Resize(fyne.NewSize(availableWidth, height))
		y += height + 6
	}

	// Clocks are centered in the space left below the header.
	clocks := []fyne.CanvasObject{phase, interval, total}
	clocksHeight := float32(0)
	for _, object := range clocks {
		clocksHeight += object.MinSize().Height
	}
	y += (size.Height - y - clocksHeight) / 2
	for _, object := range clocks {
		minSize := object.MinSize()
		object.Move(fyne.NewPos((size.Width-minSize.Width)/2, y))
		object.Resize(minSize)
		y += minSize.Height
	}
}

func (layout *panelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	width, height := float32(0), float32(0)
	for _, object := range objects {
		minSize := object.MinSize()
		if minSize.Width > width {
			width = minSize.Width
		}
		height += minSize.Height
	}
	return fyne.NewSize(width+20, height+40)
}

package track

import (
	"testing"

	"couchrunner/internal/core/model"
	"couchrunner/internal/core/timer"
	"couchrunner/internal/core/timer/timertest"
	"couchrunner/internal/storage"
	"couchrunner/internal/tracker"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
)

func newSession(t *testing.T, view *Window, scheduler timer.Scheduler) *tracker.Session {
	t.Helper()
	runStore := storage.NewRunStore(storage.NewMemoryStore(), zerolog.Nop())
	short, err := model.NewRun("Tiny", "quick check", false, []model.Interval{
		model.NewInterval(3, model.LabelWarmup),
		model.NewInterval(2, model.LabelJog),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := runStore.SetRuns([]model.Run{short}); err != nil {
		t.Fatal(err)
	}
	tr := tracker.New(runStore, zerolog.Nop())
	t.Cleanup(tr.Close)

	session, err := tr.Track(0, view, nil, timer.WithScheduler(scheduler))
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func TestWindowFollowsSession(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := New(app)
	if !window.startButton.Disabled() {
		t.Error("start enabled without a session")
	}
	if window.Status() != "no run selected" {
		t.Errorf("status = %q", window.Status())
	}

	changes := 0
	window.SetOnChange(func() { changes++ })

	scheduler := &timertest.Scheduler{}
	session := newSession(t, window, scheduler)
	window.Show(session)

	if window.titleLabel.Text != "Tiny" || window.phaseLabel.Text != model.LabelWarmup {
		t.Errorf("labels = %q %q", window.titleLabel.Text, window.phaseLabel.Text)
	}
	if window.intervalClock.Text != "00:03" || window.totalClock.Text != "total 00:05" {
		t.Errorf("clocks = %q %q", window.intervalClock.Text, window.totalClock.Text)
	}

	test.Tap(window.startButton)
	if window.startButton.Text != "Pause" {
		t.Errorf("button = %q, want Pause", window.startButton.Text)
	}
	scheduler.Advance(1)
	if window.intervalClock.Text != "00:02" {
		t.Errorf("interval clock = %q, want 00:02", window.intervalClock.Text)
	}
	if window.Status() != "Warmup 00:02, 00:04 left" {
		t.Errorf("status = %q", window.Status())
	}

	test.Tap(window.startButton)
	if window.startButton.Text != "Start" {
		t.Errorf("button = %q, want Start", window.startButton.Text)
	}
	if window.Status() != "Tiny paused, 00:04 left" {
		t.Errorf("status = %q", window.Status())
	}

	test.Tap(window.skipButton)
	if window.phaseLabel.Text != model.LabelJog || window.intervalClock.Text != "00:02" {
		t.Errorf("after skip = %q %q", window.phaseLabel.Text, window.intervalClock.Text)
	}

	test.Tap(window.skipButton)
	if window.phaseLabel.Text != "Done!" || window.totalClock.Text != "total 00:00" {
		t.Errorf("after finish = %q %q", window.phaseLabel.Text, window.totalClock.Text)
	}
	if !window.startButton.Disabled() || !window.skipButton.Disabled() {
		t.Error("controls enabled after completion")
	}
	if window.Status() != "Tiny completed" {
		t.Errorf("status = %q", window.Status())
	}
	if changes == 0 {
		t.Error("change hook never called")
	}
}

func TestCueMessage(t *testing.T) {
	if cueMessage("walk") != "Time to walk" || cueMessage("complete") != "Run complete, well done!" {
		t.Error("unexpected cue messages")
	}
}

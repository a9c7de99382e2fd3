package timer

import (
	"errors"
	"sync"
	"testing"
	"time"

	"couchrunner/internal/core/model"
	"couchrunner/internal/core/timer/timertest"
)

type recorder struct {
	mu       sync.Mutex
	ticks    int
	next     []model.Interval
	finished int
}

func (r *recorder) Tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
}

func (r *recorder) NextInterval(next model.Interval) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next = append(r.next, next)
}

func (r *recorder) FinishRun() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished++
}

func (r *recorder) finishCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished
}

func scenarioIntervals() []model.Interval {
	return []model.Interval{
		model.NewInterval(300, "Warmup"),
		model.NewInterval(60, "Jog"),
		model.NewInterval(90, "Walk"),
	}
}

func newManual(t *testing.T, intervals []model.Interval) (*Timer, *timertest.Scheduler, *recorder) {
	t.Helper()
	scheduler := &timertest.Scheduler{}
	observer := &recorder{}
	timer, err := New(intervals, observer, WithScheduler(scheduler))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return timer, scheduler, observer
}

func TestNewRejectsEmptyIntervals(t *testing.T) {
	timer, err := New(nil, &recorder{})
	if !errors.Is(err, ErrNoIntervals) {
		t.Fatalf("err = %v, want ErrNoIntervals", err)
	}
	if timer != nil {
		t.Error("expected nil timer")
	}
}

func TestInitialClocks(t *testing.T) {
	timer, _, _ := newManual(t, scenarioIntervals())
	if got := timer.IntervalRemaining(); got != "05:00" {
		t.Errorf("IntervalRemaining = %q, want 05:00", got)
	}
	if got := timer.TotalRemaining(); got != "07:30" {
		t.Errorf("TotalRemaining = %q, want 07:30", got)
	}
	if timer.State() != StateStopped {
		t.Errorf("State = %v, want stopped", timer.State())
	}
}

// TestAutoAdvanceScenario verifies 301 ticks over warmup/jog/walk land one second into the jog.
func TestAutoAdvanceScenario(t *testing.T) {
	timer, scheduler, observer := newManual(t, scenarioIntervals())
	timer.Start()

	if fired := scheduler.Advance(301); fired != 301 {
		t.Fatalf("fired %d ticks, want 301", fired)
	}

	index, current := timer.Current()
	if index != 1 || current.Label() != "Jog" {
		t.Fatalf("current = %d %v, want 1 Jog", index, current)
	}
	if got := timer.IntervalRemainingSeconds(); got != 59 {
		t.Errorf("interval remaining = %d, want 59", got)
	}
	if got := timer.TotalRemaining(); got != "02:29" {
		t.Errorf("TotalRemaining = %q, want 02:29", got)
	}
	if len(observer.next) != 1 || observer.next[0].Label() != "Jog" {
		t.Errorf("next events = %v, want [Jog]", observer.next)
	}
	if observer.ticks != 300 {
		t.Errorf("tick events = %d, want 300", observer.ticks)
	}
	if timer.State() != StateActive {
		t.Errorf("State = %v, want active", timer.State())
	}
}

func TestRunsToCompletionByTicks(t *testing.T) {
	timer, scheduler, observer := newManual(t, scenarioIntervals())
	timer.Start()

	if fired := scheduler.Advance(1000); fired != 450 {
		t.Errorf("fired %d ticks, want 450", fired)
	}
	if timer.State() != StateCompleted {
		t.Fatalf("State = %v, want completed", timer.State())
	}
	if observer.finished != 1 || len(observer.next) != 2 {
		t.Errorf("finished = %d next = %d, want 1 and 2", observer.finished, len(observer.next))
	}
	if timer.TotalRemaining() != "00:00" || timer.IntervalRemaining() != "00:00" {
		t.Errorf("clocks = %s %s, want zeros", timer.IntervalRemaining(), timer.TotalRemaining())
	}
}

// TestSkipThroughRunFinishesOnce verifies N skips complete the run and later calls never re-fire FinishRun.
func TestSkipThroughRunFinishesOnce(t *testing.T) {
	intervals := scenarioIntervals()
	timer, scheduler, observer := newManual(t, intervals)
	timer.Start()

	for i := 0; i < len(intervals); i++ {
		if timer.State() == StateCompleted {
			t.Fatalf("completed after %d skips", i)
		}
		timer.Skip()
	}
	if timer.State() != StateCompleted {
		t.Fatalf("State = %v, want completed", timer.State())
	}
	scheduled := scheduler.Scheduled()

	timer.Skip()
	timer.Pause()
	timer.Start()
	timer.Skip()

	if observer.finished != 1 {
		t.Errorf("FinishRun fired %d times, want 1", observer.finished)
	}
	if len(observer.next) != len(intervals)-1 {
		t.Errorf("NextInterval fired %d times, want %d", len(observer.next), len(intervals)-1)
	}
	if scheduler.Scheduled() != scheduled {
		t.Error("Start after completion scheduled new ticks")
	}
	if scheduler.Live() != nil {
		t.Error("schedule still live after completion")
	}
	if got := timer.TotalRemaining(); got != "00:00" {
		t.Errorf("TotalRemaining = %q, want 00:00", got)
	}
}

func TestSkipOnLastIntervalFiresFinishOnce(t *testing.T) {
	timer, _, observer := newManual(t, []model.Interval{model.NewInterval(30, "Jog")})

	timer.Skip()
	if observer.finished != 1 || timer.State() != StateCompleted {
		t.Fatalf("finished = %d state = %v", observer.finished, timer.State())
	}

	timer.Skip()
	if observer.finished != 1 {
		t.Errorf("second skip fired FinishRun again")
	}
	if timer.State() != StateCompleted {
		t.Errorf("second skip changed state to %v", timer.State())
	}
}

func TestSkipWhileStoppedStartsNextInterval(t *testing.T) {
	timer, scheduler, observer := newManual(t, scenarioIntervals())

	timer.Skip()

	if timer.State() != StateActive {
		t.Fatalf("State = %v, want active", timer.State())
	}
	if len(observer.next) != 1 {
		t.Fatalf("next events = %d, want 1", len(observer.next))
	}
	if live := scheduler.Live(); live == nil || live.Count != 60 {
		t.Errorf("live schedule = %+v, want 60 ticks", live)
	}
	if got := timer.TotalRemainingSeconds(); got != 150 {
		t.Errorf("total remaining = %d, want 150", got)
	}
}

// TestPauseResumeKeepsRemaining verifies a resume schedules only the remaining seconds.
func TestPauseResumeKeepsRemaining(t *testing.T) {
	timer, scheduler, _ := newManual(t, scenarioIntervals())
	timer.Start()
	scheduler.Advance(10)

	timer.Pause()
	if timer.State() != StateStopped {
		t.Fatalf("State = %v, want stopped", timer.State())
	}
	if scheduler.Live() != nil {
		t.Fatal("pause left a live schedule")
	}
	before := timer.IntervalRemaining()

	timer.Pause()
	timer.Start()

	if after := timer.IntervalRemaining(); after != before || after != "04:50" {
		t.Errorf("remaining %q -> %q, want 04:50", before, after)
	}
	if live := scheduler.Live(); live == nil || live.Count != 290 {
		t.Fatalf("resumed schedule = %+v, want 290 ticks", live)
	}

	scheduler.Advance(290)
	if index, _ := timer.Current(); index != 1 {
		t.Errorf("index = %d, want 1 after finishing warmup", index)
	}
}

func TestStartWhileActiveIsNoop(t *testing.T) {
	timer, scheduler, _ := newManual(t, scenarioIntervals())
	timer.Start()
	timer.Start()
	if got := scheduler.Scheduled(); got != 1 {
		t.Errorf("Scheduled = %d, want 1", got)
	}
}

// TestStaleTickIgnoredAfterSkip verifies a tick already in flight when Skip ran does not touch the new interval.
func TestStaleTickIgnoredAfterSkip(t *testing.T) {
	timer, scheduler, observer := newManual(t, scenarioIntervals())
	timer.Start()
	stale := scheduler.Last()

	timer.Skip()
	stale.Fire()
	stale.Fire()

	if got := timer.IntervalRemainingSeconds(); got != 60 {
		t.Errorf("interval remaining = %d, want 60", got)
	}
	if observer.ticks != 0 {
		t.Errorf("stale tick delivered %d Tick events", observer.ticks)
	}

	timer.Pause()
	paused := scheduler.Last()
	paused.Fire()
	if got := timer.IntervalRemainingSeconds(); got != 60 {
		t.Errorf("tick after pause changed remaining to %d", got)
	}
}

func TestTotalRemainingMixesTicksAndSkips(t *testing.T) {
	timer, scheduler, _ := newManual(t, scenarioIntervals())
	timer.Start()
	scheduler.Advance(100)
	timer.Skip()
	scheduler.Advance(20)

	// 450 total; warmup fully consumed (300) plus 20 seconds of jog.
	if got := timer.TotalRemainingSeconds(); got != 130 {
		t.Errorf("total remaining = %d, want 130", got)
	}
	if got := timer.IntervalRemaining(); got != "00:40" {
		t.Errorf("IntervalRemaining = %q, want 00:40", got)
	}
}

func TestZeroLengthIntervalIsPassedOver(t *testing.T) {
	timer, scheduler, observer := newManual(t, []model.Interval{
		model.NewInterval(0, "Warmup"),
		model.NewInterval(5, "Jog"),
	})
	timer.Start()

	if len(observer.next) != 1 || observer.next[0].Label() != "Jog" {
		t.Fatalf("next events = %v, want [Jog]", observer.next)
	}
	if live := scheduler.Live(); live == nil || live.Count != 5 {
		t.Errorf("live schedule = %+v, want 5 ticks", live)
	}
}

// TestObserverMaySkipFromCallback verifies notifications queue instead of deadlocking when an observer drives the timer.
func TestObserverMaySkipFromCallback(t *testing.T) {
	scheduler := &timertest.Scheduler{}
	var timer *Timer
	var labels []string
	finished := 0
	observer := Funcs{
		OnNextInterval: func(next model.Interval) {
			labels = append(labels, next.Label())
			timer.Skip()
		},
		OnFinishRun: func() { finished++ },
	}

	var err error
	timer, err = New(scenarioIntervals(), observer, WithScheduler(scheduler))
	if err != nil {
		t.Fatal(err)
	}
	timer.Skip()

	if len(labels) != 2 || labels[0] != "Jog" || labels[1] != "Walk" {
		t.Errorf("labels = %v, want [Jog Walk]", labels)
	}
	if finished != 1 {
		t.Errorf("finished = %d, want 1", finished)
	}
}

func TestDispatcherCarriesEveryNotification(t *testing.T) {
	scheduler := &timertest.Scheduler{}
	observer := &recorder{}
	dispatched := 0
	timer, err := New(scenarioIntervals(), observer,
		WithScheduler(scheduler),
		WithDispatcher(func(notify func()) {
			dispatched++
			notify()
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	timer.Start()
	scheduler.Advance(5)
	timer.Skip()
	timer.Skip()
	timer.Skip()

	// 5 ticks, 2 next-interval events, 1 finish.
	if dispatched != 8 {
		t.Errorf("dispatched = %d, want 8", dispatched)
	}
}

func TestTickerSchedulerRunsToCompletion(t *testing.T) {
	finished := make(chan struct{})
	observer := Funcs{OnFinishRun: func() { close(finished) }}
	timer, err := New([]model.Interval{
		model.NewInterval(3, "Jog"),
		model.NewInterval(2, "Walk"),
	}, observer, WithTickPeriod(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	timer.Start()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("timer did not finish")
	}
	if timer.State() != StateCompleted {
		t.Errorf("State = %v, want completed", timer.State())
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{seconds: 0, want: "00:00"},
		{seconds: 59, want: "00:59"},
		{seconds: 61, want: "01:01"},
		{seconds: 149, want: "02:29"},
		{seconds: 5999, want: "99:59"},
		{seconds: 6000, want: "100:00"},
		{seconds: -3, want: "00:00"},
	}
	for _, tc := range tests {
		if got := FormatClock(tc.seconds); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

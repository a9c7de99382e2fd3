package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"couchrunner/internal/core/model"

	"github.com/rs/zerolog"
)

// ErrNoIntervals indicates a timer was requested for an empty interval list.
var ErrNoIntervals = errors.New("timer needs at least one interval")

// Dispatcher runs an observer notification on the controller's context.
type Dispatcher func(func())

// Inline calls the notification on the current goroutine.
func Inline(notify func()) {
	notify()
}

// Option configures a Timer.
type Option func(*options)

type options struct {
	scheduler  Scheduler
	dispatch   Dispatcher
	tickPeriod time.Duration
	logger     zerolog.Logger
}

// WithScheduler replaces the default ticker goroutine.
func WithScheduler(scheduler Scheduler) Option {
	return func(opts *options) {
		if scheduler != nil {
			opts.scheduler = scheduler
		}
	}
}

// WithDispatcher marshals notifications, e.g. onto a UI thread.
func WithDispatcher(dispatch Dispatcher) Option {
	return func(opts *options) {
		if dispatch != nil {
			opts.dispatch = dispatch
		}
	}
}

// WithTickPeriod sets the wall-clock length of one program second.
func WithTickPeriod(period time.Duration) Option {
	return func(opts *options) {
		if period > 0 {
			opts.tickPeriod = period
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// Timer is a resumable countdown over an ordered list of intervals.
type Timer struct {
	mu              sync.Mutex
	options         options
	observer        Observer
	intervals       []model.Interval
	totalSeconds    int
	index           int
	intervalElapsed int
	totalElapsed    int
	state           State
	generation      uint64
	cancel          func()

	queueMu  sync.Mutex
	queue    []func()
	draining bool
}

// New creates a stopped Timer positioned at the first interval.
func New(intervals []model.Interval, observer Observer, opts ...Option) (*Timer, error) {
	if len(intervals) == 0 {
		return nil, ErrNoIntervals
	}
	if observer == nil {
		observer = Funcs{}
	}

	config := options{
		scheduler:  TickerScheduler{},
		dispatch:   Inline,
		tickPeriod: time.Second,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&config)
	}

	owned := make([]model.Interval, len(intervals))
	copy(owned, intervals)
	total := 0
	for _, interval := range owned {
		total += interval.Seconds()
	}

	return &Timer{
		options:      config,
		observer:     observer,
		intervals:    owned,
		totalSeconds: total,
		state:        StateStopped,
	}, nil
}

// Start begins or resumes counting down the current interval.
func (timer *Timer) Start() {
	timer.mu.Lock()
	timer.enqueueLocked(timer.startLocked())
	timer.mu.Unlock()
	timer.drain()
}

// Pause stops counting. Elapsed time is kept for the next Start.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if timer.state == StateActive {
		timer.stopLocked()
		timer.options.logger.Debug().Int("index", timer.index).Msg("timer paused")
	}
	timer.mu.Unlock()
}

// Skip ends the current interval early.
func (timer *Timer) Skip() {
	timer.mu.Lock()
	timer.enqueueLocked(timer.skipLocked())
	timer.mu.Unlock()
	timer.drain()
}

// State returns the current mode.
func (timer *Timer) State() State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state
}

// Current returns the index and value of the interval being timed.
func (timer *Timer) Current() (int, model.Interval) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.index, timer.intervals[timer.index]
}

// IntervalRemainingSeconds returns the seconds left in the current interval.
func (timer *Timer) IntervalRemainingSeconds() int {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.state == StateCompleted {
		return 0
	}
	return clampZero(timer.intervals[timer.index].Seconds() - timer.intervalElapsed)
}

// TotalRemainingSeconds returns the seconds left in the whole run.
func (timer *Timer) TotalRemainingSeconds() int {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return clampZero(timer.totalSeconds - timer.totalElapsed)
}

// IntervalRemaining formats IntervalRemainingSeconds as MM:SS.
func (timer *Timer) IntervalRemaining() string {
	return FormatClock(timer.IntervalRemainingSeconds())
}

// TotalRemaining formats TotalRemainingSeconds as MM:SS.
func (timer *Timer) TotalRemaining() string {
	return FormatClock(timer.TotalRemainingSeconds())
}

// FormatClock renders seconds as two-digit minutes and seconds.
// Minutes are not wrapped, so 100 minutes renders as "100:00".
func FormatClock(seconds int) string {
	seconds = clampZero(seconds)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (timer *Timer) tick(generation uint64) {
	timer.mu.Lock()
	if generation != timer.generation || timer.state != StateActive {
		timer.mu.Unlock()
		return
	}

	timer.intervalElapsed++
	timer.totalElapsed++

	var notes []func()
	if timer.intervalElapsed >= timer.intervals[timer.index].Seconds() {
		notes = timer.skipLocked()
	} else {
		notes = []func(){timer.observer.Tick}
	}
	timer.enqueueLocked(notes)
	timer.mu.Unlock()
	timer.drain()
}

func (timer *Timer) startLocked() []func() {
	if timer.state != StateStopped {
		return nil
	}

	remaining := timer.intervals[timer.index].Seconds() - timer.intervalElapsed
	if remaining <= 0 {
		return timer.skipLocked()
	}

	timer.state = StateActive
	timer.generation++
	generation := timer.generation
	timer.cancel = timer.options.scheduler.Schedule(timer.options.tickPeriod, remaining, func() {
		timer.tick(generation)
	})
	timer.options.logger.Debug().
		Int("index", timer.index).
		Int("remaining", remaining).
		Msg("timer started")
	return nil
}

func (timer *Timer) skipLocked() []func() {
	if timer.state == StateCompleted {
		return nil
	}
	timer.stopLocked()

	current := timer.intervals[timer.index]
	timer.totalElapsed += clampZero(current.Seconds() - timer.intervalElapsed)
	timer.intervalElapsed = 0

	if timer.index+1 < len(timer.intervals) {
		timer.index++
		next := timer.intervals[timer.index]
		timer.options.logger.Debug().
			Int("index", timer.index).
			Str("label", next.Label()).
			Msg("next interval")
		notes := []func(){func() { timer.observer.NextInterval(next) }}
		return append(notes, timer.startLocked()...)
	}

	timer.state = StateCompleted
	timer.options.logger.Debug().Int("elapsed", timer.totalElapsed).Msg("run finished")
	return []func(){timer.observer.FinishRun}
}

// stopLocked cancels the schedule and invalidates ticks already in flight.
func (timer *Timer) stopLocked() {
	if timer.cancel != nil {
		timer.cancel()
		timer.cancel = nil
	}
	timer.generation++
	if timer.state == StateActive {
		timer.state = StateStopped
	}
}

// enqueueLocked queues notifications while the state lock is held so they
// are delivered in transition order.
func (timer *Timer) enqueueLocked(notes []func()) {
	if len(notes) == 0 {
		return
	}
	timer.queueMu.Lock()
	timer.queue = append(timer.queue, notes...)
	timer.queueMu.Unlock()
}

// drain delivers queued notifications outside the state lock. Only one
// goroutine drains at a time; re-entrant calls from an observer return
// immediately and their notifications are picked up by the outer loop.
func (timer *Timer) drain() {
	timer.queueMu.Lock()
	if timer.draining {
		timer.queueMu.Unlock()
		return
	}
	timer.draining = true
	for len(timer.queue) > 0 {
		note := timer.queue[0]
		timer.queue = timer.queue[1:]
		timer.queueMu.Unlock()
		timer.options.dispatch(note)
		timer.queueMu.Lock()
	}
	timer.draining = false
	timer.queueMu.Unlock()
}

func clampZero(value int) int {
	if value < 0 {
		return 0
	}
	return value
}

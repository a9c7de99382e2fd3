package tracker

import (
	"sync"

	"couchrunner/internal/core/model"
	"couchrunner/internal/core/timer"
	"couchrunner/internal/cue"

	"github.com/rs/zerolog"
)

// Session times one run of the catalog. It plays cues, forwards timer events
// to the front-end and records completion.
type Session struct {
	tracker *Tracker
	index   int
	run     model.Run
	timer   *timer.Timer
	view    timer.Observer
	sink    cue.Sink
	logger  zerolog.Logger

	doneOnce sync.Once
	done     chan struct{}
}

// Track prepares a stopped session for run i. view and sink may be nil.
func (tracker *Tracker) Track(i int, view timer.Observer, sink cue.Sink, opts ...timer.Option) (*Session, error) {
	run, err := tracker.Run(i)
	if err != nil {
		return nil, err
	}
	if view == nil {
		view = timer.Funcs{}
	}
	if sink == nil {
		sink = cue.SinkFunc(func(cue.Cue) {})
	}

	logger := tracker.logger.With().Str("run", run.Name()).Logger()
	session := &Session{
		tracker: tracker,
		index:   i,
		run:     run,
		view:    view,
		sink:    sink,
		logger:  logger,
		done:    make(chan struct{}),
	}

	options := append([]timer.Option{timer.WithLogger(logger)}, opts...)
	session.timer, err = timer.New(run.Intervals(), session, options...)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Run returns the run being timed.
func (session *Session) Run() model.Run {
	return session.run
}

// Index returns the catalog position of the run.
func (session *Session) Index() int {
	return session.index
}

// Timer exposes the clocks and state of the session.
func (session *Session) Timer() *timer.Timer {
	return session.timer
}

// Start begins or resumes the countdown.
func (session *Session) Start() {
	session.logger.Debug().Msg("start")
	session.timer.Start()
}

// Pause stops the countdown.
func (session *Session) Pause() {
	session.logger.Debug().Msg("pause")
	session.timer.Pause()
}

// Skip ends the current interval.
func (session *Session) Skip() {
	session.logger.Debug().Msg("skip")
	session.timer.Skip()
}

// Done is closed once the run has finished.
func (session *Session) Done() <-chan struct{} {
	return session.done
}

// Tick implements timer.Observer.
func (session *Session) Tick() {
	session.view.Tick()
}

// NextInterval implements timer.Observer.
func (session *Session) NextInterval(next model.Interval) {
	session.sink.Play(cue.ForInterval(next, session.tracker.Settings()))
	session.view.NextInterval(next)
}

// FinishRun implements timer.Observer.
func (session *Session) FinishRun() {
	if err := session.tracker.Complete(session.index); err != nil {
		session.logger.Error().Err(err).Msg("marking run completed")
	}
	session.sink.Play(cue.ForFinish(session.tracker.Settings()))
	session.view.FinishRun()
	session.doneOnce.Do(func() {
		close(session.done)
	})
}

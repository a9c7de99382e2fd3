package timer

import "couchrunner/internal/core/model"

// State represents the current Timer mode.
type State int

const (
	// StateStopped covers both "not started yet" and "paused".
	StateStopped State = iota
	StateActive
	StateCompleted
)

func (state State) String() string {
	switch state {
	case StateStopped:
		return "stopped"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Observer receives Timer events in the order they happen.
type Observer interface {
	// Tick is called once per elapsed second that did not end an interval.
	Tick()
	// NextInterval is called when the timer moves on to the given interval.
	NextInterval(next model.Interval)
	// FinishRun is called once, when the last interval ends.
	FinishRun()
}

// Funcs adapts plain functions to Observer. Nil fields are ignored.
type Funcs struct {
	OnTick         func()
	OnNextInterval func(model.Interval)
	OnFinishRun    func()
}

func (funcs Funcs) Tick() {
	if funcs.OnTick != nil {
		funcs.OnTick()
	}
}

func (funcs Funcs) NextInterval(next model.Interval) {
	if funcs.OnNextInterval != nil {
		funcs.OnNextInterval(next)
	}
}

func (funcs Funcs) FinishRun() {
	if funcs.OnFinishRun != nil {
		funcs.OnFinishRun()
	}
}

package model

import (
	"errors"
	"fmt"
	"time"
)

// Interval labels used by the default program.
const (
	LabelWarmup = "Warmup"
	LabelJog    = "Jog"
	LabelWalk   = "Walk"
)

var (
	// ErrNoIntervals indicates a run was built without any intervals.
	ErrNoIntervals = errors.New("run has no intervals")
	// ErrNegativeDuration indicates an interval with a negative duration.
	ErrNegativeDuration = errors.New("interval duration is negative")
)

// Interval is one timed segment of a workout.
type Interval struct {
	seconds int
	label   string
}

// NewInterval creates an interval lasting the given number of seconds.
func NewInterval(seconds int, label string) Interval {
	return Interval{seconds: seconds, label: label}
}

// Seconds returns the interval length in whole seconds.
func (interval Interval) Seconds() int {
	return interval.seconds
}

// Label returns what the user should do during the interval.
func (interval Interval) Label() string {
	return interval.label
}

// Duration returns the interval length as a time.Duration.
func (interval Interval) Duration() time.Duration {
	return time.Duration(interval.seconds) * time.Second
}

func (interval Interval) String() string {
	return fmt.Sprintf("%s %ds", interval.label, interval.seconds)
}

// Run is one workout session of the program.
// Completed is the only field that changes after construction.
type Run struct {
	name        string
	description string
	intervals   []Interval

	Completed bool
}

// NewRun validates and creates a run. The interval slice is copied.
func NewRun(name, description string, completed bool, intervals []Interval) (Run, error) {
	if len(intervals) == 0 {
		return Run{}, fmt.Errorf("run %q: %w", name, ErrNoIntervals)
	}
	for i, interval := range intervals {
		if interval.seconds < 0 {
			return Run{}, fmt.Errorf("run %q interval %d: %w", name, i, ErrNegativeDuration)
		}
	}
	owned := make([]Interval, len(intervals))
	copy(owned, intervals)
	return Run{
		name:        name,
		description: description,
		intervals:   owned,
		Completed:   completed,
	}, nil
}

// MustRun is NewRun for static tables; it panics on invalid input.
func MustRun(name, description string, intervals ...Interval) Run {
	run, err := NewRun(name, description, false, intervals)
	if err != nil {
		panic(err)
	}
	return run
}

// Name returns the run identifier, e.g. "Week 1 Day 1".
func (run Run) Name() string {
	return run.name
}

// Description returns the human readable summary of the run.
func (run Run) Description() string {
	return run.description
}

// Intervals returns a copy of the ordered interval sequence.
func (run Run) Intervals() []Interval {
	out := make([]Interval, len(run.intervals))
	copy(out, run.intervals)
	return out
}

// IntervalCount returns the number of intervals in the run.
func (run Run) IntervalCount() int {
	return len(run.intervals)
}

// TotalSeconds sums all interval durations.
func (run Run) TotalSeconds() int {
	total := 0
	for _, interval := range run.intervals {
		total += interval.seconds
	}
	return total
}

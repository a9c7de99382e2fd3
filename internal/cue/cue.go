// Package cue turns timer events into audio and haptic signals.
package cue

import (
	"time"

	"couchrunner/internal/core/model"
)

// Kind identifies the event a cue announces.
type Kind string

const (
	KindWalk     Kind = "walk"
	KindJog      Kind = "jog"
	KindComplete Kind = "complete"
)

const (
	buzz  = 350 * time.Millisecond
	pause = 100 * time.Millisecond
)

// Cue is what a device should play. Pattern alternates vibrate and pause
// durations, starting with vibrate.
type Cue struct {
	Kind    Kind
	Beeps   int
	Volume  float64
	Pattern []time.Duration
}

// Silent reports whether the cue has nothing to play.
func (cue Cue) Silent() bool {
	return cue.Beeps == 0 && len(cue.Pattern) == 0
}

// ForInterval plans the cue for moving on to next. Walking gets a single
// signal; any other label gets a double one.
func ForInterval(next model.Interval, settings model.Settings) Cue {
	if next.Label() == model.LabelWalk {
		return build(KindWalk, 1, settings)
	}
	return build(KindJog, 2, settings)
}

// ForFinish plans the cue for completing a run.
func ForFinish(settings model.Settings) Cue {
	return build(KindComplete, 4, settings)
}

func build(kind Kind, count int, settings model.Settings) Cue {
	cue := Cue{Kind: kind, Volume: model.ClampVolume(settings.Volume)}
	if settings.Sound {
		cue.Beeps = count
	}
	if settings.Vibrate {
		cue.Pattern = pattern(count)
	}
	return cue
}

func pattern(count int) []time.Duration {
	out := make([]time.Duration, 0, count*2-1)
	for i := 0; i < count; i++ {
		if i > 0 {
			out = append(out, pause)
		}
		out = append(out, buzz)
	}
	return out
}

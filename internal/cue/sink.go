package cue

import (
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Sink plays cues on some device.
type Sink interface {
	Play(cue Cue)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Cue)

// Play implements Sink.
func (fn SinkFunc) Play(cue Cue) {
	fn(cue)
}

// LogSink records cues in the log.
type LogSink struct {
	Logger zerolog.Logger
}

// Play implements Sink.
func (sink LogSink) Play(cue Cue) {
	if cue.Silent() {
		return
	}
	sink.Logger.Info().
		Str("kind", string(cue.Kind)).
		Int("beeps", cue.Beeps).
		Float64("volume", cue.Volume).
		Int("pulses", (len(cue.Pattern)+1)/2).
		Msg("cue")
}

// BellSink writes one BEL character per beep, for terminals.
type BellSink struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewBellSink writes bells to writer.
func NewBellSink(writer io.Writer) *BellSink {
	return &BellSink{writer: writer}
}

// Play implements Sink. Volume and vibration are not representable and are ignored.
func (sink *BellSink) Play(cue Cue) {
	if cue.Beeps == 0 {
		return
	}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	_, _ = io.WriteString(sink.writer, strings.Repeat("\a", cue.Beeps))
}

// Multi plays every cue on each sink in order. Nil sinks are skipped.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(cue Cue) {
		for _, sink := range sinks {
			if sink != nil {
				sink.Play(cue)
			}
		}
	})
}

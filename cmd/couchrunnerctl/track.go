package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"couchrunner/internal/core/model"
	"couchrunner/internal/core/timer"
	"couchrunner/internal/cue"
	"couchrunner/internal/tracker"

	"github.com/spf13/cobra"
)

func newTrackCmd(opts *rootOptions) *cobra.Command {
	var quiet bool
	var tick time.Duration
	cmd := &cobra.Command{
		Use:   "track <run|next>",
		Short: "Time a run with terminal cues",
		Long: `Time a run interval by interval. The terminal bell rings at interval
changes (once for walking, twice otherwise, four times at the end).
Press Ctrl-C to stop; the run is only marked completed when it finishes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			index, err := parseRunArg(args[0], e.tracker.Runs())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sinks := []cue.Sink{cue.LogSink{Logger: e.logger}}
			if !quiet {
				sinks = append(sinks, cue.NewBellSink(cmd.OutOrStdout()))
			}
			if tick <= 0 {
				tick = e.cfg.Timer.TickInterval
			}
			return track(ctx, e.tracker, index, cmd.OutOrStdout(), cue.Multi(sinks...),
				timer.WithTickPeriod(tick))
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not ring the terminal bell")
	cmd.Flags().DurationVar(&tick, "tick", 0, "wall-clock length of one program second (default from config)")
	return cmd
}

// event is a timer notification marshaled onto the command goroutine.
type event func()

func track(ctx context.Context, t *tracker.Tracker, index int, out io.Writer, sink cue.Sink, opts ...timer.Option) error {
	events := make(chan event, 64)
	quit := make(chan struct{})
	defer close(quit)
	dispatch := func(notify func()) {
		select {
		case events <- notify:
		case <-quit:
		}
	}

	var session *tracker.Session
	view := timer.Funcs{
		OnTick: func() {
			printClocks(out, session)
		},
		OnNextInterval: func(next model.Interval) {
			fmt.Fprintf(out, "\n%s for %s\n", next.Label(), timer.FormatClock(next.Seconds()))
		},
		OnFinishRun: func() {
			fmt.Fprintf(out, "\n%s complete!\n", session.Run().Name())
		},
	}

	session, err := t.Track(index, view, sink, append(opts, timer.WithDispatcher(dispatch))...)
	if err != nil {
		return err
	}

	run := session.Run()
	_, first := session.Timer().Current()
	fmt.Fprintf(out, "%s: %s\n", run.Name(), run.Description())
	fmt.Fprintf(out, "%s for %s\n", first.Label(), timer.FormatClock(first.Seconds()))
	session.Start()

	for {
		select {
		case notify := <-events:
			notify()
		case <-session.Done():
			return nil
		case <-ctx.Done():
			session.Pause()
			fmt.Fprintf(out, "\nstopped with %s left; progress not saved\n", session.Timer().TotalRemaining())
			return nil
		}
	}
}

func printClocks(out io.Writer, session *tracker.Session) {
	clock := session.Timer()
	fmt.Fprintf(out, "\r%s  interval %s  total %s ", labelOf(clock), clock.IntervalRemaining(), clock.TotalRemaining())
}

func labelOf(clock *timer.Timer) string {
	_, current := clock.Current()
	return fmt.Sprintf("%-7s", current.Label())
}

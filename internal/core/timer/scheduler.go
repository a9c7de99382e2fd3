package timer

import (
	"sync"
	"time"
)

// Scheduler runs a recurring tick. Schedule calls tick once per period, at
// most count times, until the returned cancel function is called. Cancel
// must not block and may be called more than once.
type Scheduler interface {
	Schedule(period time.Duration, count int, tick func()) (cancel func())
}

// TickerScheduler delivers ticks from a goroutine driven by time.Ticker.
type TickerScheduler struct{}

// Schedule implements Scheduler.
func (TickerScheduler) Schedule(period time.Duration, count int, tick func()) func() {
	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for fired := 0; fired < count; fired++ {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}

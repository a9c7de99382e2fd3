// Package timertest provides a hand-driven scheduler for deterministic timer tests.
package timertest

import (
	"sync"
	"time"
)

// Schedule is one recorded Schedule call.
type Schedule struct {
	Period    time.Duration
	Count     int
	Fired     int
	Cancelled bool

	tick func()
}

// Fire calls the tick function even if the schedule was cancelled,
// simulating a tick that was already in flight.
func (schedule *Schedule) Fire() {
	schedule.tick()
}

// Scheduler records schedules and fires ticks only when told to.
type Scheduler struct {
	mu        sync.Mutex
	schedules []*Schedule
}

// Schedule implements timer.Scheduler.
func (scheduler *Scheduler) Schedule(period time.Duration, count int, tick func()) func() {
	schedule := &Schedule{Period: period, Count: count, tick: tick}
	scheduler.mu.Lock()
	scheduler.schedules = append(scheduler.schedules, schedule)
	scheduler.mu.Unlock()

	return func() {
		scheduler.mu.Lock()
		schedule.Cancelled = true
		scheduler.mu.Unlock()
	}
}

// Advance fires up to n ticks on whichever schedule is live at each step
// and returns how many fired.
func (scheduler *Scheduler) Advance(n int) int {
	fired := 0
	for fired < n {
		scheduler.mu.Lock()
		live := scheduler.liveLocked()
		if live != nil {
			live.Fired++
		}
		scheduler.mu.Unlock()

		if live == nil {
			break
		}
		live.tick()
		fired++
	}
	return fired
}

// Live returns the schedule that would receive the next tick, or nil.
func (scheduler *Scheduler) Live() *Schedule {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.liveLocked()
}

// Scheduled returns how many times Schedule was called.
func (scheduler *Scheduler) Scheduled() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.schedules)
}

// Last returns the most recent schedule, or nil.
func (scheduler *Scheduler) Last() *Schedule {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if len(scheduler.schedules) == 0 {
		return nil
	}
	return scheduler.schedules[len(scheduler.schedules)-1]
}

func (scheduler *Scheduler) liveLocked() *Schedule {
	for i := len(scheduler.schedules) - 1; i >= 0; i-- {
		schedule := scheduler.schedules[i]
		if !schedule.Cancelled && schedule.Fired < schedule.Count {
			return schedule
		}
	}
	return nil
}

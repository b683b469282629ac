package driven

import "time"

// Scheduler defers a callback by a wall-clock delay.
//
// The engine uses it for the thinking-step reveal chain, prompt-cursor
// advancement and the simulated payment processing. Callbacks may fire
// on any goroutine; the engine guards its own state and discards stale
// callbacks via generation counters, so implementations never need to
// cancel anything.
type Scheduler interface {
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func())

// After implements Scheduler.
func (s SchedulerFunc) After(d time.Duration, fn func()) {
	s(d, fn)
}

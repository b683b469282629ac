// Package schedule provides the wall-clock Scheduler adapter.
package schedule

import (
	"time"

	"github.com/atelier-labs/stylist-cli/internal/core/ports/driven"
)

// Ensure Scheduler implements the interface.
var _ driven.Scheduler = (*Scheduler)(nil)

// Scheduler defers callbacks with real timers. Callbacks fire on a
// timer goroutine; the engine is responsible for its own locking.
type Scheduler struct{}

// NewScheduler creates a wall-clock scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After runs fn once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

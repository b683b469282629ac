// Package services implements the driving port interfaces.
// Services contain the core engine logic and orchestrate
// calls to driven ports (adapters).
//
// All engine state belongs to a single session. Scheduled callbacks
// fire on arbitrary goroutines, so every service guards its state with
// a mutex, and turn-scoped callbacks carry a generation counter that
// lets a new turn silently supersede the old one's pending timers.
package services

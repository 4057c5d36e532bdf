// Package debounce provides a trailing-edge rate limiter for bursty
// call sites such as keystroke handlers.
package debounce

import (
	"sync"
	"time"
)

// Debounced wraps an action so that bursts of calls collapse into a
// single delayed invocation carrying the most recent argument.
type Debounced[T any] struct {
	mu     sync.Mutex
	action func(T)
	delay  time.Duration
	timer  *time.Timer
}

// Wrap returns a debounced version of action. Each Call schedules
// action to run after delay with the latest argument, cancelling any
// previously scheduled run that has not fired yet.
func Wrap[T any](action func(T), delay time.Duration) *Debounced[T] {
	return &Debounced[T]{
		action: action,
		delay:  delay,
	}
}

// Call schedules the wrapped action. Only the last call within the
// delay window survives; there is no queue and no return value.
func (d *Debounced[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.action(arg)
	})
}

// Stop cancels any pending invocation. Safe to call when nothing is
// scheduled.
func (d *Debounced[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package debounce

import "time"

// Handle is a pending scheduled callback.
type Handle interface {
	// Stop cancels the callback. It reports whether the call stopped it
	// before it fired.
	Stop() bool
}

// Scheduler runs callbacks after a delay. Implementations must never invoke
// f synchronously from AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Handle
}

// SystemScheduler schedules callbacks on the runtime timer via time.AfterFunc.
// Callbacks run on their own goroutine.
type SystemScheduler struct{}

// AfterFunc implements Scheduler.
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Handle {
	return time.AfterFunc(d, f)
}

var _ Scheduler = SystemScheduler{}

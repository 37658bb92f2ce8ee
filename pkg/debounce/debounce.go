package debounce

import (
	"sync"
	"time"
)

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithScheduler sets the scheduler used to delay the action.
// A nil scheduler is ignored.
func WithScheduler(s Scheduler) Option {
	return func(d *Debouncer) {
		if s != nil {
			d.sched = s
		}
	}
}

// Debouncer delays an action until delay has elapsed without a further Call.
// It is safe for concurrent use.
type Debouncer struct {
	action func()
	delay  time.Duration
	sched  Scheduler

	mu      sync.Mutex
	pending Handle
	gen     uint64 // bumped on every Call and Cancel; stale callbacks compare against it
}

// New returns an idle Debouncer for action. A negative delay is treated as 0.
func New(action func(), delay time.Duration, opts ...Option) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	d := &Debouncer{
		action: action,
		delay:  delay,
		sched:  SystemScheduler{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Call cancels any pending invocation and schedules the action to run after
// the configured delay.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = d.sched.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel drops the pending invocation, if any, and reports whether one was
// pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending == nil {
		return false
	}
	d.pending.Stop()
	d.pending = nil
	d.gen++
	return true
}

// Pending reports whether an invocation is scheduled and has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Delay returns the configured delay.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// fire runs the action if gen is still the latest registration. A timer
// that was superseded after its callback had already started loses here.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	d.action()
}

// Func returns the closure form of New: debounced schedules action, cancel
// drops any pending invocation. Either may be called any number of times.
func Func(action func(), delay time.Duration, opts ...Option) (debounced func(), cancel func()) {
	d := New(action, delay, opts...)
	return d.Call, func() { d.Cancel() }
}

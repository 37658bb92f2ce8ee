package debounce

import (
	"sync"
	"time"
)

// Value is a Debouncer whose action receives the argument of the last Call
// in a burst.
type Value[T any] struct {
	d *Debouncer

	mu     sync.Mutex
	latest T
}

// NewValue returns an idle Value debouncer for action.
func NewValue[T any](action func(T), delay time.Duration, opts ...Option) *Value[T] {
	v := &Value[T]{}
	v.d = New(func() {
		v.mu.Lock()
		arg := v.latest
		v.mu.Unlock()
		action(arg)
	}, delay, opts...)
	return v
}

// Call records arg as the latest argument and reschedules the action.
func (v *Value[T]) Call(arg T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.latest = arg
	v.d.Call()
}

// Cancel drops the pending invocation and reports whether one was pending.
func (v *Value[T]) Cancel() bool {
	return v.d.Cancel()
}

// Pending reports whether an invocation is scheduled.
func (v *Value[T]) Pending() bool {
	return v.d.Pending()
}

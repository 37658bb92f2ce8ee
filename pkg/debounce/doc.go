// Package debounce coalesces bursts of calls into a single delayed action.
//
// A [Debouncer] wraps an action and a delay. Every [Debouncer.Call] cancels
// the invocation scheduled by the previous call, if it has not fired yet, and
// schedules a new one. The action therefore runs exactly once per burst,
// delay after the last call of that burst:
//
//	d := debounce.New(rebuild, 200*time.Millisecond)
//	for range events {
//	    d.Call() // only the last call within 200ms triggers rebuild
//	}
//
// # State
//
// Each Debouncer is either idle or holds exactly one pending registration.
// Call moves it to pending (replacing any earlier registration), firing or
// [Debouncer.Cancel] moves it back to idle. The action never runs
// synchronously inside Call.
//
// # Timing
//
// Elapsed time is delegated to a [Scheduler]. [SystemScheduler] uses
// time.AfterFunc; tests can supply a manual scheduler through
// [WithScheduler] to advance time deterministically.
//
// # Arguments
//
// [Value] is the argument-carrying variant: the action receives the value
// passed to the last Call of the burst.
package debounce

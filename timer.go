package gesture

import "time"

// deferred is a single-shot, cancellable call scheduled for a deadline.
// It never runs on its own: the owning engine evaluates it on the caller's
// goroutine from Update, Start and End. A deferred call either fires once or
// is cancelled, never both.
type deferred struct {
	name     string
	armed    bool
	deadline time.Time
	fn       func(at time.Time)
}

// arm schedules fn for at, replacing any previous schedule.
func (d *deferred) arm(at time.Time, fn func(at time.Time)) {
	d.armed = true
	d.deadline = at
	d.fn = fn
}

// cancel drops the pending call. It reports whether one was pending.
func (d *deferred) cancel() bool {
	was := d.armed
	d.armed = false
	d.deadline = time.Time{}
	d.fn = nil
	return was
}

// due reports whether the call is armed and its deadline is not after now.
func (d *deferred) due(now time.Time) bool {
	return d.armed && !now.Before(d.deadline)
}

// fire disarms the call before invoking it so that fn may re-arm or cancel
// freely.
func (d *deferred) fire() {
	if !d.armed {
		return
	}
	fn, at := d.fn, d.deadline
	d.cancel()
	if fn != nil {
		fn(at)
	}
}

package gesture

import (
	"testing"
	"time"
)

func TestDeferredFiresOnce(t *testing.T) {
	var d deferred
	var fired []time.Time
	d.arm(ms(100), func(at time.Time) { fired = append(fired, at) })

	if d.due(ms(99)) {
		t.Error("due before deadline")
	}
	if !d.due(ms(100)) {
		t.Error("not due at deadline")
	}
	d.fire()
	d.fire()
	if len(fired) != 1 || !fired[0].Equal(ms(100)) {
		t.Fatalf("fired = %v, want once at deadline", fired)
	}
	if d.armed || d.due(ms(1000)) {
		t.Error("fired call still armed")
	}
}

func TestDeferredCancel(t *testing.T) {
	var d deferred
	if d.cancel() {
		t.Error("cancel of idle call reported pending")
	}
	called := false
	d.arm(ms(10), func(time.Time) { called = true })
	if !d.cancel() {
		t.Error("cancel of armed call reported idle")
	}
	d.fire()
	if called {
		t.Error("cancelled call fired")
	}
}

func TestDeferredRearmFromCallback(t *testing.T) {
	var d deferred
	count := 0
	var fn func(time.Time)
	fn = func(at time.Time) {
		count++
		if count < 2 {
			d.arm(at.Add(time.Second), fn)
		}
	}
	d.arm(ms(0), fn)
	d.fire()
	if !d.armed || !d.deadline.Equal(ms(1000)) {
		t.Fatalf("callback did not re-arm: armed=%v deadline=%v", d.armed, d.deadline)
	}
	d.fire()
	if count != 2 || d.armed {
		t.Errorf("count = %d armed = %v", count, d.armed)
	}
}

func TestDeferredReplace(t *testing.T) {
	var d deferred
	first := false
	d.arm(ms(10), func(time.Time) { first = true })
	second := false
	d.arm(ms(20), func(time.Time) { second = true })
	if d.due(ms(15)) {
		t.Error("replaced deadline still due")
	}
	d.fire()
	if first || !second {
		t.Errorf("first=%v second=%v", first, second)
	}
}

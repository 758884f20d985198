package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestRevealFollowsOpening(t *testing.T) {
	r := NewReveal(80, 100*time.Millisecond, ease.Linear)
	r.SetTarget(30)
	if r.Value() != 30 || r.Settling() {
		t.Fatalf("value = %v settling = %v, want 30 and no animation", r.Value(), r.Settling())
	}
	r.SetTarget(200)
	if r.Value() != 80 || r.Target() != 80 {
		t.Errorf("value = %v target = %v, want clamp 80", r.Value(), r.Target())
	}
}

func TestRevealSettlesClosed(t *testing.T) {
	r := NewReveal(80, time.Second, ease.Linear)
	r.SetTarget(40)
	r.SetTarget(0)
	if !r.Settling() || r.Value() != 40 {
		t.Fatalf("value = %v settling = %v, want 40 and settling", r.Value(), r.Settling())
	}

	r.Update(0)
	if r.Value() != 40 {
		t.Errorf("zero dt moved the value to %v", r.Value())
	}
	r.Update(250 * time.Millisecond)
	if math.Abs(r.Value()-30) > 0.01 {
		t.Errorf("value = %v after a quarter, want 30", r.Value())
	}
	r.Update(time.Second)
	if r.Value() != 0 || r.Settling() {
		t.Errorf("value = %v settling = %v, want closed", r.Value(), r.Settling())
	}
}

func TestRevealReopenInterruptsSettle(t *testing.T) {
	r := NewReveal(80, time.Second, nil)
	r.SetTarget(60)
	r.SetTarget(0)
	r.Update(100 * time.Millisecond)
	r.SetTarget(20)
	if r.Settling() || r.Value() != 20 {
		t.Errorf("value = %v settling = %v, want 20 and tracking", r.Value(), r.Settling())
	}
}

func TestRevealZeroSettleSnaps(t *testing.T) {
	r := NewReveal(80, 0, nil)
	r.SetTarget(60)
	r.SetTarget(0)
	if r.Settling() || r.Value() != 0 {
		t.Errorf("value = %v settling = %v, want snap to 0", r.Value(), r.Settling())
	}
}

func TestRevealSnap(t *testing.T) {
	r := NewReveal(80, time.Second, nil)
	r.SetTarget(50)
	r.SetTarget(0)
	r.Snap()
	if r.Settling() || r.Value() != 0 {
		t.Errorf("value = %v settling = %v after Snap", r.Value(), r.Settling())
	}
}

func TestRevealStaysInRange(t *testing.T) {
	// OutBack overshoots its end value.
	r := NewReveal(80, 200*time.Millisecond, ease.OutBack)
	r.SetTarget(80)
	r.SetTarget(0)
	for i := 0; i < 20; i++ {
		r.Update(10 * time.Millisecond)
		if v := r.Value(); v < 0 || v > 80 {
			t.Fatalf("value %v escaped [0, 80]", v)
		}
	}
}

package gesture

import (
	"slices"
	"testing"
)

func TestInjectTap(t *testing.T) {
	h, r := newTestHost(t)
	h.InjectTap(100, 20)
	if h.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", h.PendingInjections())
	}

	// Frame 1: press
	h.Update(ms(0))
	if h.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", h.PendingInjections())
	}
	if !h.Surface("row-0").Engine().Active() {
		t.Fatal("press should start a session")
	}

	// Frame 2: release
	h.Update(ms(16))
	if h.PendingInjections() != 0 {
		t.Fatalf("expected empty queue, got %d", h.PendingInjections())
	}
	if len(r.events) != 0 {
		t.Fatal("tap should wait for the double-tap window")
	}

	h.Update(ms(316))
	if !slices.Equal(r.intents(), []Intent{IntentTap}) {
		t.Errorf("intents = %v, want [tap]", r.intents())
	}
}

func TestInjectSwipe(t *testing.T) {
	h := NewHost(Config{})
	var offsets []float64
	var got []Intent
	h.AddSurface("row", HitRect{Width: 300, Height: 50}, nil, Hooks{
		OnOffsetChange: func(v float64) { offsets = append(offsets, v) },
	})
	h.OnIntent(func(ev IntentEvent) { got = append(got, ev.Intent) })

	h.InjectSwipe(250, 20, 150, 20, 5)
	if h.PendingInjections() != 5 {
		t.Fatalf("expected 5 queued events, got %d", h.PendingInjections())
	}
	for i := 0; i < 5; i++ {
		h.Update(ms(i * 16))
	}

	if !slices.Equal(got, []Intent{IntentSwipeTrigger}) {
		t.Fatalf("intents = %v, want [swipe_trigger]", got)
	}
	if !slices.Equal(offsets, []float64{25, 50, 75, 0}) {
		t.Errorf("offsets = %v, want [25 50 75 0]", offsets)
	}
}

func TestInjectSwipe_MinFrames(t *testing.T) {
	h := NewHost(Config{})
	h.InjectSwipe(0, 0, 100, 100, 1)
	if h.PendingInjections() != 2 {
		t.Fatalf("expected 2 events (min frames), got %d", h.PendingInjections())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	h := NewHost(Config{})
	h.InjectPress(1, 2)
	h.InjectMove(3, 4)
	h.InjectRelease(5, 6)
	h.InjectCancel()

	want := []syntheticPointerEvent{
		{x: 1, y: 2, pressed: true},
		{x: 3, y: 4, pressed: true},
		{x: 5, y: 6},
		{cancel: true},
	}
	if !slices.Equal(h.injectQueue, want) {
		t.Errorf("queue = %+v, want %+v", h.injectQueue, want)
	}
}

func TestInjectCancel(t *testing.T) {
	h, r := newTestHost(t)
	h.InjectPress(100, 20)
	h.InjectCancel()
	h.InjectRelease(100, 20)
	for i := 0; i < 3; i++ {
		h.Update(ms(i * 16))
	}
	h.Update(ms(2000))

	if len(r.events) != 0 {
		t.Errorf("intents = %v, want none", r.intents())
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	h := NewHost(Config{})
	if h.processInjectedInput(ms(0)) {
		t.Error("expected false for empty queue")
	}
}

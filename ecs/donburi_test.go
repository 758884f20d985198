package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []gesture.IntentEvent
	IntentEventType.Subscribe(world, func(w donburi.World, e gesture.IntentEvent) {
		received = append(received, e)
	})

	store.EmitEvent(gesture.IntentEvent{
		Intent:   gesture.IntentLongPress,
		Surface:  "row-1",
		Payload:  42,
		Position: gesture.Pt(100, 200),
	})
	store.EmitEvent(gesture.IntentEvent{
		Intent:  gesture.IntentSwipeTrigger,
		Surface: "row-2",
	})

	// Events are queued; process them.
	IntentEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Intent != gesture.IntentLongPress || e0.Surface != "row-1" || e0.Payload != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Position.X != 100 || e0.Position.Y != 200 {
		t.Errorf("event 0 position: %v", e0.Position)
	}

	e1 := received[1]
	if e1.Intent != gesture.IntentSwipeTrigger || e1.Surface != "row-2" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store gesture.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_FromHost(t *testing.T) {
	world := donburi.NewWorld()
	host := gesture.NewHost(gesture.DefaultConfig())
	host.SetEntityStore(NewDonburiStore(world))
	host.AddSurface("row", gesture.HitRect{Width: 300, Height: 40}, "payload", gesture.Hooks{})

	var count1, count2 int
	IntentEventType.Subscribe(world, func(w donburi.World, e gesture.IntentEvent) {
		if e.Intent == gesture.IntentSwipeTrigger && e.Surface == "row" {
			count1++
		}
	})
	IntentEventType.Subscribe(world, func(w donburi.World, e gesture.IntentEvent) {
		count2++
	})

	t0 := time.Unix(1000, 0)
	host.Pointer(0, 200, 20, true, t0)
	host.Pointer(0, 120, 20, true, t0.Add(30*time.Millisecond))
	host.Pointer(0, 120, 20, false, t0.Add(60*time.Millisecond))
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

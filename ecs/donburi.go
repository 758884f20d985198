// Package ecs provides ECS adapters for gesture.
package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// IntentEventType is the Donburi event type for recognized gestures.
// Subscribe to this in your ECS systems to receive taps, long-presses and
// swipe triggers.
var IntentEventType = events.NewEventType[gesture.IntentEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Intent events are published to IntentEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) gesture.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gesture.IntentEvent) {
	IntentEventType.Publish(s.world, event)
}

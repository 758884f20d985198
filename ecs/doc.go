// Package ecs provides ECS adapters for gesture's intent events.
//
// The primary adapter is [NewDonburiStore], which bridges recognized intents
// (tap, double-tap, long-press, swipe trigger) into a [Donburi] world as
// typed events. Subscribe to [IntentEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	host.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package ecs provides ECS adapters for paper's interaction events.
//
// The primary adapter is [NewDonburiStore], which publishes every pointer
// dispatch of a paper (view pointerdown, move, up and blank-canvas presses)
// into a [Donburi] world as typed events. Subscribe to [InteractionEventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	p.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

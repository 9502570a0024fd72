package ecs

import (
	"github.com/phanxgames/paper"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for paper interaction events.
var InteractionEventType = events.NewEventType[paper.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are published to InteractionEventType and delivered by
// ProcessEvents.
func NewDonburiStore(world donburi.World) paper.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event paper.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Package ecs provides ECS adapters for eventcore.
package ecs

import (
	"github.com/phanxgames/eventcore"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for eventcore deliveries.
// Subscribe to this in your ECS systems to receive touch, mouse and custom
// events delivered to scene-graph listeners.
var InteractionEventType = events.NewEventType[eventcore.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) eventcore.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event eventcore.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

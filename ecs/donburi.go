// Package ecs provides ECS adapters for arbor.
package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TreeEventType is the Donburi event type for arbor structural events.
// Subscribe to this in your ECS systems to receive insert and remove
// notifications; a cascading removal publishes one event per node,
// leaf-first.
var TreeEventType = events.NewEventType[arbor.TreeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a TreeObserver backed by a Donburi world.
// Structural events are published to TreeEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) arbor.TreeObserver {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event arbor.TreeEvent) {
	TreeEventType.Publish(s.world, event)
}

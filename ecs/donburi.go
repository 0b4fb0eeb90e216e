package ecs

import (
	"github.com/phanxgames/pinchcam"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for pinchcam gesture events.
// Subscribe to this in your ECS systems to receive pointer, pinch and
// camera events.
var GestureEventType = events.NewEventType[pinchcam.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) pinchcam.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event pinchcam.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}

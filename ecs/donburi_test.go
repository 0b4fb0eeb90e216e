package ecs

import (
	"testing"

	"github.com/phanxgames/pinchcam"

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

	var received []pinchcam.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchcam.GestureEvent) {
		received = append(received, e)
	})

	store.EmitEvent(pinchcam.GestureEvent{
		Type:        pinchcam.EventPointerDown,
		PointerID:   3,
		X:           100,
		Y:           200,
		ActiveCount: 1,
	})
	store.EmitEvent(pinchcam.GestureEvent{
		Type:  pinchcam.EventPinch,
		Ratio: 2.0,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != pinchcam.EventPointerDown || e0.PointerID != 3 || e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Type != pinchcam.EventPinch || e1.Ratio != 2.0 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store pinchcam.EntityStore = NewDonburiStore(world)
	_ = store
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchcam.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchcam.GestureEvent) {
		count2++
	})

	store.EmitEvent(pinchcam.GestureEvent{Type: pinchcam.EventCameraChange})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_ControllerGesture(t *testing.T) {
	cfg := pinchcam.DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	cfg.Home = pinchcam.Position{Z: 10}
	c, err := pinchcam.NewController(cfg)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	world := donburi.NewWorld()
	c.SetEntityStore(NewDonburiStore(world))

	var pinches []pinchcam.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchcam.GestureEvent) {
		if e.Type == pinchcam.EventPinch {
			pinches = append(pinches, e)
		}
	})

	_ = c.PointerDown(pinchcam.PointerEvent{ID: 1, X: 350, Y: 300})
	_ = c.PointerDown(pinchcam.PointerEvent{ID: 2, X: 450, Y: 300})
	_ = c.PointerMove(pinchcam.PointerEvent{ID: 2, X: 550, Y: 300})
	GestureEventType.ProcessEvents(world)

	if len(pinches) != 1 {
		t.Fatalf("expected 1 pinch event, got %d", len(pinches))
	}
	if pinches[0].Camera != c.Camera().Position {
		t.Errorf("pinch camera = %v, want %v", pinches[0].Camera, c.Camera().Position)
	}
}

// Package ecs provides ECS adapters for pinchcam's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges pinchcam gesture
// events (pointer down/move/up/cancel, pinch, camera change, resize) into a
// [Donburi] world as typed events. Subscribe to [GestureEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	controller.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package pinchcam turns mouse and multi-touch pointer events into pan and
// pinch-to-zoom for a perspective camera looking down -Z.
//
// A [Controller] owns the active pointers, the gesture snapshot, the
// two-pointer midpoint and the [Camera]. Feed it events directly:
//
//	c, err := pinchcam.NewController(pinchcam.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ev := range []pinchcam.PointerEvent{{ID: 1, X: 300, Y: 240}, {ID: 2, X: 400, Y: 240}} {
//		if err := c.PointerDown(ev); err != nil {
//			log.Fatal(err)
//		}
//	}
//	if err := c.PointerMove(pinchcam.PointerEvent{ID: 2, X: 500, Y: 240}); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(c.Camera().Position)
//
// or let [Run] drive it from an [Ebitengine] game loop, polling the mouse
// and touches every frame.
//
// # Gestures
//
// Every pointer-down, and every pointer-up or cancel that removes an active
// pointer, starts a new gesture: the camera pose is captured as a
// [GestureSnapshot] and each pointer's position is stored as its down
// state. While two or more pointers are active the two lowest-order
// pointers define a [Midpoint]. On each move of those pointers the camera
// is solved against the snapshot, never against the previous frame:
//
//   - depth = down depth / (distance / down distance), clamped to
//     [Config.MinDepth, Config.MaxDepth];
//   - the camera moves along the ray from the down camera through the
//     midpoint to that depth, keeping the world point under the midpoint
//     fixed while zooming;
//   - the midpoint's screen delta, converted to world units at the down
//     depth, pans the result.
//
// A single pointer never moves the camera.
//
// # Testing gestures
//
// [Controller.InjectDown], [Controller.InjectPinch] and friends queue
// synthetic events consumed one per [Controller.Update]. [LoadGestureScript]
// replays YAML step lists through the same queue.
//
// [Ebitengine]: https://ebitengine.org
package pinchcam

package pinchcam

// syntheticPointerEvent represents a single injected pointer event in
// screen coordinates.
type syntheticPointerEvent struct {
	kind  EventType
	event PointerEvent
}

func (c *Controller) inject(kind EventType, id PointerID, x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		kind:  kind,
		event: PointerEvent{ID: id, X: x, Y: y},
	})
}

// InjectDown queues a pointer-down. The event is consumed by the next
// Update call.
func (c *Controller) InjectDown(id PointerID, x, y float64) {
	c.inject(EventPointerDown, id, x, y)
}

// InjectMove queues a pointer-move.
func (c *Controller) InjectMove(id PointerID, x, y float64) {
	c.inject(EventPointerMove, id, x, y)
}

// InjectUp queues a pointer-up.
func (c *Controller) InjectUp(id PointerID, x, y float64) {
	c.inject(EventPointerUp, id, x, y)
}

// InjectCancel queues a pointer-cancel.
func (c *Controller) InjectCancel(id PointerID, x, y float64) {
	c.inject(EventPointerCancel, id, x, y)
}

// InjectPinch queues a full two-finger pinch centred on (cx, cy): both
// pointers go down fromDist apart on a horizontal line, spread to toDist
// over steps interpolated move pairs, then lift. Minimum steps is 1.
func (c *Controller) InjectPinch(a, b PointerID, cx, cy, fromDist, toDist float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	c.InjectDown(a, cx-fromDist/2, cy)
	c.InjectDown(b, cx+fromDist/2, cy)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		d := fromDist + (toDist-fromDist)*t
		c.InjectMove(a, cx-d/2, cy)
		c.InjectMove(b, cx+d/2, cy)
	}
	c.InjectUp(a, cx-toDist/2, cy)
	c.InjectUp(b, cx+toDist/2, cy)
}

// InjectDrag queues a single-pointer drag from (fromX, fromY) to (toX, toY)
// with frames-2 interpolated moves. Minimum frames is 2 (down + up).
func (c *Controller) InjectDrag(id PointerID, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectDown(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectUp(id, toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (c *Controller) PendingInjections() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed (real input should be skipped).
func (c *Controller) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch evt.kind {
	case EventPointerDown:
		_ = c.PointerDown(evt.event)
	case EventPointerMove:
		_ = c.PointerMove(evt.event)
	case EventPointerUp:
		c.PointerUp(evt.event)
	case EventPointerCancel:
		c.PointerCancel(evt.event)
	}
	return true
}

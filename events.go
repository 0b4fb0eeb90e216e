package pinchcam

import "github.com/go-gl/mathgl/mgl64"

// PointerContext carries data for pointer callbacks.
type PointerContext struct {
	Type      EventType
	PointerID PointerID
	X, Y      float64
	// Order is the pointer's rank after the event, or -1 once released.
	Order int
	// ActiveCount is the number of active pointers after the event.
	ActiveCount int
}

// PinchContext carries data for pinch callbacks. It is fired after the
// solver has written the new camera position.
type PinchContext struct {
	CenterX, CenterY float64
	// Ratio is Distance / DownDistance (guarded, see Midpoint.Ratio).
	Ratio        float64
	Distance     float64
	DownDistance float64
	// Camera is the solved camera position.
	Camera mgl64.Vec3
}

// CameraContext carries data for camera change callbacks.
type CameraContext struct {
	Previous, Current mgl64.Vec3
	// Flying is true when the change came from a FlyTo animation.
	Flying bool
}

// ResizeContext carries the new viewport size.
type ResizeContext struct {
	Width, Height int
}

// EntityStore is the interface for optional ECS integration.
// When set on a Controller, gesture events are forwarded to it.
type EntityStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent is the flattened event forwarded to an EntityStore.
type GestureEvent struct {
	Type        EventType
	PointerID   PointerID
	X, Y        float64
	ActiveCount int
	// Pinch fields (valid for EventPinch)
	Ratio float64
	// Camera is the camera position after the event.
	Camera mgl64.Vec3
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

type handlerRegistry struct {
	pointerDown  []handler[PointerContext]
	pointerMove  []handler[PointerContext]
	pointerUp    []handler[PointerContext]
	pinch        []handler[PinchContext]
	cameraChange []handler[CameraContext]
	resize       []handler[ResizeContext]
	nextID       uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removeHandler(h.reg.pointerUp, h.id)
	case EventPinch:
		h.reg.pinch = removeHandler(h.reg.pinch, h.id)
	case EventCameraChange:
		h.reg.cameraChange = removeHandler(h.reg.cameraChange, h.id)
	case EventResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id)
	}
}

func (r *handlerRegistry) handle(event EventType) CallbackHandle {
	r.nextID++
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// OnPointerDown registers a callback for pointer-down events.
func (c *Controller) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	h := c.handlers.handle(EventPointerDown)
	c.handlers.pointerDown = append(c.handlers.pointerDown, handler[PointerContext]{id: h.id, fn: fn})
	return h
}

// OnPointerMove registers a callback for moves of active pointers.
func (c *Controller) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	h := c.handlers.handle(EventPointerMove)
	c.handlers.pointerMove = append(c.handlers.pointerMove, handler[PointerContext]{id: h.id, fn: fn})
	return h
}

// OnPointerUp registers a callback for pointer-up and pointer-cancel events.
// PointerContext.Type tells them apart.
func (c *Controller) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	h := c.handlers.handle(EventPointerUp)
	c.handlers.pointerUp = append(c.handlers.pointerUp, handler[PointerContext]{id: h.id, fn: fn})
	return h
}

// OnPinch registers a callback fired after each solved pinch/pan frame.
func (c *Controller) OnPinch(fn func(PinchContext)) CallbackHandle {
	h := c.handlers.handle(EventPinch)
	c.handlers.pinch = append(c.handlers.pinch, handler[PinchContext]{id: h.id, fn: fn})
	return h
}

// OnCameraChange registers a callback fired whenever the camera position
// changes, from a gesture or from a FlyTo animation.
func (c *Controller) OnCameraChange(fn func(CameraContext)) CallbackHandle {
	h := c.handlers.handle(EventCameraChange)
	c.handlers.cameraChange = append(c.handlers.cameraChange, handler[CameraContext]{id: h.id, fn: fn})
	return h
}

// OnResize registers a callback fired after the viewport is resized.
func (c *Controller) OnResize(fn func(ResizeContext)) CallbackHandle {
	h := c.handlers.handle(EventResize)
	c.handlers.resize = append(c.handlers.resize, handler[ResizeContext]{id: h.id, fn: fn})
	return h
}

// --- Event dispatch ---

func (c *Controller) firePointer(event EventType, id PointerID, pos Vec2, order int) {
	ctx := PointerContext{
		Type: event, PointerID: id, X: pos.X, Y: pos.Y,
		Order: order, ActiveCount: c.registry.Len(),
	}
	var hs []handler[PointerContext]
	switch event {
	case EventPointerDown:
		hs = c.handlers.pointerDown
	case EventPointerMove:
		hs = c.handlers.pointerMove
	default:
		hs = c.handlers.pointerUp
	}
	for _, h := range hs {
		h.fn(ctx)
	}
	c.emit(GestureEvent{
		Type: event, PointerID: id, X: pos.X, Y: pos.Y,
		ActiveCount: ctx.ActiveCount, Camera: c.camera.Position,
	})
}

func (c *Controller) firePinch(m *Midpoint) {
	ctx := PinchContext{
		CenterX:      m.Position.X,
		CenterY:      m.Position.Y,
		Ratio:        m.Ratio(),
		Distance:     m.Distance,
		DownDistance: m.DownDistance,
		Camera:       c.camera.Position,
	}
	for _, h := range c.handlers.pinch {
		h.fn(ctx)
	}
	c.emit(GestureEvent{
		Type: EventPinch, X: ctx.CenterX, Y: ctx.CenterY,
		ActiveCount: c.registry.Len(), Ratio: ctx.Ratio, Camera: ctx.Camera,
	})
}

func (c *Controller) fireCameraChange(prev mgl64.Vec3, flying bool) {
	ctx := CameraContext{Previous: prev, Current: c.camera.Position, Flying: flying}
	for _, h := range c.handlers.cameraChange {
		h.fn(ctx)
	}
	c.emit(GestureEvent{
		Type: EventCameraChange, ActiveCount: c.registry.Len(), Camera: ctx.Current,
	})
}

func (c *Controller) fireResize(width, height int) {
	ctx := ResizeContext{Width: width, Height: height}
	for _, h := range c.handlers.resize {
		h.fn(ctx)
	}
	c.emit(GestureEvent{
		Type: EventResize, X: float64(width), Y: float64(height),
		ActiveCount: c.registry.Len(), Camera: c.camera.Position,
	})
}

func (c *Controller) emit(event GestureEvent) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(event)
}

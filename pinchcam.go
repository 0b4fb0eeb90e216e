package pinchcam

import "math"

// Vec2 is a screen-space position in pixels. The origin is the top-left
// corner of the viewport, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Mid returns the point halfway between v and o.
func (v Vec2) Mid(o Vec2) Vec2 {
	return Vec2{X: (v.X + o.X) / 2, Y: (v.Y + o.Y) / 2}
}

func (v Vec2) finite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// PointerID identifies an input contact for its whole lifetime.
// Touch contacts use their platform touch id; the mouse uses MousePointerID.
type PointerID int

// MousePointerID is the identity assigned to the mouse pointer.
const MousePointerID PointerID = -1

// PointerEvent is the minimal payload every pointer handler receives.
type PointerEvent struct {
	ID   PointerID
	X, Y float64
}

// Pos returns the event's screen position.
func (e PointerEvent) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventPointerDown   EventType = iota // a pointer became active
	EventPointerMove                    // an active pointer moved
	EventPointerUp                      // a pointer was released
	EventPointerCancel                  // a pointer was cancelled by the host
	EventPinch                          // the midpoint moved and the camera was solved
	EventCameraChange                   // the camera position changed
	EventResize                         // the viewport was resized
)

var eventTypeNames = [...]string{
	EventPointerDown:   "pointerdown",
	EventPointerMove:   "pointermove",
	EventPointerUp:     "pointerup",
	EventPointerCancel: "pointercancel",
	EventPinch:         "pinch",
	EventCameraChange:  "camerachange",
	EventResize:        "resize",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

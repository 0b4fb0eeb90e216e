package pinchcam

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Surface is the host's render target. The controller only resizes it.
type Surface interface {
	SetSize(width, height int)
}

// Controller owns all gesture state: the active pointers, the gesture
// snapshot, the midpoint and the camera. Every handler runs to completion
// and leaves that state consistent before returning; a Controller is not
// safe for concurrent use.
type Controller struct {
	cfg    Config
	camera *Camera
	solver Solver

	registry  Registry
	snapshots snapshotManager
	midpoint  *Midpoint
	zoomRay   zoomRay

	surface  Surface
	store    EntityStore
	handlers handlerRegistry

	// Input state
	source      InputSource
	tracked     map[PointerID]Vec2
	touchBuf    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner

	debug    bool
	debugOut io.Writer
}

// NewController validates cfg and creates a controller with a camera at
// cfg.Home.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		camera:   newCamera(cfg),
		solver:   Solver{MinDepth: cfg.MinDepth, MaxDepth: cfg.MaxDepth},
		tracked:  make(map[PointerID]Vec2),
		debug:    cfg.Debug,
		debugOut: os.Stderr,
	}
	c.snapshots.capture(c.camera)
	return c, nil
}

// PointerDown registers a new pointer and starts a new gesture.
// A down for an id that is already active returns ErrDuplicateIdentity and
// changes nothing.
func (c *Controller) PointerDown(ev PointerEvent) error {
	if !ev.Pos().finite() {
		return fmt.Errorf("pointer down %d: %w", ev.ID, ErrInvalidCoordinate)
	}
	rec, err := c.registry.Add(ev)
	if err != nil {
		c.debugf("contract violation: %v", err)
		return err
	}
	c.camera.StopFlying()
	c.beginGesture()
	c.firePointer(EventPointerDown, rec.ID, rec.Position, rec.Order)
	return nil
}

// PointerMove updates an active pointer. When it is one of the two midpoint
// pointers the camera is re-solved against the gesture snapshot. Moves of
// inactive pointers (hover) are ignored.
func (c *Controller) PointerMove(ev PointerEvent) error {
	if !ev.Pos().finite() {
		return fmt.Errorf("pointer move %d: %w", ev.ID, ErrInvalidCoordinate)
	}
	rec, ok := c.registry.FindByID(ev.ID)
	if !ok {
		return nil
	}
	rec.Position = ev.Pos()

	if c.midpoint == nil || !c.midpoint.Tracks(rec.ID) {
		c.firePointer(EventPointerMove, rec.ID, rec.Position, rec.Order)
		return nil
	}

	c.midpoint.update()
	pos, err := c.solver.Solve(c.midpoint, c.snapshots.current.Camera, &c.zoomRay)
	if err != nil {
		c.debugf("pinch: %v", err)
		c.firePointer(EventPointerMove, rec.ID, rec.Position, rec.Order)
		return err
	}
	// The gesture owns the camera; a flight would fight the solve every frame.
	c.camera.StopFlying()
	prev := c.camera.Position
	c.camera.Position = pos

	c.firePointer(EventPointerMove, rec.ID, rec.Position, rec.Order)
	c.firePinch(c.midpoint)
	if pos != prev {
		c.fireCameraChange(prev, false)
	}
	return nil
}

// PointerUp releases a pointer. Releasing an unknown id is a no-op.
func (c *Controller) PointerUp(ev PointerEvent) {
	c.release(EventPointerUp, ev)
}

// PointerCancel is handled exactly like PointerUp.
func (c *Controller) PointerCancel(ev PointerEvent) {
	c.release(EventPointerCancel, ev)
}

func (c *Controller) release(event EventType, ev PointerEvent) {
	if !c.registry.Remove(ev.ID) {
		c.debugf("%s for inactive pointer %d ignored", event, ev.ID)
		return
	}
	c.beginGesture()
	c.firePointer(event, ev.ID, ev.Pos(), -1)
}

// beginGesture runs on every membership change: snapshot the camera,
// renumber the pointers, capture their down state and rebuild the midpoint.
func (c *Controller) beginGesture() {
	snap := c.snapshots.capture(c.camera)
	c.registry.ReassignOrder()
	c.registry.CaptureDownSnapshots(snap)

	c.midpoint = nil
	if c.registry.Len() >= 2 {
		c.midpoint = newMidpoint(c.registry.At(0), c.registry.At(1))
	}
	c.debugf("gesture %d: %d active pointer(s), midpoint=%t",
		snap.Version, c.registry.Len(), c.midpoint != nil)
}

// Resize updates the camera aspect and projection and resizes the surface.
// Non-positive sizes (a minimized window) are ignored.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		c.debugf("resize to %dx%d ignored", width, height)
		return
	}
	c.camera.SetViewport(float64(width), float64(height))
	if c.surface != nil {
		c.surface.SetSize(width, height)
	}
	c.fireResize(width, height)
}

// Update advances camera animation, the attached script runner and polled
// input by one frame of dt seconds.
func (c *Controller) Update(dt float32) {
	prev := c.camera.Position
	if c.camera.update(dt) {
		c.fireCameraChange(prev, true)
	}
	if c.runner != nil {
		c.runner.step(c)
	}
	c.processInput()
}

// ResetView flies the camera back to the configured home position.
func (c *Controller) ResetView(duration float32) {
	prev := c.camera.Position
	c.camera.FlyTo(c.cfg.Home.Vec3(), duration, ease.OutCubic)
	if duration <= 0 && c.camera.Position != prev {
		c.fireCameraChange(prev, false)
	}
}

// Camera returns the controlled camera.
func (c *Controller) Camera() *Camera {
	return c.camera
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Midpoint returns the current midpoint, or nil when fewer than two
// pointers are active.
func (c *Controller) Midpoint() *Midpoint {
	return c.midpoint
}

// Snapshot returns the current gesture snapshot.
func (c *Controller) Snapshot() GestureSnapshot {
	return c.snapshots.current
}

// ActiveCount returns the number of active pointers.
func (c *Controller) ActiveCount() int {
	return c.registry.Len()
}

// Pointers returns the active pointers in order. The returned slice MUST NOT
// be mutated.
func (c *Controller) Pointers() []*PointerRecord {
	return c.registry.Pointers()
}

// Pointer returns a copy of the active pointer with the given id, or
// ErrNotFound.
func (c *Controller) Pointer(id PointerID) (PointerRecord, error) {
	rec, ok := c.registry.FindByID(id)
	if !ok {
		return PointerRecord{}, fmt.Errorf("pointer %d: %w", id, ErrNotFound)
	}
	return *rec, nil
}

// SetSurface sets the render surface resized by Resize.
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
}

// SetEntityStore sets the optional ECS bridge.
func (c *Controller) SetEntityStore(store EntityStore) {
	c.store = store
}

// SetInputSource sets the source polled by Update. A nil source disables
// polling; injected events still run.
func (c *Controller) SetInputSource(src InputSource) {
	c.source = src
}

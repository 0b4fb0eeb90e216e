package pinchcam

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraPose is a value snapshot of everything needed to project through a
// camera. Copying a pose never aliases the live Camera.
type CameraPose struct {
	// Position is the camera position in world units. The camera looks
	// down -Z with +Y up.
	Position mgl64.Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is the viewport width divided by its height.
	Aspect float64
	// Near and Far are the clip plane distances.
	Near, Far float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64
}

// Projection returns the perspective projection matrix for the pose.
func (p CameraPose) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(p.FOV), p.Aspect, p.Near, p.Far)
}

// View returns the world-to-camera matrix for the pose.
func (p CameraPose) View() mgl64.Mat4 {
	return mgl64.LookAtV(p.Position, p.Position.Add(cameraForward), cameraUp)
}

// ScreenToNDC converts a pixel position in the pose's viewport to
// normalized device coordinates.
func (p CameraPose) ScreenToNDC(s Vec2) Vec2 {
	return ScreenToNDC(s, p.Width, p.Height)
}

// WorldPixelSize returns the world size of one pixel at the given depth.
func (p CameraPose) WorldPixelSize(depth float64) (float64, error) {
	return WorldPixelSizeAtDepth(p.FOV, p.Height, depth)
}

func (p CameraPose) valid() bool {
	return finiteVec3(p.Position) &&
		isFinite(p.FOV) && p.FOV > 0 && p.FOV < 180 &&
		isFinite(p.Aspect) && p.Aspect > 0 &&
		p.Near > 0 && p.Far > p.Near &&
		p.Width > 0 && p.Height > 0
}

// flightAnim holds the active FlyTo tweens for each axis.
type flightAnim struct {
	target                 mgl64.Vec3
	tweenX, tweenY, tweenZ *gween.Tween
	doneX, doneY, doneZ    bool
}

// Camera is the perspective camera driven by gestures. Position is written
// by the gesture solver; the host reads it when rendering.
type Camera struct {
	// Position is the world-space camera position.
	Position mgl64.Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is width/height. Call UpdateProjectionMatrix after changing it.
	Aspect float64
	// Near and Far are the clip plane distances.
	Near, Far float64

	width, height float64
	projection    mgl64.Mat4

	flight *flightAnim
}

// newCamera creates a Camera from the configured projection parameters and
// home position.
func newCamera(cfg Config) *Camera {
	c := &Camera{
		Position: cfg.Home.Vec3(),
		FOV:      cfg.FOV,
		Near:     cfg.Near,
		Far:      cfg.Far,
	}
	c.SetViewport(float64(cfg.Width), float64(cfg.Height))
	return c
}

// SetViewport records the viewport size, updates Aspect and recomputes the
// projection matrix.
func (c *Camera) SetViewport(width, height float64) {
	c.width = width
	c.height = height
	if height > 0 {
		c.Aspect = width / height
	}
	c.UpdateProjectionMatrix()
}

// Viewport returns the viewport size in pixels.
func (c *Camera) Viewport() (width, height float64) {
	return c.width, c.height
}

// UpdateProjectionMatrix recomputes the cached projection matrix. Call it
// after changing FOV, Aspect, Near or Far directly.
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the cached projection matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return c.projection
}

// ViewMatrix returns the world-to-camera matrix for the current position.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Position.Add(cameraForward), cameraUp)
}

// Pose returns a value snapshot of the camera.
func (c *Camera) Pose() CameraPose {
	return CameraPose{
		Position: c.Position,
		FOV:      c.FOV,
		Aspect:   c.Aspect,
		Near:     c.Near,
		Far:      c.Far,
		Width:    c.width,
		Height:   c.height,
	}
}

// WorldToScreen projects a world point to pixel coordinates. ok is false
// when the point is behind the camera.
func (c *Camera) WorldToScreen(world mgl64.Vec3) (screen Vec2, ok bool) {
	clip := c.projection.Mul4(c.ViewMatrix()).Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return Vec2{}, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return Vec2{
		X: (ndcX + 1) / 2 * c.width,
		Y: (1 - ndcY) / 2 * c.height,
	}, true
}

// ScreenToNDC converts a pixel position in the current viewport to
// normalized device coordinates.
func (c *Camera) ScreenToNDC(screen Vec2) Vec2 {
	return ScreenToNDC(screen, c.width, c.height)
}

// ScreenToWorld casts a ray through the pixel position and returns where it
// crosses the plane z = planeZ.
func (c *Camera) ScreenToWorld(screen Vec2, planeZ float64) (mgl64.Vec3, error) {
	pose := c.Pose()
	return CastRayFromScreen(pose.ScreenToNDC(screen), planeZ, pose)
}

// FlyTo animates the camera to target over duration seconds. A duration of
// zero or less moves the camera immediately.
func (c *Camera) FlyTo(target mgl64.Vec3, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.flight = nil
		c.Position = target
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.flight = &flightAnim{
		target: target,
		tweenX: gween.New(float32(c.Position.X()), float32(target.X()), duration, easeFn),
		tweenY: gween.New(float32(c.Position.Y()), float32(target.Y()), duration, easeFn),
		tweenZ: gween.New(float32(c.Position.Z()), float32(target.Z()), duration, easeFn),
	}
}

// StopFlying cancels an active FlyTo, leaving the camera where it is.
func (c *Camera) StopFlying() {
	c.flight = nil
}

// Flying reports whether a FlyTo animation is in progress.
func (c *Camera) Flying() bool {
	return c.flight != nil
}

// update advances an active flight by dt seconds. It reports whether the
// position changed.
func (c *Camera) update(dt float32) bool {
	f := c.flight
	if f == nil {
		return false
	}
	prev := c.Position

	if !f.doneX {
		val, done := f.tweenX.Update(dt)
		c.Position[0] = float64(val)
		f.doneX = done
	}
	if !f.doneY {
		val, done := f.tweenY.Update(dt)
		c.Position[1] = float64(val)
		f.doneY = done
	}
	if !f.doneZ {
		val, done := f.tweenZ.Update(dt)
		c.Position[2] = float64(val)
		f.doneZ = done
	}
	if f.doneX && f.doneY && f.doneZ {
		// Tweens run in float32; land exactly on the target.
		c.Position = f.target
		c.flight = nil
	}
	return c.Position != prev
}

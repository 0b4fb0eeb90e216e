package pinchcam

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func newTestCamera() *Camera {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	cfg.Home = Position{Z: 10}
	return newCamera(cfg)
}

func TestCameraDefaults(t *testing.T) {
	cam := newTestCamera()
	if cam.Position != (mgl64.Vec3{0, 0, 10}) {
		t.Errorf("Position = %v, want (0, 0, 10)", cam.Position)
	}
	if cam.FOV != 75 {
		t.Errorf("FOV = %v, want 75", cam.FOV)
	}
	if !approxEqual(cam.Aspect, 800.0/600.0, epsilon) {
		t.Errorf("Aspect = %v, want 4/3", cam.Aspect)
	}
	if w, h := cam.Viewport(); w != 800 || h != 600 {
		t.Errorf("Viewport = %vx%v, want 800x600", w, h)
	}
	if cam.Flying() {
		t.Error("new camera should not be flying")
	}
}

func TestCameraSetViewport(t *testing.T) {
	cam := newTestCamera()
	before := cam.ProjectionMatrix()
	cam.SetViewport(600, 600)
	if cam.Aspect != 1 {
		t.Errorf("Aspect = %v, want 1", cam.Aspect)
	}
	if cam.ProjectionMatrix() == before {
		t.Error("projection matrix should change with aspect")
	}
}

func TestCameraUpdateProjectionMatrix(t *testing.T) {
	cam := newTestCamera()
	cam.FOV = 40
	cam.UpdateProjectionMatrix()
	want := mgl64.Perspective(mgl64.DegToRad(40), cam.Aspect, cam.Near, cam.Far)
	if cam.ProjectionMatrix() != want {
		t.Error("projection matrix not recomputed")
	}
}

func TestCameraPoseIsACopy(t *testing.T) {
	cam := newTestCamera()
	pose := cam.Pose()
	cam.Position = mgl64.Vec3{1, 2, 3}
	if pose.Position != (mgl64.Vec3{0, 0, 10}) {
		t.Errorf("pose aliased the camera: %v", pose.Position)
	}
	if pose.Width != 800 || pose.Height != 600 {
		t.Errorf("pose viewport = %vx%v", pose.Width, pose.Height)
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := newTestCamera()
	cam.Position = mgl64.Vec3{2, -1, 10}

	s, ok := cam.WorldToScreen(mgl64.Vec3{2, -1, 0})
	if !ok || !approxEqual(s.X, 400, epsilon) || !approxEqual(s.Y, 300, epsilon) {
		t.Errorf("point below camera = %v (ok=%v), want viewport center", s, ok)
	}

	// +X is right, +Y is up on screen.
	s, _ = cam.WorldToScreen(mgl64.Vec3{3, 0, 0})
	if s.X <= 400 || s.Y >= 300 {
		t.Errorf("(3, 0, 0) projected to %v, want right of and above center", s)
	}

	if _, ok := cam.WorldToScreen(mgl64.Vec3{0, 0, 20}); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraScreenWorldRoundTrip(t *testing.T) {
	cam := newTestCamera()
	cam.Position = mgl64.Vec3{-4, 3, 7}
	for _, p := range []Vec2{{0, 0}, {400, 300}, {123, 456}, {800, 600}} {
		world, err := cam.ScreenToWorld(p, 0)
		if err != nil {
			t.Fatalf("ScreenToWorld(%v): %v", p, err)
		}
		if !approxEqual(world.Z(), 0, epsilon) {
			t.Errorf("ScreenToWorld(%v).Z = %v, want 0", p, world.Z())
		}
		back, ok := cam.WorldToScreen(world)
		if !ok || !approxEqual(back.X, p.X, 1e-6) || !approxEqual(back.Y, p.Y, 1e-6) {
			t.Errorf("round trip %v -> %v -> %v", p, world, back)
		}
	}
}

func TestCameraFlyTo(t *testing.T) {
	cam := newTestCamera()
	target := mgl64.Vec3{4, -2, 3}
	cam.FlyTo(target, 1.0, ease.Linear)
	if !cam.Flying() {
		t.Fatal("FlyTo should start a flight")
	}

	if !cam.update(0.5) {
		t.Fatal("update should report a change mid-flight")
	}
	want := mgl64.Vec3{2, -1, 6.5}
	if !vec3ApproxEqual(cam.Position, want, 1e-4) {
		t.Errorf("halfway Position = %v, want %v", cam.Position, want)
	}

	cam.update(0.6)
	if cam.Flying() {
		t.Error("flight should be over")
	}
	if cam.Position != target {
		t.Errorf("Position = %v, want exactly %v", cam.Position, target)
	}
	if cam.update(0.1) {
		t.Error("update after landing should report no change")
	}
}

func TestCameraFlyToImmediate(t *testing.T) {
	cam := newTestCamera()
	target := mgl64.Vec3{1, 1, 1}
	cam.FlyTo(target, 0, nil)
	if cam.Flying() || cam.Position != target {
		t.Errorf("zero-duration FlyTo: flying=%v position=%v", cam.Flying(), cam.Position)
	}
}

func TestCameraFlyToNilEase(t *testing.T) {
	cam := newTestCamera()
	cam.FlyTo(mgl64.Vec3{0, 0, 20}, 2, nil)
	cam.update(1)
	if !approxEqual(cam.Position.Z(), 15, 1e-4) {
		t.Errorf("nil ease should be linear, z = %v", cam.Position.Z())
	}
}

func TestCameraStopFlying(t *testing.T) {
	cam := newTestCamera()
	cam.FlyTo(mgl64.Vec3{10, 10, 10}, 1, ease.InOutQuad)
	cam.update(0.25)
	at := cam.Position
	cam.StopFlying()
	if cam.Flying() {
		t.Error("StopFlying should end the flight")
	}
	if cam.update(0.25) || cam.Position != at {
		t.Error("camera moved after StopFlying")
	}
}

func TestResetView(t *testing.T) {
	c := newTestController(t)
	c.Camera().Position = mgl64.Vec3{6, -6, 25}

	var changes []CameraContext
	c.OnCameraChange(func(ctx CameraContext) { changes = append(changes, ctx) })

	c.ResetView(0.5)
	for i := 0; i < 60 && c.Camera().Flying(); i++ {
		c.Update(1.0 / 60)
	}
	if c.Camera().Position != (mgl64.Vec3{0, 0, 10}) {
		t.Errorf("Position = %v, want home", c.Camera().Position)
	}
	if len(changes) == 0 {
		t.Fatal("expected camera change callbacks")
	}
	for _, ch := range changes {
		if !ch.Flying {
			t.Errorf("animated change should be flagged Flying: %+v", ch)
		}
	}
	last := changes[len(changes)-1]
	if last.Current != c.Camera().Position {
		t.Errorf("last change = %v, want %v", last.Current, c.Camera().Position)
	}
}

func TestResetViewImmediate(t *testing.T) {
	c := newTestController(t)
	c.Camera().Position = mgl64.Vec3{1, 2, 3}

	var got CameraContext
	c.OnCameraChange(func(ctx CameraContext) { got = ctx })
	c.ResetView(0)

	if got.Flying || got.Previous != (mgl64.Vec3{1, 2, 3}) || got.Current != (mgl64.Vec3{0, 0, 10}) {
		t.Errorf("change = %+v", got)
	}
}

func TestCameraScreenToNDC(t *testing.T) {
	cam := newTestCamera()
	if got := cam.ScreenToNDC(Vec2{400, 300}); got != (Vec2{0, 0}) {
		t.Errorf("center = %v, want (0, 0)", got)
	}
	if got := cam.ScreenToNDC(Vec2{0, 600}); got != (Vec2{-1, -1}) {
		t.Errorf("bottom-left = %v, want (-1, -1)", got)
	}
	if got, want := cam.ScreenToNDC(Vec2{123, 45}), cam.Pose().ScreenToNDC(Vec2{123, 45}); got != want {
		t.Errorf("camera %v != pose %v", got, want)
	}
}

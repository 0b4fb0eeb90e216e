package pinchcam

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	cameraForward = mgl64.Vec3{0, 0, -1}
	cameraUp      = mgl64.Vec3{0, 1, 0}
)

// unprojectDepth is the NDC depth used to pick a second point on a view ray.
// Any value strictly inside the clip volume gives the same direction.
const unprojectDepth = 0.5

// WorldPixelSizeAtDepth returns the world-space size of one screen pixel on a
// plane at the given distance in front of a perspective camera.
//
//	size = 2 * depth * tan(fov/2) / viewportHeight
//
// fov is the vertical field of view in degrees. depth must be finite and
// positive.
func WorldPixelSizeAtDepth(fov, viewportHeight, depth float64) (float64, error) {
	if !isFinite(depth) || depth <= 0 {
		return 0, fmt.Errorf("world pixel size at depth %v: %w", depth, ErrDegenerateGeometry)
	}
	if !isFinite(viewportHeight) || viewportHeight <= 0 || !isFinite(fov) || fov <= 0 {
		return 0, fmt.Errorf("world pixel size (fov %v, height %v): %w", fov, viewportHeight, ErrDegenerateGeometry)
	}
	visible := 2 * depth * math.Tan(mgl64.DegToRad(fov)/2)
	return visible / viewportHeight, nil
}

// ScreenToNDC converts a pixel position to normalized device coordinates:
// [-1, 1] on both axes with +Y up.
func ScreenToNDC(p Vec2, width, height float64) Vec2 {
	return Vec2{
		X: p.X/width*2 - 1,
		Y: -(p.Y/height)*2 + 1,
	}
}

// CastRayFromScreen casts a ray from the camera through the normalized
// device coordinate ndc and returns where it crosses the plane
// z = targetDepth.
func CastRayFromScreen(ndc Vec2, targetDepth float64, pose CameraPose) (mgl64.Vec3, error) {
	if !ndc.finite() || !isFinite(targetDepth) {
		return mgl64.Vec3{}, fmt.Errorf("cast ray (%v, %v) to z=%v: %w", ndc.X, ndc.Y, targetDepth, ErrInvalidCoordinate)
	}
	if !pose.valid() {
		return mgl64.Vec3{}, fmt.Errorf("cast ray: camera pose %+v: %w", pose, ErrDegenerateGeometry)
	}

	inv := pose.Projection().Mul4(pose.View()).Inv()
	p := inv.Mul4x1(mgl64.Vec4{ndc.X, ndc.Y, unprojectDepth, 1})
	if p.W() == 0 {
		return mgl64.Vec3{}, fmt.Errorf("cast ray: singular projection: %w", ErrDegenerateGeometry)
	}
	world := p.Vec3().Mul(1 / p.W())

	dir := world.Sub(pose.Position).Normalize()
	if dir.Z() == 0 {
		return mgl64.Vec3{}, fmt.Errorf("cast ray: ray parallel to z=%v: %w", targetDepth, ErrDegenerateGeometry)
	}
	dist := (targetDepth - pose.Position.Z()) / dir.Z()
	hit := pose.Position.Add(dir.Mul(dist))
	if !finiteVec3(hit) {
		return mgl64.Vec3{}, fmt.Errorf("cast ray: non-finite hit: %w", ErrDegenerateGeometry)
	}
	return hit, nil
}

func finiteVec3(v mgl64.Vec3) bool {
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}

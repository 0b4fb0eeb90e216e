package pinchcam

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultMinDepth = 0.1
	defaultMaxDepth = 30.0
)

// zoomRay is scratch space reused across frames. It always holds the last
// ray the solver cast.
type zoomRay struct {
	mouse Vec2
	ray   mgl64.Vec3
}

// Solver computes the camera position for a pinch/pan gesture.
type Solver struct {
	MinDepth, MaxDepth float64
}

// Depth returns downZ/ratio clamped to [MinDepth, MaxDepth]. A NaN ratio is
// treated as 1; zero and infinite ratios clamp to the range ends.
func (s Solver) Depth(downZ, ratio float64) float64 {
	if math.IsNaN(ratio) {
		ratio = 1
	}
	z := downZ / ratio
	if math.IsNaN(z) {
		z = downZ
	}
	return mgl64.Clamp(z, s.MinDepth, s.MaxDepth)
}

// Solve returns the new camera position for the midpoint's current state.
//
// The camera is moved along the ray from the down camera through the
// midpoint to the new depth, then shifted by the midpoint's screen delta
// converted to world units at the down depth. Screen Y grows downward and
// world Y grows upward, so the shift is subtracted on X and added on Y.
func (s Solver) Solve(mid *Midpoint, down CameraPose, scratch *zoomRay) (mgl64.Vec3, error) {
	downZ := down.Position.Z()
	if !isFinite(downZ) || downZ <= 0 {
		return mgl64.Vec3{}, fmt.Errorf("solve: down camera depth %v: %w", downZ, ErrDegenerateGeometry)
	}
	depth := s.Depth(downZ, mid.Ratio())

	scratch.mouse = mid.Position
	anchor, err := CastRayFromScreen(down.ScreenToNDC(scratch.mouse), depth, down)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("solve: %w", err)
	}
	scratch.ray = anchor

	worldPixel, err := down.WorldPixelSize(downZ)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("solve: %w", err)
	}
	delta := mid.Position.Sub(mid.DownPosition)

	pos := mgl64.Vec3{
		anchor.X() - delta.X*worldPixel,
		anchor.Y() + delta.Y*worldPixel,
		depth,
	}
	if !finiteVec3(pos) {
		return mgl64.Vec3{}, fmt.Errorf("solve: non-finite camera position: %w", ErrDegenerateGeometry)
	}
	return pos, nil
}

package pinchcam

// GestureSnapshot is the camera state captured at a gesture boundary. Every
// delta during the gesture is measured against it. Version increases by one
// on each capture so stale snapshots are detectable.
type GestureSnapshot struct {
	Version uint64
	Camera  CameraPose
}

type snapshotManager struct {
	current GestureSnapshot
}

// capture takes a fresh snapshot of cam.
func (m *snapshotManager) capture(cam *Camera) GestureSnapshot {
	m.current = GestureSnapshot{
		Version: m.current.Version + 1,
		Camera:  cam.Pose(),
	}
	return m.current
}

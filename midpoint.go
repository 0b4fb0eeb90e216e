package pinchcam

import "math"

// Midpoint is the synthetic anchor of a two-pointer gesture. It is derived
// from the two lowest-order pointers and exists only while at least two
// pointers are active.
type Midpoint struct {
	// Position and Distance track the live pointers.
	Position Vec2
	Distance float64

	// DownPosition and DownDistance are fixed when the midpoint is created.
	DownPosition Vec2
	DownDistance float64

	first, second *PointerRecord
	version       uint64
}

// newMidpoint builds a midpoint from two pointers' live and down states.
func newMidpoint(a, b *PointerRecord) *Midpoint {
	m := &Midpoint{
		first:        a,
		second:       b,
		DownPosition: a.Down.Position.Mid(b.Down.Position),
		DownDistance: a.Down.Position.Dist(b.Down.Position),
		version:      a.Down.Version,
	}
	m.update()
	return m
}

// update recomputes the live position and distance.
func (m *Midpoint) update() {
	m.Position = m.first.Position.Mid(m.second.Position)
	m.Distance = m.first.Position.Dist(m.second.Position)
}

// Ratio returns Distance / DownDistance. Coincident pointers are guarded:
// 0/0 reports 1 and x/0 reports +Inf, so callers can clamp the result.
func (m *Midpoint) Ratio() float64 {
	if m.DownDistance == 0 {
		if m.Distance == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return m.Distance / m.DownDistance
}

// Tracks reports whether the pointer participates in the midpoint.
func (m *Midpoint) Tracks(id PointerID) bool {
	return m.first.ID == id || m.second.ID == id
}

// Pointers returns the ids of the two participating pointers.
func (m *Midpoint) Pointers() (first, second PointerID) {
	return m.first.ID, m.second.ID
}

// Version returns the gesture snapshot version the midpoint was built from.
func (m *Midpoint) Version() uint64 {
	return m.version
}

package pinchcam

import "fmt"

// DownSnapshot is what a pointer looked like at the start of the current
// gesture.
type DownSnapshot struct {
	Position Vec2
	Camera   CameraPose
	// Version is the GestureSnapshot version this was captured from.
	Version uint64
}

// PointerRecord is one active pointer. Records are owned by a Registry and
// referenced (not copied) by the Midpoint.
type PointerRecord struct {
	ID       PointerID
	Position Vec2
	// Order is the pointer's 0-based rank among active pointers, by
	// insertion. It is reassigned whenever the active set changes.
	Order int
	Down  DownSnapshot
}

// Registry is the ordered set of active pointers.
type Registry struct {
	pointers []*PointerRecord
}

// Add appends a record for the event's pointer and returns it.
// Adding an id that is already active returns ErrDuplicateIdentity and
// leaves the registry unchanged.
func (r *Registry) Add(ev PointerEvent) (*PointerRecord, error) {
	if _, ok := r.FindByID(ev.ID); ok {
		return nil, fmt.Errorf("add pointer %d: %w", ev.ID, ErrDuplicateIdentity)
	}
	p := &PointerRecord{
		ID:       ev.ID,
		Position: ev.Pos(),
		Order:    len(r.pointers),
	}
	r.pointers = append(r.pointers, p)
	return p, nil
}

// Remove drops the record with the given id, closes the gap in the order
// indices and reports whether one was found. A missing id is not an error: an up can race a cancel.
func (r *Registry) Remove(id PointerID) bool {
	for i, p := range r.pointers {
		if p.ID == id {
			copy(r.pointers[i:], r.pointers[i+1:])
			r.pointers[len(r.pointers)-1] = nil
			r.pointers = r.pointers[:len(r.pointers)-1]
			r.ReassignOrder()
			return true
		}
	}
	return false
}

// FindByID returns the active record for id.
func (r *Registry) FindByID(id PointerID) (*PointerRecord, bool) {
	for _, p := range r.pointers {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ReassignOrder renumbers every record by its insertion rank so orders are
// always 0..Len()-1.
func (r *Registry) ReassignOrder() {
	for i, p := range r.pointers {
		p.Order = i
	}
}

// CaptureDownSnapshots stores each pointer's current position and the
// snapshot's camera pose as that pointer's down state.
func (r *Registry) CaptureDownSnapshots(snap GestureSnapshot) {
	for _, p := range r.pointers {
		p.Down = DownSnapshot{
			Position: p.Position,
			Camera:   snap.Camera,
			Version:  snap.Version,
		}
	}
}

// Len returns the number of active pointers.
func (r *Registry) Len() int {
	return len(r.pointers)
}

// At returns the pointer with the given order, or nil if out of range.
// Only valid after ReassignOrder.
func (r *Registry) At(order int) *PointerRecord {
	if order < 0 || order >= len(r.pointers) {
		return nil
	}
	return r.pointers[order]
}

// Pointers returns the active records in order. The returned slice MUST NOT
// be mutated.
func (r *Registry) Pointers() []*PointerRecord {
	return r.pointers
}

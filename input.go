package pinchcam

import (
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource is the polled pointer state the controller reads each frame.
type InputSource interface {
	// CursorPosition returns the mouse position in pixels.
	CursorPosition() (x, y int)
	// MousePressed reports whether the primary mouse button is held.
	MousePressed() bool
	// AppendTouchIDs appends the ids of all current touches to ids.
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	// TouchPosition returns the position of a touch in pixels.
	TouchPosition(id ebiten.TouchID) (x, y int)
}

// EbitenSource reads pointer state from ebiten. It is only meaningful inside
// a running ebiten game loop.
type EbitenSource struct{}

// CursorPosition implements InputSource.
func (EbitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// MousePressed implements InputSource.
func (EbitenSource) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// AppendTouchIDs implements InputSource.
func (EbitenSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

// TouchPosition implements InputSource.
func (EbitenSource) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

// processInput is called from Update. One injected event is consumed per
// frame; while injections are pending, real input is skipped.
func (c *Controller) processInput() {
	if c.processInjectedInput() {
		return
	}
	if c.source == nil {
		return
	}
	c.pollPointers(c.source)
}

// pollPointers diffs the source's pressed pointers against last frame's and
// turns the difference into up, down and move events, in that order and by
// ascending id within each group.
func (c *Controller) pollPointers(src InputSource) {
	current := make(map[PointerID]Vec2, len(c.tracked)+1)
	if src.MousePressed() {
		x, y := src.CursorPosition()
		current[MousePointerID] = Vec2{X: float64(x), Y: float64(y)}
	}
	c.touchBuf = src.AppendTouchIDs(c.touchBuf[:0])
	for _, tid := range c.touchBuf {
		x, y := src.TouchPosition(tid)
		current[PointerID(tid)] = Vec2{X: float64(x), Y: float64(y)}
	}

	// Released: tracked last frame, gone now. Report at the last known position.
	for _, id := range slices.Sorted(maps.Keys(c.tracked)) {
		if _, ok := current[id]; ok {
			continue
		}
		last := c.tracked[id]
		delete(c.tracked, id)
		c.PointerUp(PointerEvent{ID: id, X: last.X, Y: last.Y})
	}

	ids := slices.Sorted(maps.Keys(current))
	for _, id := range ids {
		if _, ok := c.tracked[id]; ok {
			continue
		}
		// An injected pointer still holds this id.
		if _, active := c.registry.FindByID(id); active {
			continue
		}
		pos := current[id]
		if err := c.PointerDown(PointerEvent{ID: id, X: pos.X, Y: pos.Y}); err != nil {
			continue
		}
		c.tracked[id] = pos
	}

	for _, id := range ids {
		last, ok := c.tracked[id]
		pos := current[id]
		if !ok || last == pos {
			continue
		}
		c.tracked[id] = pos
		_ = c.PointerMove(PointerEvent{ID: id, X: pos.X, Y: pos.Y})
	}
}

package pinchcam

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug mode. When enabled, gesture
// boundaries, ignored events, contract violations and degenerate geometry
// are logged to stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetDebugOutput redirects debug logging. A nil writer discards it.
func (c *Controller) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.debugOut = w
}

// debugf writes one [pinchcam]-prefixed line when debug mode is on.
func (c *Controller) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut, "[pinchcam] "+format+"\n", args...)
}

// debugLine formats the overlay text shown by Run when ShowDebug is set.
func (c *Controller) debugLine() string {
	p := c.camera.Position
	s := fmt.Sprintf("camera: (%.3f, %.3f, %.3f)\npointers: %d",
		p.X(), p.Y(), p.Z(), c.registry.Len())
	if m := c.midpoint; m != nil {
		s += fmt.Sprintf("\nmidpoint: (%.0f, %.0f) ratio %.3f", m.Position.X, m.Position.Y, m.Ratio())
	}
	return s
}

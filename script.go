package pinchcam

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action   string  `yaml:"action"`
	ID       int     `yaml:"id"`
	ID2      int     `yaml:"id2"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ToX      float64 `yaml:"to_x"`
	ToY      float64 `yaml:"to_y"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Frames   int     `yaml:"frames"`
	Duration float32 `yaml:"duration"`
}

// gestureScript is the top-level structure of a gesture script.
type gestureScript struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"down": true, "move": true, "up": true, "cancel": true,
	"drag": true, "pinch": true, "wait": true, "reset": true,
}

// ScriptRunner replays a gesture script through the inject queue, one step
// per frame once earlier injections have drained. Attach it with
// SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a YAML (or JSON) gesture script:
//
//	steps:
//	  - {action: pinch, id: 1, id2: 2, x: 320, y: 240, from: 100, to: 200, frames: 10}
//	  - {action: wait, frames: 30}
//	  - {action: reset, duration: 0.5}
func LoadGestureScript(data []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step method is called from Update
// before input is processed.
func (c *Controller) SetScriptRunner(runner *ScriptRunner) {
	c.runner = runner
}

// Done reports whether every step has run and its injections have drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(c *Controller) {
	if r.done {
		return
	}
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	id := PointerID(st.ID)
	switch st.Action {
	case "down":
		c.InjectDown(id, st.X, st.Y)
	case "move":
		c.InjectMove(id, st.X, st.Y)
	case "up":
		c.InjectUp(id, st.X, st.Y)
	case "cancel":
		c.InjectCancel(id, st.X, st.Y)
	case "drag":
		c.InjectDrag(id, st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "pinch":
		c.InjectPinch(id, PointerID(st.ID2), st.X, st.Y, st.From, st.To, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "reset":
		c.ResetView(st.Duration)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}

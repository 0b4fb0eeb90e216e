package pinchcam

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLoadGestureScript(t *testing.T) {
	data := []byte(`
steps:
  - {action: pinch, id: 1, id2: 2, x: 400, y: 300, from: 100, to: 200, frames: 4}
  - {action: wait, frames: 3}
  - {action: drag, id: 1, x: 10, y: 10, to_x: 200, to_y: 200, frames: 4}
  - {action: reset, duration: 0.5}
`)
	runner, err := LoadGestureScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	p := runner.steps[0]
	if p.Action != "pinch" || p.ID != 1 || p.ID2 != 2 || p.From != 100 || p.To != 200 || p.Frames != 4 {
		t.Errorf("step 0 mismatch: %+v", p)
	}
	if runner.steps[2].ToX != 200 || runner.steps[2].ToY != 200 {
		t.Errorf("step 2 mismatch: %+v", runner.steps[2])
	}
	if runner.steps[3].Duration != 0.5 {
		t.Errorf("step 3 mismatch: %+v", runner.steps[3])
	}
}

func TestLoadGestureScript_JSON(t *testing.T) {
	runner, err := LoadGestureScript([]byte(`{"steps": [{"action": "down", "id": 3, "x": 1, "y": 2}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.steps[0].ID != 3 || runner.steps[0].Y != 2 {
		t.Errorf("step 0 mismatch: %+v", runner.steps[0])
	}
}

func TestLoadGestureScript_Invalid(t *testing.T) {
	if _, err := LoadGestureScript([]byte(`steps: [`)); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadGestureScript_Empty(t *testing.T) {
	if _, err := LoadGestureScript([]byte(`steps: []`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadGestureScript_UnknownAction(t *testing.T) {
	if _, err := LoadGestureScript([]byte(`steps: [{action: rotate}]`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Pinch(t *testing.T) {
	c := newTestController(t)
	runner, err := LoadGestureScript([]byte(`steps: [{action: pinch, id: 1, id2: 2, x: 400, y: 300, from: 100, to: 200, frames: 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScriptRunner(runner)

	// First step call queues the whole pinch.
	runner.step(c)
	if c.PendingInjections() != 8 {
		t.Fatalf("expected 8 queued events, got %d", c.PendingInjections())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	for i := 0; i < 20 && !runner.Done(); i++ {
		c.Update(1.0 / 60)
	}
	if !runner.Done() {
		t.Fatal("runner should be done after the queue drained")
	}
	if !vec3ApproxEqual(c.Camera().Position, mgl64.Vec3{0, 0, 5}, epsilon) {
		t.Errorf("camera = %v, want (0, 0, 5)", c.Camera().Position)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	c := newTestController(t)
	runner, err := LoadGestureScript([]byte(`steps: [{action: wait, frames: 3}, {action: down, id: 1, x: 5, y: 5}]`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1 runs the wait, frames 2 and 3 count it down.
	for i := 0; i < 3; i++ {
		runner.step(c)
		if c.PendingInjections() != 0 {
			t.Fatalf("frame %d: down queued during wait", i+1)
		}
	}

	// Frame 4 queues the down.
	runner.step(c)
	if c.PendingInjections() != 1 {
		t.Fatalf("expected 1 queued event, got %d", c.PendingInjections())
	}
	c.processInput()
	runner.step(c)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	c := newTestController(t)
	runner, err := LoadGestureScript([]byte(`steps: [{action: drag, id: 1, x: 0, y: 0, to_x: 10, to_y: 0, frames: 3}, {action: up, id: 9}]`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(c)
	if c.PendingInjections() != 3 {
		t.Fatalf("expected 3 events, got %d", c.PendingInjections())
	}
	runner.step(c)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}
}

func TestRunnerReset(t *testing.T) {
	c := newTestController(t)
	c.Camera().Position = mgl64.Vec3{3, 3, 3}
	runner, err := LoadGestureScript([]byte(`steps: [{action: reset}]`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(c)
	if !runner.Done() {
		t.Error("runner should be done after its only step")
	}
	if c.Camera().Position != (mgl64.Vec3{0, 0, 10}) {
		t.Errorf("camera = %v, want home", c.Camera().Position)
	}
}

package pinchcam

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// scriptOptions allows top-level loops and conditionals.
var scriptOptions = &syntax.FileOptions{
	TopLevelControl: true,
	GlobalReassign:  true,
	While:           true,
}

// LoadStarlarkScript runs a Starlark program and collects the gesture steps
// it records into a ScriptRunner. The program sees one builtin per script
// action, so loops and arithmetic can generate long gestures:
//
//	for i in range(5):
//	    pinch(1, 2, 320, 240, 100, 100 + 40 * i, frames = 8)
//	    wait(10)
//	reset(0.5)
//
// Script print output goes to stdout.
func LoadStarlarkScript(name, src string) (*ScriptRunner, error) {
	rec := &stepRecorder{}
	thread := &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) },
	}
	if _, err := starlark.ExecFileOptions(scriptOptions, thread, name, src, rec.builtins()); err != nil {
		return nil, fmt.Errorf("run gesture script %s: %w", name, err)
	}
	if len(rec.steps) == 0 {
		return nil, fmt.Errorf("run gesture script %s: no steps", name)
	}
	return &ScriptRunner{steps: rec.steps}, nil
}

// stepRecorder backs the Starlark builtins.
type stepRecorder struct {
	steps []scriptStep
}

func (r *stepRecorder) builtins() starlark.StringDict {
	return starlark.StringDict{
		"down":   starlark.NewBuiltin("down", r.pointer("down")),
		"move":   starlark.NewBuiltin("move", r.pointer("move")),
		"up":     starlark.NewBuiltin("up", r.pointer("up")),
		"cancel": starlark.NewBuiltin("cancel", r.pointer("cancel")),
		"drag":   starlark.NewBuiltin("drag", r.drag),
		"pinch":  starlark.NewBuiltin("pinch", r.pinch),
		"wait":   starlark.NewBuiltin("wait", r.wait),
		"reset":  starlark.NewBuiltin("reset", r.reset),
	}
}

type builtinFunc = func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

// pointer handles down(id, x, y) and friends.
func (r *stepRecorder) pointer(action string) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var id int
		var x, y starlark.Value
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &id, "x", &x, "y", &y); err != nil {
			return nil, err
		}
		st := scriptStep{Action: action, ID: id}
		var err error
		if st.X, err = toFloat(b, "x", x); err != nil {
			return nil, err
		}
		if st.Y, err = toFloat(b, "y", y); err != nil {
			return nil, err
		}
		r.steps = append(r.steps, st)
		return starlark.None, nil
	}
}

// drag(id, x, y, to_x, to_y, frames=10)
func (r *stepRecorder) drag(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var id int
	frames := 10
	var x, y, toX, toY starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"id", &id, "x", &x, "y", &y, "to_x", &toX, "to_y", &toY, "frames?", &frames); err != nil {
		return nil, err
	}
	st := scriptStep{Action: "drag", ID: id, Frames: frames}
	if err := floats(b, []*float64{&st.X, &st.Y, &st.ToX, &st.ToY}, []string{"x", "y", "to_x", "to_y"}, x, y, toX, toY); err != nil {
		return nil, err
	}
	r.steps = append(r.steps, st)
	return starlark.None, nil
}

// pinch(id, id2, x, y, from, to, frames=10)
func (r *stepRecorder) pinch(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var id, id2 int
	frames := 10
	var x, y, from, to starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"id", &id, "id2", &id2, "x", &x, "y", &y, "from", &from, "to", &to, "frames?", &frames); err != nil {
		return nil, err
	}
	st := scriptStep{Action: "pinch", ID: id, ID2: id2, Frames: frames}
	if err := floats(b, []*float64{&st.X, &st.Y, &st.From, &st.To}, []string{"x", "y", "from", "to"}, x, y, from, to); err != nil {
		return nil, err
	}
	r.steps = append(r.steps, st)
	return starlark.None, nil
}

// wait(frames)
func (r *stepRecorder) wait(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var frames int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "frames", &frames); err != nil {
		return nil, err
	}
	r.steps = append(r.steps, scriptStep{Action: "wait", Frames: frames})
	return starlark.None, nil
}

// reset(duration=0)
func (r *stepRecorder) reset(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var duration starlark.Value = starlark.Float(0)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "duration?", &duration); err != nil {
		return nil, err
	}
	d, err := toFloat(b, "duration", duration)
	if err != nil {
		return nil, err
	}
	r.steps = append(r.steps, scriptStep{Action: "reset", Duration: float32(d)})
	return starlark.None, nil
}

func floats(b *starlark.Builtin, dst []*float64, names []string, vals ...starlark.Value) error {
	for i, v := range vals {
		f, err := toFloat(b, names[i], v)
		if err != nil {
			return err
		}
		*dst[i] = f
	}
	return nil
}

// toFloat accepts Starlark ints and floats.
func toFloat(b *starlark.Builtin, name string, v starlark.Value) (float64, error) {
	f, ok := starlark.AsFloat(v)
	if !ok {
		return 0, fmt.Errorf("%s: %s must be a number, got %s", b.Name(), name, v.Type())
	}
	return f, nil
}

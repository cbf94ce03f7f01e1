// Package bot drives the controller from a tengo script instead of a
// human, for soak-testing locomotion. The script defines a global
// step(t, out) function and fills out's axes and key fields each call.
package bot

import (
	_ "embed"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/firstperson/controller"
)

//go:embed autopilot.tengo
var DefaultScript []byte

// The user script defines step; this trailer invokes it with the
// injected globals.
const dispatchScript = `
step(__t, __out)
`

// Driver is a scripted controller.Input. Call Update once per frame
// before the controller's frame phase.
type Driver struct {
	compiled *tengo.Compiled
	t        float64

	moveX, moveY float64
	lookX, lookY float64

	held map[controller.Action]bool
	prev map[controller.Action]bool
}

func New(src []byte) (*Driver, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte(dispatchScript)...))
	_ = script.Add("__t", 0.0)
	_ = script.Add("__out", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("bot: compile script: %w", err)
	}

	return &Driver{
		compiled: compiled,
		held:     map[controller.Action]bool{},
		prev:     map[controller.Action]bool{},
	}, nil
}

// Update advances script time and re-evaluates step.
func (d *Driver) Update(dt float64) error {
	d.t += dt
	if err := d.compiled.Set("__t", d.t); err != nil {
		return fmt.Errorf("bot: set time: %w", err)
	}
	if err := d.compiled.Run(); err != nil {
		return fmt.Errorf("bot: run script: %w", err)
	}

	out, ok := d.compiled.Get("__out").Object().(*tengo.Map)
	if !ok {
		return fmt.Errorf("bot: __out is not a map")
	}

	d.moveX = floatField(out, "move_x")
	d.moveY = floatField(out, "move_y")
	d.lookX = floatField(out, "look_x")
	d.lookY = floatField(out, "look_y")

	for action, field := range map[controller.Action]string{
		controller.ActionSprint: "sprint",
		controller.ActionCrouch: "crouch",
		controller.ActionJump:   "jump",
	} {
		d.prev[action] = d.held[action]
		d.held[action] = boolField(out, field)
	}
	return nil
}

func (d *Driver) LookDelta() (float64, float64) { return d.lookX, d.lookY }
func (d *Driver) MoveAxes() (float64, float64)  { return d.moveX, d.moveY }
func (d *Driver) Held(a controller.Action) bool { return d.held[a] }

// Pressed reports a rising edge between the last two Updates.
func (d *Driver) Pressed(a controller.Action) bool {
	return d.held[a] && !d.prev[a]
}

func floatField(m *tengo.Map, key string) float64 {
	obj, ok := m.Value[key]
	if !ok {
		return 0
	}
	v, _ := tengo.ToFloat64(obj)
	return v
}

func boolField(m *tengo.Map, key string) bool {
	obj, ok := m.Value[key]
	if !ok {
		return false
	}
	return !obj.IsFalsy()
}

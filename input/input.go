// Package input adapts ebiten's keyboard and mouse polling to the
// controller's Input interface.
package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/firstperson/controller"
)

// Bindings maps controller actions to ebiten keys.
type Bindings map[controller.Action]ebiten.Key

// DefaultBindings is shift to sprint, c to crouch, space to jump.
func DefaultBindings() Bindings {
	return Bindings{
		controller.ActionSprint: ebiten.KeyShiftLeft,
		controller.ActionCrouch: ebiten.KeyC,
		controller.ActionJump:   ebiten.KeySpace,
	}
}

// ParseKey resolves a spec key name ("shift", "space", "c", ...) to an
// ebiten key.
func ParseKey(name string) (ebiten.Key, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return ebiten.KeyShiftLeft, nil
	case "ctrl", "control":
		return ebiten.KeyControlLeft, nil
	case "alt":
		return ebiten.KeyAltLeft, nil
	case "space":
		return ebiten.KeySpace, nil
	case "tab":
		return ebiten.KeyTab, nil
	case "enter":
		return ebiten.KeyEnter, nil
	}

	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("input: unknown key %q: %w", name, err)
	}
	return key, nil
}

// Keyboard polls ebiten once per frame. Call Update before the
// controller's frame phase so LookDelta reflects this frame's cursor
// motion.
type Keyboard struct {
	bindings Bindings

	lastX, lastY int
	dx, dy       float64
	primed       bool
}

func NewKeyboard(bindings Bindings) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Keyboard{bindings: bindings}
}

// Update snapshots the cursor delta for this frame. The first frame
// reads as zero so a far-off initial cursor cannot yank the camera.
func (k *Keyboard) Update() {
	x, y := ebiten.CursorPosition()
	if !k.primed {
		k.lastX, k.lastY = x, y
		k.primed = true
	}
	k.dx = float64(x - k.lastX)
	k.dy = float64(y - k.lastY)
	k.lastX, k.lastY = x, y
}

func (k *Keyboard) LookDelta() (float64, float64) {
	return k.dx, k.dy
}

func (k *Keyboard) MoveAxes() (float64, float64) {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y += 1
	}
	return x, y
}

func (k *Keyboard) Pressed(a controller.Action) bool {
	key, ok := k.bindings[a]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustPressed(key)
}

func (k *Keyboard) Held(a controller.Action) bool {
	key, ok := k.bindings[a]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

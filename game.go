package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/firstperson/bot"
	"github.com/milk9111/firstperson/controller"
	"github.com/milk9111/firstperson/input"
	"github.com/milk9111/firstperson/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	fixedDelta = 1.0 / 60

	pixelsPerMeter = 48
	originX        = 100
	horizonY       = baseHeight - 120
)

type Game struct {
	frames int

	ctrl  *controller.Controller
	body  *DemoBody
	world *DemoWorld

	keyboard *input.Keyboard
	driver   *bot.Driver

	watcher  *prefabs.Watcher
	specPath string

	accumulator float64
}

func NewGame(cfg controller.Config, keyboard *input.Keyboard, driver *bot.Driver, aud controller.Audio) *Game {
	world := &DemoWorld{}
	body := NewDemoBody(world, spawnPosition(cfg))

	var in controller.Input = keyboard
	if driver != nil {
		in = driver
	}
	ctrl := controller.New(cfg, body, world, aud, in)

	return &Game{
		ctrl:     ctrl,
		body:     body,
		world:    world,
		keyboard: keyboard,
		driver:   driver,
	}
}

// WatchSpec applies live edits of the named spec to the running
// controller.
func (g *Game) WatchSpec(watcher *prefabs.Watcher, specPath string) {
	g.watcher = watcher
	g.specPath = specPath
}

func spawnPosition(cfg controller.Config) mgl64.Vec3 {
	return mgl64.Vec3{1, cfg.Height/2 + 1, 0}
}

func (g *Game) Update() error {
	g.frames++

	if g.driver != nil {
		if err := g.driver.Update(fixedDelta); err != nil {
			return err
		}
	} else {
		g.keyboard.Update()
	}

	g.ctrl.Update(fixedDelta)

	g.accumulator += fixedDelta
	for g.accumulator >= fixedDelta {
		g.ctrl.FixedUpdate()
		g.body.Step(fixedDelta)
		g.accumulator -= fixedDelta
	}

	// Fell into the pit; put the character back at the start.
	if g.body.Position().Y() < -20 {
		g.body.SetPosition(spawnPosition(g.ctrl.Config()))
		g.body.SetVelocity(mgl64.Vec3{})
	}

	g.drainSpecEvents()
	return nil
}

func (g *Game) drainSpecEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			spec, err := prefabs.LoadCharacterSpec(g.specPath)
			if err != nil {
				log.Printf("reload %s: %v", g.specPath, err)
				continue
			}
			g.ctrl.ApplyConfig(prefabs.BuildConfig(spec))
			log.Printf("reloaded %s", g.specPath)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("spec watcher: %v", err)
		default:
			return
		}
	}
}

func screenX(x float64) float32 { return float32(x*pixelsPerMeter + originX) }
func screenY(y float64) float32 { return float32(horizonY - y*pixelsPerMeter) }

// Draw renders a side-on debug view of the terrain strip and capsule.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	for sx := 0; sx < baseWidth; sx += 4 {
		wx := (float64(sx) - originX) / pixelsPerMeter
		h, _, ok := g.world.groundAt(wx, 0)
		if !ok {
			continue
		}
		top := screenY(h)
		vector.DrawFilledRect(screen, float32(sx), top, 4, float32(baseHeight)-top, colornames.Darkolivegreen, false)
	}

	st := g.ctrl.State()
	cfg := g.ctrl.Config()
	pos := g.body.Position()

	capW := float32(cfg.Radius * 2 * pixelsPerMeter)
	capH := float32(st.Height * pixelsPerMeter)
	clr := colornames.Lightsteelblue
	if st.Stance == controller.StanceAirborne {
		clr = colornames.Lightsalmon
	}
	vector.DrawFilledRect(screen, screenX(pos.X())-capW/2, screenY(pos.Y()+st.Height/2), capW, capH, clr, false)

	latched := ""
	if st.JumpLatched {
		latched = "  (jump latched)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.0f\npos (%.2f, %.2f, %.2f)  vel y %.2f\n%s / %s%s\nstamina %.0f\nyaw %.1f  pitch %.1f",
		ebiten.ActualFPS(),
		pos.X(), pos.Y(), pos.Z(), g.body.Velocity().Y(),
		st.Gait, st.Stance, latched, st.Stamina, st.Yaw, st.Pitch))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

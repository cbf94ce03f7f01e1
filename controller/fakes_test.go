package controller

import "github.com/go-gl/mathgl/mgl64"

// fakeBody records every command the controller issues.
type fakeBody struct {
	pos mgl64.Vec3
	vel mgl64.Vec3

	forces    []mgl64.Vec3
	impulses  []mgl64.Vec3
	capsules  [][2]float64 // radius, height
	frictions []float64
	gravity   []float64
}

func (b *fakeBody) Position() mgl64.Vec3        { return b.pos }
func (b *fakeBody) SetPosition(pos mgl64.Vec3)  { b.pos = pos }
func (b *fakeBody) Velocity() mgl64.Vec3        { return b.vel }
func (b *fakeBody) SetVelocity(vel mgl64.Vec3)  { b.vel = vel }
func (b *fakeBody) AddForce(force mgl64.Vec3)   { b.forces = append(b.forces, force) }
func (b *fakeBody) AddImpulse(imp mgl64.Vec3)   { b.impulses = append(b.impulses, imp) }
func (b *fakeBody) SetFriction(f float64)       { b.frictions = append(b.frictions, f) }
func (b *fakeBody) SetGravityScale(s float64)   { b.gravity = append(b.gravity, s) }
func (b *fakeBody) SetCapsule(r, h float64)     { b.capsules = append(b.capsules, [2]float64{r, h}) }
func (b *fakeBody) lastCapsule() [2]float64 {
	if len(b.capsules) == 0 {
		return [2]float64{}
	}
	return b.capsules[len(b.capsules)-1]
}

// fakeWorld answers overlap queries from a flag and ray queries from a
// script keyed by call order.
type fakeWorld struct {
	overlap bool

	rays    []rayResult
	rayCall int

	// rayFunc overrides the scripted results when set.
	rayFunc func(origin, dir mgl64.Vec3, maxDist float64) (RayHit, bool)
}

type rayResult struct {
	hit RayHit
	ok  bool
}

func (w *fakeWorld) OverlapSphere(center mgl64.Vec3, radius float64, mask uint32) bool {
	return w.overlap
}

func (w *fakeWorld) RayCast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (RayHit, bool) {
	if w.rayFunc != nil {
		return w.rayFunc(origin, dir, maxDist)
	}
	if w.rayCall >= len(w.rays) {
		return RayHit{}, false
	}
	r := w.rays[w.rayCall]
	w.rayCall++
	return r.hit, r.ok
}

// fakeAudio records played clips in order.
type fakeAudio struct {
	clips   []string
	volumes []float64
}

func (a *fakeAudio) Play(clip string, volume float64) {
	a.clips = append(a.clips, clip)
	a.volumes = append(a.volumes, volume)
}

// fakeInput is a scripted input device. Pressed fields auto-clear
// after one read so each assignment is a key-down edge.
type fakeInput struct {
	lookX, lookY float64
	moveX, moveY float64

	pressed map[Action]bool
	held    map[Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed: map[Action]bool{},
		held:    map[Action]bool{},
	}
}

func (in *fakeInput) LookDelta() (float64, float64) { return in.lookX, in.lookY }
func (in *fakeInput) MoveAxes() (float64, float64)  { return in.moveX, in.moveY }
func (in *fakeInput) Held(a Action) bool            { return in.held[a] }

func (in *fakeInput) Pressed(a Action) bool {
	p := in.pressed[a]
	in.pressed[a] = false
	return p
}

func (in *fakeInput) press(a Action) {
	in.pressed[a] = true
	in.held[a] = true
}

// newTestController builds a controller over fakes, standing on flat
// ground by default.
func newTestController(cfg Config) (*Controller, *fakeBody, *fakeWorld, *fakeAudio, *fakeInput) {
	body := &fakeBody{pos: mgl64.Vec3{0, cfg.Height / 2, 0}}
	world := &fakeWorld{overlap: true}
	audio := &fakeAudio{}
	in := newFakeInput()
	c := New(cfg, body, world, audio, in)
	return c, body, world, audio, in
}

// settle runs one fixed tick so the ground sensor observes the world.
func settle(c *Controller) {
	c.FixedUpdate()
}

package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/firstperson/controller"
)

// DemoWorld is an analytic heightfield: flat floor, a step block, a
// climbable ramp, a steep bank and an open pit. Enough terrain to
// exercise every controller path without a physics engine.
type DemoWorld struct{}

// groundAt returns the surface height and normal under (x, z). ok is
// false over the pit.
func (w *DemoWorld) groundAt(x, z float64) (float64, mgl64.Vec3, bool) {
	up := mgl64.Vec3{0, 1, 0}

	switch {
	case x > 14 && x < 18: // pit
		return 0, up, false
	case x > 4 && x < 6: // step block, inside the standing step budget
		return 0.35, up, true
	case x > 7 && x < 10: // 30 degree ramp, walkable
		rise := (x - 7) * math.Tan(30*math.Pi/180)
		n := mgl64.Vec3{-math.Sin(30 * math.Pi / 180), math.Cos(30 * math.Pi / 180), 0}
		return rise, n, true
	case x > 11 && x < 13: // 60 degree bank, should refuse uphill movement
		rise := (x - 11) * math.Tan(60*math.Pi/180)
		n := mgl64.Vec3{-math.Sin(60 * math.Pi / 180), math.Cos(60 * math.Pi / 180), 0}
		return rise, n, true
	default:
		return 0, up, true
	}
}

func (w *DemoWorld) OverlapSphere(center mgl64.Vec3, radius float64, mask uint32) bool {
	h, _, ok := w.groundAt(center.X(), center.Z())
	if !ok {
		return false
	}
	return center.Y()-radius <= h
}

// RayCast only understands downward rays; the controller casts nothing
// else.
func (w *DemoWorld) RayCast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (controller.RayHit, bool) {
	if dir.Y() >= 0 {
		return controller.RayHit{}, false
	}
	h, n, ok := w.groundAt(origin.X(), origin.Z())
	if !ok || origin.Y() < h || origin.Y()-h > maxDist {
		return controller.RayHit{}, false
	}
	return controller.RayHit{
		Point:  mgl64.Vec3{origin.X(), h, origin.Z()},
		Normal: n,
	}, true
}

// DemoBody is a minimal kinematic stand-in for an engine rigid body:
// explicit Euler integration of accumulated forces plus a floor clamp
// against the terrain.
type DemoBody struct {
	world *DemoWorld

	pos, vel   mgl64.Vec3
	force      mgl64.Vec3
	halfHeight float64
	radius     float64
	friction   float64
	gravity    float64
}

func NewDemoBody(world *DemoWorld, pos mgl64.Vec3) *DemoBody {
	return &DemoBody{world: world, pos: pos, gravity: 1}
}

func (b *DemoBody) Position() mgl64.Vec3     { return b.pos }
func (b *DemoBody) SetPosition(p mgl64.Vec3) { b.pos = p }
func (b *DemoBody) Velocity() mgl64.Vec3     { return b.vel }
func (b *DemoBody) SetVelocity(v mgl64.Vec3) { b.vel = v }
func (b *DemoBody) AddForce(f mgl64.Vec3)    { b.force = b.force.Add(f) }
func (b *DemoBody) AddImpulse(i mgl64.Vec3)  { b.vel = b.vel.Add(i) }

func (b *DemoBody) SetCapsule(radius, height float64) {
	b.radius = radius
	b.halfHeight = height / 2
}

func (b *DemoBody) SetFriction(f float64)     { b.friction = f }
func (b *DemoBody) SetGravityScale(s float64) { b.gravity = s }

// Step integrates one physics tick and keeps the capsule above the
// terrain surface.
func (b *DemoBody) Step(dt float64) {
	b.vel = b.vel.Add(b.force.Mul(dt))
	b.force = mgl64.Vec3{}
	b.pos = b.pos.Add(b.vel.Mul(dt))

	if h, _, ok := b.world.groundAt(b.pos.X(), b.pos.Z()); ok {
		floor := h + b.halfHeight
		if b.pos.Y() < floor {
			b.pos = mgl64.Vec3{b.pos.X(), floor, b.pos.Z()}
			if b.vel.Y() < 0 {
				b.vel = mgl64.Vec3{b.vel.X(), 0, b.vel.Z()}
			}
		}
	}
}

package controller

import "github.com/go-gl/mathgl/mgl64"

// RayHit is the surface point and normal returned by a ray query.
type RayHit struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// PhysicsWorld is the query surface the controller consumes from the
// host collision engine. Implementations must ignore trigger volumes
// and restrict results to the given layer mask.
type PhysicsWorld interface {
	OverlapSphere(center mgl64.Vec3, radius float64, mask uint32) bool
	RayCast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (RayHit, bool)
}

// PhysicsBody is the rigid body the controller drives. Forces and
// impulses are handed to the engine; the engine integrates them.
type PhysicsBody interface {
	Position() mgl64.Vec3
	SetPosition(pos mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(vel mgl64.Vec3)
	AddForce(force mgl64.Vec3)
	AddImpulse(impulse mgl64.Vec3)
	SetCapsule(radius, height float64)
	SetFriction(friction float64)
	SetGravityScale(scale float64)
}

// Audio plays a named clip once, fire and forget. Unknown clip names
// must be ignored silently.
type Audio interface {
	Play(clip string, volume float64)
}

// Action is one of the controller's bindable keys.
type Action uint8

const (
	ActionSprint Action = iota
	ActionCrouch
	ActionJump
)

// Input supplies look/move axes and key queries. Pressed reports a
// key-down edge for the current frame, Held the level state.
type Input interface {
	LookDelta() (dx, dy float64)
	MoveAxes() (x, y float64)
	Pressed(a Action) bool
	Held(a Action) bool
}

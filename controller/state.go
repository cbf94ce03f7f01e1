package controller

import "github.com/go-gl/mathgl/mgl64"

// Gait is the mutually exclusive locomotion mode.
type Gait uint8

const (
	GaitWalk Gait = iota
	GaitCrouch
	GaitSprint
)

func (g Gait) String() string {
	switch g {
	case GaitCrouch:
		return "crouch"
	case GaitSprint:
		return "sprint"
	default:
		return "walk"
	}
}

// Stance is the ground-contact dimension of the state.
type Stance uint8

const (
	StanceAirborne Stance = iota
	StanceGrounded
)

func (s Stance) String() string {
	if s == StanceGrounded {
		return "grounded"
	}
	return "airborne"
}

// State is the per-character simulation state. It is owned by a single
// Controller and mutated only by its two phase functions. Gait, Stance
// and JumpLatched replace the usual pile of booleans so that the
// transition rules are the only mutation points.
type State struct {
	Gait        Gait
	Stance      Stance
	JumpLatched bool

	// Move is the horizontal movement applied on the last fixed tick,
	// already scaled by the gait speed.
	Move mgl64.Vec3

	// Height is the internal capsule height: either Config.Height or
	// Config.CrouchHeight, never a value in between.
	Height  float64
	Stamina float64

	Yaw   float64 // degrees, body heading
	Pitch float64 // degrees, camera elevation

	jumpQueued bool
	stepClock  float64
	stepIndex  int
}

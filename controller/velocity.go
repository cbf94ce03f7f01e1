package controller

import "github.com/go-gl/mathgl/mgl64"

// desiredMove builds the horizontal movement intent from the input
// axes: clamped to unit magnitude, projected onto the forward/right
// basis and scaled by the gait speed. Zero when movement is disabled.
func (c *Controller) desiredMove() mgl64.Vec3 {
	if !c.cfg.MovementEnabled {
		return zeroVec
	}

	x, y := c.input.MoveAxes()
	in := mgl64.Vec2{x, y}
	if in.Len() > 1 {
		in = in.Normalize()
	}
	move := c.Forward().Mul(in.Y()).Add(c.Right().Mul(in.X()))
	return move.Mul(c.speed())
}

// applyVelocity issues this tick's commands to the physics engine: the
// horizontal velocity components are replaced while the engine's
// vertical velocity is preserved, a queued jump fires as an upward
// impulse, and the owned gravity is applied as a continuous force.
func (c *Controller) applyVelocity(move mgl64.Vec3) {
	vel := c.body.Velocity()
	c.body.SetVelocity(mgl64.Vec3{move.X(), vel.Y(), move.Z()})

	if c.st.jumpQueued {
		c.st.jumpQueued = false
		if c.st.Stance == StanceGrounded && c.cfg.MovementEnabled {
			c.body.AddImpulse(up.Mul(c.cfg.JumpForce))
		}
	}

	c.body.AddForce(down.Mul(gravityAccel * c.cfg.GravityMultiplier))
}

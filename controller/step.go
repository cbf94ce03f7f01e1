package controller

import "github.com/go-gl/mathgl/mgl64"

// tryStepUp probes for a climbable ledge in the movement direction and
// nudges the body upward by one smoothing increment when it finds one.
// The climb is gradual: full step height is reached over several ticks
// rather than snapping. No-op when the character is not moving.
func (c *Controller) tryStepUp(move mgl64.Vec3) {
	if move == zeroVec {
		return
	}

	stepHeight := c.cfg.StepHeight
	if c.st.Gait == GaitCrouch {
		stepHeight = c.cfg.CrouchStepHeight
	}
	span := stepHeight - c.cfg.StepSmoothing
	if span <= 0 {
		return
	}

	pos := c.body.Position()
	footY := pos.Y() - c.st.Height/2
	origin := mgl64.Vec3{pos.X(), footY + stepHeight, pos.Z()}.
		Add(move.Normalize().Mul(c.cfg.Radius))

	hit, ok := c.world.RayCast(origin, down, span, c.cfg.LayerMask)
	if !ok {
		return
	}
	if hit.Point.Y() <= footY || hit.Point.Y() > footY+stepHeight {
		return
	}

	c.body.SetPosition(pos.Add(up.Mul(c.cfg.StepSmoothing)))
}

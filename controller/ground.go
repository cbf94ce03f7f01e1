package controller

import "github.com/go-gl/mathgl/mgl64"

// groundProbeSkin is how far below the capsule bottom the overlap
// sphere is centered.
const groundProbeSkin = 0.1

var (
	zeroVec = mgl64.Vec3{}
	up      = mgl64.Vec3{0, 1, 0}
	down    = mgl64.Vec3{0, -1, 0}
)

// updateGrounded probes for solid geometry under the capsule and
// handles the airborne-to-grounded transition: the jump latch clears
// and a hard enough fall plays the land cue, whether or not the
// airborne phase was a jump. Ticks without a transition have no side
// effects.
func (c *Controller) updateGrounded() {
	pos := c.body.Position()
	probe := pos.Sub(mgl64.Vec3{0, c.st.Height/2 + groundProbeSkin, 0})
	grounded := c.world.OverlapSphere(probe, c.cfg.Radius, c.cfg.LayerMask)

	switch {
	case grounded && c.st.Stance == StanceAirborne:
		vy := c.body.Velocity().Y()
		c.st.Stance = StanceGrounded
		c.st.JumpLatched = false
		if vy < -gravityAccel*c.cfg.GravityMultiplier/2 && c.cfg.LandClip != "" {
			c.audio.Play(c.cfg.LandClip, c.cfg.Volume)
		}
	case !grounded && c.st.Stance == StanceGrounded:
		c.st.Stance = StanceAirborne
	}
}

package controller

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/firstperson/common"
)

// slopeProbeOffset is how far ahead of the body the "next position"
// ray is cast.
const slopeProbeOffset = 0.1

// movementAllowed casts down at the current position and one probe
// ahead in the intended direction, then compares the ahead surface's
// slope against MaxSlopeAngle. Downhill moves are always allowed so a
// character can descend terrain it could never climb. A miss ahead
// means no ground there (a ledge); movement is allowed and falling
// takes over.
func (c *Controller) movementAllowed(move mgl64.Vec3) bool {
	if move == zeroVec {
		return true
	}

	pos := c.body.Position()

	// Reference height under the current position. On a miss this
	// falls back to the foot height rather than zero: a zero default
	// would classify any move as downhill while standing over a gap.
	currentHeight := pos.Y() - c.st.Height/2
	if hit, ok := c.world.RayCast(pos, down, c.st.Height, c.cfg.LayerMask); ok {
		currentHeight = hit.Point.Y()
	}

	next := pos.Add(move.Normalize().Mul(slopeProbeOffset))
	hit, ok := c.world.RayCast(next, down, c.st.Height, c.cfg.LayerMask)
	if !ok {
		return true
	}
	if hit.Point.Y() < currentHeight {
		return true
	}
	return common.SlopeAngle(hit.Normal) < c.cfg.MaxSlopeAngle
}

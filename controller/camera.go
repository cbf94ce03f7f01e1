package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/firstperson/common"
)

// updateCamera applies look input to the body yaw and camera pitch.
func (c *Controller) updateCamera() {
	if !c.cfg.CameraEnabled {
		return
	}

	dx, dy := c.input.LookDelta()
	c.st.Yaw += dx * c.cfg.SensitivityX
	// keep the trig stable over long sessions
	if c.st.Yaw >= 360 {
		c.st.Yaw -= 360
	} else if c.st.Yaw <= -360 {
		c.st.Yaw += 360
	}

	pitch := dy * c.cfg.SensitivityY
	if c.cfg.InvertY {
		pitch = -pitch
	}
	c.st.Pitch = common.Clamp(c.st.Pitch-pitch, -c.cfg.MaxPitch, c.cfg.MaxPitch)
}

// Forward is the horizontal forward basis vector derived from yaw.
func (c *Controller) Forward() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.st.Yaw)
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// Right is the horizontal right basis vector derived from yaw.
func (c *Controller) Right() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.st.Yaw)
	return mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
}

// LookDirection is the full view direction including pitch, for the
// host camera.
func (c *Controller) LookDirection() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.st.Yaw)
	pitch := mgl64.DegToRad(c.st.Pitch)
	return mgl64.Vec3{
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
		math.Cos(yaw) * math.Cos(pitch),
	}
}

package controller

// updateFootsteps accumulates time while the character is moving and
// emits the next footstep clip each time the gait's cadence elapses.
// Clips cycle in order, wrapping to the first after the last. With no
// clips configured the cadence logic is skipped entirely.
func (c *Controller) updateFootsteps(dt float64) {
	if len(c.cfg.FootstepClips) == 0 {
		return
	}
	if c.st.Move == zeroVec {
		return
	}

	interval := c.cfg.FootstepBaseTime
	switch c.st.Gait {
	case GaitSprint:
		interval /= 2
	case GaitCrouch:
		interval *= 2
	}

	c.st.stepClock += dt
	if c.st.stepClock <= interval {
		return
	}

	c.audio.Play(c.cfg.FootstepClips[c.st.stepIndex], c.cfg.Volume)
	c.st.stepIndex = (c.st.stepIndex + 1) % len(c.cfg.FootstepClips)
	c.st.stepClock = 0
}

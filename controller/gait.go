package controller

// updateGait runs the locomotion transition rules once per frame.
// Sprint exit is level-triggered and evaluated first so that a sprint
// invalidated last tick (ground lost, stamina gone) cannot survive
// into this frame's speed selection. Entries are edge-triggered.
func (c *Controller) updateGait() {
	grounded := c.st.Stance == StanceGrounded

	if c.st.Gait == GaitSprint {
		exhausted := c.cfg.StaminaEnabled && c.st.Stamina <= 0
		if !grounded || exhausted || !c.input.Held(ActionSprint) {
			c.st.Gait = GaitWalk
		}
	}

	if grounded && c.input.Pressed(ActionCrouch) {
		if c.st.Gait == GaitCrouch {
			c.standUp()
		} else {
			c.crouch()
		}
	}

	if c.input.Pressed(ActionSprint) && grounded && c.st.Gait != GaitCrouch {
		if !c.cfg.StaminaEnabled || c.st.Stamina > 0 {
			c.st.Gait = GaitSprint
		}
	}

	if c.input.Pressed(ActionJump) && grounded && c.cfg.MovementEnabled {
		if c.st.Gait == GaitCrouch {
			c.standUp()
		}
		c.st.JumpLatched = true
		c.st.jumpQueued = true
		if c.cfg.JumpClip != "" {
			c.audio.Play(c.cfg.JumpClip, c.cfg.Volume)
		}
	}
}

func (c *Controller) crouch() {
	c.st.Gait = GaitCrouch
	c.st.Height = c.cfg.CrouchHeight
	c.body.SetCapsule(c.cfg.Radius, c.st.Height)
}

func (c *Controller) standUp() {
	c.st.Gait = GaitWalk
	c.st.Height = c.cfg.Height
	c.body.SetCapsule(c.cfg.Radius, c.st.Height)
}

// speed selects the gait speed: sprint > crouch > walk.
func (c *Controller) speed() float64 {
	switch c.st.Gait {
	case GaitSprint:
		return c.cfg.SprintSpeed
	case GaitCrouch:
		return c.cfg.CrouchSpeed
	default:
		return c.cfg.WalkSpeed
	}
}

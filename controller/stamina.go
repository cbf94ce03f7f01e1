package controller

// updateStamina drains stamina while sprinting and regenerates it
// otherwise, clamped to [0, MaxStamina]. The value is tracked even
// when stamina is disabled; only the gating ignores it then.
func (c *Controller) updateStamina(dt float64) {
	if c.st.Gait == GaitSprint {
		if c.cfg.StaminaEnabled {
			c.st.Stamina -= c.cfg.SprintStaminaCost * dt
			if c.st.Stamina < 0 {
				c.st.Stamina = 0
			}
		}
		return
	}

	c.st.Stamina += c.cfg.StaminaRegen * dt
	if c.st.Stamina > c.cfg.MaxStamina {
		c.st.Stamina = c.cfg.MaxStamina
	}
}

package prefabs

import "github.com/milk9111/firstperson/controller"

// BuildConfig converts a character spec into controller tuning.
// Non-positive numeric fields fall back to the controller defaults so
// partial YAML files stay usable.
func BuildConfig(spec *CharacterSpec) controller.Config {
	cfg := controller.DefaultConfig()
	if spec == nil {
		return cfg
	}

	if spec.Camera.Enabled != nil {
		cfg.CameraEnabled = *spec.Camera.Enabled
	}
	setPositive(&cfg.SensitivityX, spec.Camera.SensitivityX)
	setPositive(&cfg.SensitivityY, spec.Camera.SensitivityY)
	setPositive(&cfg.MaxPitch, spec.Camera.MaxPitch)
	cfg.InvertY = spec.Camera.InvertY

	setPositive(&cfg.Height, spec.Body.Height)
	setPositive(&cfg.CrouchHeight, spec.Body.CrouchHeight)
	setPositive(&cfg.Radius, spec.Body.Radius)
	setPositive(&cfg.Friction, spec.Body.Friction)
	if spec.Body.LayerMask != 0 {
		cfg.LayerMask = spec.Body.LayerMask
	}

	if spec.Movement.Enabled != nil {
		cfg.MovementEnabled = *spec.Movement.Enabled
	}
	setPositive(&cfg.WalkSpeed, spec.Movement.WalkSpeed)
	setPositive(&cfg.SprintSpeed, spec.Movement.SprintSpeed)
	setPositive(&cfg.CrouchSpeed, spec.Movement.CrouchSpeed)
	setPositive(&cfg.MaxSlopeAngle, spec.Movement.MaxSlopeAngle)
	setPositive(&cfg.StepHeight, spec.Movement.StepHeight)
	setPositive(&cfg.CrouchStepHeight, spec.Movement.CrouchStepHeight)
	setPositive(&cfg.StepSmoothing, spec.Movement.StepSmoothing)

	cfg.StaminaEnabled = spec.Stamina.Enabled
	setPositive(&cfg.MaxStamina, spec.Stamina.Maximum)
	setPositive(&cfg.StaminaRegen, spec.Stamina.Regen)
	setPositive(&cfg.SprintStaminaCost, spec.Stamina.SprintCost)

	setPositive(&cfg.JumpForce, spec.Jump.Force)
	setPositive(&cfg.GravityMultiplier, spec.Jump.GravityMultiplier)

	setPositive(&cfg.Volume, spec.Audio.Volume)
	cfg.JumpClip = spec.Audio.JumpClip
	cfg.LandClip = spec.Audio.LandClip
	setPositive(&cfg.FootstepBaseTime, spec.Audio.FootstepBaseTime)
	if len(spec.Audio.FootstepClips) > 0 {
		cfg.FootstepClips = append([]string(nil), spec.Audio.FootstepClips...)
	}

	return cfg
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

package controller

// gravityAccel is the downward acceleration in units/s² before the
// configured multiplier is applied. The engine's own gravity is zeroed
// on the body; the controller owns vertical dynamics.
const gravityAccel = 9.81

// Config is the immutable per-session tuning for one character.
// Values are author-set; see prefabs for the YAML surface.
type Config struct {
	CameraEnabled   bool
	MovementEnabled bool

	SensitivityX float64
	SensitivityY float64
	MaxPitch     float64 // degrees
	InvertY      bool

	Height       float64
	CrouchHeight float64
	Radius       float64

	StepHeight       float64
	CrouchStepHeight float64
	StepSmoothing    float64

	WalkSpeed   float64
	SprintSpeed float64
	CrouchSpeed float64

	MaxSlopeAngle float64 // degrees

	StaminaEnabled    bool
	MaxStamina        float64
	StaminaRegen      float64
	SprintStaminaCost float64

	JumpForce         float64
	GravityMultiplier float64

	LayerMask uint32
	Friction  float64

	Volume           float64
	JumpClip         string
	LandClip         string
	FootstepClips    []string
	FootstepBaseTime float64
}

// DefaultConfig returns a playable baseline tuning.
func DefaultConfig() Config {
	return Config{
		CameraEnabled:   true,
		MovementEnabled: true,

		SensitivityX: 0.2,
		SensitivityY: 0.2,
		MaxPitch:     89,

		Height:       1.8,
		CrouchHeight: 1.0,
		Radius:       0.35,

		StepHeight:       0.4,
		CrouchStepHeight: 0.2,
		StepSmoothing:    0.1,

		WalkSpeed:   4.0,
		SprintSpeed: 7.0,
		CrouchSpeed: 2.0,

		MaxSlopeAngle: 45,

		StaminaEnabled:    true,
		MaxStamina:        100,
		StaminaRegen:      15,
		SprintStaminaCost: 20,

		JumpForce:         5.5,
		GravityMultiplier: 1.0,

		LayerMask: ^uint32(0),
		Friction:  0.6,

		Volume:           1.0,
		FootstepBaseTime: 0.5,
	}
}

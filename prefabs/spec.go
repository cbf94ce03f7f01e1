// Package prefabs holds the YAML tuning surface for a character and
// its conversion into controller configuration. Specs are loaded from
// disk when present so edits apply without a rebuild, falling back to
// the embedded defaults.
package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type CharacterSpec struct {
	Name     string       `yaml:"name"`
	Camera   CameraSpec   `yaml:"camera"`
	Body     BodySpec     `yaml:"body"`
	Movement MovementSpec `yaml:"movement"`
	Stamina  StaminaSpec  `yaml:"stamina"`
	Jump     JumpSpec     `yaml:"jump"`
	Keys     KeysSpec     `yaml:"keys"`
	Audio    AudioSpec    `yaml:"audio"`
}

type CameraSpec struct {
	Enabled      *bool   `yaml:"enabled"`
	SensitivityX float64 `yaml:"sensitivity_x"`
	SensitivityY float64 `yaml:"sensitivity_y"`
	MaxPitch     float64 `yaml:"max_pitch"`
	InvertY      bool    `yaml:"invert_y"`
}

type BodySpec struct {
	Height       float64 `yaml:"height"`
	CrouchHeight float64 `yaml:"crouch_height"`
	Radius       float64 `yaml:"radius"`
	Friction     float64 `yaml:"friction"`
	LayerMask    uint32  `yaml:"layer_mask"`
}

type MovementSpec struct {
	Enabled          *bool   `yaml:"enabled"`
	WalkSpeed        float64 `yaml:"walk_speed"`
	SprintSpeed      float64 `yaml:"sprint_speed"`
	CrouchSpeed      float64 `yaml:"crouch_speed"`
	MaxSlopeAngle    float64 `yaml:"max_slope_angle"`
	StepHeight       float64 `yaml:"step_height"`
	CrouchStepHeight float64 `yaml:"crouch_step_height"`
	StepSmoothing    float64 `yaml:"step_smoothing"`
}

type StaminaSpec struct {
	Enabled    bool    `yaml:"enabled"`
	Maximum    float64 `yaml:"maximum"`
	Regen      float64 `yaml:"regen"`
	SprintCost float64 `yaml:"sprint_cost"`
}

type JumpSpec struct {
	Force             float64 `yaml:"force"`
	GravityMultiplier float64 `yaml:"gravity_multiplier"`
}

type KeysSpec struct {
	Sprint string `yaml:"sprint"`
	Crouch string `yaml:"crouch"`
	Jump   string `yaml:"jump"`
}

type AudioSpec struct {
	Volume           float64  `yaml:"volume"`
	JumpClip         string   `yaml:"jump_clip"`
	LandClip         string   `yaml:"land_clip"`
	FootstepBaseTime float64  `yaml:"footstep_base_time"`
	FootstepClips    []string `yaml:"footstep_clips"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadCharacterSpec(filename string) (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Package controller converts raw look/move/key input into rigid-body
// motion for a single first-person character: ground detection,
// slope-aware movement, step climbing, crouch/sprint/jump transitions
// with stamina gating, and footstep/jump/land audio cues.
//
// The physics engine, audio playback and input polling are injected
// interfaces (see engine.go), so the package runs against fakes in
// tests and against any host engine in production.
package controller

// Controller is one character's simulation unit. It is not safe for
// concurrent use; the host drives Update and FixedUpdate from a single
// loop, Update first.
type Controller struct {
	cfg   Config
	body  PhysicsBody
	world PhysicsWorld
	audio Audio
	input Input

	st State
}

// New wires a controller to its engine collaborators and configures
// the body shape. The character spawns standing, airborne, with full
// stamina; the engine's own gravity is disabled on the body because
// the velocity composer owns vertical dynamics.
func New(cfg Config, body PhysicsBody, world PhysicsWorld, audio Audio, input Input) *Controller {
	c := &Controller{
		cfg:   cfg,
		body:  body,
		world: world,
		audio: audio,
		input: input,
	}
	c.st.Height = cfg.Height
	c.st.Stamina = cfg.MaxStamina
	c.st.Stance = StanceAirborne

	body.SetCapsule(cfg.Radius, cfg.Height)
	body.SetFriction(cfg.Friction)
	body.SetGravityScale(0)
	return c
}

// State returns a copy of the current character state.
func (c *Controller) State() State { return c.st }

// Config returns the active tuning.
func (c *Controller) Config() Config { return c.cfg }

// ApplyConfig swaps the tuning on a live controller (used by the
// fsnotify reload path). The binary height invariant is re-established
// against the new dimensions and stamina is clamped to a shrunk
// capacity.
func (c *Controller) ApplyConfig(cfg Config) {
	c.cfg = cfg
	if c.st.Gait == GaitCrouch {
		c.st.Height = cfg.CrouchHeight
	} else {
		c.st.Height = cfg.Height
	}
	c.body.SetCapsule(cfg.Radius, c.st.Height)
	c.body.SetFriction(cfg.Friction)
	if c.st.Stamina > cfg.MaxStamina {
		c.st.Stamina = cfg.MaxStamina
	}
}

// Update is the per-rendered-frame phase: camera rotation, locomotion
// transitions, stamina, footstep cadence. dt is the frame delta in
// seconds.
func (c *Controller) Update(dt float64) {
	c.updateCamera()
	c.updateGait()
	c.updateStamina(dt)
	c.updateFootsteps(dt)
}

// FixedUpdate is the per-physics-tick phase. Order matters: the
// grounded state must be known before slope, step and velocity
// decisions are made.
func (c *Controller) FixedUpdate() {
	c.updateGrounded()

	move := c.desiredMove()
	if !c.movementAllowed(move) {
		move = zeroVec
	}
	c.tryStepUp(move)
	c.applyVelocity(move)
	c.st.Move = move
}

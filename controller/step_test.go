package controller

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestStepUp(t *testing.T) {
	cfg := DefaultConfig() // step 0.4, smoothing 0.1, height 1.8

	cases := []struct {
		name      string
		move      mgl64.Vec3
		gait      Gait
		hit       rayResult
		wantNudge bool
	}{
		{
			name:      "ledge_inside_budget",
			move:      mgl64.Vec3{0, 0, 1},
			hit:       rayResult{RayHit{Point: mgl64.Vec3{0.0, 0.2, 0.35}, Normal: up}, true},
			wantNudge: true,
		},
		{
			name:      "hit_exactly_at_step_top",
			move:      mgl64.Vec3{0, 0, 1},
			hit:       rayResult{RayHit{Point: mgl64.Vec3{0, 0.4, 0.35}, Normal: up}, true},
			wantNudge: true,
		},
		{
			name:      "hit_at_foot_level_ignored",
			move:      mgl64.Vec3{0, 0, 1},
			hit:       rayResult{RayHit{Point: mgl64.Vec3{0, 0, 0.35}, Normal: up}, true},
			wantNudge: false,
		},
		{
			name:      "no_hit",
			move:      mgl64.Vec3{0, 0, 1},
			hit:       rayResult{ok: false},
			wantNudge: false,
		},
		{
			name:      "zero_movement",
			move:      mgl64.Vec3{},
			hit:       rayResult{RayHit{Point: mgl64.Vec3{0, 0.2, 0.35}, Normal: up}, true},
			wantNudge: false,
		},
		{
			name:      "crouched_uses_smaller_budget",
			move:      mgl64.Vec3{0, 0, 1},
			gait:      GaitCrouch,
			hit:       rayResult{RayHit{Point: mgl64.Vec3{0, 0.3, 0.35}, Normal: up}, true},
			wantNudge: false, // 0.3 above crouch step height 0.2
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			height := cfg.Height
			if tc.gait == GaitCrouch {
				height = cfg.CrouchHeight
			}
			body := &fakeBody{pos: mgl64.Vec3{0, height / 2, 0}}
			world := &fakeWorld{rays: []rayResult{tc.hit}}
			c := New(cfg, body, world, &fakeAudio{}, newFakeInput())
			c.st.Gait = tc.gait
			c.st.Height = height
			before := body.pos

			c.tryStepUp(tc.move)

			got := body.pos.Y() - before.Y()
			if tc.wantNudge && math.Abs(got-cfg.StepSmoothing) > 1e-9 {
				t.Fatalf("nudge = %v, want smoothing increment %v", got, cfg.StepSmoothing)
			}
			if !tc.wantNudge && got != 0 {
				t.Fatalf("unexpected nudge %v", got)
			}
		})
	}
}

func TestStepUpIsGradual(t *testing.T) {
	cfg := DefaultConfig()
	body := &fakeBody{pos: mgl64.Vec3{0, cfg.Height / 2, 0}}
	world := &fakeWorld{rayFunc: func(origin, dir mgl64.Vec3, maxDist float64) (RayHit, bool) {
		// a ledge at a constant world height of 0.3
		return RayHit{Point: mgl64.Vec3{origin.X(), 0.3, origin.Z()}, Normal: up}, true
	}}
	c := New(cfg, body, world, &fakeAudio{}, newFakeInput())

	move := mgl64.Vec3{0, 0, cfg.WalkSpeed}
	c.tryStepUp(move)
	c.tryStepUp(move)

	climbed := body.pos.Y() - cfg.Height/2
	if math.Abs(climbed-2*cfg.StepSmoothing) > 1e-9 {
		t.Fatalf("climbed %v over two ticks, want %v", climbed, 2*cfg.StepSmoothing)
	}
}

func TestStepUpNoopWhenSmoothingSwallowsBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepSmoothing = cfg.StepHeight
	body := &fakeBody{pos: mgl64.Vec3{0, cfg.Height / 2, 0}}
	world := &fakeWorld{rays: []rayResult{{RayHit{Point: mgl64.Vec3{0, 0.2, 0.35}, Normal: up}, true}}}
	c := New(cfg, body, world, &fakeAudio{}, newFakeInput())

	c.tryStepUp(mgl64.Vec3{0, 0, 1})
	if world.rayCall != 0 {
		t.Fatalf("probe should be skipped when the ray span is non-positive")
	}
	if body.pos.Y() != cfg.Height/2 {
		t.Fatalf("body moved without a valid step budget")
	}
}

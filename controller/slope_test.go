package controller

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// tiltedNormal returns a unit normal tilted deg degrees from world up.
func tiltedNormal(deg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(deg)
	return mgl64.Vec3{math.Sin(rad), math.Cos(rad), 0}
}

func TestMovementAllowedOnSlopes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSlopeAngle = 45

	cases := []struct {
		name       string
		currentHit rayResult
		nextHit    rayResult
		want       bool
	}{
		{
			name:       "flat_ground",
			currentHit: rayResult{RayHit{Point: mgl64.Vec3{0, 0, 0}, Normal: up}, true},
			nextHit:    rayResult{RayHit{Point: mgl64.Vec3{0, 0, 0.1}, Normal: up}, true},
			want:       true,
		},
		{
			name:       "gentle_uphill",
			currentHit: rayResult{RayHit{Point: mgl64.Vec3{0, 0, 0}, Normal: up}, true},
			nextHit:    rayResult{RayHit{Point: mgl64.Vec3{0, 0.05, 0.1}, Normal: tiltedNormal(30)}, true},
			want:       true,
		},
		{
			name:       "steep_uphill_rejected",
			currentHit: rayResult{RayHit{Point: mgl64.Vec3{0, 0, 0}, Normal: up}, true},
			nextHit:    rayResult{RayHit{Point: mgl64.Vec3{0, 0.08, 0.1}, Normal: tiltedNormal(60)}, true},
			want:       false,
		},
		{
			name:       "angle_just_over_limit_rejected",
			currentHit: rayResult{RayHit{Point: mgl64.Vec3{0, 0, 0}, Normal: up}, true},
			nextHit:    rayResult{RayHit{Point: mgl64.Vec3{0, 0.07, 0.1}, Normal: tiltedNormal(45.5)}, true},
			want:       false,
		},
		{
			name:       "steep_downhill_allowed",
			currentHit: rayResult{RayHit{Point: mgl64.Vec3{0, 0, 0}, Normal: up}, true},
			nextHit:    rayResult{RayHit{Point: mgl64.Vec3{0, -0.08, 0.1}, Normal: tiltedNormal(60)}, true},
			want:       true,
		},
		{
			name:       "ledge_ahead_allowed",
			currentHit: rayResult{RayHit{Point: mgl64.Vec3{0, 0, 0}, Normal: up}, true},
			nextHit:    rayResult{ok: false},
			want:       true,
		},
		{
			name:       "current_miss_steep_wall_ahead_rejected",
			currentHit: rayResult{ok: false},
			nextHit:    rayResult{RayHit{Point: mgl64.Vec3{0, 0.5, 0.1}, Normal: tiltedNormal(80)}, true},
			want:       false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := &fakeBody{pos: mgl64.Vec3{0, cfg.Height / 2, 0}}
			world := &fakeWorld{rays: []rayResult{tc.currentHit, tc.nextHit}}
			c := New(cfg, body, world, &fakeAudio{}, newFakeInput())

			got := c.movementAllowed(mgl64.Vec3{0, 0, cfg.WalkSpeed})
			if got != tc.want {
				t.Fatalf("movementAllowed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCurrentRayMissFallsBackToFootHeight(t *testing.T) {
	// Standing over a gap: the current ray misses but the feet are well
	// above y=0. A surface ahead that sits below the feet must count as
	// downhill even though it is above the world origin.
	cfg := DefaultConfig()
	cfg.MaxSlopeAngle = 45
	body := &fakeBody{pos: mgl64.Vec3{0, 10 + cfg.Height/2, 0}}
	world := &fakeWorld{rays: []rayResult{
		{ok: false},
		{RayHit{Point: mgl64.Vec3{0, 9.5, 0.1}, Normal: tiltedNormal(70)}, true},
	}}
	c := New(cfg, body, world, &fakeAudio{}, newFakeInput())

	if !c.movementAllowed(mgl64.Vec3{0, 0, cfg.WalkSpeed}) {
		t.Fatalf("surface below the feet should read as downhill and be allowed")
	}
}

func TestZeroMovementIsAlwaysAllowed(t *testing.T) {
	c, _, world, _, _ := newTestController(DefaultConfig())
	world.rays = nil

	if !c.movementAllowed(mgl64.Vec3{}) {
		t.Fatalf("zero movement should be allowed without any ray queries")
	}
	if world.rayCall != 0 {
		t.Fatalf("zero movement should not cast rays, cast %d", world.rayCall)
	}
}

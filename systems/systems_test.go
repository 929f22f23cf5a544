package systems

import (
	"testing"

	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// pressOnce advances the input one frame with only the given action held.
func pressOnce(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

// releaseAll advances the input one frame with nothing held.
func releaseAll(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func TestGetActionEdges(t *testing.T) {
	var input components.InputData

	input.Current[cfg.ActionJump] = true
	a := GetAction(&input, cfg.ActionJump)
	if !a.Pressed || !a.JustPressed || a.JustReleased {
		t.Fatalf("fresh press: got %+v", a)
	}

	input.Previous = input.Current
	a = GetAction(&input, cfg.ActionJump)
	if !a.Pressed || a.JustPressed {
		t.Fatalf("held press: got %+v", a)
	}

	input.Current[cfg.ActionJump] = false
	a = GetAction(&input, cfg.ActionJump)
	if a.Pressed || !a.JustReleased {
		t.Fatalf("release: got %+v", a)
	}
}

func spawnPhysicsEntity(e *ecs.ECS, p components.PhysicsData) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Physics))
	components.Physics.SetValue(entry, p)
	return entry
}

func TestPhysicsFrictionStopsSlowMovement(t *testing.T) {
	e := newTestECS()
	entry := spawnPhysicsEntity(e, components.PhysicsData{
		SpeedX:   0.2,
		Friction: 0.3,
		MaxSpeed: 2.5,
	})

	UpdatePhysics(e)

	if got := components.Physics.Get(entry).SpeedX; got != 0 {
		t.Fatalf("expected friction to zero out slow movement, got %v", got)
	}
}

func TestPhysicsClampsSpeedAndFall(t *testing.T) {
	e := newTestECS()
	entry := spawnPhysicsEntity(e, components.PhysicsData{
		SpeedX:   10,
		SpeedY:   100,
		Gravity:  0.35,
		Friction: 0.3,
		MaxSpeed: 2.5,
	})

	UpdatePhysics(e)

	physics := components.Physics.Get(entry)
	if physics.SpeedX != 2.5 {
		t.Errorf("expected horizontal clamp to 2.5, got %v", physics.SpeedX)
	}
	if physics.SpeedY != cfg.Physics.MaxFallSpeed {
		t.Errorf("expected fall clamp to %v, got %v", cfg.Physics.MaxFallSpeed, physics.SpeedY)
	}
}

func spawnTestPlayer(e *ecs.ECS) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(tags.Player, components.Player, components.Physics))
	components.Player.SetValue(entry, components.PlayerData{Direction: components.Vector{X: 1}})
	components.Physics.SetValue(entry, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	return entry
}

func TestCoyoteJump(t *testing.T) {
	e := newTestECS()
	entry := spawnTestPlayer(e)

	// Just walked off a ledge: airborne but within the grace window.
	components.Player.Get(entry).CoyoteFrames = 3

	pressOnce(e, cfg.ActionJump)
	UpdatePlayer(e)

	physics := components.Physics.Get(entry)
	if physics.SpeedY != -cfg.Player.JumpSpeed {
		t.Fatalf("expected coyote jump, SpeedY = %v", physics.SpeedY)
	}
	if components.Player.Get(entry).CoyoteFrames != 0 {
		t.Errorf("expected coyote frames consumed by the jump")
	}
}

func TestNoJumpAfterCoyoteWindow(t *testing.T) {
	e := newTestECS()
	entry := spawnTestPlayer(e)

	pressOnce(e, cfg.ActionJump)
	UpdatePlayer(e)

	if physics := components.Physics.Get(entry); physics.SpeedY != 0 {
		t.Fatalf("airborne with no coyote frames should not jump, SpeedY = %v", physics.SpeedY)
	}
}

func TestReleasingJumpCutsItShort(t *testing.T) {
	e := newTestECS()
	entry := spawnTestPlayer(e)
	components.Physics.Get(entry).SpeedY = -6

	pressOnce(e, cfg.ActionJump)
	UpdatePlayer(e)
	releaseAll(e)
	UpdatePlayer(e)

	if physics := components.Physics.Get(entry); physics.SpeedY != -3 {
		t.Fatalf("expected jump cut to halve rising speed, SpeedY = %v", physics.SpeedY)
	}
}

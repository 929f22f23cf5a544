package systems

import (
	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player and clamps it so the view
// never leaves the level.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2
	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSpeed
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSpeed

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	// Half the view in world units; the camera position is the view center.
	halfW := float64(cfg.C.Width) / cfg.C.Zoom / 2
	halfH := float64(cfg.C.Height) / cfg.C.Zoom / 2
	camera.Position.X = clamp(camera.Position.X, halfW, float64(level.Width)-halfW)
	camera.Position.Y = clamp(camera.Position.Y, halfH, float64(level.Height)-halfH)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

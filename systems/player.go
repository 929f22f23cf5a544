package systems

import (
	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns polled input into player intent: horizontal
// acceleration, jumps, and dropping through one-way platforms. The physics
// and collision systems apply the result.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			physics.SpeedX -= cfg.Player.Acceleration
			player.Direction = components.Vector{X: -1, Y: 0}
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			physics.SpeedX += cfg.Player.Acceleration
			player.Direction = components.Vector{X: 1, Y: 0}
		}

		if physics.OnGround != nil {
			player.CoyoteFrames = cfg.Player.CoyoteFrames
		} else if player.CoyoteFrames > 0 {
			player.CoyoteFrames--
		}

		jump := GetAction(input, cfg.ActionJump)
		drop := GetAction(input, cfg.ActionDrop)

		if jump.JustPressed {
			if drop.Pressed && physics.OnGround != nil && physics.OnGround.HasTags(tags.ResolvPlatform) {
				// Down+jump falls through a one-way platform instead of jumping.
				physics.IgnorePlatform = physics.OnGround
			} else if player.CoyoteFrames > 0 {
				physics.SpeedY = -cfg.Player.JumpSpeed
				player.CoyoteFrames = 0
			}
		}

		// Releasing jump while rising cuts the jump short
		if jump.JustReleased && physics.SpeedY < 0 {
			physics.SpeedY *= 0.5
		}
	})
}

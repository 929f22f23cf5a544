package systems

import (
	"github.com/badlydrawnrod/boxkid/components"
	"github.com/badlydrawnrod/boxkid/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
	})
}

// resolveHorizontalCollision moves the object by SpeedX, stopping at walls.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		dx = check.ContactWithObject(solids[0]).X()
		physics.SpeedX = 0
	}

	object.X += dx
}

// resolveVerticalCollision moves the object by SpeedY. Solids block in both
// directions; one-way platforms only catch a falling object whose bottom is
// at or above the platform top, and never the platform currently being
// dropped through.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	wasIgnoring := physics.IgnorePlatform
	physics.OnGround = nil
	dy := physics.SpeedY

	if dy < 0 {
		if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
				physics.SpeedY = 0
			}
		}
		object.Y += dy
		return
	}

	// Check one pixel further than the fall distance so standing contact
	// keeps OnGround set.
	check := object.Check(0, dy+1, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		physics.IgnorePlatform = nil
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.OnGround = solids[0]
		physics.SpeedY = 0
		physics.IgnorePlatform = nil
		object.Y += check.ContactWithObject(solids[0]).Y()
		return
	}

	for _, platform := range check.ObjectsByTags(tags.ResolvPlatform) {
		if platform == wasIgnoring {
			physics.IgnorePlatform = wasIgnoring
			continue
		}
		// Only land when coming from above.
		if object.Bottom() > platform.Y+1 {
			continue
		}
		physics.OnGround = platform
		physics.SpeedY = 0
		physics.IgnorePlatform = nil
		object.Y += check.ContactWithObject(platform).Y()
		return
	}

	object.Y += dy
}

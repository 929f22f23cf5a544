package systems

import (
	"github.com/badlydrawnrod/boxkid/components"
	"github.com/badlydrawnrod/boxkid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances each floating platform along its tween sequence,
// restarting the sequence when it completes so the platform loops forever.
func UpdatePlatforms(ecs *ecs.ECS) {
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e)

		y, _, sequenceDone := tw.Update(1.0 / 60.0)
		obj.Y = float64(y)
		if sequenceDone {
			tw.Reset()
		}
	})
}

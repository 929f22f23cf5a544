package factory

import (
	"github.com/badlydrawnrod/boxkid/archetypes"
	"github.com/badlydrawnrod/boxkid/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
